package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

type profileService interface {
	Reconcile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
}

func runGet(ctx context.Context, svc profileService, w io.Writer, id string) error {
	p, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(w, p)
}

func runReconcile(ctx context.Context, svc profileService, w io.Writer, identity domain.Identity) error {
	p, err := svc.Reconcile(ctx, identity)
	if err != nil {
		return err
	}
	return printJSON(w, p)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
