// Command profilectl inspects and reconciles profile documents in the
// configured store, bypassing the HTTP API and the identity provider.
//
// Exit codes: 0 = success, 1 = error, 2 = profile not found.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quecocino-backend/internal/app"
	"github.com/heartmarshall/quecocino-backend/internal/config"
	"github.com/heartmarshall/quecocino-backend/internal/domain"
	"github.com/heartmarshall/quecocino-backend/internal/service/profile"
)

const exitNotFound = 2

type reconcileFlags struct {
	id     string
	name   string
	email  string
	avatar string
}

func main() {
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Inspect and reconcile profile documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall command timeout")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print the stored profile document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), timeout, func(ctx context.Context, svc *profile.Service) error {
				return runGet(ctx, svc, cmd.OutOrStdout(), args[0])
			})
		},
	}

	var rf reconcileFlags
	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Create the profile if absent and print the stored document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), timeout, func(ctx context.Context, svc *profile.Service) error {
				return runReconcile(ctx, svc, cmd.OutOrStdout(), rf.identity(cmd))
			})
		},
	}
	f := reconcileCmd.Flags()
	f.StringVar(&rf.id, "id", "", "Identity provider user id (required)")
	f.StringVar(&rf.name, "name", "", "Display name")
	f.StringVar(&rf.email, "email", "", "Email address")
	f.StringVar(&rf.avatar, "avatar", "", "Avatar URL")
	_ = reconcileCmd.MarkFlagRequired("id")

	root.AddCommand(getCmd, reconcileCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, domain.ErrNotFound) {
			os.Exit(exitNotFound)
		}
		os.Exit(1)
	}
}

// identity builds the identity from flags. Flags left unset stay absent
// so the usual empty-string defaults apply.
func (f reconcileFlags) identity(cmd *cobra.Command) domain.Identity {
	id := domain.Identity{ID: f.id, Provider: "profilectl"}
	if cmd.Flags().Changed("name") {
		id.DisplayName = &f.name
	}
	if cmd.Flags().Changed("email") {
		id.Email = &f.email
	}
	if cmd.Flags().Changed("avatar") {
		id.AvatarURL = &f.avatar
	}
	return id
}

// withService loads config, opens the configured store and runs fn with a
// profile service over it.
func withService(ctx context.Context, timeout time.Duration, fn func(context.Context, *profile.Service) error) error {
	cfg, err := config.LoadStore()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore(context.Background()) }()

	return fn(ctx, profile.NewService(logger, store, cfg.Profile))
}
