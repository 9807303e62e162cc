// Package firestoredb implements the profile document store on Cloud Firestore.
package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/auth/credentials"
	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/heartmarshall/quecocino-backend/internal/config"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

// NewClient creates a Firestore client for cfg.ProjectID. Credentials come
// from cfg.CredentialsFile when set and from application default
// credentials otherwise. FIRESTORE_EMULATOR_HOST is honored by the client.
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption

	if cfg.CredentialsFile != "" {
		creds, err := credentials.DetectDefault(&credentials.DetectOptions{
			Scopes:          []string{datastoreScope},
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			return nil, fmt.Errorf("load firestore credentials: %w", err)
		}
		opts = append(opts, option.WithAuthCredentials(creds))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
