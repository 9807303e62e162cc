package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// identityVerifier turns provider credentials into a provider-neutral identity.
type identityVerifier interface {
	VerifyIDToken(ctx context.Context, rawIDToken string) (*domain.Identity, error)
	VerifyCode(ctx context.Context, code string) (*domain.Identity, error)
}

// profileReconciler defines the profile operations needed by auth service.
type profileReconciler interface {
	Reconcile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
}

// jwtManager defines the access token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(profileID, provider string) (string, error)
	ValidateAccessToken(token string) (string, error)
}

// Service implements sign-in and session lookups.
type Service struct {
	log      *slog.Logger
	verifier identityVerifier
	profiles profileReconciler
	jwt      jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	verifier identityVerifier,
	profiles profileReconciler,
	jwt jwtManager,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		verifier: verifier,
		profiles: profiles,
		jwt:      jwt,
	}
}
