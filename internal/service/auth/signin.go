package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// SignIn verifies the Google credential, makes sure a profile exists for the
// identity and issues an access token for it. Any failing step ends the
// flow with that step's error.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.verify(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn verify: %w", err)
	}

	profile, err := s.profiles.Reconcile(ctx, *identity)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn reconcile: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(profile.ID, identity.Provider)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue token: %w", err)
	}

	s.log.InfoContext(ctx, "profile signed in",
		slog.String("profile_id", profile.ID),
		slog.String("provider", identity.Provider))

	return &AuthResult{AccessToken: accessToken, Profile: profile}, nil
}

func (s *Service) verify(ctx context.Context, input SignInInput) (*domain.Identity, error) {
	if input.Code != "" {
		return s.verifier.VerifyCode(ctx, input.Code)
	}
	return s.verifier.VerifyIDToken(ctx, input.IDToken)
}
