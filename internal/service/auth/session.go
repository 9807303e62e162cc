package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
	"github.com/heartmarshall/quecocino-backend/pkg/ctxutil"
)

// Me returns the stored profile of the authenticated caller.
// Returns ErrUnauthorized if no profile ID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.Profile, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return profile, nil
}

// ValidateToken validates an access token and returns the profile ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	profileID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return profileID, nil
}
