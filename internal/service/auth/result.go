package auth

import "github.com/heartmarshall/quecocino-backend/internal/domain"

// AuthResult is returned by SignIn.
type AuthResult struct {
	AccessToken string
	Profile     *domain.Profile
}
