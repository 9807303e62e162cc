package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
	"github.com/heartmarshall/quecocino-backend/internal/service/auth"
)

// maxSignInBody bounds the sign-in request body.
const maxSignInBody = 64 << 10

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.Profile, error)
}

// AuthHandler serves sign-in and profile REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signInRequest struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

type signInResponse struct {
	AccessToken string          `json:"accessToken"`
	Profile     profileResponse `json:"profile"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignIn handles POST /auth/google.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSignInBody)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		IDToken: req.IDToken,
		Code:    req.Code,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		AccessToken: result.AccessToken,
		Profile:     toProfileResponse(result.Profile),
	})
}

// Me handles GET /profile/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}
