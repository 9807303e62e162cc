package rest

import (
	"net/http"

	"github.com/heartmarshall/quecocino-backend/internal/transport/middleware"
)

// Routes registers every endpoint on mux. signInLimit wraps only the
// sign-in route and authenticate only the caller-scoped routes; either may
// be nil. Sign-in never inspects a bearer token, so a client holding an
// expired access token can still sign in again.
func Routes(mux *http.ServeMux, auth *AuthHandler, health *HealthHandler, signInLimit, authenticate middleware.Middleware) {
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /auth/google", middleware.Chain(signInLimit)(http.HandlerFunc(auth.SignIn)))
	mux.Handle("GET /profile/me", middleware.Chain(authenticate)(http.HandlerFunc(auth.Me)))
}
