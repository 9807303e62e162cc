// Package google verifies Google sign-in credentials and translates them
// into provider-neutral identities.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/heartmarshall/quecocino-backend/internal/config"
	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// ProviderName is recorded on every identity produced by this package.
const ProviderName = "google"

// ErrCodeExchangeDisabled is returned by VerifyCode when no client secret
// and redirect URL are configured.
var ErrCodeExchangeDisabled = domain.NewValidationError("code", "authorization code sign-in is not enabled")

// Verifier checks Google ID tokens against the provider's published keys.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
	oauth    *oauth2.Config
	log      *slog.Logger
}

// NewVerifier discovers the Google OIDC provider and builds a verifier for
// tokens issued to cfg.GoogleClientID.
func NewVerifier(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("init google oidc provider: %w", err)
	}

	var oauthCfg *oauth2.Config
	if cfg.CodeExchangeEnabled() {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		}
	}

	var discovery struct {
		JWKSURL string `json:"jwks_uri"`
	}
	if err := provider.Claims(&discovery); err != nil {
		return nil, fmt.Errorf("read google oidc discovery: %w", err)
	}

	keySet := oidc.NewRemoteKeySet(ctx, discovery.JWKSURL)
	return newVerifier(keySet, cfg.GoogleIssuer, cfg.GoogleClientID, oauthCfg, logger), nil
}

func newVerifier(keySet oidc.KeySet, issuer, clientID string, oauthCfg *oauth2.Config, logger *slog.Logger) *Verifier {
	return &Verifier{
		verifier: oidc.NewVerifier(issuer, trackingKeySet{keySet}, &oidc.Config{ClientID: clientID}),
		oauth:    oauthCfg,
		log:      logger.With("adapter", "google_oidc"),
	}
}

type keyFetchFailedKey struct{}

// trackingKeySet flags the verification context when signing keys could not
// be fetched. IDTokenVerifier flattens key set errors into strings, so the
// outcome is reported through the context instead.
type trackingKeySet struct {
	oidc.KeySet
}

func (k trackingKeySet) VerifySignature(ctx context.Context, jwt string) ([]byte, error) {
	payload, err := k.KeySet.VerifySignature(ctx, jwt)
	// RemoteKeySet wraps fetch and context failures. Signature mismatches
	// and malformed tokens are unwrapped errors.
	if err != nil && errors.Unwrap(err) != nil {
		if failed, ok := ctx.Value(keyFetchFailedKey{}).(*bool); ok {
			*failed = true
		}
	}
	return payload, err
}

// idTokenClaims are the Google ID token claims mapped onto an identity.
type idTokenClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyIDToken validates signature, issuer, audience and expiry of a raw
// ID token and returns the identity it asserts. A token the provider's keys
// reject is domain.ErrUnauthorized; failing to fetch the keys at all is
// domain.ErrProviderUnavailable.
func (v *Verifier) VerifyIDToken(ctx context.Context, rawIDToken string) (*domain.Identity, error) {
	var keyFetchFailed bool
	idToken, err := v.verifier.Verify(context.WithValue(ctx, keyFetchFailedKey{}, &keyFetchFailed), rawIDToken)
	if err != nil {
		if keyFetchFailed {
			v.log.ErrorContext(ctx, "google signing keys unavailable", slog.String("error", err.Error()))
			return nil, fmt.Errorf("google: verify id token: %w: %w", domain.ErrProviderUnavailable, err)
		}
		v.log.DebugContext(ctx, "google id token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: verify id token: %w: %w", domain.ErrUnauthorized, err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google: parse id token claims: %w: %w", domain.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("google: id token has no subject: %w", domain.ErrUnauthorized)
	}

	identity := &domain.Identity{
		ID:       claims.Subject,
		Provider: ProviderName,
	}

	// Optional fields. An unverified email is treated as absent.
	if claims.Name != "" {
		identity.DisplayName = &claims.Name
	}
	if claims.Email != "" && claims.EmailVerified {
		identity.Email = &claims.Email
	}
	if claims.Picture != "" {
		identity.AvatarURL = &claims.Picture
	}

	v.log.DebugContext(ctx, "google id token verified",
		slog.Bool("email_present", identity.Email != nil),
		slog.Time("expiry", idToken.Expiry),
	)

	return identity, nil
}

// VerifyCode exchanges an authorization code for tokens and verifies the
// returned ID token.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*domain.Identity, error) {
	if v.oauth == nil {
		return nil, ErrCodeExchangeDisabled
	}

	token, err := v.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil &&
			retrieveErr.Response.StatusCode < http.StatusInternalServerError {
			return nil, fmt.Errorf("google: invalid or expired code: %w: %w", domain.ErrUnauthorized, err)
		}
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: token exchange: %w: %w", domain.ErrProviderUnavailable, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("google: token response has no id_token: %w", domain.ErrUnauthorized)
	}

	return v.VerifyIDToken(ctx, rawIDToken)
}
