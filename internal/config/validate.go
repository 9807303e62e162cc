package config

import (
	"fmt"
	"slices"
)

// Validate checks everything the HTTP server needs. Load calls it
// automatically.
func (c *Config) Validate() error {
	if err := c.validateAuth(); err != nil {
		return err
	}

	if c.Server.SignInRateLimit < 0 {
		return fmt.Errorf("server.sign_in_rate_limit must be >= 0 (got %d)", c.Server.SignInRateLimit)
	}

	return c.ValidateStore()
}

// ValidateStore checks only the store and reconciliation settings. Tools that
// never issue tokens or talk to Google use it through LoadStore.
func (c *Config) ValidateStore() error {
	if c.Profile.ReconcileTimeout <= 0 {
		return fmt.Errorf("profile.reconcile_timeout must be > 0 (got %v)", c.Profile.ReconcileTimeout)
	}

	if err := c.validateStore(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	return nil
}

func (c *Config) validateAuth() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.GoogleClientID == "" {
		return fmt.Errorf("auth.google_client_id is required")
	}

	if (c.Auth.GoogleClientSecret == "") != (c.Auth.GoogleRedirectURL == "") {
		return fmt.Errorf("auth.google_client_secret and auth.google_redirect_url must be set together")
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	return nil
}

func (c *Config) validateStore() error {
	drivers := []string{DriverPostgres, DriverMongo, DriverFirestore, DriverMemory}
	if !slices.Contains(drivers, c.Store.Driver) {
		return fmt.Errorf("unknown driver %q (want one of %v)", c.Store.Driver, drivers)
	}

	if c.Store.Collection == "" {
		return fmt.Errorf("collection is required")
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("mongo.uri and mongo.database are required for driver %q", DriverMongo)
		}
	case DriverFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required for driver %q", DriverFirestore)
		}
	}

	return nil
}
