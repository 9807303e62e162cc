package config

import (
	"time"
)

// Store drivers supported by the profile document store.
const (
	DriverPostgres  = "postgres"
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Firestore FirestoreConfig `yaml:"firestore"`
	Auth      AuthConfig      `yaml:"auth"`
	Profile   ProfileConfig   `yaml:"profile"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// SignInRateLimit is the number of sign-in attempts allowed per client IP
	// per minute. Zero disables limiting.
	SignInRateLimit int `yaml:"sign_in_rate_limit" env:"SERVER_SIGN_IN_RATE_LIMIT" env-default:"30"`
}

// StoreConfig selects the document store backing profiles.
type StoreConfig struct {
	Driver     string `yaml:"driver"     env:"STORE_DRIVER"     env-default:"postgres"`
	Collection string `yaml:"collection" env:"STORE_COLLECTION" env-default:"users"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"quecocino"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// FirestoreConfig holds Cloud Firestore settings.
// CredentialsFile is optional; application default credentials are used when empty.
type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id"       env:"FIRESTORE_PROJECT_ID"`
	CredentialsFile string `yaml:"credentials_file" env:"FIRESTORE_CREDENTIALS_FILE"`
}

// AuthConfig holds identity provider and access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"quecocino"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	GoogleClientID string        `yaml:"google_client_id" env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleIssuer   string        `yaml:"google_issuer"    env:"AUTH_GOOGLE_ISSUER"    env-default:"https://accounts.google.com"`

	// Authorization-code sign-in is enabled only when both are set.
	GoogleClientSecret string `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `yaml:"google_redirect_url"  env:"AUTH_GOOGLE_REDIRECT_URL"`
}

// CodeExchangeEnabled reports whether authorization-code sign-in is configured.
func (c AuthConfig) CodeExchangeEnabled() bool {
	return c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// ProfileConfig holds profile reconciliation settings.
type ProfileConfig struct {
	// ReconcileTimeout bounds a reconcile or lookup when the caller set no deadline.
	ReconcileTimeout time.Duration `yaml:"reconcile_timeout" env:"PROFILE_RECONCILE_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
