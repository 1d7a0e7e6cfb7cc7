package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Media       MediaConfig       `yaml:"media"`
	Drafts      DraftsConfig      `yaml:"drafts"`
	Browse      BrowseConfig      `yaml:"browse"`
	Preferences PreferencesConfig `yaml:"preferences"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token validation settings. Tokens are issued by the
// identity provider and signed with the shared secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"afrilex"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	TouchInterval  time.Duration `yaml:"touch_interval"   env:"AUTH_TOUCH_INTERVAL"   env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	PublicPerMinute int           `yaml:"public_per_minute" env:"RATE_LIMIT_PUBLIC_PER_MINUTE" env-default:"120"`
	UploadPerMinute int           `yaml:"upload_per_minute" env:"RATE_LIMIT_UPLOAD_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// MediaConfig holds pronunciation upload settings.
type MediaConfig struct {
	MaxAudioBytes   int64         `yaml:"max_audio_bytes"  env:"MEDIA_MAX_AUDIO_BYTES"  env-default:"5242880"`
	PublicPrefix    string        `yaml:"public_prefix"    env:"MEDIA_PUBLIC_PREFIX"    env-default:"/media/audio/"`
	OrphanRetention time.Duration `yaml:"orphan_retention" env:"MEDIA_ORPHAN_RETENTION" env-default:"168h"`
}

// DraftsConfig holds editor/form session settings.
type DraftsConfig struct {
	TTL             time.Duration `yaml:"ttl"              env:"DRAFTS_TTL"              env-default:"2h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"DRAFTS_CLEANUP_INTERVAL" env-default:"5m"`
	MaxPerUser      int           `yaml:"max_per_user"     env:"DRAFTS_MAX_PER_USER"     env-default:"20"`
}

// BrowseConfig holds public browsing settings.
type BrowseConfig struct {
	PageSize        int `yaml:"page_size"         env:"BROWSE_PAGE_SIZE"         env-default:"50"`
	MaxPageSize     int `yaml:"max_page_size"     env:"BROWSE_MAX_PAGE_SIZE"     env-default:"200"`
	MaxSearchLength int `yaml:"max_search_length" env:"BROWSE_MAX_SEARCH_LENGTH" env-default:"100"`
}

// PreferencesConfig holds the cookies that remember a reader's language and mode.
type PreferencesConfig struct {
	LanguageCookie string        `yaml:"language_cookie" env:"PREFS_LANGUAGE_COOKIE" env-default:"afrilex_language"`
	ModeCookie     string        `yaml:"mode_cookie"     env:"PREFS_MODE_COOKIE"     env-default:"afrilex_mode"`
	MaxAge         time.Duration `yaml:"max_age"         env:"PREFS_MAX_AGE"         env-default:"8760h"`
	Secure         bool          `yaml:"secure"          env:"PREFS_SECURE"          env-default:"true"`
}
