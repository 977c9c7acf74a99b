package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Leads     LeadsConfig     `yaml:"leads"`
	Reports   ReportsConfig   `yaml:"reports"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// AppConfig holds deployment-wide settings.
type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// IsProduction reports whether the app runs in the production environment.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
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

// DatabaseConfig holds PostgreSQL connection settings. Bool fields default to
// false: cleanenv fills zero values from env-default after reading YAML, so a
// true default could never be switched off from the file.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"crm-backend"`
	ConnectAttempts int           `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff"    env:"DATABASE_CONNECT_BACKOFF"    env-default:"2s"`
}

// Authentication modes.
const (
	AuthModeJWT    = "jwt"
	AuthModeStatic = "static"
)

// AuthConfig selects the request authentication strategy. Static mode injects
// a fixed identity and exists for local development only.
type AuthConfig struct {
	Mode           string        `yaml:"mode"             env:"AUTH_MODE"             env-default:"jwt"`
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"buildline-crm"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	StaticUserID   string        `yaml:"static_user_id"   env:"AUTH_STATIC_USER_ID"   env-default:"00000000-0000-0000-0000-000000000001"`
	StaticRole     string        `yaml:"static_role"      env:"AUTH_STATIC_ROLE"      env-default:"admin"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// LeadsConfig holds lead workflow settings.
type LeadsConfig struct {
	TransitionPolicy string `yaml:"transition_policy" env:"LEADS_TRANSITION_POLICY" env-default:"permissive"`
	ConversionMode   string `yaml:"conversion_mode"   env:"LEADS_CONVERSION_MODE"   env-default:"create_customer"`
}

// ReportsConfig holds report assembly and export settings.
type ReportsConfig struct {
	CompanyName       string        `yaml:"company_name"        env:"REPORTS_COMPANY_NAME"        env-default:"BuildLine Construction"`
	SampleOrdersTable bool          `yaml:"sample_orders_table" env:"REPORTS_SAMPLE_ORDERS_TABLE" env-default:"false"`
	CacheTTL          time.Duration `yaml:"cache_ttl"           env:"REPORTS_CACHE_TTL"           env-default:"1m"`
	MaxRows           int           `yaml:"max_rows"            env:"REPORTS_MAX_ROWS"            env-default:"5000"`
}

// RedisConfig holds cache connection settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// Storage drivers.
const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// StorageConfig holds document blob storage settings.
type StorageConfig struct {
	Driver        string `yaml:"driver"          env:"STORAGE_DRIVER"          env-default:"local"`
	LocalDir      string `yaml:"local_dir"       env:"STORAGE_LOCAL_DIR"       env-default:"./uploads"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_S3_BUCKET"`
	Region        string `yaml:"region"          env:"STORAGE_S3_REGION"       env-default:"us-east-1"`
	Prefix        string `yaml:"prefix"          env:"STORAGE_S3_PREFIX"       env-default:"documents/"`
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_S3_ENDPOINT"`
	MaxUploadSize int64  `yaml:"max_upload_size" env:"STORAGE_MAX_UPLOAD_SIZE" env-default:"10485760"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP token bucket settings for login endpoints.
// Limiting is on unless Disabled is set.
type RateLimitConfig struct {
	Disabled        bool          `yaml:"disabled"         env:"RATE_LIMIT_DISABLED"         env-default:"false"`
	Login           int           `yaml:"login"            env:"RATE_LIMIT_LOGIN"            env-default:"10"`
	Register        int           `yaml:"register"         env:"RATE_LIMIT_REGISTER"         env-default:"5"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
