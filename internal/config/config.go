package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Identity IdentityConfig
	Cache    CacheConfig
}

type AppConfig struct {
	AppName          string
	Environment      string
	HTTPPort         string
	LogLevel         string
	StorageDriver    string
	CORSAllowOrigins string
	SeedDemoJobs     bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
	Migrate        bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret string
	Issuer       string
}

type IdentityConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type CacheConfig struct {
	SearchTTL  time.Duration
	ProfileTTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, seeds variables that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from an arbitrary lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	integer := func(key string, def int) int {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	boolean := func(key string, def bool) bool {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:          req("APP_NAME"),
		Environment:      req("APP_ENV"),
		HTTPPort:         req("HTTP_PORT"),
		LogLevel:         opt("LOG_LEVEL", "info"),
		StorageDriver:    strings.ToLower(opt("STORAGE_DRIVER", StorageDriverPostgres)),
		CORSAllowOrigins: opt("CORS_ALLOW_ORIGINS", "*"),
		SeedDemoJobs:     boolean("SEED_DEMO_JOBS", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", "localhost"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     strings.TrimSpace(getenv("DB_PASSWORD")),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: dur("DB_CONNECT_TIMEOUT", 5*time.Second),
		QueryTimeout:   dur("DB_QUERY_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(integer("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(integer("DB_POOL_MIN_CONNS", 0)),
		Migrate:        boolean("DB_MIGRATE", true),
	}

	cfg.Redis = RedisConfig{
		Enabled:  boolean("REDIS_ENABLED", true),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(getenv("REDIS_PASSWORD")),
		DB:       integer("REDIS_DB", 0),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_ACCESS_SECRET"),
		Issuer:       opt("JWT_ISSUER", ""),
	}

	cfg.Identity = IdentityConfig{
		BaseURL: opt("IDENTITY_BASE_URL", ""),
		APIKey:  strings.TrimSpace(getenv("IDENTITY_API_KEY")),
		Timeout: dur("IDENTITY_TIMEOUT", 3*time.Second),
	}

	cfg.Cache = CacheConfig{
		SearchTTL:  dur("SEARCH_CACHE_TTL", 60*time.Second),
		ProfileTTL: dur("PROFILE_CACHE_TTL", 10*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	switch cfg.App.StorageDriver {
	case StorageDriverPostgres:
		if cfg.Database.DBName == "" || cfg.Database.DBUser == "" {
			return Config{}, fmt.Errorf("%w: DB_NAME, DB_USER", errMissingRequiredEnv)
		}
	case StorageDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.App.StorageDriver)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}
