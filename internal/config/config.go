package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MongoDB document store
	MongoDB MongoDBConfig `json:"mongodb"`

	// Access/refresh token issuance
	Auth AuthConfig `json:"auth"`

	// Object storage for avatars, thumbnails and video files
	Storage StorageConfig `json:"storage"`

	Media MediaConfig `json:"media"`

	// Redis backs the access-token denylist; empty Addr disables it
	Redis RedisConfig `json:"redis"`

	RateLimit RateLimitConfig `json:"rate_limit"`

	Cache CacheConfig `json:"cache"`

	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	GRPCPort     string `json:"grpc_port"` // health service
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
	CORSOrigin   string `json:"cors_origin"`
}

type MongoDBConfig struct {
	URI      string `json:"-"` // overrides the fields below when set
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type AuthConfig struct {
	AccessTokenSecret  string        `json:"-"`
	AccessTokenExpiry  time.Duration `json:"access_token_expiry"`
	RefreshTokenSecret string        `json:"-"`
	RefreshTokenExpiry time.Duration `json:"refresh_token_expiry"`
	SecureCookies      bool          `json:"secure_cookies"`
}

// StorageConfig selects where uploaded media lives: "gridfs" or "s3".
type StorageConfig struct {
	Backend string   `json:"backend"`
	S3      S3Config `json:"s3"`
}

type S3Config struct {
	Bucket        string `json:"bucket"`
	Region        string `json:"region"`
	Endpoint      string `json:"endpoint"`
	PublicBaseURL string `json:"public_base_url"`
}

type MediaConfig struct {
	BaseURL        string        `json:"base_url"` // prefix for GridFS-served files
	FFProbePath    string        `json:"ffprobe_path"`
	ProbeTimeout   time.Duration `json:"probe_timeout"`
	TempDir        string        `json:"temp_dir"`
	MaxUploadBytes int64         `json:"max_upload_bytes"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type RateLimitConfig struct {
	Requests int           `json:"requests"`
	Window   time.Duration `json:"window"`
	Burst    int           `json:"burst"`
	Clients  int           `json:"clients"` // tracked client table size
	TTL      time.Duration `json:"ttl"`
}

type CacheConfig struct {
	StatsTTL time.Duration `json:"stats_ttl"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}

	port := getEnv("PORT", "8000")

	return &Config{
		Server: ServerConfig{
			Port:         port,
			Host:         getEnv("HOST", "0.0.0.0"),
			GRPCPort:     getEnv("GRPC_PORT", "9000"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 120),
			Environment:  getEnv("APP_ENV", "development"),
			CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URI", ""),
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "vidtube"),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", "change-me-access"),
			AccessTokenExpiry:  getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
			RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", "change-me-refresh"),
			RefreshTokenExpiry: getEnvAsDuration("REFRESH_TOKEN_EXPIRY", 240*time.Hour),
			SecureCookies:      getEnvAsBool("SECURE_COOKIES", true),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", "gridfs")),
			S3: S3Config{
				Bucket:        getEnv("S3_BUCKET", ""),
				Region:        getEnv("S3_REGION", "us-east-1"),
				Endpoint:      getEnv("S3_ENDPOINT", ""),
				PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			},
		},
		Media: MediaConfig{
			BaseURL:        getEnv("MEDIA_BASE_URL", fmt.Sprintf("http://localhost:%s", port)),
			FFProbePath:    getEnv("FFPROBE_PATH", "ffprobe"),
			ProbeTimeout:   getEnvAsDuration("FFPROBE_TIMEOUT", 30*time.Second),
			TempDir:        getEnv("UPLOAD_TEMP_DIR", os.TempDir()),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 512)) << 20,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
			Burst:    getEnvAsInt("RATE_LIMIT_BURST", 20),
			Clients:  getEnvAsInt("RATE_LIMIT_CLIENTS", 10000),
			TTL:      getEnvAsDuration("RATE_LIMIT_TTL", 5*time.Minute),
		},
		Cache: CacheConfig{
			StatsTTL: getEnvAsDuration("STATS_CACHE_TTL", 30*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.URI != "" {
		return cfg.MongoDB.URI
	}
	host := cfg.MongoDB.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.MongoDB.Port
	if port == "" {
		port = "27017"
	}

	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			host,
			port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", host, port, cfg.MongoDB.Database)
}

func (cfg *Config) IsProduction() bool {
	return cfg.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
