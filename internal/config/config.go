package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Store    StoreConfig
	Storage  StorageConfig
	S3       S3Config
	Verifier VerifierConfig
	CORS     CORSConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VerifierConfig holds settings for the marks memo verification gateway.
// An empty APIKey selects the simulated verifier.
type VerifierConfig struct {
	Provider       string        `mapstructure:"provider"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	Endpoint       string        `mapstructure:"endpoint"`
	TimeoutSecs    int           `mapstructure:"timeout_secs"`
	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StoreConfig selects where application state lives.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory | postgres
	Seed   bool   `mapstructure:"seed"`
}

// StorageConfig selects where uploaded documents are kept.
type StorageConfig struct {
	Driver        string `mapstructure:"driver"` // memory | s3
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables with the SCHOLARLINK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SCHOLARLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// Store defaults
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.seed", true)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "scholarlink")
	v.SetDefault("db.password", "scholarlink_secret")
	v.SetDefault("db.name", "scholarlink_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Document storage defaults
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.max_file_size_mb", 10)
	v.SetDefault("storage.presign_expiry", 3600)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "scholarlink-documents")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Verifier defaults
	v.SetDefault("verifier.provider", "gemini")
	v.SetDefault("verifier.api_key", "")
	v.SetDefault("verifier.model", "gemini-2.5-flash")
	v.SetDefault("verifier.endpoint", "")
	v.SetDefault("verifier.timeout_secs", 60)
	v.SetDefault("verifier.simulated_delay", "2s")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "SCHOLARLINK_SERVER_PORT",
		"server.read_timeout":      "SCHOLARLINK_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "SCHOLARLINK_SERVER_WRITE_TIMEOUT",
		"server.environment":       "SCHOLARLINK_SERVER_ENVIRONMENT",
		"store.driver":             "SCHOLARLINK_STORE_DRIVER",
		"store.seed":               "SCHOLARLINK_STORE_SEED",
		"db.host":                  "SCHOLARLINK_DB_HOST",
		"db.port":                  "SCHOLARLINK_DB_PORT",
		"db.user":                  "SCHOLARLINK_DB_USER",
		"db.password":              "SCHOLARLINK_DB_PASSWORD",
		"db.name":                  "SCHOLARLINK_DB_NAME",
		"db.sslmode":               "SCHOLARLINK_DB_SSLMODE",
		"db.max_open":              "SCHOLARLINK_DB_MAX_OPEN",
		"db.max_idle":              "SCHOLARLINK_DB_MAX_IDLE",
		"storage.driver":           "SCHOLARLINK_STORAGE_DRIVER",
		"storage.max_file_size_mb": "SCHOLARLINK_STORAGE_MAX_FILE_SIZE_MB",
		"storage.presign_expiry":   "SCHOLARLINK_STORAGE_PRESIGN_EXPIRY",
		"s3.region":                "SCHOLARLINK_S3_REGION",
		"s3.bucket":                "SCHOLARLINK_S3_BUCKET",
		"s3.endpoint":              "SCHOLARLINK_S3_ENDPOINT",
		"s3.access_key":            "SCHOLARLINK_S3_ACCESS_KEY",
		"s3.secret_key":            "SCHOLARLINK_S3_SECRET_KEY",
		"cors.allowed_origins":     "SCHOLARLINK_CORS_ALLOWED_ORIGINS",
		"verifier.provider":        "SCHOLARLINK_VERIFIER_PROVIDER",
		"verifier.api_key":         "SCHOLARLINK_VERIFIER_API_KEY",
		"verifier.model":           "SCHOLARLINK_VERIFIER_MODEL",
		"verifier.endpoint":        "SCHOLARLINK_VERIFIER_ENDPOINT",
		"verifier.timeout_secs":    "SCHOLARLINK_VERIFIER_TIMEOUT_SECS",
		"verifier.simulated_delay": "SCHOLARLINK_VERIFIER_SIMULATED_DELAY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if SCHOLARLINK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SCHOLARLINK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Store = StoreConfig{
		Driver: strings.ToLower(v.GetString("store.driver")),
		Seed:   v.GetBool("store.seed"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Storage = StorageConfig{
		Driver:        strings.ToLower(v.GetString("storage.driver")),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Verifier = VerifierConfig{
		Provider:       strings.ToLower(strings.TrimSpace(v.GetString("verifier.provider"))),
		APIKey:         strings.TrimSpace(v.GetString("verifier.api_key")),
		Model:          v.GetString("verifier.model"),
		Endpoint:       v.GetString("verifier.endpoint"),
		TimeoutSecs:    v.GetInt("verifier.timeout_secs"),
		SimulatedDelay: v.GetDuration("verifier.simulated_delay"),
	}

	switch cfg.Store.Driver {
	case "memory", "postgres":
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
	switch cfg.Storage.Driver {
	case "memory", "s3":
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Marks memos are verified inside the request, so the response deadline
	// has to cover reading the upload plus the slowest verification.
	if w := cfg.Server.WriteTimeout; w > 0 {
		if need := cfg.Server.ReadTimeout + cfg.Verifier.Budget(); w <= need {
			return nil, fmt.Errorf("server.write_timeout %s must exceed read_timeout plus verification time (%s)", w, need)
		}
	}

	return cfg, nil
}

// Budget is the longest a single verification may take: the simulated delay
// without a credential, the provider timeout with one.
func (c *VerifierConfig) Budget() time.Duration {
	if c.APIKey == "" {
		return c.SimulatedDelay
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}
