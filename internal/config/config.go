package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/logger"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Address         string `yaml:"address"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	BodyLimitMB     int    `yaml:"body_limit_mb"`
}

type DatabaseConfig struct {
	URL            string `yaml:"url"`
	MaxConns       int32  `yaml:"max_conns"`
	ConnectTimeout string `yaml:"connect_timeout"`
	RunMigrations  bool   `yaml:"run_migrations"`
	AllowInMemory  bool   `yaml:"allow_in_memory"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
}

// AIConfig selects and tunes the text-generation backend.
type AIConfig struct {
	Provider    string  `yaml:"provider"` // groq (any OpenAI-compatible endpoint), gemini or offline
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
	MaxAttempts int     `yaml:"max_attempts"`
	QPM         int     `yaml:"qpm"`
	CacheTTL    string  `yaml:"cache_ttl"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	Bucket          string `yaml:"bucket"`
	Location        string `yaml:"location"`
	URLExpiry       string `yaml:"url_expiry"`
}

type RendererConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ChromePath  string  `yaml:"chrome_path"`
	Timeout     string  `yaml:"timeout"`
	PaperWidth  float64 `yaml:"paper_width"`
	PaperHeight float64 `yaml:"paper_height"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	AI       AIConfig       `yaml:"ai"`
	Redis    RedisConfig    `yaml:"redis"`
	MinIO    MinIOConfig    `yaml:"minio"`
	Renderer RendererConfig `yaml:"renderer"`
	Logger   logger.Config  `yaml:"logger"`
}

// Load reads the YAML file at path (optional when empty or missing), applies
// environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// env-only configuration
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.AI.Provider, "AI_PROVIDER")
	setString(&cfg.AI.BaseURL, "AI_BASE_URL")
	setString(&cfg.AI.Model, "AI_MODEL")
	setString(&cfg.Redis.Address, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.MinIO.Endpoint, "MINIO_ENDPOINT")
	setString(&cfg.MinIO.AccessKeyID, "MINIO_ACCESS_KEY")
	setString(&cfg.MinIO.SecretAccessKey, "MINIO_SECRET_KEY")
	setString(&cfg.MinIO.Bucket, "MINIO_BUCKET")
	setString(&cfg.Renderer.ChromePath, "CHROME_PATH")
	setString(&cfg.Logger.Level, "LOG_LEVEL")

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}

	// provider specific keys win over the generic one
	switch strings.ToLower(cfg.AI.Provider) {
	case "gemini":
		setString(&cfg.AI.APIKey, "GEMINI_API_KEY")
	default:
		setString(&cfg.AI.APIKey, "GROQ_API_KEY")
	}
	setString(&cfg.AI.APIKey, "AI_API_KEY")

	if v, err := strconv.ParseBool(os.Getenv("RENDERER_ENABLED")); err == nil {
		cfg.Renderer.Enabled = v
	}
	if v, err := strconv.ParseBool(os.Getenv("ALLOW_IN_MEMORY")); err == nil {
		cfg.Database.AllowInMemory = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":3000"
	}
	if cfg.Server.BodyLimitMB <= 0 {
		cfg.Server.BodyLimitMB = 4
	}
	if cfg.Database.MaxConns <= 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "groq"
	}
	if cfg.AI.BaseURL == "" && cfg.AI.Provider == "groq" {
		cfg.AI.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.AI.Model == "" {
		if cfg.AI.Provider == "gemini" {
			cfg.AI.Model = "gemini-2.5-flash"
		} else {
			cfg.AI.Model = "mixtral-8x7b-32768"
		}
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxAttempts <= 0 {
		cfg.AI.MaxAttempts = 1
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "resume-exports"
	}
	if cfg.Renderer.PaperWidth == 0 || cfg.Renderer.PaperHeight == 0 {
		// A4 in inches
		cfg.Renderer.PaperWidth, cfg.Renderer.PaperHeight = 8.27, 11.69
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = "json"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// GetDuration parses s, returning def when s is empty or malformed.
func GetDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
