package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Mapbox   MapboxConfig   `yaml:"mapbox"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	SSLMode      string `yaml:"ssl_mode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type ServerConfig struct {
	Port            string   `yaml:"port"`
	ReadTimeout     string   `yaml:"read_timeout"`
	WriteTimeout    string   `yaml:"write_timeout"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	RateLimit       int      `yaml:"rate_limit_per_minute"`
	// TrustedProxies are CIDRs or IPs allowed to set X-Forwarded-For.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MapboxConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type PricingConfig struct {
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	CacheTTL string `yaml:"cache_ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Host:         "db",
			Port:         "5432",
			User:         "postgres",
			Password:     "password",
			Name:         "hackhub",
			SSLMode:      "disable",
			MaxOpenConns: 20,
		},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			ShutdownTimeout: "10s",
			AllowedOrigins:  []string{"*"},
			RateLimit:       60,
		},
		Auth: AuthConfig{
			JWTSecret: "secret",
			TokenTTL:  "24h",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Mapbox: MapboxConfig{
			BaseURL: "https://api.mapbox.com",
			Timeout: "5s",
		},
		Pricing: PricingConfig{
			BaseURL:  "https://api.coingecko.com/api/v3",
			Timeout:  "5s",
			CacheTTL: "60s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig reads defaults, then the YAML file at path (if any), then
// environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Database.Host = getEnv("DATABASE_HOST", c.Database.Host)
	c.Database.Port = getEnv("DATABASE_PORT", c.Database.Port)
	c.Database.User = getEnv("DATABASE_USER", c.Database.User)
	c.Database.Password = getEnv("DATABASE_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DATABASE_NAME", c.Database.Name)
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	if v := os.Getenv("SERVER_TRUSTED_PROXIES"); v != "" {
		c.Server.TrustedProxies = strings.Split(v, ",")
	}
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Mapbox.Token = getEnv("MAPBOX_TOKEN", c.Mapbox.Token)
	c.Mapbox.BaseURL = getEnv("MAPBOX_BASE_URL", c.Mapbox.BaseURL)
	c.Pricing.BaseURL = getEnv("COINGECKO_BASE_URL", c.Pricing.BaseURL)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
}

func (c Config) validate() error {
	for name, v := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"auth.token_ttl":          c.Auth.TokenTTL,
		"mapbox.timeout":          c.Mapbox.Timeout,
		"pricing.timeout":         c.Pricing.Timeout,
		"pricing.cache_ttl":       c.Pricing.CacheTTL,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid duration for %s: %q", name, v)
		}
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	return nil
}

func (c Config) PostgresConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Duration parses a value already checked by validate; zero on error.
func Duration(v string) time.Duration {
	d, _ := time.ParseDuration(v)
	return d
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func InitDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresConnStr())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
