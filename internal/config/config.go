package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// PrincipalSourceHeader trusts a principal UUID injected by the identity proxy
	PrincipalSourceHeader = "header"
	// PrincipalSourceJWT verifies an HS256 bearer token and uses its subject
	PrincipalSourceJWT = "jwt"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Host        string `mapstructure:"SERVER_HOST"`
	Port        string `mapstructure:"SERVER_PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DBMaxOpenConns   int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns   int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// RequestTimeout bounds every request, persistence calls included
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Registration webhook shared secret
	WebhookAPIKey string `mapstructure:"KRATOS_API_KEY"`

	// Principal resolution
	PrincipalSource string `mapstructure:"PRINCIPAL_SOURCE"`
	PrincipalHeader string `mapstructure:"PRINCIPAL_HEADER"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	JWTIssuer       string `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SERVER_HOST", "127.0.0.1")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "control_plane")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	v.SetDefault("REQUEST_TIMEOUT", 15*time.Second)

	// Registered so AutomaticEnv picks them up on Unmarshal
	v.SetDefault("KRATOS_API_KEY", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")

	// Principal defaults
	v.SetDefault("PRINCIPAL_SOURCE", PrincipalSourceHeader)
	v.SetDefault("PRINCIPAL_HEADER", "X-User")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.WebhookAPIKey == "" {
		return fmt.Errorf("KRATOS_API_KEY is required")
	}

	switch config.PrincipalSource {
	case PrincipalSourceHeader:
		if config.PrincipalHeader == "" {
			return fmt.Errorf("PRINCIPAL_HEADER must not be empty in header mode")
		}
	case PrincipalSourceJWT:
		if config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set when PRINCIPAL_SOURCE=jwt")
		}
	default:
		return fmt.Errorf("unsupported PRINCIPAL_SOURCE %q", config.PrincipalSource)
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	return nil
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
