package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kendall-kelly/detailing-seed/services"
	"golang.org/x/crypto/bcrypt"
)

// Supported database types
const (
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
	DatabaseSQLite   = "sqlite"
)

// ErrProductionSeed is returned when the destructive seed would run against production
var ErrProductionSeed = errors.New("refusing to seed a production database (set SEED_ALLOW_PRODUCTION=true to override)")

// Config holds all seed configuration
type Config struct {
	DatabaseURL         string
	DatabaseType        string
	GoEnv               string
	LogLevel            string
	BcryptCost          int
	AutoMigrate         bool
	AllowProductionSeed bool
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	bcryptCost, err := getEnvInt("BCRYPT_COST", services.DefaultBcryptCost)
	if err != nil {
		return nil, err
	}
	autoMigrate, err := getEnvBool("DB_AUTO_MIGRATE", true)
	if err != nil {
		return nil, err
	}
	allowProduction, err := getEnvBool("SEED_ALLOW_PRODUCTION", false)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DatabaseType:        strings.ToLower(getEnv("DATABASE_TYPE", DatabasePostgres)),
		GoEnv:               getEnv("GO_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		BcryptCost:          bcryptCost,
		AutoMigrate:         autoMigrate,
		AllowProductionSeed: allowProduction,
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.DatabaseType {
	case DatabasePostgres, DatabaseMySQL, DatabaseSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_TYPE %q", c.DatabaseType)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}

// CheckSeedAllowed guards the destructive reset against production databases
func (c *Config) CheckSeedAllowed() error {
	if c.IsProduction() && !c.AllowProductionSeed {
		return ErrProductionSeed
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
