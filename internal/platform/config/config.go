package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// Storage
	StoreDriver    string `mapstructure:"STORE_DRIVER"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	// Reconciliation
	ReconcileThreshold  float64 `mapstructure:"RECONCILE_THRESHOLD"`
	ReconcileFetchLimit int     `mapstructure:"RECONCILE_FETCH_LIMIT"`
	ReconcileStrategy   string  `mapstructure:"RECONCILE_STRATEGY"`

	// HTTP
	RateLimit          string `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "cashpilot")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("SQLITE_PATH", "cashpilot.db")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RECONCILE_THRESHOLD", 0.8)
	viper.SetDefault("RECONCILE_FETCH_LIMIT", 100)
	viper.SetDefault("RECONCILE_STRATEGY", "greedy")
	viper.SetDefault("RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Defaults can be overridden by the .env file, which can then be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.StoreDriver = strings.ToLower(viper.GetString("STORE_DRIVER"))
	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		log.Printf("Warning: Invalid value for STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}
	if cfg.StoreDriver == StoreDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.ReconcileThreshold = viper.GetFloat64("RECONCILE_THRESHOLD")
	if cfg.ReconcileThreshold < 0 || cfg.ReconcileThreshold > 1 {
		log.Printf("Warning: Invalid value for RECONCILE_THRESHOLD (%v). Defaulting to 0.8.\n", cfg.ReconcileThreshold)
		cfg.ReconcileThreshold = 0.8
	}
	cfg.ReconcileFetchLimit = viper.GetInt("RECONCILE_FETCH_LIMIT")
	if cfg.ReconcileFetchLimit <= 0 {
		log.Printf("Warning: Invalid value for RECONCILE_FETCH_LIMIT (%d). Defaulting to 100.\n", cfg.ReconcileFetchLimit)
		cfg.ReconcileFetchLimit = 100
	}
	cfg.ReconcileStrategy = strings.ToLower(viper.GetString("RECONCILE_STRATEGY"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
