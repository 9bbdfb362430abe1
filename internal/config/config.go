package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Economy  EconomyConfig
	Security SecurityConfig
	Logging  LoggingConfig

	// EconomyFile optionally overlays Economy from a YAML document
	EconomyFile string
}

type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	Host            string        `validate:"required"`
	Environment     string        `validate:"oneof=development production testing"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver          string `validate:"oneof=sqlite postgres mysql"`
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
	StoreTimeout    time.Duration `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=silent error warn info"`
	AutoMigrate     bool
}

type SecurityConfig struct {
	RateLimitPerSecond int `validate:"gte=1"`
	RateLimitBurst     int `validate:"gte=1"`
}

type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "banking_user"),
			Password:        getEnv("DB_PASSWORD", "banking_password"),
			Name:            getEnv("DB_NAME", "banking_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "banking.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			StoreTimeout:    getDurationEnv("DB_STORE_TIMEOUT", 5*time.Second),
			LogLevel:        strings.ToLower(getEnv("DB_LOG_LEVEL", "error")),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Economy: EconomyConfig{
			StartingBalance: getDecimalEnv("ECONOMY_STARTING_BALANCE", decimal.NewFromInt(100)),
			CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "$"),
			CurrencySuffix:  os.Getenv("CURRENCY_SUFFIX"),
			Interest: InterestConfig{
				Enabled:        getBoolEnv("INTEREST_ENABLED", true),
				DailyRate:      getDecimalEnv("INTEREST_DAILY_RATE", decimal.RequireFromString("0.01")),
				MinimumBalance: getDecimalEnv("INTEREST_MINIMUM_BALANCE", decimal.NewFromInt(100)),
				MaximumPayout:  getDecimalEnv("INTEREST_MAXIMUM_PAYOUT", decimal.NewFromInt(1000)),
				PayoutInterval: getDurationEnv("INTEREST_PAYOUT_INTERVAL", 24*time.Hour),
			},
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		EconomyFile: os.Getenv("ECONOMY_CONFIG_FILE"),
	}
}

// DSN returns the driver-specific connection string.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
			c.User, c.Password, c.Host, c.Port, c.Name)
	default:
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", c.SQLitePath)
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
