package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Work     WorkConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// WorkConfig holds the working-time rules threaded into services.
// Kept in config rather than a settings table so reporting never reads
// ambient mutable state.
type WorkConfig struct {
	WeeklyCapMinutes    int
	DefaultLunchMinutes int
	AnnualLeaveDays     float64
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain env vars still apply.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worktime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	weeklyCap, err := strconv.Atoi(getEnv("WORK_WEEKLY_CAP_MINUTES", "3120"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_WEEKLY_CAP_MINUTES: %w", err)
	}
	defaultLunch, err := strconv.Atoi(getEnv("WORK_DEFAULT_LUNCH_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DEFAULT_LUNCH_MINUTES: %w", err)
	}
	annualDays, err := strconv.ParseFloat(getEnv("WORK_ANNUAL_LEAVE_DAYS", "15.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_ANNUAL_LEAVE_DAYS: %w", err)
	}

	config.Work = WorkConfig{
		WeeklyCapMinutes:    weeklyCap,
		DefaultLunchMinutes: defaultLunch,
		AnnualLeaveDays:     annualDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Work.WeeklyCapMinutes <= 0 {
		return fmt.Errorf("WORK_WEEKLY_CAP_MINUTES must be positive")
	}
	if c.Work.DefaultLunchMinutes < 0 {
		return fmt.Errorf("WORK_DEFAULT_LUNCH_MINUTES must not be negative")
	}
	if c.Work.AnnualLeaveDays <= 0 {
		return fmt.Errorf("WORK_ANNUAL_LEAVE_DAYS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
