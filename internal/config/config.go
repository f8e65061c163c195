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
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	SMTP         SMTPConfig
	OAuth2Google OAuth2GoogleConfig
	Compliance   ComplianceConfig
	Payroll      PayrollConfig
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
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outbound email configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// Recipients for operational alerts (overtime, certification expiry)
	AlertRecipients []string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// ComplianceConfig holds credentials for the third-party compliance
// inventory API.
type ComplianceConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PayrollConfig holds the pay-period and overtime parameters.
//
// The anchor date is the Sunday the first pay period starts on; every
// period is PeriodDays long and walks forward from there. The daily
// overtime threshold is shared between report assembly and the
// overtime-alert job.
type PayrollConfig struct {
	AnchorDate             string
	PeriodDays             int
	DailyOvertimeThreshold float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "rangeops_backoffice"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:            getEnv("SMTP_HOST", ""),
		Port:            smtpPort,
		Username:        getEnv("SMTP_USERNAME", ""),
		Password:        getEnv("SMTP_PASSWORD", ""),
		From:            getEnv("SMTP_FROM", "no-reply@rangeops.local"),
		FromName:        getEnv("SMTP_FROM_NAME", "Range Back Office"),
		AlertRecipients: getEnvSlice("ALERT_RECIPIENTS"),
	}

	// OAuth2 Google configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Compliance API configuration
	complianceTimeout, err := time.ParseDuration(getEnv("COMPLIANCE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLIANCE_TIMEOUT: %w", err)
	}

	config.Compliance = ComplianceConfig{
		BaseURL: getEnv("COMPLIANCE_BASE_URL", ""),
		APIKey:  getEnv("COMPLIANCE_API_KEY", ""),
		Timeout: complianceTimeout,
	}

	// Payroll configuration
	periodDays, err := strconv.Atoi(getEnv("PAYROLL_PERIOD_DAYS", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PERIOD_DAYS: %w", err)
	}

	overtimeThreshold, err := strconv.ParseFloat(getEnv("PAYROLL_DAILY_OVERTIME_HOURS", "9"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DAILY_OVERTIME_HOURS: %w", err)
	}

	config.Payroll = PayrollConfig{
		AnchorDate:             getEnv("PAYROLL_ANCHOR_DATE", "2023-09-24"),
		PeriodDays:             periodDays,
		DailyOvertimeThreshold: overtimeThreshold,
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
	if c.Payroll.PeriodDays <= 0 {
		return fmt.Errorf("PAYROLL_PERIOD_DAYS must be positive")
	}
	if c.Payroll.DailyOvertimeThreshold <= 0 {
		return fmt.Errorf("PAYROLL_DAILY_OVERTIME_HOURS must be positive")
	}
	if _, err := time.Parse("2006-01-02", c.Payroll.AnchorDate); err != nil {
		return fmt.Errorf("invalid PAYROLL_ANCHOR_DATE: %w", err)
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
