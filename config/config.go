package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig `yaml:"app"`

	// Enrollment limits
	Enrollment EnrollmentConfig `yaml:"enrollment"`

	// Tuition and salary amounts
	Payment PaymentConfig `yaml:"payment"`

	// Failure log file
	ErrorLog ErrorLogConfig `yaml:"error_log"`

	// Observability
	Observability ObservabilityConfig `yaml:"observability"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `yaml:"name"`
	Environment Environment `yaml:"environment"`
}

// EnrollmentConfig holds roster limits.
type EnrollmentConfig struct {
	// Seats per course
	Capacity int `yaml:"capacity"`
}

// PaymentConfig holds every amount used by payment calculation.
type PaymentConfig struct {
	BaseTuition         float64 `yaml:"base_tuition"`
	UndergraduateFee    float64 `yaml:"undergraduate_fee"`
	GraduateResearchFee float64 `yaml:"graduate_research_fee"`
	ProfessorBaseSalary float64 `yaml:"professor_base_salary"`
	PerYearOfService    float64 `yaml:"per_year_of_service"`
	PerPublication      float64 `yaml:"per_publication"`
	PerGrant            float64 `yaml:"per_grant"`
	TenureBonus         float64 `yaml:"tenure_bonus"`
}

// ErrorLogConfig holds the append-only failure log settings.
type ErrorLogConfig struct {
	// Path relative to the working directory unless absolute
	Path string `yaml:"path"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // json, console
}

// Default returns the configuration with every default applied.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "university-registry",
			Environment: EnvDevelopment,
		},
		Enrollment: EnrollmentConfig{
			Capacity: 30,
		},
		Payment: PaymentConfig{
			BaseTuition:         5000.0,
			UndergraduateFee:    1000.0,
			GraduateResearchFee: 2000.0,
			ProfessorBaseSalary: 50000.0,
			PerYearOfService:    1000.0,
			PerPublication:      500.0,
			PerGrant:            1000.0,
			TenureBonus:         20000.0,
		},
		ErrorLog: ErrorLogConfig{
			Path: "university_errors.log",
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Load loads configuration from environment variables over the defaults.
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes a YAML file over the defaults, then applies environment
// overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.App.Name = getEnv("APP_NAME", c.App.Name)
	c.App.Environment = Environment(getEnv("APP_ENV", string(c.App.Environment)))

	c.Enrollment.Capacity = getEnvInt("ENROLLMENT_CAPACITY", c.Enrollment.Capacity)

	p := &c.Payment
	p.BaseTuition = getEnvFloat("PAYMENT_BASE_TUITION", p.BaseTuition)
	p.UndergraduateFee = getEnvFloat("PAYMENT_UNDERGRADUATE_FEE", p.UndergraduateFee)
	p.GraduateResearchFee = getEnvFloat("PAYMENT_GRADUATE_RESEARCH_FEE", p.GraduateResearchFee)
	p.ProfessorBaseSalary = getEnvFloat("PAYMENT_PROFESSOR_BASE_SALARY", p.ProfessorBaseSalary)
	p.PerYearOfService = getEnvFloat("PAYMENT_PER_YEAR_OF_SERVICE", p.PerYearOfService)
	p.PerPublication = getEnvFloat("PAYMENT_PER_PUBLICATION", p.PerPublication)
	p.PerGrant = getEnvFloat("PAYMENT_PER_GRANT", p.PerGrant)
	p.TenureBonus = getEnvFloat("PAYMENT_TENURE_BONUS", p.TenureBonus)

	c.ErrorLog.Path = getEnv("ERROR_LOG_PATH", c.ErrorLog.Path)

	c.Observability.LogLevel = getEnv("LOG_LEVEL", c.Observability.LogLevel)
	c.Observability.LogFormat = getEnv("LOG_FORMAT", c.Observability.LogFormat)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Enrollment.Capacity <= 0 {
		errs = append(errs, "ENROLLMENT_CAPACITY must be positive")
	}

	amounts := []struct {
		key   string
		value float64
	}{
		{"PAYMENT_BASE_TUITION", c.Payment.BaseTuition},
		{"PAYMENT_UNDERGRADUATE_FEE", c.Payment.UndergraduateFee},
		{"PAYMENT_GRADUATE_RESEARCH_FEE", c.Payment.GraduateResearchFee},
		{"PAYMENT_PROFESSOR_BASE_SALARY", c.Payment.ProfessorBaseSalary},
		{"PAYMENT_PER_YEAR_OF_SERVICE", c.Payment.PerYearOfService},
		{"PAYMENT_PER_PUBLICATION", c.Payment.PerPublication},
		{"PAYMENT_PER_GRANT", c.Payment.PerGrant},
		{"PAYMENT_TENURE_BONUS", c.Payment.TenureBonus},
	}
	for _, a := range amounts {
		if a.value < 0 {
			errs = append(errs, a.key+" cannot be negative")
		}
	}

	if strings.TrimSpace(c.ErrorLog.Path) == "" {
		errs = append(errs, "ERROR_LOG_PATH is required")
	}

	switch strings.ToLower(c.Observability.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, "LOG_FORMAT must be json or console")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

