package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// TermsEnforcement modes for the diagnostic API terms-of-use step.
const (
	TermsFailOpen   = "fail-open"
	TermsFailClosed = "fail-closed"
)

type Config struct {
	Env                string `mapstructure:"ENV"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	DBMaxConns         int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns         int32  `mapstructure:"DB_MIN_CONNS"`
	PersonsAPIURL      string `mapstructure:"PERSONS_API_URL"`
	VaccineAPIURL      string `mapstructure:"VACCINE_API_URL"`
	DiagnosisAPIURL    string `mapstructure:"DIAGNOSIS_API_URL"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	SSMUsernameParam   string `mapstructure:"SSM_USERNAME_PARAM"`
	SSMPasswordParam   string `mapstructure:"SSM_PASSWORD_PARAM"`
	TermsEnforcement   string `mapstructure:"TERMS_ENFORCEMENT"`
	MaxSavedDiagnoses  int    `mapstructure:"MAX_SAVED_DIAGNOSES"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 4)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("PERSONS_API_URL", "https://api.byu.edu/byuapi/persons/v3")
	v.SetDefault("VACCINE_API_URL", "https://api.byu.edu/domains/servicenow/covidVaccine/v1/case_covid_19")
	v.SetDefault("DIAGNOSIS_API_URL", "http://api.endlessmedical.com/v1/dx")
	v.SetDefault("AWS_REGION", "us-west-2")
	v.SetDefault("SSM_USERNAME_PARAM", "/medadvisor/dev/DB_USERNAME")
	v.SetDefault("SSM_PASSWORD_PARAM", "/medadvisor/dev/DB_PASSWORD")
	v.SetDefault("TERMS_ENFORCEMENT", TermsFailOpen)
	v.SetDefault("MAX_SAVED_DIAGNOSES", 10)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("PERSONS_API_URL")
	v.BindEnv("VACCINE_API_URL")
	v.BindEnv("DIAGNOSIS_API_URL")
	v.BindEnv("AWS_REGION")
	v.BindEnv("SSM_USERNAME_PARAM")
	v.BindEnv("SSM_PASSWORD_PARAM")
	v.BindEnv("TERMS_ENFORCEMENT")
	v.BindEnv("MAX_SAVED_DIAGNOSES")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.TermsEnforcement != TermsFailOpen && c.TermsEnforcement != TermsFailClosed {
		return fmt.Errorf("TERMS_ENFORCEMENT must be %q or %q, got %q",
			TermsFailOpen, TermsFailClosed, c.TermsEnforcement)
	}
	if c.MaxSavedDiagnoses < 1 {
		return fmt.Errorf("MAX_SAVED_DIAGNOSES must be at least 1, got %d", c.MaxSavedDiagnoses)
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be at least 1, got %d", c.HTTPTimeoutSeconds)
	}
	if _, err := url.Parse(c.DatabaseURL); err != nil {
		return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
	}
	return nil
}

// DSN returns the database URL with the given credentials injected. When the
// URL already carries userinfo (local development) it is returned unchanged.
func (c *Config) DSN(username, password string) (string, error) {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.User != nil && u.User.Username() != "" {
		return c.DatabaseURL, nil
	}
	u.User = url.UserPassword(username, password)
	return u.String(), nil
}

// TermsFailClosedEnabled reports whether a failed terms-of-use acceptance
// should abort the diagnostic session instead of being logged and tolerated.
func (c *Config) TermsFailClosedEnabled() bool {
	return c.TermsEnforcement == TermsFailClosed
}
