package config

import (
	"fmt"
	"os"
	"strconv"

	"go-contact-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Mail addressing
	MailboxEmail string // delivery target for owner notifications (required)
	FromEmail    string // defaults to MailboxEmail
	ReplyToEmail string // defaults to MailboxEmail
	SiteDomain   string // empty = derive from the request's Host header
	SiteName     string // empty = capitalized first label of the site domain
	// CAPTCHA (optional; verification is skipped entirely when unconfigured)
	CaptchaSecret    string
	CaptchaVerifyURL string
	// CSRF
	CheckCsrf           bool
	CsrfTokenTTLMinutes int
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Redis Configuration (CSRF token store; in-memory fallback when absent)
	RedisURL      string
	RedisPassword string
	FrontendURL   string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		MailboxEmail:        getEnv("MAILBOX_EMAIL", ""),
		FromEmail:           getEnv("FROM_EMAIL", ""),
		ReplyToEmail:        getEnv("REPLY_TO_EMAIL", ""),
		SiteDomain:          getEnv("SITE_DOMAIN", ""),
		SiteName:            getEnv("SITE_NAME", ""),
		CaptchaSecret:       getEnv("CAPTCHA_SECRET", ""),
		CaptchaVerifyURL:    getEnv("CAPTCHA_VERIFY_URL", ""),
		CheckCsrf:           getEnvBool("CHECK_CSRF", false),
		CsrfTokenTTLMinutes: getEnvInt("CSRF_TOKEN_TTL_MINUTES", 60),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes the mail addressing and verifies the invariants that
// make the pipeline safe to run. A returned error is an *apperror.AppError
// with a 500 code: bad operator configuration is a deployment bug, never a
// client error.
func (c *Config) Validate() error {
	validate := validator.New()

	if c.FromEmail == "" {
		c.FromEmail = c.MailboxEmail
	}
	if c.ReplyToEmail == "" {
		c.ReplyToEmail = c.MailboxEmail
	}

	for _, v := range []struct {
		name  string
		value string
	}{
		{"mailboxEmail", c.MailboxEmail},
		{"fromEmail", c.FromEmail},
		{"replyToEmail", c.ReplyToEmail},
	} {
		if v.value == "" || validate.Var(v.value, "email") != nil {
			return apperror.ServerConfig(fmt.Sprintf("Server error: %s is not set or is invalid.", v.name))
		}
	}

	// A malformed verify URL disables CAPTCHA rather than failing: the check
	// is opt-in and the pipeline treats an unconfigured verifier as pass.
	if c.CaptchaVerifyURL != "" && validate.Var(c.CaptchaVerifyURL, "url") != nil {
		c.CaptchaVerifyURL = ""
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
