package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultEnvironment      = "production"
	DefaultPrestaShopURL    = "https://www.toolstock.info/api"
	DefaultPaymentMethods   = "PayPal|Redsys|PayPal with fee|Pagos por transferencia bancaria"
	DefaultEmployeeID       = 5
	DefaultSMTPServer       = "smtp.office365.com"
	DefaultSMTPPort         = 587
	DefaultTemplateAPIURL   = "https://postlyapi.vercel.app/api/confirmationShip"
	DefaultSlackChannel     = "#confirmation-shipment"
	DefaultSlackUsername    = "ConfirmationShipment-Bot"
	DefaultHTTPTimeout      = 30 * time.Second
	DefaultLogLevel         = "INFO"
	DefaultLogFile          = "logs/confirmation_shipment.log"
	DefaultSchedule         = "0 0 * * * *"
	DefaultHTTPPort         = "8080"
	MailTransportSMTP       = "smtp"
	MailTransportSendGrid   = "sendgrid"
	paymentMethodsSeparator = "|"
	listSeparator           = ","
)

type Config struct {
	Environment string

	PrestaShopURL            string
	PrestaShopUsername       string
	PrestaShopPassword       string
	PrestaShopPaymentMethods []string
	PrestaShopEmployeeID     int
	PrestaShopRateLimit      float64

	OrdersSMTPServer     string
	OrdersSMTPPort       int
	OrdersSenderEmail    string
	OrdersSenderPassword string
	MailTransport        string
	SendGridAPIKey       string

	SMTPServer                string
	SMTPPort                  int
	SenderEmail               string
	SenderPassword            string
	NotificationEmails        []string
	EmailNotificationsEnabled bool

	TemplateAPIURL string
	BccEmail       string
	DevTestEmail   string

	SlackWebhookURL           string
	SlackChannel              string
	SlackUsername             string
	SlackNotificationsEnabled bool

	HTTPTimeout time.Duration
	LogLevel    string
	LogFile     string
	Schedule    string
	HTTPPort    string
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom reads the configuration through getenv. Malformed numeric,
// boolean or duration values are reported together.
func LoadConfigFrom(getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}

	cfg := Config{
		Environment: env.str("ENVIRONMENT", DefaultEnvironment),

		PrestaShopURL:            env.str("PRESTASHOP_API_URL", DefaultPrestaShopURL),
		PrestaShopUsername:       env.str("PRESTASHOP_API_USERNAME", ""),
		PrestaShopPassword:       env.str("PRESTASHOP_API_PASSWORD", ""),
		PrestaShopPaymentMethods: splitList(env.str("PRESTASHOP_PAYMENT_METHODS", DefaultPaymentMethods), paymentMethodsSeparator),
		PrestaShopEmployeeID:     env.integer("PRESTASHOP_EMPLOYEE_ID", DefaultEmployeeID),
		PrestaShopRateLimit:      env.float("PRESTASHOP_RATE_LIMIT", 0),

		OrdersSMTPServer:     env.str("ORDERS_SMTP_SERVER", DefaultSMTPServer),
		OrdersSMTPPort:       env.integer("ORDERS_SMTP_PORT", DefaultSMTPPort),
		OrdersSenderEmail:    env.str("ORDERS_SENDER_EMAIL", ""),
		OrdersSenderPassword: env.str("ORDERS_SENDER_PASSWORD", ""),
		MailTransport:        strings.ToLower(env.str("MAIL_TRANSPORT", MailTransportSMTP)),
		SendGridAPIKey:       env.str("SENDGRID_API_KEY", ""),

		SMTPServer:                env.str("SMTP_SERVER", DefaultSMTPServer),
		SMTPPort:                  env.integer("SMTP_PORT", DefaultSMTPPort),
		SenderEmail:               env.str("SENDER_EMAIL", ""),
		SenderPassword:            env.str("SENDER_PASSWORD", ""),
		NotificationEmails:        splitList(env.str("NOTIFICATION_EMAILS", ""), listSeparator),
		EmailNotificationsEnabled: env.boolean("EMAIL_NOTIFICATIONS_ENABLED", true),

		TemplateAPIURL: env.str("EMAIL_TEMPLATE_API_URL", DefaultTemplateAPIURL),
		BccEmail:       env.str("BCC_EMAIL", ""),
		DevTestEmail:   env.str("DEV_TEST_EMAIL", ""),

		SlackWebhookURL:           env.str("SLACK_WEBHOOK_URL", ""),
		SlackChannel:              env.str("SLACK_CHANNEL", DefaultSlackChannel),
		SlackUsername:             env.str("SLACK_USERNAME", DefaultSlackUsername),
		SlackNotificationsEnabled: env.boolean("SLACK_NOTIFICATIONS_ENABLED", true),

		HTTPTimeout: env.duration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		LogLevel:    env.str("LOG_LEVEL", DefaultLogLevel),
		LogFile:     env.str("LOG_FILE", DefaultLogFile),
		Schedule:    env.str("SCHEDULE", DefaultSchedule),
		HTTPPort:    env.str("HTTP_PORT", DefaultHTTPPort),
	}

	if cfg.MailTransport != MailTransportSMTP && cfg.MailTransport != MailTransportSendGrid {
		env.problems = append(env.problems, fmt.Errorf("MAIL_TRANSPORT: unsupported transport %q", cfg.MailTransport))
	}

	if err := errors.Join(env.problems...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ValidateChannels disables notification channels that are enabled but
// incomplete and returns one warning per disabled channel.
func (c *Config) ValidateChannels() []string {
	var warnings []string

	if c.EmailNotificationsEnabled {
		var missing []string
		if c.SenderEmail == "" {
			missing = append(missing, "SENDER_EMAIL")
		}
		if c.SenderPassword == "" {
			missing = append(missing, "SENDER_PASSWORD")
		}
		if len(c.NotificationEmails) == 0 {
			missing = append(missing, "NOTIFICATION_EMAILS")
		}
		if len(missing) > 0 {
			c.EmailNotificationsEnabled = false
			warnings = append(warnings, fmt.Sprintf(
				"email notifications disabled, missing %s", strings.Join(missing, ", ")))
		}
	}

	if c.SlackNotificationsEnabled && c.SlackWebhookURL == "" {
		c.SlackNotificationsEnabled = false
		warnings = append(warnings, "slack notifications disabled, missing SLACK_WEBHOOK_URL")
	}

	return warnings
}

type envReader struct {
	getenv   func(string) string
	problems []error
}

func (r *envReader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *envReader) integer(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (r *envReader) boolean(key string, def bool) bool {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		if secs, convErr := strconv.Atoi(v); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
