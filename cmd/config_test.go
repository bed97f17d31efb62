package cmd_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shipconfirm/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfigFrom(envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, cmd.DefaultPrestaShopURL, cfg.PrestaShopURL)
	assert.Equal(t, []string{"PayPal", "Redsys", "PayPal with fee", "Pagos por transferencia bancaria"},
		cfg.PrestaShopPaymentMethods)
	assert.Equal(t, 5, cfg.PrestaShopEmployeeID)
	assert.Zero(t, cfg.PrestaShopRateLimit)
	assert.Equal(t, 587, cfg.OrdersSMTPPort)
	assert.Equal(t, cmd.MailTransportSMTP, cfg.MailTransport)
	assert.True(t, cfg.EmailNotificationsEnabled)
	assert.True(t, cfg.SlackNotificationsEnabled)
	assert.Equal(t, "#confirmation-shipment", cfg.SlackChannel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "logs/confirmation_shipment.log", cfg.LogFile)
	assert.Equal(t, "0 0 * * * *", cfg.Schedule)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.NotificationEmails)
}

func TestLoadConfigFrom_Overrides(t *testing.T) {
	cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{
		"ENVIRONMENT":                 "development",
		"PRESTASHOP_PAYMENT_METHODS":  "PayPal | Redsys",
		"PRESTASHOP_EMPLOYEE_ID":      "9",
		"PRESTASHOP_RATE_LIMIT":       "2.5",
		"NOTIFICATION_EMAILS":         "ops@example.com, boss@example.com,",
		"EMAIL_NOTIFICATIONS_ENABLED": "false",
		"MAIL_TRANSPORT":              "SendGrid",
		"HTTP_TIMEOUT":                "10",
	}))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"PayPal", "Redsys"}, cfg.PrestaShopPaymentMethods)
	assert.Equal(t, 9, cfg.PrestaShopEmployeeID)
	assert.InDelta(t, 2.5, cfg.PrestaShopRateLimit, 0.001)
	assert.Equal(t, []string{"ops@example.com", "boss@example.com"}, cfg.NotificationEmails)
	assert.False(t, cfg.EmailNotificationsEnabled)
	assert.Equal(t, cmd.MailTransportSendGrid, cfg.MailTransport)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigFrom_ReportsEveryMalformedValue(t *testing.T) {
	_, err := cmd.LoadConfigFrom(envOf(map[string]string{
		"SMTP_PORT":                   "abc",
		"SLACK_NOTIFICATIONS_ENABLED": "maybe",
		"HTTP_TIMEOUT":                "soon",
		"MAIL_TRANSPORT":              "pigeon",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
	assert.Contains(t, err.Error(), "SLACK_NOTIFICATIONS_ENABLED")
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
	assert.Contains(t, err.Error(), "MAIL_TRANSPORT")
}

func TestConfig_ValidateChannels(t *testing.T) {
	t.Run("incomplete channels are disabled", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{"SENDER_EMAIL": "ops@example.com"}))
		require.NoError(t, err)

		warnings := cfg.ValidateChannels()

		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "SENDER_PASSWORD, NOTIFICATION_EMAILS")
		assert.Contains(t, warnings[1], "SLACK_WEBHOOK_URL")
		assert.False(t, cfg.EmailNotificationsEnabled)
		assert.False(t, cfg.SlackNotificationsEnabled)
	})

	t.Run("complete channels stay enabled", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{
			"SENDER_EMAIL":        "ops@example.com",
			"SENDER_PASSWORD":     "secret",
			"NOTIFICATION_EMAILS": "team@example.com",
			"SLACK_WEBHOOK_URL":   "https://hooks.slack.com/services/T/B/X",
		}))
		require.NoError(t, err)

		assert.Empty(t, cfg.ValidateChannels())
		assert.True(t, cfg.EmailNotificationsEnabled)
		assert.True(t, cfg.SlackNotificationsEnabled)
	})

	t.Run("disabled channels are not validated", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{
			"EMAIL_NOTIFICATIONS_ENABLED": "false",
			"SLACK_NOTIFICATIONS_ENABLED": "false",
		}))
		require.NoError(t, err)

		assert.Empty(t, cfg.ValidateChannels())
	})
}

func TestNewCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("wires every component", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{
			"PRESTASHOP_API_USERNAME": "KEY",
			"ORDERS_SENDER_EMAIL":     "orders@example.com",
			"SENDER_EMAIL":            "ops@example.com",
			"SENDER_PASSWORD":         "secret",
			"NOTIFICATION_EMAILS":     "team@example.com",
		}))
		require.NoError(t, err)

		root, err := cmd.NewCompositionRoot(cfg, logger)

		require.NoError(t, err)
		assert.NotNil(t, root.CreateProcessShipmentsCommandHandler())
		assert.NotNil(t, root.CreateJobManager())
		assert.NotNil(t, root.MetricsHandler())
		assert.Equal(t, "8080", root.HTTPPort())
	})

	t.Run("order source credentials are required", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{"ORDERS_SENDER_EMAIL": "orders@example.com"}))
		require.NoError(t, err)

		_, err = cmd.NewCompositionRoot(cfg, logger)

		require.ErrorContains(t, err, "order source")
	})

	t.Run("sendgrid needs an api key", func(t *testing.T) {
		cfg, err := cmd.LoadConfigFrom(envOf(map[string]string{
			"PRESTASHOP_API_USERNAME": "KEY",
			"ORDERS_SENDER_EMAIL":     "orders@example.com",
			"MAIL_TRANSPORT":          "sendgrid",
		}))
		require.NoError(t, err)

		_, err = cmd.NewCompositionRoot(cfg, logger)

		require.ErrorContains(t, err, "customer mail")
	})
}
