package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	httpin "shipconfirm/internal/adapters/in/http"
	"shipconfirm/internal/adapters/out/alerting"
	"shipconfirm/internal/adapters/out/mailer"
	"shipconfirm/internal/adapters/out/prestashop"
	"shipconfirm/internal/adapters/out/templateapi"
	"shipconfirm/internal/core/application/alerts"
	"shipconfirm/internal/core/application/usecases/commands"
	"shipconfirm/internal/core/application/usecases/queries"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/jobs"
	"shipconfirm/internal/metrics"
)

type CompositionRoot struct {
	cfg          Config
	logger       *slog.Logger
	prestashop   *prestashop.Client
	templates    *templateapi.Client
	customerMail ports.MailSender
	alerts       *alerts.Dispatcher
	metrics      *metrics.Recorder
}

// NewCompositionRoot builds every adapter out of cfg. Incomplete notification
// channels are disabled with a warning; missing order-source, template or
// customer-mail settings are errors.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	for _, warning := range cfg.ValidateChannels() {
		logger.Warn("Notification channel configuration", "warning", warning)
	}

	source, err := prestashop.NewClient(prestashop.Config{
		BaseURL:        cfg.PrestaShopURL,
		Username:       cfg.PrestaShopUsername,
		Password:       cfg.PrestaShopPassword,
		PaymentMethods: cfg.PrestaShopPaymentMethods,
		EmployeeID:     cfg.PrestaShopEmployeeID,
		Timeout:        cfg.HTTPTimeout,
		RateLimit:      cfg.PrestaShopRateLimit,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("order source: %w", err)
	}

	templates, err := templateapi.NewClient(cfg.TemplateAPIURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("template service: %w", err)
	}

	customerMail, err := newCustomerMailSender(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("customer mail: %w", err)
	}

	return &CompositionRoot{
		cfg:          cfg,
		logger:       logger,
		prestashop:   source,
		templates:    templates,
		customerMail: customerMail,
		alerts:       alerts.NewDispatcher(logger, newChannels(cfg, logger)...),
		metrics:      metrics.NewRecorder(),
	}, nil
}

func newCustomerMailSender(cfg Config, logger *slog.Logger) (ports.MailSender, error) {
	if cfg.MailTransport == MailTransportSendGrid {
		return mailer.NewSendGridSender(mailer.SendGridConfig{
			APIKey:  cfg.SendGridAPIKey,
			From:    cfg.OrdersSenderEmail,
			Timeout: cfg.HTTPTimeout,
		}, logger)
	}
	return mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.OrdersSMTPServer,
		Port:     cfg.OrdersSMTPPort,
		Username: cfg.OrdersSenderEmail,
		Password: cfg.OrdersSenderPassword,
		Timeout:  cfg.HTTPTimeout,
	}, logger)
}

func newChannels(cfg Config, logger *slog.Logger) []ports.NotificationChannel {
	var channels []ports.NotificationChannel

	if cfg.EmailNotificationsEnabled {
		sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPServer,
			Port:     cfg.SMTPPort,
			Username: cfg.SenderEmail,
			Password: cfg.SenderPassword,
			Timeout:  cfg.HTTPTimeout,
		}, logger)
		if err != nil {
			logger.Warn("Email notifications disabled", "error", err)
		} else {
			channels = append(channels, alerting.NewEmailChannel(sender, cfg.NotificationEmails, true))
		}
	}

	channels = append(channels, alerting.NewSlackChannel(alerting.SlackConfig{
		WebhookURL: cfg.SlackWebhookURL,
		Channel:    cfg.SlackChannel,
		Username:   cfg.SlackUsername,
		Timeout:    cfg.HTTPTimeout,
		Enabled:    cfg.SlackNotificationsEnabled,
	}))

	return channels
}

func (c *CompositionRoot) CreateGetPendingShipmentsQueryHandler() queries.GetPendingShipmentsQueryHandler {
	return queries.NewGetPendingShipmentsQueryHandler(c.prestashop, c.logger)
}

func (c *CompositionRoot) CreateProcessShipmentsCommandHandler() *commands.ProcessShipmentsCommandHandler {
	handler := commands.NewProcessShipmentsCommandHandler(commands.ProcessShipmentsDependencies{
		Pending:  c.CreateGetPendingShipmentsQueryHandler(),
		Resolver: commands.NewReferenceResolver(c.prestashop, c.logger),
		Notifier: commands.NewShipmentNotifier(c.templates, c.customerMail, commands.RecipientPolicy{
			Environment: services.ParseEnvironment(c.cfg.Environment),
			TestEmail:   c.cfg.DevTestEmail,
			Bcc:         c.cfg.BccEmail,
		}, c.logger),
		Transitioner: commands.NewStateTransitioner(c.prestashop, c.logger),
		Alerts:       c.alerts,
		Observer:     c.metrics,
	}, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateProcessShipmentsCommandHandler(), c.cfg.Schedule, c.logger)
}

func (c *CompositionRoot) CreateServer(trigger httpin.RunTrigger) *httpin.Server {
	return httpin.NewServer(trigger, c.MetricsHandler())
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

func (c *CompositionRoot) HTTPPort() string {
	return c.cfg.HTTPPort
}
