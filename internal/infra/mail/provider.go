// Package mail renders and delivers transactional mail.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gobarber/config"
	"gobarber/internal/domain/service"
)

const providerSMTP = "smtp"

// noopMailer is a no-op implementation when mail delivery is disabled.
// The rendered mail is logged so local flows stay debuggable.
type noopMailer struct {
	templates *templateSet
	logger    *slog.Logger
}

func (m *noopMailer) SendMail(ctx context.Context, mail *service.Mail) error {
	body, err := m.templates.render(mail.Template, mail.Vars)
	if err != nil {
		return err
	}

	m.logger.Info("[NoopMail] Delivery disabled, skipping",
		slog.String("to", mail.To.Email),
		slog.String("subject", mail.Subject),
		slog.String("body", body),
	)

	return nil
}

// MailerParams holds dependencies for MailProvider, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailProvider creates a MailProvider based on configuration
func NewMailProvider(params MailerParams) (service.MailProvider, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	// If mail is not configured, return a no-op mailer
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{templates: templates, logger: logger}, nil
	}

	switch cfg.Provider {
	case providerSMTP:
		if cfg.Host == "" {
			return nil, errors.New("smtp host is required for smtp provider")
		}
		logger.Info("Using SMTP mailer",
			slog.String("host", cfg.Host),
			slog.Int("port", cfg.Port),
		)

		return NewSMTPMailer(cfg, templates)

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
