package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"

	"github.com/pkg/errors"

	"gobarber/config"
	"gobarber/internal/domain/service"
)

// smtpMailer delivers mail over SMTP using a persistent client.
type smtpMailer struct {
	client    *gomail.Client
	templates *templateSet
	fromName  string
	fromEmail string
}

// NewSMTPMailer builds an SMTP-backed mailer from configuration.
func NewSMTPMailer(cfg *config.MailConfig, templates *templateSet) (service.MailProvider, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client:    client,
		templates: templates,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}, nil
}

// SendMail renders the named template and delivers the message.
func (m *smtpMailer) SendMail(ctx context.Context, mail *service.Mail) error {
	body, err := m.templates.render(mail.Template, mail.Vars)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.AddToFormat(mail.To.Name, mail.To.Email); err != nil {
		return errors.Wrapf(err, "failed to set mail recipient %s", mail.To.Email)
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", mail.To.Email)
	}

	return nil
}
