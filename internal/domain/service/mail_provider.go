package service

import "context"

// MailAddress identifies a mail participant.
type MailAddress struct {
	Name  string
	Email string
}

// Mail describes one outbound message. Body is rendered by the provider from the
// named template and the variables map.
type Mail struct {
	To       MailAddress
	Subject  string
	Template string
	Vars     map[string]string
}

// MailProvider dispatches transactional mail (password reset links).
// Failures are reported to the caller; whether they abort the operation is the
// caller's decision.
type MailProvider interface {
	SendMail(ctx context.Context, mail *Mail) error
}
