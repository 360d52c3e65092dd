package usecase

import "context"

// ForgotPasswordInput carries the email requesting a password reset.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries a reset token and the replacement password.
type ResetPasswordInput struct {
	Token                string `json:"token" validate:"required,uuid"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// PasswordUsecase defines the password reset request/reset flow.
type PasswordUsecase interface {
	// ForgotPassword issues a reset token and mails it to the user.
	// Unknown emails succeed silently so responses carry no account-existence hint.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword validates a reset token and sets the new password, consuming the token.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
