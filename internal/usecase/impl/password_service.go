package impl

import (
	"context"
	"log/slog"
	"time"

	"gobarber/config"
	deliverycontext "gobarber/internal/delivery/context"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 2 * time.Hour

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	userTokenRepo repository.UserTokenRepository
	hasher        service.PasswordHasher
	mail          service.MailProvider
	resetTokenTTL time.Duration
	frontendURL   string
	logger        *slog.Logger
}

// PasswordServiceParams holds dependencies for passwordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	UserTokenRepo repository.UserTokenRepository
	Hasher        service.PasswordHasher
	Mail          service.MailProvider
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	resetTokenTTL := defaultResetTokenTTL
	frontendURL := ""
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
			resetTokenTTL = params.Config.Auth.ResetTokenTTL
		}
		if params.Config.Mail != nil {
			frontendURL = params.Config.Mail.FrontendURL
		}
	}

	return &passwordService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		userTokenRepo: params.UserTokenRepo,
		hasher:        params.Hasher,
		mail:          params.Mail,
		resetTokenTTL: resetTokenTTL,
		frontendURL:   frontendURL,
		logger:        params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword issues a persisted reset token and mails it to the account owner.
// An unknown email succeeds silently: the response must not reveal whether an
// account exists.
func (srv *passwordService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	userToken, err := srv.userTokenRepo.Generate(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	mail := &service.Mail{
		To: service.MailAddress{
			Name:  user.Name,
			Email: user.Email,
		},
		Subject:  "[GoBarber] Password reset",
		Template: "forgot_password",
		Vars: map[string]string{
			"Name": user.Name,
			"Link": srv.frontendURL + "/reset-password?token=" + userToken.Token.String(),
		},
	}

	if err := srv.mail.SendMail(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send password reset mail")
	}

	srv.log(ctx).Debug("Password reset mail dispatched", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword validates a reset token, sets the new password and consumes the token.
func (srv *passwordService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Resetting password")

	token, err := uuid.Parse(input.Token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserTokenNotFound, "malformed reset token")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.UserTokenRepo()

		userToken, err := tokenRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrUserTokenNotFound) {
				return errors.Wrap(domainerrors.ErrUserTokenNotFound, "password reset failed")
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		if time.Now().After(userToken.ExpiredAt(srv.resetTokenTTL)) {
			return errors.Wrap(domainerrors.ErrUserTokenExpired, "password reset failed")
		}

		user, err := userRepo.FindByID(ctx, userToken.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "reset token owner no longer exists")
			}

			return errors.Wrap(err, "failed to find token owner")
		}

		user.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user password")
		}

		// Consume the token so it cannot be replayed.
		if err := tokenRepo.Delete(ctx, userToken.ID); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute password reset transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Debug("Password reset completed")

	return nil
}
