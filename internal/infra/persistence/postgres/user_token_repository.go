package postgres

import (
	"context"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userTokenRepository implements the domain.UserTokenRepository interface.
type userTokenRepository struct {
	db *gorm.DB
}

// NewUserTokenRepository is the constructor for userTokenRepository.
func NewUserTokenRepository(db *gorm.DB) repository.UserTokenRepository {
	return &userTokenRepository{db: db}
}

// Generate persists a fresh reset token for the given user.
func (repo *userTokenRepository) Generate(ctx context.Context, userID uuid.UUID) (*entity.UserToken, error) {
	tokenM := &model.UserTokenModel{
		Token:  uuid.New(),
		UserID: userID,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to generate user token")
	}

	return toUserTokenDomain(tokenM), nil
}

// FindByToken retrieves a reset token record by its token value.
func (repo *userTokenRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.UserToken, error) {
	var tokenM model.UserTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserTokenDomain(&tokenM), nil
}

// Delete removes a reset token by its ID.
func (repo *userTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserTokenModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return errors.WithStack(err)
	}

	// If no rows were affected, the token was not found.
	if result.RowsAffected == 0 {
		return repository.ErrUserTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserTokenDomain converts a GORM UserTokenModel to a domain UserToken entity.
func toUserTokenDomain(data *model.UserTokenModel) *entity.UserToken {
	if data == nil {
		return nil
	}

	return &entity.UserToken{
		ID:        data.ID,
		Token:     data.Token,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
