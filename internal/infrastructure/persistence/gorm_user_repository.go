package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Create returns ErrUsernameTaken for an existing username, whether found by
// the pre-check or by the unique index.
func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return apperr.Database("failed to check username", err)
	}
	if count > 0 {
		return fmt.Errorf("%q: %w", user.Username, users.ErrUsernameTaken)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%q: %w", user.Username, users.ErrUsernameTaken)
		}
		return apperr.Database("failed to create user", err)
	}
	user.ID = model.ID

	r.logger.Info("Created user ", user.Username)
	return nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, users.ErrUserNotFound)
		}
		return nil, apperr.Database("failed to fetch user", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with id %d: %w", userID, users.ErrUserNotFound)
		}
		return nil, apperr.Database("failed to fetch user", err)
	}
	return model.ToDomain(), nil
}
