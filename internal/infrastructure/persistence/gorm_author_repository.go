package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuthorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuthorRepository creates a new GORM-based AuthorRepository implementation
func NewGormAuthorRepository(db *gorm.DB, logger logger.Logger) (books.AuthorRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormAuthorRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuthorRepository) Create(ctx context.Context, author *books.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuthorModel{}
	model.FromDomain(author)

	if err := conn(ctx, r.db).Omit("Books").Create(model).Error; err != nil {
		return apperr.Database("failed to create author", err)
	}
	author.ID = model.ID

	r.logger.Info("Created author with id ", author.ID)
	return nil
}

func (r *gormAuthorRepository) List(ctx context.Context) ([]*books.Author, error) {
	var modelList []*models.AuthorModel
	if err := conn(ctx, r.db).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Database("failed to fetch authors", err)
	}

	domainList := make([]*books.Author, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAuthorRepository) GetByID(ctx context.Context, authorID int64) (*books.Author, error) {
	var model models.AuthorModel
	if err := conn(ctx, r.db).Where("id = ?", authorID).First(&model).Error; err != nil {
		return nil, r.notFoundOr(err, authorID)
	}
	return model.ToDomain(), nil
}

func (r *gormAuthorRepository) GetWithBooks(ctx context.Context, authorID int64) (*books.AuthorWithBooks, error) {
	var model models.AuthorModel
	err := conn(ctx, r.db).
		Preload("Books", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("id = ?", authorID).
		First(&model).Error
	if err != nil {
		return nil, r.notFoundOr(err, authorID)
	}
	return model.ToDomainWithBooks(), nil
}

func (r *gormAuthorRepository) FindByIdentity(ctx context.Context, name string, nationality *string) (*books.Author, error) {
	var model models.AuthorModel
	dbQuery := conn(ctx, r.db).Where("name = ?", name)
	if nationality == nil {
		dbQuery = dbQuery.Where("nationality IS NULL")
	} else {
		dbQuery = dbQuery.Where("nationality = ?", *nationality)
	}

	if err := dbQuery.Order("id asc").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %q: %w", name, books.ErrAuthorNotFound)
		}
		return nil, apperr.Database("failed to fetch author", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuthorRepository) DeleteByID(ctx context.Context, authorID int64) error {
	result := conn(ctx, r.db).Where("id = ?", authorID).Delete(&models.AuthorModel{})
	if result.Error != nil {
		return apperr.Database("failed to delete author", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("author with id %d: %w", authorID, books.ErrAuthorNotFound)
	}

	r.logger.Info("Deleted author with id ", authorID)
	return nil
}

func (r *gormAuthorRepository) notFoundOr(err error, authorID int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("author with id %d: %w", authorID, books.ErrAuthorNotFound)
	}
	return apperr.Database("failed to fetch author", err)
}
