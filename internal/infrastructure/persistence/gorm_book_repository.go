package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBookRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookRepository creates a new GORM-based BookRepository implementation
func NewGormBookRepository(db *gorm.DB, logger logger.Logger) (books.BookRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormBookRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookRepository) Create(ctx context.Context, book *books.Book) error {
	if err := book.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookModel{}
	model.FromDomain(book)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%q: %w", book.Name, books.ErrBookNameTaken)
		}
		return apperr.Database("failed to create book", err)
	}
	book.ID = model.ID

	r.logger.Info("Created book with id ", book.ID)
	return nil
}

func (r *gormBookRepository) List(ctx context.Context, query *books.BookQuery) ([]*books.Book, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookModel
	dbQuery := conn(ctx, r.db).Model(&models.BookModel{})

	if query.ID > 0 {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.AuthorID > 0 {
		dbQuery = dbQuery.Where("author_id = ?", query.AuthorID)
	}

	// SortBy is restricted to known columns by BookQuery validation
	if query.SortBy != "" {
		order := strings.ToLower(query.SortOrder)
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	} else {
		dbQuery = dbQuery.Order("id asc")
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, apperr.Database("failed to fetch books", err)
	}

	domainList := make([]*books.Book, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBookRepository) GetByID(ctx context.Context, bookID int64) (*books.Book, error) {
	var model models.BookModel
	if err := conn(ctx, r.db).Where("id = ?", bookID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with id %d: %w", bookID, books.ErrBookNotFound)
		}
		return nil, apperr.Database("failed to fetch book", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookRepository) FindByName(ctx context.Context, name string) (*books.Book, error) {
	var model models.BookModel
	if err := conn(ctx, r.db).Where("name = ?", name).Order("id asc").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book named %q: %w", name, books.ErrBookNotFound)
		}
		return nil, apperr.Database("failed to fetch book", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookRepository) Update(ctx context.Context, book *books.Book) error {
	if err := book.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookModel{}
	model.FromDomain(book)

	result := conn(ctx, r.db).Model(&models.BookModel{}).Where("id = ?", book.ID).
		Select("name", "isbn", "type", "publish", "price", "author_id").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%q: %w", book.Name, books.ErrBookNameTaken)
		}
		return apperr.Database("failed to update book", result.Error)
	}

	r.logger.Info("Updated book with id ", book.ID)
	return nil
}

func (r *gormBookRepository) DeleteByID(ctx context.Context, bookID int64) error {
	result := conn(ctx, r.db).Where("id = ?", bookID).Delete(&models.BookModel{})
	if result.Error != nil {
		return apperr.Database("failed to delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book with id %d: %w", bookID, books.ErrBookNotFound)
	}

	r.logger.Info("Deleted book with id ", bookID)
	return nil
}

func (r *gormBookRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.BookModel{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, apperr.Database("failed to count books", err)
	}
	return count, nil
}
