package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/transaction"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"
)

func bookNotFound(bookID int64) *apperr.Error {
	return apperr.NotFound("Book with id %d not found", bookID)
}

func authorNotFound(authorID int64) *apperr.Error {
	return apperr.NotFound("Author with id %d not found", authorID)
}

// bookService implements the BookService interface
type bookService struct {
	bookRepo   books.BookRepository
	authorRepo books.AuthorRepository
	tx         transaction.Transactor
	logger     logger.Logger
}

// NewBookService creates a new instance of BookService
func NewBookService(bookRepo books.BookRepository, authorRepo books.AuthorRepository, tx transaction.Transactor, logger logger.Logger) (books.BookService, error) {
	if bookRepo == nil || authorRepo == nil || tx == nil {
		return nil, fmt.Errorf("book service requires repositories and a transactor")
	}
	return &bookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		tx:         tx,
		logger:     logger,
	}, nil
}

// Create rejects duplicate names, then finds or creates the author and stores
// the book. Both writes share one transaction.
func (s *bookService) Create(ctx context.Context, input *books.BookInput) (*books.Book, error) {
	var created *books.Book

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := ensureNameFree(ctx, s.bookRepo, input.Name, 0); err != nil {
			return err
		}

		author, err := findOrCreateAuthor(ctx, s.authorRepo, input.Author, input.AuthorNationality)
		if err != nil {
			return err
		}

		book := &books.Book{AuthorID: author.ID}
		input.BookFields.Apply(book)
		if err := book.Validate(); err != nil {
			return apperr.Unprocessable("%v", err)
		}
		if err := s.bookRepo.Create(ctx, book); err != nil {
			return nameTaken(err)
		}
		created = book
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *bookService) List(ctx context.Context, query *books.BookQuery) ([]*books.Book, error) {
	if err := query.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	return s.bookRepo.List(ctx, query)
}

func (s *bookService) GetByID(ctx context.Context, bookID int64) (*books.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if errors.Is(err, books.ErrBookNotFound) {
		return nil, bookNotFound(bookID).Wrap(err)
	}
	return book, err
}

// Update replaces every book field and re-resolves the author. Any failure rolls
// back the author creation as well.
func (s *bookService) Update(ctx context.Context, bookID int64, input *books.BookInput) (*books.Book, error) {
	var updated *books.Book

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		book, err := s.bookRepo.GetByID(ctx, bookID)
		if errors.Is(err, books.ErrBookNotFound) {
			return bookNotFound(bookID).Wrap(err)
		}
		if err != nil {
			return err
		}

		if err := ensureNameFree(ctx, s.bookRepo, input.Name, bookID); err != nil {
			return err
		}

		author, err := findOrCreateAuthor(ctx, s.authorRepo, input.Author, input.AuthorNationality)
		if err != nil {
			return err
		}

		input.BookFields.Apply(book)
		book.AuthorID = author.ID
		if err := book.Validate(); err != nil {
			return apperr.Unprocessable("%v", err)
		}
		if err := s.bookRepo.Update(ctx, book); err != nil {
			return nameTaken(err)
		}
		updated = book
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *bookService) DeleteByID(ctx context.Context, bookID int64) error {
	err := s.bookRepo.DeleteByID(ctx, bookID)
	if errors.Is(err, books.ErrBookNotFound) {
		return bookNotFound(bookID).Wrap(err)
	}
	return err
}

// ensureNameFree fails when a book other than exceptID already uses name.
func ensureNameFree(ctx context.Context, repo books.BookRepository, name string, exceptID int64) error {
	existing, err := repo.FindByName(ctx, name)
	if errors.Is(err, books.ErrBookNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == exceptID {
		return nil
	}
	return apperr.BadRequest("Book already exists")
}

// nameTaken reports a unique index collision the same way ensureNameFree does.
func nameTaken(err error) error {
	if errors.Is(err, books.ErrBookNameTaken) {
		return apperr.BadRequest("Book already exists").Wrap(err)
	}
	return err
}

func findOrCreateAuthor(ctx context.Context, repo books.AuthorRepository, name string, nationality *string) (*books.Author, error) {
	nationality = books.NormalizeNationality(nationality)

	author, err := repo.FindByIdentity(ctx, name, nationality)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, books.ErrAuthorNotFound) {
		return nil, err
	}

	author = &books.Author{Name: name, Nationality: nationality}
	if err := author.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	if err := repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// authorService implements the AuthorService interface
type authorService struct {
	authorRepo books.AuthorRepository
	bookRepo   books.BookRepository
	tx         transaction.Transactor
	logger     logger.Logger
}

// NewAuthorService creates a new instance of AuthorService
func NewAuthorService(authorRepo books.AuthorRepository, bookRepo books.BookRepository, tx transaction.Transactor, logger logger.Logger) (books.AuthorService, error) {
	if bookRepo == nil || authorRepo == nil || tx == nil {
		return nil, fmt.Errorf("author service requires repositories and a transactor")
	}
	return &authorService{
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
		tx:         tx,
		logger:     logger,
	}, nil
}

func (s *authorService) Create(ctx context.Context, input *books.AuthorInput) (*books.Author, error) {
	author := &books.Author{Name: input.Name, Nationality: books.NormalizeNationality(input.Nationality)}
	if err := author.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) List(ctx context.Context) ([]*books.Author, error) {
	return s.authorRepo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, authorID int64) (*books.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, authorID)
	if errors.Is(err, books.ErrAuthorNotFound) {
		return nil, authorNotFound(authorID).Wrap(err)
	}
	return author, err
}

func (s *authorService) DeleteByID(ctx context.Context, authorID int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		count, err := s.bookRepo.CountByAuthor(ctx, authorID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.BadRequest("Cannot delete author with id %d: author has associated books", authorID)
		}

		err = s.authorRepo.DeleteByID(ctx, authorID)
		if errors.Is(err, books.ErrAuthorNotFound) {
			return authorNotFound(authorID).Wrap(err)
		}
		return err
	})
}

func (s *authorService) GetWithBooks(ctx context.Context, authorID int64) (*books.AuthorWithBooks, error) {
	author, err := s.authorRepo.GetWithBooks(ctx, authorID)
	if errors.Is(err, books.ErrAuthorNotFound) {
		return nil, authorNotFound(authorID).Wrap(err)
	}
	return author, err
}

func (s *authorService) AddBook(ctx context.Context, authorID int64, fields books.BookFields) (*books.Book, error) {
	var created *books.Book

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.authorRepo.GetByID(ctx, authorID); err != nil {
			if errors.Is(err, books.ErrAuthorNotFound) {
				return authorNotFound(authorID).Wrap(err)
			}
			return err
		}
		if err := ensureNameFree(ctx, s.bookRepo, fields.Name, 0); err != nil {
			return err
		}

		book := &books.Book{AuthorID: authorID}
		fields.Apply(book)
		if err := book.Validate(); err != nil {
			return apperr.Unprocessable("%v", err)
		}
		if err := s.bookRepo.Create(ctx, book); err != nil {
			return nameTaken(err)
		}
		created = book
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
