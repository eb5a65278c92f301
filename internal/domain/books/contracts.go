package books

import "context"

// BookRepository defines the interface for Book-related operations
type BookRepository interface {
	// Create adds a new Book and assigns its ID
	Create(ctx context.Context, book *Book) error
	// List lists Books matching the query
	List(ctx context.Context, query *BookQuery) ([]*Book, error)
	// GetByID retrieves a Book by ID or returns ErrBookNotFound
	GetByID(ctx context.Context, bookID int64) (*Book, error)
	// FindByName retrieves the first Book with the given name or returns ErrBookNotFound
	FindByName(ctx context.Context, name string) (*Book, error)
	// Update overwrites every column of an existing Book
	Update(ctx context.Context, book *Book) error
	// DeleteByID deletes a Book by ID
	DeleteByID(ctx context.Context, bookID int64) error
	// CountByAuthor counts the books owned by an author
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

// AuthorRepository defines the interface for Author-related operations
type AuthorRepository interface {
	Create(ctx context.Context, author *Author) error
	List(ctx context.Context) ([]*Author, error)
	GetByID(ctx context.Context, authorID int64) (*Author, error)
	// GetWithBooks loads the author and its books or returns ErrAuthorNotFound
	GetWithBooks(ctx context.Context, authorID int64) (*AuthorWithBooks, error)
	// FindByIdentity matches name and nationality, treating a nil nationality as NULL
	FindByIdentity(ctx context.Context, name string, nationality *string) (*Author, error)
	DeleteByID(ctx context.Context, authorID int64) error
}

// BookService defines the book use cases exposed over HTTP.
type BookService interface {
	// Create stores a book, resolving or creating its author in the same transaction.
	Create(ctx context.Context, input *BookInput) (*Book, error)
	// List returns the books matching the query.
	List(ctx context.Context, query *BookQuery) ([]*Book, error)
	// GetByID returns a single book.
	GetByID(ctx context.Context, bookID int64) (*Book, error)
	// Update replaces the book fields and re-resolves its author.
	Update(ctx context.Context, bookID int64, input *BookInput) (*Book, error)
	// DeleteByID removes a book.
	DeleteByID(ctx context.Context, bookID int64) error
}

// AuthorService defines the author use cases exposed over HTTP.
type AuthorService interface {
	Create(ctx context.Context, input *AuthorInput) (*Author, error)
	List(ctx context.Context) ([]*Author, error)
	GetByID(ctx context.Context, authorID int64) (*Author, error)
	// DeleteByID refuses to delete an author that still owns books.
	DeleteByID(ctx context.Context, authorID int64) error
	GetWithBooks(ctx context.Context, authorID int64) (*AuthorWithBooks, error)
	// AddBook creates a book owned by an existing author.
	AddBook(ctx context.Context, authorID int64, fields BookFields) (*Book, error)
}
