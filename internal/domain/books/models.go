package books

import (
	"errors"
	"strings"

	"github.com/MGTheTrain/bookshelf/internal/domain"
)

var (
	// ErrBookNotFound is returned by repositories when no book matches
	ErrBookNotFound = errors.New("book not found")
	// ErrAuthorNotFound is returned by repositories when no author matches
	ErrAuthorNotFound = errors.New("author not found")
	// ErrBookNameTaken is returned by repositories when a write collides with another book's name
	ErrBookNameTaken = errors.New("book name already taken")
)

// Book entity
type Book struct {
	ID       int64   `validate:"gte=0"`
	Name     string  `validate:"required,notblank,max=255"`
	ISBN     string  `validate:"required,notblank,max=32"`
	Type     string  `validate:"required,notblank,max=50"`
	Publish  string  `validate:"required,notblank,max=50"`
	Price    float64 `validate:"gte=0"`
	AuthorID int64   `validate:"required,gt=0"`
}

// Validate for validating Book struct
func (b *Book) Validate() error {
	return domain.ValidateStruct(b)
}

// Author entity
type Author struct {
	ID          int64   `validate:"gte=0"`
	Name        string  `validate:"required,notblank,max=255"`
	Nationality *string `validate:"omitempty,max=100"`
}

// Validate for validating Author struct
func (a *Author) Validate() error {
	return domain.ValidateStruct(a)
}

// AuthorWithBooks is an author together with every book it owns
type AuthorWithBooks struct {
	Author
	Books []*Book
}

// BookFields are the attributes a caller supplies for a book
type BookFields struct {
	Name    string
	ISBN    string
	Type    string
	Publish string
	Price   float64
}

// Apply copies the fields onto b, leaving ID and AuthorID untouched.
func (f BookFields) Apply(b *Book) {
	b.Name = f.Name
	b.ISBN = f.ISBN
	b.Type = f.Type
	b.Publish = f.Publish
	b.Price = f.Price
}

// BookInput describes a book by its fields and its author's identity. The
// author is looked up by name and nationality and created when absent.
type BookInput struct {
	BookFields
	Author            string
	AuthorNationality *string
}

// AuthorInput describes a new author
type AuthorInput struct {
	Name        string
	Nationality *string
}

// NormalizeNationality maps blank strings to nil so that "" and an omitted
// nationality identify the same author.
func NormalizeNationality(n *string) *string {
	if n == nil || strings.TrimSpace(*n) == "" {
		return nil
	}
	v := strings.TrimSpace(*n)
	return &v
}
