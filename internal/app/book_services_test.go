//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected *apperr.Error, got %v", err)
	assert.Equal(t, status, appErr.Status)
	return appErr
}

func TestBookService_Create_ResolvesAuthor(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	first, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)
	second, err := services.BookService.Create(ctx, NewTestBookInput("Dune Messiah", "Frank Herbert"))
	require.NoError(t, err)

	assert.Equal(t, first.AuthorID, second.AuthorID)

	authors, err := services.AuthorService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 1)
}

func TestBookService_Create_NationalityDistinguishesAuthors(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	british := "British"

	input := NewTestBookInput("1984", "George Orwell")
	input.AuthorNationality = &british
	withNationality, err := services.BookService.Create(ctx, input)
	require.NoError(t, err)

	without, err := services.BookService.Create(ctx, NewTestBookInput("Animal Farm", "George Orwell"))
	require.NoError(t, err)

	assert.NotEqual(t, withNationality.AuthorID, without.AuthorID)
}

func TestBookService_Create_Duplicate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)

	_, err = services.BookService.Create(ctx, NewTestBookInput("Dune", "Someone Else"))
	appErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Book already exists", appErr.Detail)

	_, err = services.DBContext.AuthorRepo.FindByIdentity(ctx, "Someone Else", nil)
	assert.ErrorIs(t, err, books.ErrAuthorNotFound)
}

func TestBookService_Create_InvalidRollsBackAuthor(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	input := NewTestBookInput("Dune", "Frank Herbert")
	input.Price = -3

	_, err := services.BookService.Create(ctx, input)
	requireStatus(t, err, http.StatusUnprocessableEntity)

	authors, err := services.AuthorService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.BookService.GetByID(context.Background(), 5)
	appErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Book with id 5 not found", appErr.Detail)
}

func TestBookService_Update(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)

	input := NewTestBookInput("Dune", "Brian Herbert")
	input.Price = 20
	updated, err := services.BookService.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 20.0, updated.Price)
	assert.NotEqual(t, created.AuthorID, updated.AuthorID)

	fetched, err := services.BookService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.AuthorID, fetched.AuthorID)

	_, err = services.BookService.Update(ctx, 999, input)
	requireStatus(t, err, http.StatusNotFound)
}

func TestBookService_Update_NameTakenByOtherBook(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)
	messiah, err := services.BookService.Create(ctx, NewTestBookInput("Dune Messiah", "Frank Herbert"))
	require.NoError(t, err)

	_, err = services.BookService.Update(ctx, messiah.ID, NewTestBookInput("Dune", "Frank Herbert"))
	requireStatus(t, err, http.StatusBadRequest)
}

func TestNameTaken(t *testing.T) {
	collision := fmt.Errorf("%q: %w", "Dune", books.ErrBookNameTaken)
	appErr := requireStatus(t, nameTaken(collision), http.StatusBadRequest)
	assert.Equal(t, "Book already exists", appErr.Detail)
	assert.ErrorIs(t, appErr, books.ErrBookNameTaken)

	other := errors.New("disk I/O error")
	assert.Same(t, other, nameTaken(other))
}

func TestBookService_ListAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	list, err := services.BookService.List(ctx, books.NewBookQuery())
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)

	require.NoError(t, services.BookService.DeleteByID(ctx, created.ID))
	err = services.BookService.DeleteByID(ctx, created.ID)
	requireStatus(t, err, http.StatusNotFound)

	bad := books.NewBookQuery()
	bad.SortBy = "password"
	_, err = services.BookService.List(ctx, bad)
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestAuthorService_DeleteRefusesAuthorWithBooks(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	book, err := services.BookService.Create(ctx, NewTestBookInput("Dune", "Frank Herbert"))
	require.NoError(t, err)

	err = services.AuthorService.DeleteByID(ctx, book.AuthorID)
	appErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, fmt.Sprintf("Cannot delete author with id %d: author has associated books", book.AuthorID), appErr.Detail)

	require.NoError(t, services.BookService.DeleteByID(ctx, book.ID))
	require.NoError(t, services.AuthorService.DeleteByID(ctx, book.AuthorID))

	err = services.AuthorService.DeleteByID(ctx, book.AuthorID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestAuthorService_AddBookAndGetWithBooks(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	author, err := services.AuthorService.Create(ctx, &books.AuthorInput{Name: "Frank Herbert"})
	require.NoError(t, err)

	fields := books.BookFields{Name: "Dune", ISBN: "978", Type: "novel", Publish: "Chilton", Price: 9}
	book, err := services.AuthorService.AddBook(ctx, author.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, author.ID, book.AuthorID)

	withBooks, err := services.AuthorService.GetWithBooks(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, withBooks.Books, 1)
	assert.Equal(t, "Dune", withBooks.Books[0].Name)

	_, err = services.AuthorService.AddBook(ctx, author.ID+1, fields)
	requireStatus(t, err, http.StatusNotFound)

	_, err = services.AuthorService.GetWithBooks(ctx, author.ID+1)
	requireStatus(t, err, http.StatusNotFound)
}

func TestAuthorService_Create_Invalid(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AuthorService.Create(context.Background(), &books.AuthorInput{Name: " "})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}
