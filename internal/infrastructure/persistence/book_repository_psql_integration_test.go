//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookPsqlRepository_CreateAndList(t *testing.T) {
	tc := SetupTestDB(t, config.PostgresDbType)
	author := CreateTestAuthor(t, tc, "Frank Herbert")

	book := NewTestBook(author.ID, "Dune")
	require.NoError(t, tc.BookRepo.Create(context.Background(), book))

	list, err := tc.BookRepo.List(context.Background(), books.NewBookQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, book.ID, list[0].ID)
}

func TestPing(t *testing.T) {
	tc := SetupTestDB(t, config.PostgresDbType)
	assert.NoError(t, Ping(context.Background(), tc.DB))
}
