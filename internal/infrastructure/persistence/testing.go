//go:build unit || integration
// +build unit integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/transaction"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	Transactor transaction.Transactor
	BookRepo   books.BookRepository
	AuthorRepo books.AuthorRepository
	HeroRepo   heroes.HeroRepository
	TeamRepo   heroes.TeamRepository
	UserRepo   users.UserRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteMemoryDSN,
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	bookRepo, err := NewGormBookRepository(db, log)
	require.NoError(t, err)
	authorRepo, err := NewGormAuthorRepository(db, log)
	require.NoError(t, err)
	heroRepo, err := NewGormHeroRepository(db, log)
	require.NoError(t, err)
	teamRepo, err := NewGormTeamRepository(db, log)
	require.NoError(t, err)
	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:         db,
		Transactor: NewGormTransactor(db),
		BookRepo:   bookRepo,
		AuthorRepo: authorRepo,
		HeroRepo:   heroRepo,
		TeamRepo:   teamRepo,
		UserRepo:   userRepo,
	}
}

// CreateTestAuthor persists an author with the given name
func CreateTestAuthor(t *testing.T, tc *TestContext, name string) *books.Author {
	t.Helper()

	author := &books.Author{Name: name}
	require.NoError(t, tc.AuthorRepo.Create(context.Background(), author))
	return author
}

// NewTestBook returns an unsaved book owned by authorID
func NewTestBook(authorID int64, name string) *books.Book {
	return &books.Book{
		Name:     name,
		ISBN:     "978-" + name,
		Type:     "novel",
		Publish:  "Ace",
		Price:    10,
		AuthorID: authorID,
	}
}
