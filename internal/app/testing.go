//go:build unit || integration
// +build unit integration

package app

import (
	"testing"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/catalog"
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/security"
	"github.com/MGTheTrain/bookshelf/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestJWTSecret signs tokens issued in tests
const TestJWTSecret = "test-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	BookService    books.BookService
	AuthorService  books.AuthorService
	HeroService    heroes.HeroService
	TeamService    heroes.TeamService
	AuthService    users.AuthService
	CatalogService catalog.Service

	Issuer    *security.JWTIssuer
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services on a fresh database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbCtx := persistence.SetupTestDB(t, dbType)

	bookService, err := NewBookService(dbCtx.BookRepo, dbCtx.AuthorRepo, dbCtx.Transactor, log)
	require.NoError(t, err)
	authorService, err := NewAuthorService(dbCtx.AuthorRepo, dbCtx.BookRepo, dbCtx.Transactor, log)
	require.NoError(t, err)
	heroService, err := NewHeroService(dbCtx.HeroRepo, dbCtx.TeamRepo, dbCtx.Transactor, log)
	require.NoError(t, err)
	teamService, err := NewTeamService(dbCtx.TeamRepo, dbCtx.HeroRepo, dbCtx.Transactor, log)
	require.NoError(t, err)

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	issuer, err := security.NewJWTIssuer(TestJWTSecret, "bookshelf-test", 30*time.Minute)
	require.NoError(t, err)
	authService, err := NewAuthService(dbCtx.UserRepo, hasher, issuer, log)
	require.NoError(t, err)

	catalogService, err := NewCatalogService(SeedItems(), log)
	require.NoError(t, err)

	return &TestServices{
		BookService:    bookService,
		AuthorService:  authorService,
		HeroService:    heroService,
		TeamService:    teamService,
		AuthService:    authService,
		CatalogService: catalogService,
		Issuer:         issuer,
		DBContext:      dbCtx,
	}
}

// NewTestBookInput returns a valid book input written by author
func NewTestBookInput(name, author string) *books.BookInput {
	return &books.BookInput{
		BookFields: books.BookFields{
			Name:    name,
			ISBN:    "978-" + name,
			Type:    "novel",
			Publish: "Ace",
			Price:   12.5,
		},
		Author: author,
	}
}
