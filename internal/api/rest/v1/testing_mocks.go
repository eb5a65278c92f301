//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockBookService is a mock implementation of BookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Create(ctx context.Context, input *books.BookInput) (*books.Book, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Book), args.Error(1)
}

func (m *MockBookService) List(ctx context.Context, query *books.BookQuery) ([]*books.Book, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*books.Book), args.Error(1)
}

func (m *MockBookService) GetByID(ctx context.Context, bookID int64) (*books.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Book), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, bookID int64, input *books.BookInput) (*books.Book, error) {
	args := m.Called(ctx, bookID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Book), args.Error(1)
}

func (m *MockBookService) DeleteByID(ctx context.Context, bookID int64) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

// MockAuthorService is a mock implementation of AuthorService
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) Create(ctx context.Context, input *books.AuthorInput) (*books.Author, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Author), args.Error(1)
}

func (m *MockAuthorService) List(ctx context.Context) ([]*books.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*books.Author), args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, authorID int64) (*books.Author, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Author), args.Error(1)
}

func (m *MockAuthorService) DeleteByID(ctx context.Context, authorID int64) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

func (m *MockAuthorService) GetWithBooks(ctx context.Context, authorID int64) (*books.AuthorWithBooks, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.AuthorWithBooks), args.Error(1)
}

func (m *MockAuthorService) AddBook(ctx context.Context, authorID int64, fields books.BookFields) (*books.Book, error) {
	args := m.Called(ctx, authorID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*books.Book), args.Error(1)
}

// MockHeroService is a mock implementation of HeroService
type MockHeroService struct {
	mock.Mock
}

func (m *MockHeroService) Create(ctx context.Context, input *heroes.HeroInput) (*heroes.Hero, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Hero), args.Error(1)
}

func (m *MockHeroService) List(ctx context.Context, page *heroes.Page) ([]*heroes.Hero, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*heroes.Hero), args.Error(1)
}

func (m *MockHeroService) GetByID(ctx context.Context, heroID int64) (*heroes.Hero, error) {
	args := m.Called(ctx, heroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Hero), args.Error(1)
}

func (m *MockHeroService) Update(ctx context.Context, heroID int64, update *heroes.HeroUpdate) (*heroes.Hero, error) {
	args := m.Called(ctx, heroID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Hero), args.Error(1)
}

func (m *MockHeroService) DeleteByID(ctx context.Context, heroID int64) error {
	args := m.Called(ctx, heroID)
	return args.Error(0)
}

// MockTeamService is a mock implementation of TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(ctx context.Context, input *heroes.TeamInput) (*heroes.Team, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Team), args.Error(1)
}

func (m *MockTeamService) List(ctx context.Context, page *heroes.Page) ([]*heroes.Team, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*heroes.Team), args.Error(1)
}

func (m *MockTeamService) GetByID(ctx context.Context, teamID int64) (*heroes.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Team), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, teamID int64, update *heroes.TeamUpdate) (*heroes.Team, error) {
	args := m.Called(ctx, teamID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Team), args.Error(1)
}

func (m *MockTeamService) DeleteByID(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamService) AddHero(ctx context.Context, teamID, heroID int64) (*heroes.Team, error) {
	args := m.Called(ctx, teamID, heroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Team), args.Error(1)
}

func (m *MockTeamService) RemoveHero(ctx context.Context, teamID, heroID int64) (*heroes.Team, error) {
	args := m.Called(ctx, teamID, heroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroes.Team), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, creds *users.Credentials) (*users.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) AuthenticateBasic(ctx context.Context, username, password string) (*users.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*users.Token, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Token), args.Error(1)
}

func (m *MockAuthService) AuthenticateToken(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(ctx context.Context, username string) (*users.Token, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Token), args.Error(1)
}
