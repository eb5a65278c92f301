package heroes

import "context"

// HeroRepository defines the interface for Hero-related operations
type HeroRepository interface {
	// Create adds a new Hero together with links to its Teams
	Create(ctx context.Context, hero *Hero) error
	// List lists Heroes inside the page window, ordered by ID
	List(ctx context.Context, page *Page) ([]*Hero, error)
	// GetByID retrieves a Hero and its Teams or returns ErrHeroNotFound
	GetByID(ctx context.Context, heroID int64) (*Hero, error)
	// Update overwrites the scalar columns of a Hero
	Update(ctx context.Context, hero *Hero) error
	// DeleteByID deletes a Hero and its team links
	DeleteByID(ctx context.Context, heroID int64) error
}

// TeamRepository defines the interface for Team-related operations
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	List(ctx context.Context, page *Page) ([]*Team, error)
	// GetByID retrieves a Team and its Heroes or returns ErrTeamNotFound
	GetByID(ctx context.Context, teamID int64) (*Team, error)
	// GetByIDs returns the Teams with the given IDs, or ErrTeamNotFound if any is missing
	GetByIDs(ctx context.Context, teamIDs []int64) ([]*Team, error)
	Update(ctx context.Context, team *Team) error
	// DeleteByID deletes a Team and its hero links
	DeleteByID(ctx context.Context, teamID int64) error
	// AddHero links a Hero to a Team; linking twice is a no-op
	AddHero(ctx context.Context, teamID, heroID int64) error
	// RemoveHero unlinks a Hero from a Team
	RemoveHero(ctx context.Context, teamID, heroID int64) error
}

// HeroService defines the hero use cases
type HeroService interface {
	Create(ctx context.Context, input *HeroInput) (*Hero, error)
	List(ctx context.Context, page *Page) ([]*Hero, error)
	GetByID(ctx context.Context, heroID int64) (*Hero, error)
	Update(ctx context.Context, heroID int64, update *HeroUpdate) (*Hero, error)
	DeleteByID(ctx context.Context, heroID int64) error
}

// TeamService defines the team use cases including membership changes
type TeamService interface {
	Create(ctx context.Context, input *TeamInput) (*Team, error)
	List(ctx context.Context, page *Page) ([]*Team, error)
	GetByID(ctx context.Context, teamID int64) (*Team, error)
	Update(ctx context.Context, teamID int64, update *TeamUpdate) (*Team, error)
	DeleteByID(ctx context.Context, teamID int64) error
	// AddHero links a hero to a team and returns the updated team
	AddHero(ctx context.Context, teamID, heroID int64) (*Team, error)
	// RemoveHero unlinks a hero from a team and returns the updated team
	RemoveHero(ctx context.Context, teamID, heroID int64) (*Team, error)
}
