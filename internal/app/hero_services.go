package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/transaction"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"
)

// translate maps repository misses to 404 responses
func translate(err error) error {
	switch {
	case errors.Is(err, heroes.ErrHeroNotFound):
		return apperr.NotFound("Hero not found").Wrap(err)
	case errors.Is(err, heroes.ErrTeamNotFound):
		return apperr.NotFound("Team not found").Wrap(err)
	default:
		return err
	}
}

// heroService implements the HeroService interface
type heroService struct {
	heroRepo heroes.HeroRepository
	teamRepo heroes.TeamRepository
	tx       transaction.Transactor
	logger   logger.Logger
}

// NewHeroService creates a new instance of HeroService
func NewHeroService(heroRepo heroes.HeroRepository, teamRepo heroes.TeamRepository, tx transaction.Transactor, logger logger.Logger) (heroes.HeroService, error) {
	if heroRepo == nil || teamRepo == nil || tx == nil {
		return nil, fmt.Errorf("hero service requires repositories and a transactor")
	}
	return &heroService{heroRepo: heroRepo, teamRepo: teamRepo, tx: tx, logger: logger}, nil
}

func (s *heroService) Create(ctx context.Context, input *heroes.HeroInput) (*heroes.Hero, error) {
	hero := &heroes.Hero{Name: input.Name, SecretName: input.SecretName, Age: input.Age}
	if err := hero.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		teams, err := s.teamRepo.GetByIDs(ctx, input.TeamIDs)
		if err != nil {
			return translate(err)
		}
		hero.Teams = teams
		return s.heroRepo.Create(ctx, hero)
	})
	if err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *heroService) List(ctx context.Context, page *heroes.Page) ([]*heroes.Hero, error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	return s.heroRepo.List(ctx, page)
}

func (s *heroService) GetByID(ctx context.Context, heroID int64) (*heroes.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, heroID)
	if err != nil {
		return nil, translate(err)
	}
	return hero, nil
}

// Update applies only the fields set in update
func (s *heroService) Update(ctx context.Context, heroID int64, update *heroes.HeroUpdate) (*heroes.Hero, error) {
	var updated *heroes.Hero

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		hero, err := s.heroRepo.GetByID(ctx, heroID)
		if err != nil {
			return translate(err)
		}

		update.Apply(hero)
		if err := hero.Validate(); err != nil {
			return apperr.Unprocessable("%v", err)
		}
		if err := s.heroRepo.Update(ctx, hero); err != nil {
			return err
		}
		updated = hero
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *heroService) DeleteByID(ctx context.Context, heroID int64) error {
	return translate(s.heroRepo.DeleteByID(ctx, heroID))
}

// teamService implements the TeamService interface
type teamService struct {
	teamRepo heroes.TeamRepository
	heroRepo heroes.HeroRepository
	tx       transaction.Transactor
	logger   logger.Logger
}

// NewTeamService creates a new instance of TeamService
func NewTeamService(teamRepo heroes.TeamRepository, heroRepo heroes.HeroRepository, tx transaction.Transactor, logger logger.Logger) (heroes.TeamService, error) {
	if heroRepo == nil || teamRepo == nil || tx == nil {
		return nil, fmt.Errorf("team service requires repositories and a transactor")
	}
	return &teamService{teamRepo: teamRepo, heroRepo: heroRepo, tx: tx, logger: logger}, nil
}

func (s *teamService) Create(ctx context.Context, input *heroes.TeamInput) (*heroes.Team, error) {
	team := &heroes.Team{Name: input.Name, Headquarters: input.Headquarters}
	if err := team.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	team.Heroes = []*heroes.Hero{}
	return team, nil
}

func (s *teamService) List(ctx context.Context, page *heroes.Page) ([]*heroes.Team, error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}
	return s.teamRepo.List(ctx, page)
}

func (s *teamService) GetByID(ctx context.Context, teamID int64) (*heroes.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, translate(err)
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, teamID int64, update *heroes.TeamUpdate) (*heroes.Team, error) {
	var updated *heroes.Team

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return translate(err)
		}

		update.Apply(team)
		if err := team.Validate(); err != nil {
			return apperr.Unprocessable("%v", err)
		}
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return err
		}
		updated = team
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *teamService) DeleteByID(ctx context.Context, teamID int64) error {
	return translate(s.teamRepo.DeleteByID(ctx, teamID))
}

func (s *teamService) AddHero(ctx context.Context, teamID, heroID int64) (*heroes.Team, error) {
	return s.changeMembership(ctx, teamID, heroID, s.teamRepo.AddHero)
}

func (s *teamService) RemoveHero(ctx context.Context, teamID, heroID int64) (*heroes.Team, error) {
	return s.changeMembership(ctx, teamID, heroID, s.teamRepo.RemoveHero)
}

func (s *teamService) changeMembership(ctx context.Context, teamID, heroID int64, change func(ctx context.Context, teamID, heroID int64) error) (*heroes.Team, error) {
	var team *heroes.Team

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return translate(err)
		}
		if _, err := s.heroRepo.GetByID(ctx, heroID); err != nil {
			return translate(err)
		}
		if err := change(ctx, teamID, heroID); err != nil {
			return err
		}

		var err error
		team, err = s.teamRepo.GetByID(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}
