package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormHeroRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHeroRepository creates a new GORM-based HeroRepository implementation
func NewGormHeroRepository(db *gorm.DB, logger logger.Logger) (heroes.HeroRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormHeroRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHeroRepository) Create(ctx context.Context, hero *heroes.Hero) error {
	if err := hero.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HeroModel{}
	model.FromDomain(hero)

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if len(hero.Teams) == 0 {
			return nil
		}
		links := make([]models.HeroTeamLinkModel, 0, len(hero.Teams))
		for _, team := range hero.Teams {
			links = append(links, models.HeroTeamLinkModel{HeroID: model.ID, TeamID: team.ID})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	if err != nil {
		return apperr.Database("failed to create hero", err)
	}
	hero.ID = model.ID

	r.logger.Info("Created hero with id ", hero.ID)
	return nil
}

func (r *gormHeroRepository) List(ctx context.Context, page *heroes.Page) ([]*heroes.Hero, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page: %w", err)
	}

	var modelList []*models.HeroModel
	err := conn(ctx, r.db).Order("id asc").Offset(page.Offset).Limit(page.Limit).Find(&modelList).Error
	if err != nil {
		return nil, apperr.Database("failed to fetch heroes", err)
	}

	domainList := make([]*heroes.Hero, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormHeroRepository) GetByID(ctx context.Context, heroID int64) (*heroes.Hero, error) {
	var model models.HeroModel
	err := conn(ctx, r.db).
		Preload("Teams", func(db *gorm.DB) *gorm.DB { return db.Order("teams.id asc") }).
		Where("id = ?", heroID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hero with id %d: %w", heroID, heroes.ErrHeroNotFound)
		}
		return nil, apperr.Database("failed to fetch hero", err)
	}
	return model.ToDomain(), nil
}

func (r *gormHeroRepository) Update(ctx context.Context, hero *heroes.Hero) error {
	if err := hero.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HeroModel{}
	model.FromDomain(hero)

	err := conn(ctx, r.db).Model(&models.HeroModel{}).Where("id = ?", hero.ID).
		Select("name", "secret_name", "age").
		Updates(model).Error
	if err != nil {
		return apperr.Database("failed to update hero", err)
	}

	r.logger.Info("Updated hero with id ", hero.ID)
	return nil
}

func (r *gormHeroRepository) DeleteByID(ctx context.Context, heroID int64) error {
	var affected int64
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hero_id = ?", heroID).Delete(&models.HeroTeamLinkModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", heroID).Delete(&models.HeroModel{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return apperr.Database("failed to delete hero", err)
	}
	if affected == 0 {
		return fmt.Errorf("hero with id %d: %w", heroID, heroes.ErrHeroNotFound)
	}

	r.logger.Info("Deleted hero with id ", heroID)
	return nil
}
