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

type gormTeamRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTeamRepository creates a new GORM-based TeamRepository implementation
func NewGormTeamRepository(db *gorm.DB, logger logger.Logger) (heroes.TeamRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormTeamRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTeamRepository) Create(ctx context.Context, team *heroes.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TeamModel{}
	model.FromDomain(team)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperr.Database("failed to create team", err)
	}
	team.ID = model.ID

	r.logger.Info("Created team with id ", team.ID)
	return nil
}

func (r *gormTeamRepository) List(ctx context.Context, page *heroes.Page) ([]*heroes.Team, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page: %w", err)
	}

	var modelList []*models.TeamModel
	err := conn(ctx, r.db).Order("id asc").Offset(page.Offset).Limit(page.Limit).Find(&modelList).Error
	if err != nil {
		return nil, apperr.Database("failed to fetch teams", err)
	}

	domainList := make([]*heroes.Team, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTeamRepository) GetByID(ctx context.Context, teamID int64) (*heroes.Team, error) {
	var model models.TeamModel
	err := conn(ctx, r.db).
		Preload("Heroes", func(db *gorm.DB) *gorm.DB { return db.Order("heroes.id asc") }).
		Where("id = ?", teamID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team with id %d: %w", teamID, heroes.ErrTeamNotFound)
		}
		return nil, apperr.Database("failed to fetch team", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]*heroes.Team, error) {
	unique := make(map[int64]struct{}, len(teamIDs))
	ids := make([]int64, 0, len(teamIDs))
	for _, id := range teamIDs {
		if _, seen := unique[id]; !seen {
			unique[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []*heroes.Team{}, nil
	}

	var modelList []*models.TeamModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Database("failed to fetch teams", err)
	}
	if len(modelList) != len(ids) {
		return nil, fmt.Errorf("teams %v: %w", ids, heroes.ErrTeamNotFound)
	}

	domainList := make([]*heroes.Team, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTeamRepository) Update(ctx context.Context, team *heroes.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TeamModel{}
	model.FromDomain(team)

	err := conn(ctx, r.db).Model(&models.TeamModel{}).Where("id = ?", team.ID).
		Select("name", "headquarters").
		Updates(model).Error
	if err != nil {
		return apperr.Database("failed to update team", err)
	}

	r.logger.Info("Updated team with id ", team.ID)
	return nil
}

func (r *gormTeamRepository) DeleteByID(ctx context.Context, teamID int64) error {
	var affected int64
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.HeroTeamLinkModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", teamID).Delete(&models.TeamModel{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return apperr.Database("failed to delete team", err)
	}
	if affected == 0 {
		return fmt.Errorf("team with id %d: %w", teamID, heroes.ErrTeamNotFound)
	}

	r.logger.Info("Deleted team with id ", teamID)
	return nil
}

func (r *gormTeamRepository) AddHero(ctx context.Context, teamID, heroID int64) error {
	link := &models.HeroTeamLinkModel{HeroID: heroID, TeamID: teamID}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
		return apperr.Database("failed to link hero to team", err)
	}

	r.logger.Info(fmt.Sprintf("Linked hero %d to team %d", heroID, teamID))
	return nil
}

func (r *gormTeamRepository) RemoveHero(ctx context.Context, teamID, heroID int64) error {
	err := conn(ctx, r.db).
		Where("hero_id = ? AND team_id = ?", heroID, teamID).
		Delete(&models.HeroTeamLinkModel{}).Error
	if err != nil {
		return apperr.Database("failed to unlink hero from team", err)
	}

	r.logger.Info(fmt.Sprintf("Unlinked hero %d from team %d", heroID, teamID))
	return nil
}
