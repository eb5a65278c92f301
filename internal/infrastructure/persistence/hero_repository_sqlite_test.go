//go:build unit
// +build unit

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTeam(t *testing.T, tc *TestContext, name string) *heroes.Team {
	t.Helper()
	team := &heroes.Team{Name: name, Headquarters: name + " HQ"}
	require.NoError(t, tc.TeamRepo.Create(context.Background(), team))
	return team
}

func TestHeroSqliteRepository_CreateWithTeams(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	preventers := createTeam(t, tc, "Preventers")
	zForce := createTeam(t, tc, "Z-Force")

	hero := &heroes.Hero{Name: "Deadpond", SecretName: "Dive Wilson", Teams: []*heroes.Team{preventers, zForce}}
	require.NoError(t, tc.HeroRepo.Create(context.Background(), hero))
	assert.NotZero(t, hero.ID)

	fetched, err := tc.HeroRepo.GetByID(context.Background(), hero.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Teams, 2)
	assert.Equal(t, "Preventers", fetched.Teams[0].Name)
	assert.Nil(t, fetched.Age)

	team, err := tc.TeamRepo.GetByID(context.Background(), zForce.ID)
	require.NoError(t, err)
	require.Len(t, team.Heroes, 1)
	assert.Equal(t, "Deadpond", team.Heroes[0].Name)
}

func TestHeroSqliteRepository_ListPage(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	for _, name := range []string{"Deadpond", "Spider-Boy", "Rusty-Man"} {
		require.NoError(t, tc.HeroRepo.Create(context.Background(), &heroes.Hero{Name: name, SecretName: "secret"}))
	}

	page, err := tc.HeroRepo.List(context.Background(), &heroes.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Spider-Boy", page[0].Name)

	_, err = tc.HeroRepo.List(context.Background(), &heroes.Page{Limit: 101})
	assert.Error(t, err)
}

func TestHeroSqliteRepository_UpdateClearsNothingUnset(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	age := 30
	hero := &heroes.Hero{Name: "Spider-Boy", SecretName: "Pedro Parqueador", Age: &age}
	require.NoError(t, tc.HeroRepo.Create(context.Background(), hero))

	hero.Name = "Spider-Youngster"
	require.NoError(t, tc.HeroRepo.Update(context.Background(), hero))

	fetched, err := tc.HeroRepo.GetByID(context.Background(), hero.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spider-Youngster", fetched.Name)
	require.NotNil(t, fetched.Age)
	assert.Equal(t, 30, *fetched.Age)
}

func TestHeroSqliteRepository_DeleteRemovesLinks(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	team := createTeam(t, tc, "Preventers")
	hero := &heroes.Hero{Name: "Deadpond", SecretName: "Dive Wilson", Teams: []*heroes.Team{team}}
	require.NoError(t, tc.HeroRepo.Create(context.Background(), hero))

	require.NoError(t, tc.HeroRepo.DeleteByID(context.Background(), hero.ID))

	var links int64
	require.NoError(t, tc.DB.Model(&models.HeroTeamLinkModel{}).Where("hero_id = ?", hero.ID).Count(&links).Error)
	assert.Zero(t, links)

	_, err := tc.HeroRepo.GetByID(context.Background(), hero.ID)
	assert.ErrorIs(t, err, heroes.ErrHeroNotFound)
	assert.ErrorIs(t, tc.HeroRepo.DeleteByID(context.Background(), hero.ID), heroes.ErrHeroNotFound)
}

func TestTeamSqliteRepository_Membership(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	team := createTeam(t, tc, "Preventers")
	hero := &heroes.Hero{Name: "Rusty-Man", SecretName: "Tommy Sharp"}
	require.NoError(t, tc.HeroRepo.Create(context.Background(), hero))

	require.NoError(t, tc.TeamRepo.AddHero(context.Background(), team.ID, hero.ID))
	require.NoError(t, tc.TeamRepo.AddHero(context.Background(), team.ID, hero.ID))

	fetched, err := tc.TeamRepo.GetByID(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Heroes, 1)

	require.NoError(t, tc.TeamRepo.RemoveHero(context.Background(), team.ID, hero.ID))
	fetched, err = tc.TeamRepo.GetByID(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Heroes)
}

func TestTeamSqliteRepository_GetByIDs(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	a := createTeam(t, tc, "A")
	b := createTeam(t, tc, "B")

	teams, err := tc.TeamRepo.GetByIDs(context.Background(), []int64{b.ID, a.ID, a.ID})
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	_, err = tc.TeamRepo.GetByIDs(context.Background(), []int64{a.ID, 999})
	assert.ErrorIs(t, err, heroes.ErrTeamNotFound)

	empty, err := tc.TeamRepo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTeamSqliteRepository_UpdateAndDelete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	team := createTeam(t, tc, "Preventers")

	team.Headquarters = "Sharp Tower"
	require.NoError(t, tc.TeamRepo.Update(context.Background(), team))

	fetched, err := tc.TeamRepo.GetByID(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharp Tower", fetched.Headquarters)

	require.NoError(t, tc.TeamRepo.DeleteByID(context.Background(), team.ID))
	assert.ErrorIs(t, tc.TeamRepo.DeleteByID(context.Background(), team.ID), heroes.ErrTeamNotFound)
}
