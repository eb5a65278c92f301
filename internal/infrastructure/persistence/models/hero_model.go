package models

import (
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
)

// HeroModel is the GORM database model for heroes
type HeroModel struct {
	ID         int64       `gorm:"primaryKey;autoIncrement"`
	Name       string      `gorm:"not null;index;type:varchar(100)"`
	SecretName string      `gorm:"not null;type:varchar(100)"`
	Age        *int        `gorm:"index"`
	Teams      []TeamModel `gorm:"many2many:hero_team_links;joinForeignKey:HeroID;joinReferences:TeamID"`
}

// TableName specifies the table name for GORM
func (HeroModel) TableName() string {
	return "heroes"
}

// ToDomain converts the model and any preloaded teams. Teams of the
// returned hero carry no heroes of their own.
func (m *HeroModel) ToDomain() *heroes.Hero {
	hero := &heroes.Hero{
		ID:         m.ID,
		Name:       m.Name,
		SecretName: m.SecretName,
		Age:        m.Age,
		Teams:      make([]*heroes.Team, len(m.Teams)),
	}
	for i := range m.Teams {
		hero.Teams[i] = m.Teams[i].toDomainShallow()
	}
	return hero
}

func (m *HeroModel) toDomainShallow() *heroes.Hero {
	return &heroes.Hero{ID: m.ID, Name: m.Name, SecretName: m.SecretName, Age: m.Age}
}

// FromDomain converts the scalar fields of the domain entity
func (m *HeroModel) FromDomain(h *heroes.Hero) {
	m.ID = h.ID
	m.Name = h.Name
	m.SecretName = h.SecretName
	m.Age = h.Age
}

// TeamModel is the GORM database model for teams
type TeamModel struct {
	ID           int64       `gorm:"primaryKey;autoIncrement"`
	Name         string      `gorm:"not null;index;type:varchar(100)"`
	Headquarters string      `gorm:"not null;type:varchar(255)"`
	Heroes       []HeroModel `gorm:"many2many:hero_team_links;joinForeignKey:TeamID;joinReferences:HeroID"`
}

// TableName specifies the table name for GORM
func (TeamModel) TableName() string {
	return "teams"
}

// ToDomain converts the model and any preloaded heroes
func (m *TeamModel) ToDomain() *heroes.Team {
	team := m.toDomainShallow()
	team.Heroes = make([]*heroes.Hero, len(m.Heroes))
	for i := range m.Heroes {
		team.Heroes[i] = m.Heroes[i].toDomainShallow()
	}
	return team
}

func (m *TeamModel) toDomainShallow() *heroes.Team {
	return &heroes.Team{ID: m.ID, Name: m.Name, Headquarters: m.Headquarters}
}

// FromDomain converts the scalar fields of the domain entity
func (m *TeamModel) FromDomain(t *heroes.Team) {
	m.ID = t.ID
	m.Name = t.Name
	m.Headquarters = t.Headquarters
}

// HeroTeamLinkModel is a row of the hero/team join table
type HeroTeamLinkModel struct {
	HeroID int64 `gorm:"primaryKey"`
	TeamID int64 `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (HeroTeamLinkModel) TableName() string {
	return "hero_team_links"
}
