// Package heroes defines heroes, teams and the many-to-many membership between them.
package heroes

import (
	"errors"

	"github.com/MGTheTrain/bookshelf/internal/domain"
)

var (
	// ErrHeroNotFound is returned by repositories when no hero matches
	ErrHeroNotFound = errors.New("hero not found")
	// ErrTeamNotFound is returned by repositories when no team matches
	ErrTeamNotFound = errors.New("team not found")
)

// MaxPageLimit bounds the page size of hero and team listings
const MaxPageLimit = 100

// Hero entity. SecretName is never exposed by the public representation.
type Hero struct {
	ID         int64  `validate:"gte=0"`
	Name       string `validate:"required,notblank,max=100"`
	SecretName string `validate:"required,notblank,max=100"`
	Age        *int   `validate:"omitempty,gte=0,lte=10000"`
	Teams      []*Team
}

// Validate for validating Hero struct
func (h *Hero) Validate() error {
	return domain.ValidateStruct(h)
}

// Team entity
type Team struct {
	ID           int64  `validate:"gte=0"`
	Name         string `validate:"required,notblank,max=100"`
	Headquarters string `validate:"required,notblank,max=255"`
	Heroes       []*Hero
}

// Validate for validating Team struct
func (t *Team) Validate() error {
	return domain.ValidateStruct(t)
}

// HeroInput describes a new hero and the teams it joins on creation
type HeroInput struct {
	Name       string
	SecretName string
	Age        *int
	TeamIDs    []int64
}

// HeroUpdate carries the fields of a partial update. Nil fields are left as
// they are. ClearAge unsets the age and takes precedence over Age.
type HeroUpdate struct {
	Name       *string
	SecretName *string
	Age        *int
	ClearAge   bool
}

// Apply copies every set field onto h.
func (u *HeroUpdate) Apply(h *Hero) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.SecretName != nil {
		h.SecretName = *u.SecretName
	}
	switch {
	case u.ClearAge:
		h.Age = nil
	case u.Age != nil:
		age := *u.Age
		h.Age = &age
	}
}

// TeamInput describes a new team
type TeamInput struct {
	Name         string
	Headquarters string
}

// TeamUpdate carries the fields of a partial team update
type TeamUpdate struct {
	Name         *string
	Headquarters *string
}

// Apply copies every set field onto t.
func (u *TeamUpdate) Apply(t *Team) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Headquarters != nil {
		t.Headquarters = *u.Headquarters
	}
}

// Page is an offset based window over a listing
type Page struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=1,lte=100"`
}

// NewPage returns the first page with the maximum size
func NewPage() *Page {
	return &Page{Offset: 0, Limit: MaxPageLimit}
}

// Validate for validating Page struct
func (p *Page) Validate() error {
	return domain.ValidateStruct(p)
}
