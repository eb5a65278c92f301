package models

import (
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"not null;uniqueIndex;type:varchar(64)"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
}
