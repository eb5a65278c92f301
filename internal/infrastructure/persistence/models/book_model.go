package models

import (
	"github.com/MGTheTrain/bookshelf/internal/domain/books"
)

// AuthorModel is the GORM database model for authors
type AuthorModel struct {
	ID          int64       `gorm:"primaryKey;autoIncrement"`
	Name        string      `gorm:"not null;index;type:varchar(255)"`
	Nationality *string     `gorm:"type:varchar(100)"`
	Books       []BookModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (AuthorModel) TableName() string {
	return "authors"
}

// ToDomain converts GORM model to domain entity
func (m *AuthorModel) ToDomain() *books.Author {
	return &books.Author{
		ID:          m.ID,
		Name:        m.Name,
		Nationality: m.Nationality,
	}
}

// ToDomainWithBooks converts the model and its preloaded books
func (m *AuthorModel) ToDomainWithBooks() *books.AuthorWithBooks {
	result := &books.AuthorWithBooks{
		Author: *m.ToDomain(),
		Books:  make([]*books.Book, len(m.Books)),
	}
	for i := range m.Books {
		result.Books[i] = m.Books[i].ToDomain()
	}
	return result
}

// FromDomain converts domain entity to GORM model
func (m *AuthorModel) FromDomain(a *books.Author) {
	m.ID = a.ID
	m.Name = a.Name
	m.Nationality = a.Nationality
}

// BookModel is the GORM database model for books
type BookModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	Name     string  `gorm:"not null;uniqueIndex;type:varchar(255)"`
	ISBN     string  `gorm:"column:isbn;not null;type:varchar(32)"`
	Type     string  `gorm:"not null;index;type:varchar(50)"`
	Publish  string  `gorm:"not null;type:varchar(50)"`
	Price    float64 `gorm:"not null"`
	AuthorID int64   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (BookModel) TableName() string {
	return "books"
}

// ToDomain converts GORM model to domain entity
func (m *BookModel) ToDomain() *books.Book {
	return &books.Book{
		ID:       m.ID,
		Name:     m.Name,
		ISBN:     m.ISBN,
		Type:     m.Type,
		Publish:  m.Publish,
		Price:    m.Price,
		AuthorID: m.AuthorID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookModel) FromDomain(b *books.Book) {
	m.ID = b.ID
	m.Name = b.Name
	m.ISBN = b.ISBN
	m.Type = b.Type
	m.Publish = b.Publish
	m.Price = b.Price
	m.AuthorID = b.AuthorID
}
