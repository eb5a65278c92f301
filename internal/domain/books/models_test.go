//go:build unit
// +build unit

package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBook() *Book {
	return &Book{
		Name:     "Dune",
		ISBN:     "978-0441013593",
		Type:     "novel",
		Publish:  "Chilton",
		Price:    9.99,
		AuthorID: 1,
	}
}

func TestBook_Validate(t *testing.T) {
	assert.NoError(t, validBook().Validate())

	blank := validBook()
	blank.Name = "   "
	err := blank.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: notblank")

	negative := validBook()
	negative.Price = -1
	assert.Error(t, negative.Validate())

	orphan := validBook()
	orphan.AuthorID = 0
	assert.Error(t, orphan.Validate())
}

func TestAuthor_Validate(t *testing.T) {
	assert.NoError(t, (&Author{Name: "Frank Herbert"}).Validate())
	assert.Error(t, (&Author{}).Validate())
}

func TestBookFields_Apply(t *testing.T) {
	book := &Book{ID: 7, AuthorID: 3}
	BookFields{Name: "n", ISBN: "i", Type: "t", Publish: "p", Price: 1.5}.Apply(book)

	assert.Equal(t, int64(7), book.ID)
	assert.Equal(t, int64(3), book.AuthorID)
	assert.Equal(t, "n", book.Name)
	assert.Equal(t, 1.5, book.Price)
}

func TestNormalizeNationality(t *testing.T) {
	empty := "  "
	american := " American "

	assert.Nil(t, NormalizeNationality(nil))
	assert.Nil(t, NormalizeNationality(&empty))
	assert.Equal(t, "American", *NormalizeNationality(&american))
}

func TestBookQuery_Validate(t *testing.T) {
	q := NewBookQuery()
	assert.NoError(t, q.Validate())

	q.SortBy = "price"
	q.SortOrder = "DESC"
	assert.NoError(t, q.Validate())

	q.SortBy = "isbn; drop table books"
	assert.Error(t, q.Validate())

	q = NewBookQuery()
	q.SortOrder = "sideways"
	assert.Error(t, q.Validate())

	q = NewBookQuery()
	q.Offset = -1
	assert.Error(t, q.Validate())
}
