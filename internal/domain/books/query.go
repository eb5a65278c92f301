package books

import (
	"github.com/MGTheTrain/bookshelf/internal/domain"
)

// BookQuery filters, sorts and paginates book listings.
// Zero values mean "no constraint".
type BookQuery struct {
	ID        int64  `validate:"gte=0"`
	Type      string `validate:"omitempty,max=50"`
	AuthorID  int64  `validate:"gte=0"`
	Limit     int    `validate:"gte=0,lte=1000"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=id name price publish type"`
	SortOrder string `validate:"sortorder"`
}

// NewBookQuery returns a query without constraints
func NewBookQuery() *BookQuery {
	return &BookQuery{}
}

// Validate for validating BookQuery struct
func (q *BookQuery) Validate() error {
	return domain.ValidateStruct(q)
}
