package v1

import (
	"encoding/json"
	"reflect"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/catalog"
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
)

// ErrorResponse is the body of every error answer
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse confirms a deletion
type MessageResponse struct {
	Message string `json:"message"`
}

// OKResponse confirms a hero or team deletion
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse reports service and database state
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ---------- catalog ----------

// ItemResponse represents a catalog item
type ItemResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category *string `json:"category,omitempty"`
}

// ValidatedItemResponse echoes a validated item id
type ValidatedItemResponse struct {
	ItemID    int  `json:"item_id"`
	Validated bool `json:"validated"`
}

// ProductDetailsResponse is the optional detail block of a product
type ProductDetailsResponse struct {
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	Reviews     []string `json:"reviews"`
}

// ProductResponse represents a generated product
type ProductResponse struct {
	ID           int                     `json:"id"`
	Name         string                  `json:"name"`
	Price        int                     `json:"price"`
	UserSpecific *string                 `json:"user_specific,omitempty"`
	Details      *ProductDetailsResponse `json:"details,omitempty"`
}

type itemURI struct {
	ItemID int `uri:"item_id" binding:"gt=0"`
}

type validateItemURI struct {
	ItemID int `uri:"item_id" binding:"gt=0,lte=1000"`
}

type listItemsQuery struct {
	Name *string `form:"name"`
}

type searchItemsQuery struct {
	Name  *string  `form:"name"`
	Price *float64 `form:"price"`
}

type filterItemsQuery struct {
	MinPrice       *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice       *int     `form:"max_price"`
	Category       *string  `form:"category"`
	SkipValidating bool     `form:"skip_validating"`
}

type calcQuery struct {
	Price *float64 `form:"price" binding:"required"`
	Tax   float64  `form:"tax,default=0.1"`
}

type divideURI struct {
	A int `uri:"a"`
	B int `uri:"b"`
}

type productURI struct {
	ProductID int `uri:"product_id" binding:"gt=0"`
}

type productQuery struct {
	UserID         *string `form:"user_id"`
	IncludeDetails bool    `form:"include_details,default=false"`
}

func newItemResponse(item catalog.Item) ItemResponse {
	return ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price, Category: item.Category}
}

func newItemResponses(items []catalog.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}
	return out
}

func newProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, UserSpecific: p.UserSpecific}
	if p.Details != nil {
		resp.Details = &ProductDetailsResponse{
			Description: p.Details.Description,
			Specs:       p.Details.Specs,
			Reviews:     p.Details.Reviews,
		}
	}
	return resp
}

// ---------- books & authors ----------

// BookBaseRequest carries the attributes of a book
type BookBaseRequest struct {
	Name    string   `json:"name" binding:"required,notblank,max=255"`
	ISBN    string   `json:"isbn" binding:"required,notblank,max=32"`
	Type    string   `json:"type" binding:"required,notblank,max=50"`
	Publish string   `json:"publish" binding:"required,notblank,max=50"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
}

func (r *BookBaseRequest) fields() books.BookFields {
	return books.BookFields{
		Name:    r.Name,
		ISBN:    r.ISBN,
		Type:    r.Type,
		Publish: r.Publish,
		Price:   *r.Price,
	}
}

// BookRequest creates or replaces a book and names its author
type BookRequest struct {
	BookBaseRequest
	Author            string  `json:"author" binding:"required,notblank,max=255"`
	AuthorNationality *string `json:"author_nationality" binding:"omitempty,max=100"`
}

func (r *BookRequest) toInput() *books.BookInput {
	return &books.BookInput{
		BookFields:        r.fields(),
		Author:            r.Author,
		AuthorNationality: r.AuthorNationality,
	}
}

// AuthorRequest creates an author
type AuthorRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=255"`
	Nationality *string `json:"nationality" binding:"omitempty,max=100"`
}

// BookResponse represents a stored book
type BookResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ISBN     string  `json:"isbn"`
	Type     string  `json:"type"`
	Publish  string  `json:"publish"`
	Price    float64 `json:"price"`
	AuthorID int64   `json:"author_id"`
}

// AuthorResponse represents a stored author
type AuthorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
}

// AuthorWithBooksResponse represents an author and its books
type AuthorWithBooksResponse struct {
	AuthorResponse
	Books []BookResponse `json:"books"`
}

type bookURI struct {
	BookID int64 `uri:"book_id" binding:"gt=0"`
}

type authorURI struct {
	AuthorID int64 `uri:"author_id" binding:"gt=0"`
}

type bookListQuery struct {
	ID        int64  `form:"id" binding:"gte=0"`
	Type      string `form:"type" binding:"omitempty,max=50"`
	Limit     int    `form:"limit" binding:"gte=0,lte=1000"`
	Offset    int    `form:"offset" binding:"gte=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=id name price publish type"`
	SortOrder string `form:"sort_order" binding:"sortorder"`
}

func (q *bookListQuery) toQuery() *books.BookQuery {
	query := books.NewBookQuery()
	query.ID = q.ID
	query.Type = q.Type
	query.Limit = q.Limit
	query.Offset = q.Offset
	query.SortBy = q.SortBy
	query.SortOrder = q.SortOrder
	return query
}

func newBookResponse(b *books.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Name:     b.Name,
		ISBN:     b.ISBN,
		Type:     b.Type,
		Publish:  b.Publish,
		Price:    b.Price,
		AuthorID: b.AuthorID,
	}
}

func newBookResponses(list []*books.Book) []BookResponse {
	out := make([]BookResponse, 0, len(list))
	for _, b := range list {
		out = append(out, newBookResponse(b))
	}
	return out
}

func newAuthorResponse(a *books.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, Nationality: a.Nationality}
}

// ---------- heroes & teams ----------

// HeroCreateRequest creates a hero and optionally links it to teams
type HeroCreateRequest struct {
	Name       string  `json:"name" binding:"required,notblank,max=100"`
	SecretName string  `json:"secret_name" binding:"required,notblank,max=100"`
	Age        *int    `json:"age" binding:"omitempty,gte=0,lte=10000"`
	TeamIDs    []int64 `json:"team_ids" binding:"omitempty,dive,gt=0"`
}

// HeroUpdateRequest patches the fields that are present
type HeroUpdateRequest struct {
	Name       *string     `json:"name" binding:"omitempty,notblank,max=100"`
	SecretName *string     `json:"secret_name" binding:"omitempty,notblank,max=100"`
	Age        NullableInt `json:"age" binding:"omitempty,gte=0,lte=10000"`
}

// NullableInt tells an explicit JSON null apart from an absent field.
// Validation rules apply to the number when one is present.
type NullableInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON is only called when the field is present in the body.
func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// cleared reports an explicit null.
func (n NullableInt) cleared() bool {
	return n.Set && n.Value == nil
}

func nullableIntValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(NullableInt)
	if !ok || n.Value == nil {
		return nil
	}
	return *n.Value
}

// TeamCreateRequest creates a team
type TeamCreateRequest struct {
	Name         string `json:"name" binding:"required,notblank,max=100"`
	Headquarters string `json:"headquarters" binding:"required,notblank,max=255"`
}

// TeamUpdateRequest patches the fields that are present
type TeamUpdateRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,max=100"`
	Headquarters *string `json:"headquarters" binding:"omitempty,notblank,max=255"`
}

// HeroPublic is the public shape of a hero; the secret name is never exposed
type HeroPublic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

// HeroPublicWithTeams is a hero and the teams it belongs to
type HeroPublicWithTeams struct {
	HeroPublic
	Teams []TeamPublic `json:"teams"`
}

// TeamPublic is the public shape of a team
type TeamPublic struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Headquarters string `json:"headquarters"`
}

// TeamPublicWithHeroes is a team and its members
type TeamPublicWithHeroes struct {
	TeamPublic
	Heroes []HeroPublic `json:"heroes"`
}

type heroURI struct {
	HeroID int64 `uri:"hero_id" binding:"gt=0"`
}

type teamURI struct {
	TeamID int64 `uri:"team_id" binding:"gt=0"`
}

type membershipURI struct {
	TeamID int64 `uri:"team_id" binding:"gt=0"`
	HeroID int64 `uri:"hero_id" binding:"gt=0"`
}

type pageQuery struct {
	Offset int `form:"offset,default=0" binding:"gte=0"`
	Limit  int `form:"limit,default=100" binding:"gte=1,lte=100"`
}

func (q *pageQuery) toPage() *heroes.Page {
	return &heroes.Page{Offset: q.Offset, Limit: q.Limit}
}

func newHeroPublic(h *heroes.Hero) HeroPublic {
	return HeroPublic{ID: h.ID, Name: h.Name, Age: h.Age}
}

func newHeroPublicWithTeams(h *heroes.Hero) HeroPublicWithTeams {
	teams := make([]TeamPublic, 0, len(h.Teams))
	for _, t := range h.Teams {
		teams = append(teams, newTeamPublic(t))
	}
	return HeroPublicWithTeams{HeroPublic: newHeroPublic(h), Teams: teams}
}

func newTeamPublic(t *heroes.Team) TeamPublic {
	return TeamPublic{ID: t.ID, Name: t.Name, Headquarters: t.Headquarters}
}

func newTeamPublicWithHeroes(t *heroes.Team) TeamPublicWithHeroes {
	members := make([]HeroPublic, 0, len(t.Heroes))
	for _, h := range t.Heroes {
		members = append(members, newHeroPublic(h))
	}
	return TeamPublicWithHeroes{TeamPublic: newTeamPublic(t), Heroes: members}
}

// ---------- users ----------

// TokenRequest carries login credentials as JSON or form fields
type TokenRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public shape of a user
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}
