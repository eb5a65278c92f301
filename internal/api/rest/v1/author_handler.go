package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"

	"github.com/gin-gonic/gin"
)

// AuthorHandler defines the HTTP handlers for authors and their books
type AuthorHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListBooks(ctx *gin.Context)
	AddBook(ctx *gin.Context)
}

type authorHandler struct {
	authors books.AuthorService
}

// NewAuthorHandler creates an AuthorHandler
func NewAuthorHandler(svc books.AuthorService) AuthorHandler {
	return &authorHandler{authors: svc}
}

func (h *authorHandler) Create(ctx *gin.Context) {
	var req AuthorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	author, err := h.authors.Create(ctx.Request.Context(), &books.AuthorInput{Name: req.Name, Nationality: req.Nationality})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newAuthorResponse(author))
}

func (h *authorHandler) List(ctx *gin.Context) {
	list, err := h.authors.List(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	out := make([]AuthorResponse, 0, len(list))
	for _, a := range list {
		out = append(out, newAuthorResponse(a))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *authorHandler) GetByID(ctx *gin.Context) {
	var uri authorURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	author, err := h.authors.GetByID(ctx.Request.Context(), uri.AuthorID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newAuthorResponse(author))
}

// DeleteByID removes an author that no longer owns books.
func (h *authorHandler) DeleteByID(ctx *gin.Context) {
	var uri authorURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	if err := h.authors.DeleteByID(ctx.Request.Context(), uri.AuthorID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Author with id %d deleted successfully", uri.AuthorID)})
}

func (h *authorHandler) ListBooks(ctx *gin.Context) {
	var uri authorURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	author, err := h.authors.GetWithBooks(ctx.Request.Context(), uri.AuthorID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, AuthorWithBooksResponse{
		AuthorResponse: newAuthorResponse(&author.Author),
		Books:          newBookResponses(author.Books),
	})
}

// AddBook creates a book owned by the author in the path.
func (h *authorHandler) AddBook(ctx *gin.Context) {
	var uri authorURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	var req BookBaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	book, err := h.authors.AddBook(ctx.Request.Context(), uri.AuthorID, req.fields())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBookResponse(book))
}
