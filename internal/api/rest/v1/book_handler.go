package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"

	"github.com/gin-gonic/gin"
)

// BookHandler defines the HTTP handlers for books
type BookHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type bookHandler struct {
	books books.BookService
}

// NewBookHandler creates a BookHandler
func NewBookHandler(svc books.BookService) BookHandler {
	return &bookHandler{books: svc}
}

// Create stores a new book and resolves its author by name and nationality.
func (h *bookHandler) Create(ctx *gin.Context) {
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	book, err := h.books.Create(ctx.Request.Context(), req.toInput())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBookResponse(book))
}

// List filters, sorts and paginates books from query parameters.
func (h *bookHandler) List(ctx *gin.Context) {
	var query bookListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	list, err := h.books.List(ctx.Request.Context(), query.toQuery())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookResponses(list))
}

func (h *bookHandler) GetByID(ctx *gin.Context) {
	var uri bookURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	book, err := h.books.GetByID(ctx.Request.Context(), uri.BookID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookResponse(book))
}

// Update replaces every field of a book.
func (h *bookHandler) Update(ctx *gin.Context) {
	var uri bookURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	book, err := h.books.Update(ctx.Request.Context(), uri.BookID, req.toInput())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookResponse(book))
}

func (h *bookHandler) DeleteByID(ctx *gin.Context) {
	var uri bookURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	if err := h.books.DeleteByID(ctx.Request.Context(), uri.BookID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Book with id %d deleted successfully", uri.BookID)})
}
