package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/domain/catalog"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the in-memory item catalog and the arithmetic endpoints
type CatalogHandler interface {
	ListItems(ctx *gin.Context)
	GetItem(ctx *gin.Context)
	SearchItems(ctx *gin.Context)
	FilterItems(ctx *gin.Context)
	ValidateItem(ctx *gin.Context)
	Calc(ctx *gin.Context)
	Divide(ctx *gin.Context)
	GetProduct(ctx *gin.Context)
}

type catalogHandler struct {
	catalog catalog.Service
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(svc catalog.Service) CatalogHandler {
	return &catalogHandler{catalog: svc}
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return apperr.NotFound("Item not found").Wrap(err)
	case errors.Is(err, catalog.ErrDivisionByZero):
		return apperr.BadRequest("%s", catalog.ErrDivisionByZero.Error()).Wrap(err)
	default:
		return err
	}
}

func (h *catalogHandler) ListItems(ctx *gin.Context) {
	var query listItemsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	ctx.JSON(http.StatusOK, newItemResponses(h.catalog.List(ctx.Request.Context(), query.Name)))
}

// GetItem returns the first item carrying item_id.
func (h *catalogHandler) GetItem(ctx *gin.Context) {
	var uri itemURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	item, err := h.catalog.GetByID(ctx.Request.Context(), uri.ItemID)
	if err != nil {
		abortWithError(ctx, catalogError(err))
		return
	}
	ctx.JSON(http.StatusOK, newItemResponse(*item))
}

func (h *catalogHandler) SearchItems(ctx *gin.Context) {
	var query searchItemsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	ctx.JSON(http.StatusOK, newItemResponses(h.catalog.Search(ctx.Request.Context(), query.Name, query.Price)))
}

func (h *catalogHandler) FilterItems(ctx *gin.Context) {
	var query filterItemsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	items := h.catalog.Filter(ctx.Request.Context(), catalog.Filter{
		MinPrice:       query.MinPrice,
		MaxPrice:       query.MaxPrice,
		Category:       query.Category,
		SkipValidating: query.SkipValidating,
	})
	ctx.JSON(http.StatusOK, newItemResponses(items))
}

// ValidateItem only checks the bounds of item_id.
func (h *catalogHandler) ValidateItem(ctx *gin.Context) {
	var uri validateItemURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	ctx.JSON(http.StatusOK, ValidatedItemResponse{ItemID: uri.ItemID, Validated: true})
}

func (h *catalogHandler) Calc(ctx *gin.Context) {
	var query calcQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	ctx.JSON(http.StatusOK, h.catalog.TotalPrice(*query.Price, query.Tax))
}

func (h *catalogHandler) Divide(ctx *gin.Context) {
	var uri divideURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	result, err := h.catalog.Divide(uri.A, uri.B)
	if err != nil {
		abortWithError(ctx, catalogError(err))
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *catalogHandler) GetProduct(ctx *gin.Context) {
	var uri productURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	var query productQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	product := h.catalog.Product(ctx.Request.Context(), uri.ProductID, query.UserID, query.IncludeDetails)
	ctx.JSON(http.StatusOK, newProductResponse(product))
}
