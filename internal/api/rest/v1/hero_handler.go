package v1

import (
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"

	"github.com/gin-gonic/gin"
)

// HeroHandler defines the HTTP handlers for heroes
type HeroHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type heroHandler struct {
	heroes heroes.HeroService
}

// NewHeroHandler creates a HeroHandler
func NewHeroHandler(svc heroes.HeroService) HeroHandler {
	return &heroHandler{heroes: svc}
}

// Create stores a hero and links it to the requested teams.
func (h *heroHandler) Create(ctx *gin.Context) {
	var req HeroCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	hero, err := h.heroes.Create(ctx.Request.Context(), &heroes.HeroInput{
		Name:       req.Name,
		SecretName: req.SecretName,
		Age:        req.Age,
		TeamIDs:    req.TeamIDs,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newHeroPublic(hero))
}

func (h *heroHandler) List(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	list, err := h.heroes.List(ctx.Request.Context(), query.toPage())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	out := make([]HeroPublic, 0, len(list))
	for _, hero := range list {
		out = append(out, newHeroPublic(hero))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *heroHandler) GetByID(ctx *gin.Context) {
	var uri heroURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	hero, err := h.heroes.GetByID(ctx.Request.Context(), uri.HeroID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newHeroPublicWithTeams(hero))
}

// Update applies only the fields present in the body.
func (h *heroHandler) Update(ctx *gin.Context) {
	var uri heroURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	var req HeroUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	hero, err := h.heroes.Update(ctx.Request.Context(), uri.HeroID, &heroes.HeroUpdate{
		Name:       req.Name,
		SecretName: req.SecretName,
		Age:        req.Age.Value,
		ClearAge:   req.Age.cleared(),
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newHeroPublic(hero))
}

func (h *heroHandler) DeleteByID(ctx *gin.Context) {
	var uri heroURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	if err := h.heroes.DeleteByID(ctx.Request.Context(), uri.HeroID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, OKResponse{OK: true})
}
