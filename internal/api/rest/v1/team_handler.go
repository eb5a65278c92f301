package v1

import (
	"context"
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"

	"github.com/gin-gonic/gin"
)

// TeamHandler defines the HTTP handlers for teams and their membership
type TeamHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AddHero(ctx *gin.Context)
	RemoveHero(ctx *gin.Context)
}

type teamHandler struct {
	teams heroes.TeamService
}

// NewTeamHandler creates a TeamHandler
func NewTeamHandler(svc heroes.TeamService) TeamHandler {
	return &teamHandler{teams: svc}
}

func (h *teamHandler) Create(ctx *gin.Context) {
	var req TeamCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	team, err := h.teams.Create(ctx.Request.Context(), &heroes.TeamInput{Name: req.Name, Headquarters: req.Headquarters})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newTeamPublic(team))
}

func (h *teamHandler) List(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	list, err := h.teams.List(ctx.Request.Context(), query.toPage())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	out := make([]TeamPublic, 0, len(list))
	for _, team := range list {
		out = append(out, newTeamPublic(team))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *teamHandler) GetByID(ctx *gin.Context) {
	var uri teamURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	team, err := h.teams.GetByID(ctx.Request.Context(), uri.TeamID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTeamPublicWithHeroes(team))
}

func (h *teamHandler) Update(ctx *gin.Context) {
	var uri teamURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}
	var req TeamUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	team, err := h.teams.Update(ctx.Request.Context(), uri.TeamID, &heroes.TeamUpdate{Name: req.Name, Headquarters: req.Headquarters})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTeamPublic(team))
}

func (h *teamHandler) DeleteByID(ctx *gin.Context) {
	var uri teamURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	if err := h.teams.DeleteByID(ctx.Request.Context(), uri.TeamID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, OKResponse{OK: true})
}

// AddHero links the hero to the team and returns the team with its members.
func (h *teamHandler) AddHero(ctx *gin.Context) {
	h.changeMembership(ctx, h.teams.AddHero)
}

// RemoveHero unlinks the hero and returns the team with its remaining members.
func (h *teamHandler) RemoveHero(ctx *gin.Context) {
	h.changeMembership(ctx, h.teams.RemoveHero)
}

func (h *teamHandler) changeMembership(ctx *gin.Context, change func(c context.Context, teamID, heroID int64) (*heroes.Team, error)) {
	var uri membershipURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	team, err := change(ctx.Request.Context(), uri.TeamID, uri.HeroID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTeamPublicWithHeroes(team))
}
