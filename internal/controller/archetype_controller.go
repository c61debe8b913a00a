package controller

import (
	"errors"
	"strconv"

	"cinequiz_backend/internal/scoring"
	"cinequiz_backend/internal/service"
	"cinequiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArchetypeController struct {
	Service *service.ArchetypeService
}

func NewArchetypeController(svc *service.ArchetypeService) *ArchetypeController {
	return &ArchetypeController{Service: svc}
}

// ListPublic godoc
// @Summary Browse the archetype catalog
// @Tags archetypes
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Archetype}
// @Router /api/archetypes [get]
func (c *ArchetypeController) ListPublic(ctx *gin.Context) {
	as, err := c.Service.ListEnabled(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// Create godoc
// @Summary Admin: create an archetype
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ArchetypeRequest true "archetype payload"
// @Success 201 {object} util.Response{data=model.Archetype}
// @Failure 400 {object} util.Response
// @Router /api/admin/archetypes [post]
func (c *ArchetypeController) Create(ctx *gin.Context) {
	var req service.ArchetypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Create(req)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownDimension) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, a)
}

// List godoc
// @Summary Admin: paged archetype list
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/archetypes [get]
func (c *ArchetypeController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	as, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: as, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Admin: archetype detail
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "archetype id"
// @Success 200 {object} util.Response{data=model.Archetype}
// @Failure 404 {object} util.Response
// @Router /api/admin/archetypes/{id} [get]
func (c *ArchetypeController) Get(ctx *gin.Context) {
	a, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, a)
}

// Update godoc
// @Summary Admin: update an archetype
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "archetype id"
// @Param body body service.ArchetypeRequest true "archetype payload"
// @Success 200 {object} util.Response{data=model.Archetype}
// @Failure 400 {object} util.Response
// @Router /api/admin/archetypes/{id} [put]
func (c *ArchetypeController) Update(ctx *gin.Context) {
	var req service.ArchetypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrUnknownDimension):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, a)
}

// Delete godoc
// @Summary Admin: delete an archetype
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "archetype id"
// @Success 200 {object} util.Response
// @Router /api/admin/archetypes/{id} [delete]
func (c *ArchetypeController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
