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

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// Create godoc
// @Summary Admin: create a quiz question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizQuestionRequest true "question payload"
// @Success 201 {object} util.Response{data=model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/quiz/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Create(req)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownDimension) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, q)
}

// List godoc
// @Summary Admin: paged question list
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/quiz/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	qs, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Admin: question detail
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Failure 404 {object} util.Response
// @Router /api/admin/quiz/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.Get(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, q)
}

// Update godoc
// @Summary Admin: update a quiz question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.QuizQuestionRequest true "question payload"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/quiz/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Update(uint(id), req)
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

	util.Success(ctx, q)
}

// Delete godoc
// @Summary Admin: delete a quiz question
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/quiz/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
