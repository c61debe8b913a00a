package controller

import (
	"errors"
	"strconv"

	"cinequiz_backend/internal/scoring"
	"cinequiz_backend/internal/service"
	"cinequiz_backend/internal/util"
	"cinequiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssessmentController struct {
	Assessments *service.AssessmentService
	Questions   *service.QuestionService
}

func NewAssessmentController(assessments *service.AssessmentService, questions *service.QuestionService) *AssessmentController {
	return &AssessmentController{
		Assessments: assessments,
		Questions:   questions,
	}
}

// GetQuizQuestions godoc
// @Summary Fetch the quiz catalog for a new session
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.StudentQuizQuestion}
// @Failure 403 {object} util.Response
// @Router /api/quiz/questions [get]
func (c *AssessmentController) GetQuizQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.Assessments.GetQuizStatus(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !status.CanRetake {
		util.Error(ctx, 403, "you already completed the quiz")
		return
	}

	qs, err := c.Questions.ListStudentQuestions(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// SubmitQuiz godoc
// @Summary Submit a completed answer set and receive the computed result
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitAssessmentRequest true "answers for every question"
// @Success 201 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/quiz/submit [post]
func (c *AssessmentController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Assessments.Submit(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRetakeNotAllowed):
			monitoring.AssessmentCounter.WithLabelValues("retake_denied").Inc()
			util.Error(ctx, 403, err.Error())
		case errors.Is(err, util.ErrIncompleteAnswers),
			errors.Is(err, scoring.ErrAnswerOutOfOrder):
			monitoring.AssessmentCounter.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
		default:
			// Catalog defects and persistence failures are all terminal for
			// the session; the client restarts from scratch.
			monitoring.AssessmentCounter.WithLabelValues("failed").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.AssessmentCounter.WithLabelValues("completed").Inc()
	util.Created(ctx, result)
}

// GetLatestResult godoc
// @Summary Latest assessment result for the current user
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 404 {object} util.Response
// @Router /api/quiz/result [get]
func (c *AssessmentController) GetLatestResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Assessments.GetLatestResult(user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// ListMyResults godoc
// @Summary All past results for the current user, newest first
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.AssessmentResult}
// @Router /api/quiz/results [get]
func (c *AssessmentController) ListMyResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.Assessments.ListUserResults(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// GetQuizStatus godoc
// @Summary Whether the current user may (re)take the quiz
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.QuizStatus}
// @Router /api/quiz/status [get]
func (c *AssessmentController) GetQuizStatus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.Assessments.GetQuizStatus(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, status)
}

// ListResults godoc
// @Summary Admin: paged list of all results
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/results [get]
func (c *AssessmentController) ListResults(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	results, total, err := c.Assessments.ListResults(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: results, Total: total, Page: page, Limit: limit})
}

// GetResultDetail godoc
// @Summary Admin: one result with its raw answers
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "result id"
// @Success 200 {object} util.Response{data=service.ResultDetail}
// @Failure 404 {object} util.Response
// @Router /api/admin/results/{id} [get]
func (c *AssessmentController) GetResultDetail(ctx *gin.Context) {
	detail, err := c.Assessments.GetResultDetail(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

type RetakeRequest struct {
	UserIDs   []uint `json:"userIds" binding:"required"`
	CanRetake bool   `json:"canRetake"`
}

// SetRetake godoc
// @Summary Admin: toggle retake permission for users
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RetakeRequest true "user ids and flag"
// @Success 200 {object} util.Response
// @Router /api/admin/users/retake [post]
func (c *AssessmentController) SetRetake(ctx *gin.Context) {
	var req RetakeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Assessments.SetRetake(req.UserIDs, req.CanRetake); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
