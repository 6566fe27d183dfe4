package controller

import (
	"errors"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService    *service.CatalogService
	EnrollmentService *service.EnrollmentService
}

func NewCourseController(catalogService *service.CatalogService, enrollmentService *service.EnrollmentService) *CourseController {
	return &CourseController{
		CatalogService:    catalogService,
		EnrollmentService: enrollmentService,
	}
}

// GetCourses godoc
// @Summary List courses
// @Description Catalog listing with optional category, level and featured filters
// @Tags courses
// @Produce  json
// @Param   category query string false "category filter"
// @Param   level query string false "skill level filter"
// @Param   featured query string false "featured only when 'true'"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 500 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	filter := repository.CourseFilter{
		Category:     ctx.Query("category"),
		SkillLevel:   ctx.Query("level"),
		FeaturedOnly: ctx.Query("featured") == "true",
	}

	courses, err := c.CatalogService.ListCourses(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail
// @Description Course with its ordered modules and the five most recent reviews
// @Tags courses
// @Produce  json
// @Param   id path string true "course id"
// @Success 200 {object} util.Response{data=model.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	detail, err := c.CatalogService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// GetCategories godoc
// @Summary Course categories
// @Tags courses
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Failure 500 {object} util.Response
// @Router /api/courses/meta/categories [get]
func (c *CourseController) GetCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.Categories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "course id"
// @Success 201 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(claims.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.EnrollmentsCreated.Inc()
	util.Created(ctx, gin.H{"message": "Enrolled successfully", "enrollmentId": enrollment.ID})
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,gte=0,lte=100"`
}

// UpdateProgress godoc
// @Summary Update course progress
// @Description Stores progress and reports whether the course is now completed
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "course id"
// @Param   body body UpdateProgressRequest true "progress payload"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "enrollment not found"
// @Router /api/courses/{id}/progress [put]
func (c *CourseController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateProgress(claims.UserID, ctx.Param("id"), *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"progress": enrollment.Progress, "completed": enrollment.Completed})
}
