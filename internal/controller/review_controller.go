package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService  *service.ReviewService
	CatalogService *service.CatalogService
}

func NewReviewController(reviewService *service.ReviewService, catalogService *service.CatalogService) *ReviewController {
	return &ReviewController{
		ReviewService:  reviewService,
		CatalogService: catalogService,
	}
}

// GetReviews godoc
// @Summary Recent reviews
// @Description Site-wide recent reviews for the homepage
// @Tags reviews
// @Produce  json
// @Param   limit query int false "max results" default(10)
// @Success 200 {object} util.Response{data=[]model.ReviewWithCourse}
// @Failure 500 {object} util.Response
// @Router /api/reviews [get]
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	reviews, err := c.ReviewService.ListRecent(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reviews)
}

// GetCourseReviews godoc
// @Summary Reviews for a course
// @Tags reviews
// @Produce  json
// @Param   courseId path string true "course id"
// @Success 200 {object} util.Response{data=[]model.ReviewWithUser}
// @Failure 500 {object} util.Response
// @Router /api/reviews/course/{courseId} [get]
func (c *ReviewController) GetCourseReviews(ctx *gin.Context) {
	reviews, err := c.ReviewService.ListByCourse(ctx.Param("courseId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reviews)
}

// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// CreateReview godoc
// @Summary Post a review
// @Description One review per user per course; requires an enrollment
// @Tags reviews
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateReviewRequest true "review payload"
// @Success 201 {object} util.Response{data=model.ReviewWithUser}
// @Failure 400 {object} util.Response "bad rating or missing course"
// @Failure 403 {object} util.Response "not enrolled"
// @Failure 409 {object} util.Response "already reviewed"
// @Router /api/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.ReviewService.Create(claims.UserID, req.CourseID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidRating):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyReviewed):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	// Cached course detail carries recent reviews; drop it so the new one
	// shows up.
	c.CatalogService.InvalidateCourse(ctx.Request.Context(), req.CourseID)

	util.Created(ctx, review)
}

// DeleteReview godoc
// @Summary Delete own review
// @Tags reviews
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "review id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "not the author"
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ReviewService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		switch {
		case errors.Is(err, util.ErrReviewNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotReviewAuthor):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Review deleted successfully"})
}
