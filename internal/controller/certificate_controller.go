package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{
		CertificateService: certificateService,
	}
}

// GetMyCertificates godoc
// @Summary List own certificates
// @Tags certificates
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CertificateDetail}
// @Failure 401 {object} util.Response
// @Router /api/certificates [get]
func (c *CertificateController) GetMyCertificates(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertificateService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, certs)
}

// GetCertificate godoc
// @Summary Certificate lookup
// @Description Public lookup by certificate id or certificate number
// @Tags certificates
// @Produce  json
// @Param   id path string true "certificate id or number"
// @Success 200 {object} util.Response{data=model.CertificateDetail}
// @Failure 404 {object} util.Response
// @Router /api/certificates/{id} [get]
func (c *CertificateController) GetCertificate(ctx *gin.Context) {
	detail, err := c.CertificateService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCertificateNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// swagger:model GenerateCertificateRequest
type GenerateCertificateRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// Generate godoc
// @Summary Generate a completion certificate
// @Description Requires a completed enrollment; idempotent per user and course
// @Tags certificates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body GenerateCertificateRequest true "course reference"
// @Success 200 {object} util.Response{data=model.CertificateDetail} "already issued"
// @Success 201 {object} util.Response{data=model.CertificateDetail} "newly issued"
// @Failure 400 {object} util.Response "course not completed"
// @Router /api/certificates/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	detail, created, err := c.CertificateService.Generate(claims.UserID, req.CourseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotCompleted) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if created {
		util.Created(ctx, detail)
		return
	}
	util.Success(ctx, detail)
}

// Verify godoc
// @Summary Verify a certificate number
// @Description Public validity check for a shared certificate number
// @Tags certificates
// @Produce  json
// @Param   number path string true "certificate number"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "unknown number"
// @Router /api/certificates/verify/{number} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	valid, detail, err := c.CertificateService.Verify(ctx.Param("number"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if !valid {
		ctx.JSON(404, util.Response{
			Code:    404,
			Message: "Certificate not found",
			Data:    gin.H{"valid": false},
		})
		return
	}

	util.Success(ctx, gin.H{"valid": true, "certificate": detail})
}
