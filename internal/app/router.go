package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthenticatedRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Catalog: the categories route must precede /courses/:id so
		// "meta" is not taken for a course id.
		public.GET("/courses/meta/categories", c.course.GetCategories)
		public.GET("/courses", c.course.GetCourses)
		public.GET("/courses/:id", c.course.GetCourse)

		public.GET("/reviews", c.review.GetReviews)
		public.GET("/reviews/course/:courseId", c.review.GetCourseReviews)

		public.GET("/certificates/verify/:number", c.certificate.Verify)
		public.GET("/certificates/:id", c.certificate.GetCertificate)
	}
}

func (a *App) registerAuthenticatedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	rg.POST("/courses/:id/enroll", c.course.Enroll)
	rg.PUT("/courses/:id/progress", c.course.UpdateProgress)

	rg.GET("/certificates", c.certificate.GetMyCertificates)
	rg.POST("/certificates/generate", c.certificate.Generate)

	rg.POST("/reviews", c.review.CreateReview)
	rg.DELETE("/reviews/:id", c.review.DeleteReview)

	users := rg.Group("/users")
	{
		users.GET("/enrollments", c.user.GetEnrollments)
		users.GET("/completed", c.user.GetCompleted)
		users.PUT("/profile", c.user.UpdateProfile)
		users.PUT("/password", c.user.ChangePassword)
		users.GET("/stats", c.user.GetStats)
		users.POST("/avatar/upload", c.user.UploadAvatar)
	}
}
