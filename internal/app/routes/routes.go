package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskit/admitportal/internal/app/controllers"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/middleware"
	"github.com/campuskit/admitportal/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	sarController *controllers.SARController,
	reviewController *controllers.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	// Enrollment-number lookup serves the public notice board.
	v1.GET("/sar/student/:enrollmentNo", sarController.GetPublicByEnrollmentNo)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Student academic record routes. The owner is always the token holder.
	sar := authenticated.Group("/sar")
	sar.Use(authMiddleware.RoleRequired(auth.RoleStudent))
	{
		sar.GET("/overview", sarController.GetOverview)
		sar.PUT("/overview", sarController.UpdateOverview)

		sar.GET("/academic", sarController.ListAcademicRecords)
		sar.POST("/academic", sarController.CreateAcademicRecord)
		sar.PUT("/academic/:id", sarController.UpdateAcademicRecord)
		sar.DELETE("/academic/:id", sarController.DeleteAcademicRecord)

		sar.GET("/internships", sarController.ListInternships)
		sar.POST("/internships", sarController.CreateInternship)
		sar.PUT("/internships/:id", sarController.UpdateInternship)
		sar.DELETE("/internships/:id", sarController.DeleteInternship)

		sar.GET("/achievements", sarController.ListAchievements)
		sar.POST("/achievements", sarController.CreateAchievement)
		sar.PUT("/achievements/:id", sarController.UpdateAchievement)
		sar.DELETE("/achievements/:id", sarController.DeleteAchievement)

		sar.GET("/complete", sarController.GetCompleteSAR)
		sar.GET("/statistics", sarController.GetStatistics)
	}

	// Student resubmission of declined application fields.
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(auth.RoleStudent))
	{
		student.PATCH("/students/me/update-declined", reviewController.ResubmitDeclinedFields)
	}

	// Admin review routes.
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		admin.POST("/verify-student", reviewController.VerifyStudent)
		admin.GET("/students", reviewController.ListStudents)
		admin.GET("/students/:id", reviewController.GetStudent)
		admin.GET("/students/:id/review-suggestion", reviewController.SuggestReview)
		admin.GET("/sar/:enrollmentNo", sarController.GetCompleteByEnrollmentNo)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
