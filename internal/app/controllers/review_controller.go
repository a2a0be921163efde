package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/app/services"
	"github.com/campuskit/admitportal/internal/middleware"
	"github.com/campuskit/admitportal/internal/pkg/helpers"
)

// ReviewController handles the admin review endpoints and the student
// resubmission endpoint.
type ReviewController struct {
	reviewService services.ReviewService
	logger        zerolog.Logger
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService, logger zerolog.Logger) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        logger,
	}
}

func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// VerifyStudent applies an approve or decline decision
// @Summary Verify a student application
// @Description Approves or declines a pending application. Declining requires at least one field path; approval clears any stored declined fields.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyStudentRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Validation failed or transition not allowed"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/verify-student [post]
func (c *ReviewController) VerifyStudent(ctx *gin.Context) {
	var req dto.VerifyStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.reviewService.VerifyStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentId", student.ID).
		Str("status", string(student.Status)).
		Strs("declinedFields", student.DeclinedFields).
		Msg("Student application reviewed")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// ResubmitDeclinedFields applies a student's corrections
// @Summary Resubmit declined fields
// @Description Updates only the fields the admin declined and returns the application to pending. Paths outside the declined set are ignored.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResubmitDeclinedRequest true "Field path to corrected value"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Not declined, or no declined field among the updates"
// @Router /student/students/me/update-declined [patch]
func (c *ReviewController) ResubmitDeclinedFields(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ResubmitDeclinedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.reviewService.ResubmitDeclinedFields(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentId", student.ID).
		Strs("remainingDeclined", student.DeclinedFields).
		Msg("Declined fields resubmitted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// ListStudents serves the admin dashboard feed
// @Summary List student applications
// @Description Returns a page of applications, optionally filtered by review status.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, approved, declined)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown status value"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/students [get]
func (c *ReviewController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.StudentStatus
	if raw := ctx.Query("status"); raw != "" {
		candidate := models.StudentStatus(raw)
		switch candidate {
		case models.StatusPending, models.StatusApproved, models.StatusDeclined:
			status = &candidate
		default:
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status filter")
			errorDetail = errorDetail.WithDetails("status must be pending, approved or declined")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	list, err := c.reviewService.ListStudents(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(list.Students, list.Pagination))
}

// GetStudent serves the admin detail view
// @Summary Get one student application
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [get]
func (c *ReviewController) GetStudent(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.reviewService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// SuggestReview serves the advisory pre-review
// @Summary Suggest a review verdict
// @Description Scans the required profile fields and proposes approve or decline with the missing paths. Advisory only; nothing is stored.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReviewSuggestionResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id}/review-suggestion [get]
func (c *ReviewController) SuggestReview(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	suggestion, err := c.reviewService.SuggestReview(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(suggestion))
}
