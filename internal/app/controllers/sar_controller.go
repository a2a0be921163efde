// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/app/services"
	"github.com/campuskit/admitportal/internal/middleware"
)

// SARController handles the student academic record endpoints. Every
// student-scoped route derives the owner from the authenticated token, never
// from the URL.
type SARController struct {
	sarService services.SARService
	logger     zerolog.Logger
}

// NewSARController creates a new SARController
func NewSARController(sarService services.SARService, logger zerolog.Logger) *SARController {
	return &SARController{
		sarService: sarService,
		logger:     logger,
	}
}

func (c *SARController) currentStudentID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return id, ok
}

func parseRecordID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetOverview returns the caller's SAR header
// @Summary Get academic record overview
// @Description Returns the caller's academic record header, creating an empty one on first access.
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.SARHeader}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sar/overview [get]
func (c *SARController) GetOverview(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	header, err := c.sarService.GetOverview(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to get overview")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(header))
}

// UpdateOverview updates the caller's SAR header
// @Summary Update academic record overview
// @Description Updates the header identity fields. Absent fields are left untouched.
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateOverviewRequest true "Header fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SARHeader}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /sar/overview [put]
func (c *SARController) UpdateOverview(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOverviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	header, err := c.sarService.UpdateOverview(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(header))
}

// ListAcademicRecords lists the caller's semester records
// @Summary List academic records
// @Description Returns all semester records, semester ascending.
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicRecord}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /sar/academic [get]
func (c *SARController) ListAcademicRecords(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	records, err := c.sarService.ListAcademicRecords(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// CreateAcademicRecord adds a semester record
// @Summary Create academic record
// @Description Adds one semester attempt. At most one record per semester; a duplicate is a conflict.
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AcademicRecordRequest true "Semester record"
// @Success 201 {object} dto.APIResponse{data=models.AcademicRecord}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Semester already recorded"
// @Router /sar/academic [post]
func (c *SARController) CreateAcademicRecord(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	var req dto.AcademicRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.CreateAcademicRecord(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("studentId", studentID).Int("semester", record.Semester).Msg("Academic record created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// UpdateAcademicRecord rewrites an owned semester record
// @Summary Update academic record
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.AcademicRecordRequest true "Semester record"
// @Success 200 {object} dto.APIResponse{data=models.AcademicRecord}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Semester already recorded"
// @Router /sar/academic/{id} [put]
func (c *SARController) UpdateAcademicRecord(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.AcademicRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.UpdateAcademicRecord(ctx.Request.Context(), studentID, recordID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// DeleteAcademicRecord removes an owned semester record
// @Summary Delete academic record
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /sar/academic/{id} [delete]
func (c *SARController) DeleteAcademicRecord(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	if err := c.sarService.DeleteAcademicRecord(ctx.Request.Context(), studentID, recordID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic record deleted"))
}

// ListInternships lists the caller's internships
// @Summary List internships
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipResponse}
// @Router /sar/internships [get]
func (c *SARController) ListInternships(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	records, err := c.sarService.ListInternships(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// CreateInternship adds an internship record
// @Summary Create internship
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InternshipRecordRequest true "Internship record"
// @Success 201 {object} dto.APIResponse{data=dto.InternshipResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /sar/internships [post]
func (c *SARController) CreateInternship(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	var req dto.InternshipRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.CreateInternship(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// UpdateInternship rewrites an owned internship record
// @Summary Update internship
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.InternshipRecordRequest true "Internship record"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /sar/internships/{id} [put]
func (c *SARController) UpdateInternship(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.InternshipRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.UpdateInternship(ctx.Request.Context(), studentID, recordID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// DeleteInternship removes an owned internship record
// @Summary Delete internship
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /sar/internships/{id} [delete]
func (c *SARController) DeleteInternship(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	if err := c.sarService.DeleteInternship(ctx.Request.Context(), studentID, recordID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship record deleted"))
}

// ListAchievements lists the caller's achievements
// @Summary List achievements
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AchievementRecord}
// @Router /sar/achievements [get]
func (c *SARController) ListAchievements(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	records, err := c.sarService.ListAchievements(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// CreateAchievement adds an achievement record
// @Summary Create achievement
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AchievementRecordRequest true "Achievement record"
// @Success 201 {object} dto.APIResponse{data=models.AchievementRecord}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /sar/achievements [post]
func (c *SARController) CreateAchievement(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	var req dto.AchievementRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.CreateAchievement(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// UpdateAchievement rewrites an owned achievement record
// @Summary Update achievement
// @Tags sar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.AchievementRecordRequest true "Achievement record"
// @Success 200 {object} dto.APIResponse{data=models.AchievementRecord}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /sar/achievements/{id} [put]
func (c *SARController) UpdateAchievement(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.AchievementRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.sarService.UpdateAchievement(ctx.Request.Context(), studentID, recordID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// DeleteAchievement removes an owned achievement record
// @Summary Delete achievement
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /sar/achievements/{id} [delete]
func (c *SARController) DeleteAchievement(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	if err := c.sarService.DeleteAchievement(ctx.Request.Context(), studentID, recordID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Achievement record deleted"))
}

// GetCompleteSAR returns the caller's full aggregate
// @Summary Get complete academic record
// @Description Returns the student row, header and all child records in one payload.
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CompleteSARResponse}
// @Router /sar/complete [get]
func (c *SARController) GetCompleteSAR(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	complete, err := c.sarService.GetCompleteSAR(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complete))
}

// GetStatistics returns record counts and mean CGPA
// @Summary Get academic record statistics
// @Tags sar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatisticsResponse}
// @Router /sar/statistics [get]
func (c *SARController) GetStatistics(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	stats, err := c.sarService.GetStatistics(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetPublicByEnrollmentNo serves the public enrollment lookup
// @Summary Public student lookup
// @Description Returns a trimmed public projection for an enrollment number. No authentication.
// @Tags sar
// @Produce json
// @Param enrollmentNo path string true "Enrollment number"
// @Success 200 {object} dto.APIResponse{data=dto.PublicStudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown enrollment number"
// @Router /sar/student/{enrollmentNo} [get]
func (c *SARController) GetPublicByEnrollmentNo(ctx *gin.Context) {
	enrollmentNo := ctx.Param("enrollmentNo")

	public, err := c.sarService.GetPublicByEnrollmentNo(ctx.Request.Context(), enrollmentNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(public))
}

// GetCompleteByEnrollmentNo serves the admin enrollment lookup
// @Summary Admin student lookup by enrollment number
// @Description Returns the full aggregate for an enrollment number. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param enrollmentNo path string true "Enrollment number"
// @Success 200 {object} dto.APIResponse{data=dto.CompleteSARResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Unknown enrollment number"
// @Router /admin/sar/{enrollmentNo} [get]
func (c *SARController) GetCompleteByEnrollmentNo(ctx *gin.Context) {
	enrollmentNo := ctx.Param("enrollmentNo")

	complete, err := c.sarService.GetCompleteByEnrollmentNo(ctx.Request.Context(), enrollmentNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complete))
}
