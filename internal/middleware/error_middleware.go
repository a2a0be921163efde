package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
	"github.com/campuskit/admitportal/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP error taxonomy. Unknown
// errors are logged and answered with an opaque 500 so storage details never
// leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(validationErr.Fields)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicateSemester):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "A record for this semester already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Resource conflict")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrSARHeaderNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Academic record not found")
	case errors.Is(err, apperrors.ErrRecordNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Record not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrStudentNotDeclined):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidStatus, "Application is not in declined status")
	case errors.Is(err, apperrors.ErrNoDeclinedFields):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidStatus, "None of the submitted fields were declined")
	case errors.Is(err, apperrors.ErrInvalidTransition):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidStatus, "Status transition not allowed")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid request")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
