package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
	"github.com/campuskit/admitportal/internal/pkg/email"
	"github.com/campuskit/admitportal/internal/pkg/helpers"
	"github.com/campuskit/admitportal/internal/pkg/validation"
)

// ReviewService runs the admin review and student resubmission workflow.
// Status transitions are: pending -> approved, pending -> declined,
// declined -> pending (resubmission), declined -> approved/declined
// (re-review). Approved is terminal.
type ReviewService interface {
	VerifyStudent(ctx context.Context, req *dto.VerifyStudentRequest) (*models.Student, error)
	ResubmitDeclinedFields(ctx context.Context, studentID int64, req *dto.ResubmitDeclinedRequest) (*models.Student, error)
	SuggestReview(ctx context.Context, studentID int64) (*dto.ReviewSuggestionResponse, error)
	ListStudents(ctx context.Context, status *models.StudentStatus, page, size int) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, studentID int64) (*models.Student, error)
}

type reviewServiceImpl struct {
	students StudentStore
	mailer   email.EmailService
	logger   zerolog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(students StudentStore, mailer email.EmailService, logger zerolog.Logger) ReviewService {
	return &reviewServiceImpl{
		students: students,
		mailer:   mailer,
		logger:   logger,
	}
}

// VerifyStudent applies an admin's approve or decline decision. Approval
// clears any stored declined fields; decline stores the submitted field paths
// verbatim. Notification mail is best-effort and never rolls back the
// transition.
func (s *reviewServiceImpl) VerifyStudent(ctx context.Context, req *dto.VerifyStudentRequest) (*models.Student, error) {
	if err := validation.ValidateVerifyRequest(req).Err(); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student %d: %w", req.StudentID, err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if student.Status == models.StatusApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition,
			fmt.Sprintf("student %d is already approved", student.ID))
	}

	newStatus := models.StudentStatus(req.Status)
	var declinedFields []string
	if newStatus == models.StatusDeclined {
		declinedFields = req.DeclinedFields
	}

	if err := s.students.UpdateStatus(ctx, student.ID, newStatus, declinedFields); err != nil {
		return nil, fmt.Errorf("failed to update student %d status: %w", student.ID, err)
	}

	student.Status = newStatus
	student.DeclinedFields = declinedFields

	s.notify(student)
	return student, nil
}

// notify sends the status mail for a just-applied transition. Failures are
// logged and swallowed.
func (s *reviewServiceImpl) notify(student *models.Student) {
	name := strings.TrimSpace(student.FirstName + " " + student.LastName)

	var err error
	switch student.Status {
	case models.StatusApproved:
		err = s.mailer.SendApprovalNotification(student.Email, name)
	case models.StatusDeclined:
		err = s.mailer.SendDeclineNotification(student.Email, name, student.DeclinedFields)
	default:
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Int64("studentId", student.ID).
			Str("status", string(student.Status)).
			Msg("Failed to send review notification")
	}
}

// ResubmitDeclinedFields applies a declined student's corrections. Only paths
// that the admin actually declined are written; anything else in the request
// is silently ignored. On success the applied paths leave the declined set
// and the student returns to pending for re-review.
func (s *reviewServiceImpl) ResubmitDeclinedFields(ctx context.Context, studentID int64, req *dto.ResubmitDeclinedRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.Status != models.StatusDeclined {
		return nil, apperrors.ErrStudentNotDeclined
	}

	// Intersect the submitted paths with the declined set, preserving the
	// declined order so the remaining list stays stable across resubmits.
	// A declined path the workflow no longer recognizes (legacy rows) cannot
	// be written anywhere, so it stays declined instead of being dropped.
	applied := make(map[string]string)
	remaining := make([]string, 0, len(student.DeclinedFields))
	for _, path := range student.DeclinedFields {
		if value, ok := req.Updates[path]; ok && models.IsReviewableFieldPath(path) {
			applied[path] = value
		} else {
			remaining = append(remaining, path)
		}
	}
	if len(applied) == 0 {
		return nil, apperrors.ErrNoDeclinedFields
	}

	if err := s.students.ApplyFieldUpdates(ctx, student.ID, applied, models.StatusPending, remaining); err != nil {
		return nil, fmt.Errorf("failed to apply resubmitted fields for student %d: %w", student.ID, err)
	}

	refreshed, err := s.students.GetByID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload student %d: %w", student.ID, err)
	}
	if refreshed == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return refreshed, nil
}

// requiredFieldChecks lists the required profile fields in review order. Each
// path matches the dotted names admins use when declining.
var requiredFieldChecks = []struct {
	path    string
	present func(*models.Student) bool
}{
	{"mobile", func(st *models.Student) bool { return hasValue(st.Mobile) }},
	{"dateOfBirth", func(st *models.Student) bool { return hasValue(st.DateOfBirth) }},
	{"address", func(st *models.Student) bool { return hasValue(st.Address) }},
	{"father.name", func(st *models.Student) bool { return hasValue(st.FatherName) }},
	{"father.mobile", func(st *models.Student) bool { return hasValue(st.FatherMobile) }},
	{"mother.name", func(st *models.Student) bool { return hasValue(st.MotherName) }},
	{"mother.mobile", func(st *models.Student) bool { return hasValue(st.MotherMobile) }},
	{"documents.photo", func(st *models.Student) bool { return hasValue(st.PhotoURL) }},
	{"documents.marksheet", func(st *models.Student) bool { return hasValue(st.MarksheetURL) }},
}

func hasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// SuggestReview scans the required profile fields and proposes a verdict:
// approve when everything is present, otherwise decline listing the missing
// paths. Advisory only, nothing is stored.
func (s *reviewServiceImpl) SuggestReview(ctx context.Context, studentID int64) (*dto.ReviewSuggestionResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	missing := make([]string, 0)
	for _, check := range requiredFieldChecks {
		if !check.present(student) {
			missing = append(missing, check.path)
		}
	}

	suggestion := &dto.ReviewSuggestionResponse{
		SuggestedStatus:         string(models.StatusApproved),
		SuggestedDeclinedFields: missing,
	}
	if len(missing) > 0 {
		suggestion.SuggestedStatus = string(models.StatusDeclined)
	}
	return suggestion, nil
}

// ListStudents returns a page of students for the admin dashboard, optionally
// filtered by review status.
func (s *reviewServiceImpl) ListStudents(ctx context.Context, status *models.StudentStatus, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := s.students.List(ctx, status, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return &dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetStudent returns the full student row for the admin detail view.
func (s *reviewServiceImpl) GetStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}
