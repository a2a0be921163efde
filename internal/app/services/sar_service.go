package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
	"github.com/campuskit/admitportal/internal/pkg/dberrors"
	"github.com/campuskit/admitportal/internal/pkg/subdoc"
	"github.com/campuskit/admitportal/internal/pkg/validation"
)

// SARService orchestrates the SAR aggregate: the lazily created header and
// the academic/internship/achievement child records under it. Every
// operation resolves the header fresh from the caller's student id; child
// record ids are only ever used together with that header.
type SARService interface {
	GetOverview(ctx context.Context, studentID int64) (*models.SARHeader, error)
	UpdateOverview(ctx context.Context, studentID int64, req *dto.UpdateOverviewRequest) (*models.SARHeader, error)

	ListAcademicRecords(ctx context.Context, studentID int64) ([]models.AcademicRecord, error)
	CreateAcademicRecord(ctx context.Context, studentID int64, req *dto.AcademicRecordRequest) (*models.AcademicRecord, error)
	UpdateAcademicRecord(ctx context.Context, studentID, recordID int64, req *dto.AcademicRecordRequest) (*models.AcademicRecord, error)
	DeleteAcademicRecord(ctx context.Context, studentID, recordID int64) error

	ListInternships(ctx context.Context, studentID int64) ([]dto.InternshipResponse, error)
	CreateInternship(ctx context.Context, studentID int64, req *dto.InternshipRecordRequest) (*dto.InternshipResponse, error)
	UpdateInternship(ctx context.Context, studentID, recordID int64, req *dto.InternshipRecordRequest) (*dto.InternshipResponse, error)
	DeleteInternship(ctx context.Context, studentID, recordID int64) error

	ListAchievements(ctx context.Context, studentID int64) ([]models.AchievementRecord, error)
	CreateAchievement(ctx context.Context, studentID int64, req *dto.AchievementRecordRequest) (*models.AchievementRecord, error)
	UpdateAchievement(ctx context.Context, studentID, recordID int64, req *dto.AchievementRecordRequest) (*models.AchievementRecord, error)
	DeleteAchievement(ctx context.Context, studentID, recordID int64) error

	GetCompleteSAR(ctx context.Context, studentID int64) (*dto.CompleteSARResponse, error)
	GetStatistics(ctx context.Context, studentID int64) (*dto.StatisticsResponse, error)
	GetPublicByEnrollmentNo(ctx context.Context, enrollmentNo string) (*dto.PublicStudentResponse, error)
	GetCompleteByEnrollmentNo(ctx context.Context, enrollmentNo string) (*dto.CompleteSARResponse, error)
}

// sarServiceImpl implements SARService
type sarServiceImpl struct {
	students     StudentStore
	headers      SARHeaderStore
	academics    AcademicStore
	internships  InternshipStore
	achievements AchievementStore
	logger       zerolog.Logger
}

// NewSARService creates a new SARService
func NewSARService(
	students StudentStore,
	headers SARHeaderStore,
	academics AcademicStore,
	internships InternshipStore,
	achievements AchievementStore,
	logger zerolog.Logger,
) SARService {
	return &sarServiceImpl{
		students:     students,
		headers:      headers,
		academics:    academics,
		internships:  internships,
		achievements: achievements,
		logger:       logger,
	}
}

// resolveHeader fetches or lazily creates the caller's header. No child
// record can exist without one.
func (s *sarServiceImpl) resolveHeader(ctx context.Context, studentID int64) (*models.SARHeader, error) {
	header, err := s.headers.GetOrCreateForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error resolving header for student %d: %w", studentID, err)
	}
	return header, nil
}

// GetOverview fetches or lazily creates the SAR header
func (s *sarServiceImpl) GetOverview(ctx context.Context, studentID int64) (*models.SARHeader, error) {
	return s.resolveHeader(ctx, studentID)
}

// UpdateOverview updates the header identity fields
func (s *sarServiceImpl) UpdateOverview(ctx context.Context, studentID int64, req *dto.UpdateOverviewRequest) (*models.SARHeader, error) {
	if err := validation.ValidateOverview(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.EnrollmentNo != nil {
		header.EnrollmentNo = *req.EnrollmentNo
	}
	if req.MicrosoftEmail != nil {
		header.MicrosoftEmail = *req.MicrosoftEmail
	}
	if req.CurrentSemester != nil {
		header.CurrentSemester = *req.CurrentSemester
	}
	header.ProfileCompletionPercentage = s.computeCompletion(ctx, header)

	if err := s.headers.Update(ctx, header); err != nil {
		return nil, fmt.Errorf("error updating header: %w", err)
	}
	return header, nil
}

// ListAcademicRecords lists semester records, semester ascending
func (s *sarServiceImpl) ListAcademicRecords(ctx context.Context, studentID int64) ([]models.AcademicRecord, error) {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.academics.ListBySAR(ctx, header.ID)
}

// CreateAcademicRecord validates and inserts one semester attempt. A record
// for the same semester already existing is a conflict: the caller is
// directed to the update path, never silently overwritten.
func (s *sarServiceImpl) CreateAcademicRecord(ctx context.Context, studentID int64, req *dto.AcademicRecordRequest) (*models.AcademicRecord, error) {
	if err := validation.ValidateAcademicRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.academics.ExistsForSemester(ctx, header.ID, req.Semester)
	if err != nil {
		return nil, fmt.Errorf("error checking semester: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateSemester
	}

	rec := academicFromRequest(header.ID, req)
	id, err := s.academics.Create(ctx, rec)
	if err != nil {
		// The unique constraint is the authoritative guard; a concurrent
		// writer that slipped past the pre-check lands here.
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintAcademicSemester) {
			return nil, apperrors.ErrDuplicateSemester
		}
		return nil, fmt.Errorf("error creating academic record: %w", err)
	}
	rec.ID = id

	s.refreshCompletion(ctx, header)
	return rec, nil
}

// UpdateAcademicRecord validates and rewrites one owned semester record
func (s *sarServiceImpl) UpdateAcademicRecord(ctx context.Context, studentID, recordID int64, req *dto.AcademicRecordRequest) (*models.AcademicRecord, error) {
	if err := validation.ValidateAcademicRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.academics.GetByID(ctx, header.ID, recordID)
	if err != nil {
		return nil, fmt.Errorf("error fetching academic record: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRecordNotFound
	}

	// Moving the record onto a semester that another record already holds is
	// the same conflict as a duplicate create.
	if existing.Semester != req.Semester {
		taken, err := s.academics.ExistsForSemester(ctx, header.ID, req.Semester)
		if err != nil {
			return nil, fmt.Errorf("error checking semester: %w", err)
		}
		if taken {
			return nil, apperrors.ErrDuplicateSemester
		}
	}

	rec := academicFromRequest(header.ID, req)
	rec.ID = recordID
	if err := s.academics.Update(ctx, rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintAcademicSemester) {
			return nil, apperrors.ErrDuplicateSemester
		}
		return nil, fmt.Errorf("error updating academic record: %w", err)
	}
	return rec, nil
}

// DeleteAcademicRecord hard-deletes one owned semester record
func (s *sarServiceImpl) DeleteAcademicRecord(ctx context.Context, studentID, recordID int64) error {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.academics.Delete(ctx, header.ID, recordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRecordNotFound
		}
		return fmt.Errorf("error deleting academic record: %w", err)
	}
	s.refreshCompletion(ctx, header)
	return nil
}

// ListInternships lists internships, most recent stint first
func (s *sarServiceImpl) ListInternships(ctx context.Context, studentID int64) ([]dto.InternshipResponse, error) {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}
	records, err := s.internships.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.InternshipResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toInternshipResponse(&records[i]))
	}
	return responses, nil
}

// CreateInternship validates and inserts one internship stint
func (s *sarServiceImpl) CreateInternship(ctx context.Context, studentID int64, req *dto.InternshipRecordRequest) (*dto.InternshipResponse, error) {
	if err := validation.ValidateInternshipRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rec, err := internshipFromRequest(header.ID, req)
	if err != nil {
		return nil, err
	}
	id, err := s.internships.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating internship: %w", err)
	}
	rec.ID = id

	s.refreshCompletion(ctx, header)
	response := toInternshipResponse(rec)
	return &response, nil
}

// UpdateInternship validates and rewrites one owned internship
func (s *sarServiceImpl) UpdateInternship(ctx context.Context, studentID, recordID int64, req *dto.InternshipRecordRequest) (*dto.InternshipResponse, error) {
	if err := validation.ValidateInternshipRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.internships.GetByID(ctx, header.ID, recordID)
	if err != nil {
		return nil, fmt.Errorf("error fetching internship: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRecordNotFound
	}

	rec, err := internshipFromRequest(header.ID, req)
	if err != nil {
		return nil, err
	}
	rec.ID = recordID
	if err := s.internships.Update(ctx, rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating internship: %w", err)
	}
	response := toInternshipResponse(rec)
	return &response, nil
}

// DeleteInternship hard-deletes one owned internship
func (s *sarServiceImpl) DeleteInternship(ctx context.Context, studentID, recordID int64) error {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.internships.Delete(ctx, header.ID, recordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRecordNotFound
		}
		return fmt.Errorf("error deleting internship: %w", err)
	}
	s.refreshCompletion(ctx, header)
	return nil
}

// ListAchievements lists achievements, most recent event first
func (s *sarServiceImpl) ListAchievements(ctx context.Context, studentID int64) ([]models.AchievementRecord, error) {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.achievements.ListBySAR(ctx, header.ID)
}

// CreateAchievement validates and inserts one accomplishment
func (s *sarServiceImpl) CreateAchievement(ctx context.Context, studentID int64, req *dto.AchievementRecordRequest) (*models.AchievementRecord, error) {
	if err := validation.ValidateAchievementRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rec, err := achievementFromRequest(header.ID, req)
	if err != nil {
		return nil, err
	}
	id, err := s.achievements.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating achievement: %w", err)
	}
	rec.ID = id

	s.refreshCompletion(ctx, header)
	return rec, nil
}

// UpdateAchievement validates and rewrites one owned accomplishment
func (s *sarServiceImpl) UpdateAchievement(ctx context.Context, studentID, recordID int64, req *dto.AchievementRecordRequest) (*models.AchievementRecord, error) {
	if err := validation.ValidateAchievementRecord(req).Err(); err != nil {
		return nil, err
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.achievements.GetByID(ctx, header.ID, recordID)
	if err != nil {
		return nil, fmt.Errorf("error fetching achievement: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRecordNotFound
	}

	rec, err := achievementFromRequest(header.ID, req)
	if err != nil {
		return nil, err
	}
	rec.ID = recordID
	if err := s.achievements.Update(ctx, rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating achievement: %w", err)
	}
	return rec, nil
}

// DeleteAchievement hard-deletes one owned accomplishment
func (s *sarServiceImpl) DeleteAchievement(ctx context.Context, studentID, recordID int64) error {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.achievements.Delete(ctx, header.ID, recordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRecordNotFound
		}
		return fmt.Errorf("error deleting achievement: %w", err)
	}
	s.refreshCompletion(ctx, header)
	return nil
}

// GetCompleteSAR returns the student row, the header (lazily created) and
// all three child lists in one payload.
func (s *sarServiceImpl) GetCompleteSAR(ctx context.Context, studentID int64) (*dto.CompleteSARResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.assembleComplete(ctx, student, header)
}

func (s *sarServiceImpl) assembleComplete(ctx context.Context, student *models.Student, header *models.SARHeader) (*dto.CompleteSARResponse, error) {
	academic, err := s.academics.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing academic records: %w", err)
	}
	internships, err := s.internships.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	achievements, err := s.achievements.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}

	internshipResponses := make([]dto.InternshipResponse, 0, len(internships))
	for i := range internships {
		internshipResponses = append(internshipResponses, toInternshipResponse(&internships[i]))
	}

	return &dto.CompleteSARResponse{
		Student:      student,
		Header:       header,
		Academic:     academic,
		Internships:  internshipResponses,
		Achievements: achievements,
	}, nil
}

// GetStatistics returns per-kind counts and the arithmetic mean CGPA across
// academic records carrying one. The mean is not credit-weighted.
func (s *sarServiceImpl) GetStatistics(ctx context.Context, studentID int64) (*dto.StatisticsResponse, error) {
	header, err := s.resolveHeader(ctx, studentID)
	if err != nil {
		return nil, err
	}

	academic, err := s.academics.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing academic records: %w", err)
	}
	internships, err := s.internships.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	achievements, err := s.achievements.ListBySAR(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}

	stats := &dto.StatisticsResponse{
		AcademicRecords: len(academic),
		Internships:     len(internships),
		Achievements:    len(achievements),
	}

	var sum float64
	var count int
	for i := range academic {
		if academic[i].CGPA != nil {
			sum += *academic[i].CGPA
			count++
		}
	}
	if count > 0 {
		mean := math.Round(sum/float64(count)*100) / 100
		stats.AverageCGPA = &mean
	}

	return stats, nil
}

// GetPublicByEnrollmentNo serves the public lookup: a trimmed projection
// that leaks nothing beyond name, course and SAR identity.
func (s *sarServiceImpl) GetPublicByEnrollmentNo(ctx context.Context, enrollmentNo string) (*dto.PublicStudentResponse, error) {
	header, err := s.headers.GetByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, fmt.Errorf("error fetching header: %w", err)
	}
	if header == nil {
		return nil, apperrors.ErrSARHeaderNotFound
	}
	student, err := s.students.GetByID(ctx, header.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return &dto.PublicStudentResponse{
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		Course:          student.Course,
		EnrollmentNo:    header.EnrollmentNo,
		CurrentSemester: header.CurrentSemester,
	}, nil
}

// GetCompleteByEnrollmentNo serves the admin-gated lookup: the full
// aggregate keyed by enrollment number.
func (s *sarServiceImpl) GetCompleteByEnrollmentNo(ctx context.Context, enrollmentNo string) (*dto.CompleteSARResponse, error) {
	header, err := s.headers.GetByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, fmt.Errorf("error fetching header: %w", err)
	}
	if header == nil {
		return nil, apperrors.ErrSARHeaderNotFound
	}
	student, err := s.students.GetByID(ctx, header.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.assembleComplete(ctx, student, header)
}

// computeCompletion scores the header profile: the two identity fields and
// the presence of at least one record per child kind weigh 20% each.
func (s *sarServiceImpl) computeCompletion(ctx context.Context, header *models.SARHeader) float64 {
	filled := 0
	if header.EnrollmentNo != "" {
		filled++
	}
	if header.MicrosoftEmail != "" {
		filled++
	}

	counts := []func(context.Context, int64) (int, error){
		func(ctx context.Context, id int64) (int, error) {
			list, err := s.academics.ListBySAR(ctx, id)
			return len(list), err
		},
		func(ctx context.Context, id int64) (int, error) {
			list, err := s.internships.ListBySAR(ctx, id)
			return len(list), err
		},
		func(ctx context.Context, id int64) (int, error) {
			list, err := s.achievements.ListBySAR(ctx, id)
			return len(list), err
		},
	}
	for _, count := range counts {
		n, err := count(ctx, header.ID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("sarId", header.ID).Msg("completion recompute skipped a count")
			continue
		}
		if n > 0 {
			filled++
		}
	}

	return float64(filled) * 20
}

// refreshCompletion recomputes and persists the completion percentage after
// a child write. Failure is logged, never surfaced: the primary write has
// already committed.
func (s *sarServiceImpl) refreshCompletion(ctx context.Context, header *models.SARHeader) {
	percentage := s.computeCompletion(ctx, header)
	if percentage == header.ProfileCompletionPercentage {
		return
	}
	if err := s.headers.UpdateCompletion(ctx, header.ID, percentage); err != nil {
		s.logger.Warn().Err(err).Int64("sarId", header.ID).Msg("failed to persist completion percentage")
	}
}

// academicFromRequest maps a validated request onto the storage model
func academicFromRequest(sarID int64, req *dto.AcademicRecordRequest) *models.AcademicRecord {
	rec := &models.AcademicRecord{
		SARID:                sarID,
		Semester:             req.Semester,
		AcademicYear:         req.AcademicYear,
		SGPA:                 req.SGPA,
		CGPA:                 req.CGPA,
		CreditsEarned:        req.CreditsEarned,
		CreditsTotal:         req.CreditsTotal,
		AttendancePercentage: req.AttendancePercentage,
		SemesterResult:       req.SemesterResult,
		Subjects:             req.Subjects,
	}
	if req.BacklogCount != nil {
		rec.BacklogCount = *req.BacklogCount
	}
	if rec.Subjects == nil {
		rec.Subjects = []models.Subject{}
	}
	return rec
}

// internshipFromRequest maps a validated request onto the storage model,
// transcoding the numeric rating to its stored bucket.
func internshipFromRequest(sarID int64, req *dto.InternshipRecordRequest) (*models.InternshipRecord, error) {
	start, err := time.Parse(validation.DateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewFieldError("startDate", "startDate must be a date in YYYY-MM-DD format")
	}

	rec := &models.InternshipRecord{
		SARID:               sarID,
		Company:             req.Company,
		Position:            req.Position,
		InternshipType:      req.InternshipType,
		StartDate:           start,
		Stipend:             req.Stipend,
		StipendCurrency:     req.StipendCurrency,
		WorkMode:            req.WorkMode,
		Description:         req.Description,
		SkillsLearned:       req.SkillsLearned,
		TechnologiesUsed:    req.TechnologiesUsed,
		SupervisorName:      req.SupervisorName,
		SupervisorEmail:     req.SupervisorEmail,
		SupervisorPhone:     req.SupervisorPhone,
		CertificateProvided: req.CertificateProvided,
		PPOReceived:         req.PPOReceived,
		OfferLetterURL:      req.OfferLetterURL,
	}

	if req.EndDate != nil {
		end, err := time.Parse(validation.DateLayout, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewFieldError("endDate", "endDate must be a date in YYYY-MM-DD format")
		}
		rec.EndDate = &end
	}
	if req.PerformanceRating != nil {
		bucket, err := subdoc.RatingToStorage(*req.PerformanceRating)
		if err != nil {
			return nil, err
		}
		rec.PerformanceRating = &bucket
	}
	if rec.SkillsLearned == nil {
		rec.SkillsLearned = []string{}
	}
	if rec.TechnologiesUsed == nil {
		rec.TechnologiesUsed = []string{}
	}
	return rec, nil
}

// achievementFromRequest maps a validated request onto the storage model
func achievementFromRequest(sarID int64, req *dto.AchievementRecordRequest) (*models.AchievementRecord, error) {
	rec := &models.AchievementRecord{
		SARID:              sarID,
		Title:              req.Title,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
		Level:              req.Level,
		Organization:       req.Organization,
		EventName:          req.EventName,
		PositionRank:       req.PositionRank,
		ParticipantsCount:  req.ParticipantsCount,
		TeamSize:           req.TeamSize,
		TeamMembers:        req.TeamMembers,
		PrizeAmount:        req.PrizeAmount,
		PrizeCurrency:      req.PrizeCurrency,
		CertificateURL:     req.CertificateURL,
		IsTeamAchievement:  req.IsTeamAchievement,
		Verified:           req.Verified,
		MediaURLs:          req.MediaURLs,
		SkillsDemonstrated: req.SkillsDemonstrated,
		TechnologiesUsed:   req.TechnologiesUsed,
		Tags:               req.Tags,
		SemesterAchieved:   req.SemesterAchieved,
	}

	if req.EventDate != nil {
		t, err := time.Parse(validation.DateLayout, *req.EventDate)
		if err != nil {
			return nil, apperrors.NewFieldError("eventDate", "eventDate must be a date in YYYY-MM-DD format")
		}
		rec.EventDate = &t
	}
	if req.DateAwarded != nil {
		t, err := time.Parse(validation.DateLayout, *req.DateAwarded)
		if err != nil {
			return nil, apperrors.NewFieldError("dateAwarded", "dateAwarded must be a date in YYYY-MM-DD format")
		}
		rec.DateAwarded = &t
	}

	for _, list := range []*[]string{&rec.TeamMembers, &rec.MediaURLs, &rec.SkillsDemonstrated, &rec.TechnologiesUsed, &rec.Tags} {
		if *list == nil {
			*list = []string{}
		}
	}
	return rec, nil
}

// toInternshipResponse presents a stored internship with the numeric rating
func toInternshipResponse(rec *models.InternshipRecord) dto.InternshipResponse {
	response := dto.InternshipResponse{InternshipRecord: *rec}
	if rec.PerformanceRating != nil {
		if n := subdoc.StorageToRating(*rec.PerformanceRating); n > 0 {
			response.PerformanceRating = &n
		}
	}
	return response
}
