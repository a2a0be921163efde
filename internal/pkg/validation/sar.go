package validation

import (
	"fmt"
	"strings"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
)

// ValidateOverview checks a SAR header update.
func ValidateOverview(req *dto.UpdateOverviewRequest) Errors {
	errs := Errors{}
	if req.CurrentSemester != nil && (*req.CurrentSemester < 1 || *req.CurrentSemester > 8) {
		errs.Add("currentSemester", "currentSemester must be between 1 and 8")
	}
	if req.EnrollmentNo != nil && strings.TrimSpace(*req.EnrollmentNo) == "" {
		errs.Add("enrollmentNo", "enrollmentNo must not be blank")
	}
	return errs
}

// ValidateAcademicRecord checks one semester attempt, including every
// subject. All subject problems are collected before the set is returned so
// the caller can display everything at once.
func ValidateAcademicRecord(req *dto.AcademicRecordRequest) Errors {
	errs := Errors{}

	if req.Semester < 1 || req.Semester > 8 {
		errs.Add("semester", "semester must be between 1 and 8")
	}
	if strings.TrimSpace(req.AcademicYear) == "" {
		errs.Add("academicYear", "academicYear is required")
	}
	if req.SGPA != nil && !inRange(*req.SGPA, 0, 10) {
		errs.Add("sgpa", "sgpa must be between 0 and 10")
	}
	if req.CGPA != nil && !inRange(*req.CGPA, 0, 10) {
		errs.Add("cgpa", "cgpa must be between 0 and 10")
	}
	if req.AttendancePercentage != nil && !inRange(*req.AttendancePercentage, 0, 100) {
		errs.Add("attendancePercentage", "attendancePercentage must be between 0 and 100")
	}
	if req.BacklogCount != nil && *req.BacklogCount < 0 {
		errs.Add("backlogCount", "backlogCount must not be negative")
	}
	if req.CreditsEarned != nil && *req.CreditsEarned < 0 {
		errs.Add("creditsEarned", "creditsEarned must not be negative")
	}
	if req.CreditsTotal != nil && *req.CreditsTotal < 0 {
		errs.Add("creditsTotal", "creditsTotal must not be negative")
	}

	for i := range req.Subjects {
		validateSubject(errs, i, &req.Subjects[i])
	}

	return errs
}

// validateSubject flags problems for one subject under index-addressed field
// names (subjects[i].code and so on).
func validateSubject(errs Errors, index int, s *models.Subject) {
	prefix := fmt.Sprintf("subjects[%d].", index)

	if strings.TrimSpace(s.Code) == "" {
		errs.Add(prefix+"code", "subject code is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		errs.Add(prefix+"name", "subject name is required")
	}
	if s.Credits < 0 {
		errs.Add(prefix+"credits", "credits must not be negative")
	}

	checkNonNegative := func(field string, v *float64) {
		if v != nil && *v < 0 {
			errs.Add(prefix+field, field+" must not be negative")
		}
	}
	checkNonNegative("theoryInternal", s.TheoryInternal)
	checkNonNegative("theoryExternal", s.TheoryExternal)
	checkNonNegative("theoryTotal", s.TheoryTotal)
	checkNonNegative("practicalInternal", s.PracticalInternal)
	checkNonNegative("practicalExternal", s.PracticalExternal)
	checkNonNegative("practicalTotal", s.PracticalTotal)

	// internal + external must agree with total, but only when all three are
	// present.
	if s.TheoryInternal != nil && s.TheoryExternal != nil && s.TheoryTotal != nil {
		if abs(*s.TheoryInternal+*s.TheoryExternal-*s.TheoryTotal) > MarksTolerance {
			errs.Add(prefix+"theoryTotal", "theoryInternal + theoryExternal must equal theoryTotal")
		}
	}
	if s.PracticalInternal != nil && s.PracticalExternal != nil && s.PracticalTotal != nil {
		if abs(*s.PracticalInternal+*s.PracticalExternal-*s.PracticalTotal) > MarksTolerance {
			errs.Add(prefix+"practicalTotal", "practicalInternal + practicalExternal must equal practicalTotal")
		}
	}
}

// ValidateInternshipRecord checks one internship stint.
func ValidateInternshipRecord(req *dto.InternshipRecordRequest) Errors {
	errs := Errors{}

	if strings.TrimSpace(req.Company) == "" {
		errs.Add("company", "company is required")
	}
	if strings.TrimSpace(req.Position) == "" {
		errs.Add("position", "position is required")
	}
	if strings.TrimSpace(req.StartDate) == "" {
		errs.Add("startDate", "startDate is required")
	} else if start, ok := ParseDate(errs, "startDate", req.StartDate); ok && req.EndDate != nil {
		if end, ok := ParseDate(errs, "endDate", *req.EndDate); ok && end.Before(start) {
			errs.Add("endDate", "endDate must not be before startDate")
		}
	}
	if req.Stipend != nil && *req.Stipend < 0 {
		errs.Add("stipend", "stipend must not be negative")
	}
	if req.PerformanceRating != nil && (*req.PerformanceRating < 1 || *req.PerformanceRating > 5) {
		errs.Add("performanceRating", "performanceRating must be between 1 and 5")
	}

	return errs
}

// ValidateAchievementRecord checks one accomplishment.
func ValidateAchievementRecord(req *dto.AchievementRecordRequest) Errors {
	errs := Errors{}

	if strings.TrimSpace(req.Title) == "" {
		errs.Add("title", "title is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		errs.Add("category", "category is required")
	}
	if strings.TrimSpace(req.Level) == "" {
		errs.Add("level", "level is required")
	}
	if req.EventDate != nil {
		ParseDate(errs, "eventDate", *req.EventDate)
	}
	if req.DateAwarded != nil {
		ParseDate(errs, "dateAwarded", *req.DateAwarded)
	}
	if req.ParticipantsCount != nil && *req.ParticipantsCount < 0 {
		errs.Add("participantsCount", "participantsCount must not be negative")
	}
	if req.TeamSize != nil && *req.TeamSize < 0 {
		errs.Add("teamSize", "teamSize must not be negative")
	}
	if req.PrizeAmount != nil && *req.PrizeAmount < 0 {
		errs.Add("prizeAmount", "prizeAmount must not be negative")
	}
	if req.SemesterAchieved != nil && (*req.SemesterAchieved < 1 || *req.SemesterAchieved > 8) {
		errs.Add("semesterAchieved", "semesterAchieved must be between 1 and 8")
	}

	return errs
}

// ValidateVerifyRequest checks an admin review transition request.
func ValidateVerifyRequest(req *dto.VerifyStudentRequest) Errors {
	errs := Errors{}

	switch req.Status {
	case string(models.StatusApproved):
		if len(req.DeclinedFields) > 0 {
			errs.Add("declinedFields", "declinedFields must be empty when approving")
		}
	case string(models.StatusDeclined):
		if len(req.DeclinedFields) == 0 {
			errs.Add("declinedFields", "declinedFields must name at least one field when declining")
		}
		for _, path := range req.DeclinedFields {
			if strings.TrimSpace(path) == "" {
				errs.Add("declinedFields", "declinedFields must not contain blank paths")
				break
			}
			if !models.IsReviewableFieldPath(path) {
				errs.Add("declinedFields", fmt.Sprintf("unknown field path %q", path))
				break
			}
		}
	default:
		errs.Add("status", "status must be approved or declined")
	}

	return errs
}
