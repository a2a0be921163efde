package validation

import (
	"errors"
	"testing"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func validAcademic() *dto.AcademicRecordRequest {
	return &dto.AcademicRecordRequest{
		Semester:     3,
		AcademicYear: "2023-24",
		SGPA:         f(8.4),
		CGPA:         f(8.1),
	}
}

func TestValidateAcademicRecord(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.AcademicRecordRequest)
		wantField string
	}{
		{"valid", func(r *dto.AcademicRecordRequest) {}, ""},
		{"semester zero", func(r *dto.AcademicRecordRequest) { r.Semester = 0 }, "semester"},
		{"semester nine", func(r *dto.AcademicRecordRequest) { r.Semester = 9 }, "semester"},
		{"missing year", func(r *dto.AcademicRecordRequest) { r.AcademicYear = "  " }, "academicYear"},
		{"sgpa high", func(r *dto.AcademicRecordRequest) { r.SGPA = f(10.5) }, "sgpa"},
		{"cgpa negative", func(r *dto.AcademicRecordRequest) { r.CGPA = f(-0.1) }, "cgpa"},
		{"attendance high", func(r *dto.AcademicRecordRequest) { r.AttendancePercentage = f(101) }, "attendancePercentage"},
		{"backlogs negative", func(r *dto.AcademicRecordRequest) { r.BacklogCount = i(-1) }, "backlogCount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAcademic()
			tt.mutate(req)
			errs := ValidateAcademicRecord(req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("want error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestSubjectCrossFieldTolerance(t *testing.T) {
	subject := func(internal, external, total float64) models.Subject {
		return models.Subject{
			Code: "CS301", Name: "Operating Systems", Credits: 4,
			TheoryInternal: f(internal), TheoryExternal: f(external), TheoryTotal: f(total),
		}
	}
	tests := []struct {
		name    string
		subject models.Subject
		wantErr bool
	}{
		{"exact", subject(28, 62, 90), false},
		{"within tolerance", subject(28, 62, 90.009), false},
		{"outside tolerance", subject(28, 62, 90.02), true},
		{"way off", subject(30, 30, 90), true},
		{"total absent skips check", models.Subject{
			Code: "CS301", Name: "OS", Credits: 4,
			TheoryInternal: f(28), TheoryExternal: f(62),
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAcademic()
			req.Subjects = []models.Subject{tt.subject}
			errs := ValidateAcademicRecord(req)
			_, flagged := errs["subjects[0].theoryTotal"]
			if flagged != tt.wantErr {
				t.Errorf("flagged=%v want %v (errs=%v)", flagged, tt.wantErr, errs)
			}
		})
	}
}

func TestAllSubjectErrorsCollected(t *testing.T) {
	req := validAcademic()
	req.Subjects = []models.Subject{
		{Name: "Missing code", Credits: 4},
		{Code: "CS302", Credits: -1},
		{Code: "CS303", Name: "Bad marks", Credits: 3,
			TheoryInternal: f(10), TheoryExternal: f(10), TheoryTotal: f(90)},
	}
	errs := ValidateAcademicRecord(req)
	for _, field := range []string{
		"subjects[0].code",
		"subjects[1].name",
		"subjects[1].credits",
		"subjects[2].theoryTotal",
	} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing collected error for %q, got %v", field, errs)
		}
	}
}

func TestErrorsErrUnwrapsToValidationFailed(t *testing.T) {
	errs := Errors{}
	if errs.Err() != nil {
		t.Fatal("empty set must yield nil")
	}
	errs.Add("semester", "semester must be between 1 and 8")
	err := errs.Err()
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Err() does not unwrap to ErrValidationFailed: %v", err)
	}
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Fields["semester"] == "" {
		t.Fatalf("field detail lost: %v", err)
	}
}

func TestValidateInternshipRecord(t *testing.T) {
	valid := func() *dto.InternshipRecordRequest {
		end := "2024-07-15"
		return &dto.InternshipRecordRequest{
			Company:   "Zentrix Labs",
			Position:  "Backend Intern",
			StartDate: "2024-05-15",
			EndDate:   &end,
		}
	}

	if errs := ValidateInternshipRecord(valid()); len(errs) != 0 {
		t.Fatalf("valid request flagged: %v", errs)
	}

	req := valid()
	req.Company = ""
	req.StartDate = "15/05/2024"
	rating := 6
	req.PerformanceRating = &rating
	errs := ValidateInternshipRecord(req)
	for _, field := range []string{"company", "startDate", "performanceRating"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for %q, got %v", field, errs)
		}
	}

	req = valid()
	end := "2024-05-01"
	req.EndDate = &end
	if _, ok := ValidateInternshipRecord(req)["endDate"]; !ok {
		t.Error("end before start not flagged")
	}
}

func TestValidateAchievementRecord(t *testing.T) {
	req := &dto.AchievementRecordRequest{Title: "Hackathon Winner", Category: "technical", Level: "national"}
	if errs := ValidateAchievementRecord(req); len(errs) != 0 {
		t.Fatalf("valid request flagged: %v", errs)
	}

	sem := 9
	count := -2
	bad := &dto.AchievementRecordRequest{SemesterAchieved: &sem, ParticipantsCount: &count}
	errs := ValidateAchievementRecord(bad)
	for _, field := range []string{"title", "category", "level", "semesterAchieved", "participantsCount"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for %q, got %v", field, errs)
		}
	}
}

func TestValidateVerifyRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.VerifyStudentRequest
		wantField string
	}{
		{"approve", dto.VerifyStudentRequest{StudentID: 1, Status: "approved"}, ""},
		{"approve with fields", dto.VerifyStudentRequest{StudentID: 1, Status: "approved", DeclinedFields: []string{"x"}}, "declinedFields"},
		{"decline with fields", dto.VerifyStudentRequest{StudentID: 1, Status: "declined", DeclinedFields: []string{"father.mobile"}}, ""},
		{"decline without fields", dto.VerifyStudentRequest{StudentID: 1, Status: "declined"}, "declinedFields"},
		{"decline with blank path", dto.VerifyStudentRequest{StudentID: 1, Status: "declined", DeclinedFields: []string{" "}}, "declinedFields"},
		{"decline with unknown path", dto.VerifyStudentRequest{StudentID: 1, Status: "declined", DeclinedFields: []string{"guardian.name"}}, "declinedFields"},
		{"decline mixing known and unknown", dto.VerifyStudentRequest{StudentID: 1, Status: "declined", DeclinedFields: []string{"father.mobile", "gpa"}}, "declinedFields"},
		{"unknown status", dto.VerifyStudentRequest{StudentID: 1, Status: "pending"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateVerifyRequest(&tt.req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("want error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}
