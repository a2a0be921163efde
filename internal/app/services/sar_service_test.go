package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
)

func newTestSARService(students *stubStudentStore) (SARService, *stubHeaderStore, *stubAcademicStore, *stubInternshipStore, *stubAchievementStore) {
	headers := newStubHeaderStore()
	academics := newStubAcademicStore()
	internships := newStubInternshipStore()
	achievements := newStubAchievementStore()
	svc := NewSARService(students, headers, academics, internships, achievements, zerolog.Nop())
	return svc, headers, academics, internships, achievements
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func pendingStudent(id int64) *models.Student {
	return &models.Student{
		ID:        id,
		Email:     "asha@college.edu",
		FirstName: "Asha",
		LastName:  "Verma",
		Course:    "CSE",
		Status:    models.StatusPending,
	}
}

func academicRequest(semester int) *dto.AcademicRecordRequest {
	return &dto.AcademicRecordRequest{
		Semester:     semester,
		AcademicYear: "2023-24",
		SGPA:         floatPtr(8.4),
		CGPA:         floatPtr(8.1),
	}
}

func TestGetOverviewCreatesHeaderLazily(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, headers, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	header, err := svc.GetOverview(ctx, 5)
	if err != nil {
		t.Fatalf("GetOverview() error = %v", err)
	}
	if header.StudentID != 5 {
		t.Errorf("header.StudentID = %d, want 5", header.StudentID)
	}

	again, err := svc.GetOverview(ctx, 5)
	if err != nil {
		t.Fatalf("second GetOverview() error = %v", err)
	}
	if again.ID != header.ID {
		t.Errorf("second GetOverview() returned header %d, want the same header %d", again.ID, header.ID)
	}
	if len(headers.headers) != 1 {
		t.Errorf("header count = %d, want 1", len(headers.headers))
	}
}

func TestCreateAcademicRecordDuplicateSemester(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	if _, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(3)); err != nil {
		t.Fatalf("first CreateAcademicRecord() error = %v", err)
	}

	_, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(3))
	if !errors.Is(err, apperrors.ErrDuplicateSemester) {
		t.Errorf("second CreateAcademicRecord() error = %v, want ErrDuplicateSemester", err)
	}

	// A different semester is fine.
	if _, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(4)); err != nil {
		t.Errorf("CreateAcademicRecord(semester 4) error = %v", err)
	}
}

func TestCreateAcademicRecordInvalid(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)

	req := academicRequest(9) // out of range
	req.AcademicYear = ""

	_, err := svc.CreateAcademicRecord(context.Background(), 5, req)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateAcademicRecord() error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["semester"]; !ok {
		t.Errorf("validation fields = %v, want a semester entry", verr.Fields)
	}
	if _, ok := verr.Fields["academicYear"]; !ok {
		t.Errorf("validation fields = %v, want an academicYear entry", verr.Fields)
	}
}

func TestUpdateAcademicRecordUnownedIsNotFound(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5), pendingStudent(6))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	created, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(2))
	if err != nil {
		t.Fatalf("CreateAcademicRecord() error = %v", err)
	}

	// Student 6 cannot see or touch student 5's record.
	_, err = svc.UpdateAcademicRecord(ctx, 6, created.ID, academicRequest(2))
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("UpdateAcademicRecord() by other student error = %v, want ErrRecordNotFound", err)
	}
	if err := svc.DeleteAcademicRecord(ctx, 6, created.ID); !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("DeleteAcademicRecord() by other student error = %v, want ErrRecordNotFound", err)
	}

	// The owner still can.
	if err := svc.DeleteAcademicRecord(ctx, 5, created.ID); err != nil {
		t.Errorf("DeleteAcademicRecord() by owner error = %v", err)
	}
}

func TestUpdateAcademicRecordSemesterMoveConflict(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	first, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(1))
	if err != nil {
		t.Fatalf("CreateAcademicRecord(1) error = %v", err)
	}
	if _, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(2)); err != nil {
		t.Fatalf("CreateAcademicRecord(2) error = %v", err)
	}

	// Moving record 1 onto semester 2 collides.
	_, err = svc.UpdateAcademicRecord(ctx, 5, first.ID, academicRequest(2))
	if !errors.Is(err, apperrors.ErrDuplicateSemester) {
		t.Errorf("UpdateAcademicRecord() move error = %v, want ErrDuplicateSemester", err)
	}

	// Updating in place on the same semester does not.
	req := academicRequest(1)
	req.SGPA = floatPtr(9.0)
	updated, err := svc.UpdateAcademicRecord(ctx, 5, first.ID, req)
	if err != nil {
		t.Fatalf("UpdateAcademicRecord() in place error = %v", err)
	}
	if updated.SGPA == nil || *updated.SGPA != 9.0 {
		t.Errorf("updated.SGPA = %v, want 9.0", updated.SGPA)
	}
}

func TestInternshipRatingTranscode(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, internships, _ := newTestSARService(students)
	ctx := context.Background()

	req := &dto.InternshipRecordRequest{
		Company:           "Zentrix Labs",
		Position:          "Backend Intern",
		StartDate:         "2024-05-15",
		PerformanceRating: intPtr(2),
	}
	created, err := svc.CreateInternship(ctx, 5, req)
	if err != nil {
		t.Fatalf("CreateInternship() error = %v", err)
	}

	stored := internships.records[created.ID]
	if stored.PerformanceRating == nil || *stored.PerformanceRating != models.RatingAverage {
		t.Errorf("stored rating = %v, want %q", stored.PerformanceRating, models.RatingAverage)
	}
	// The bucket reads back as 3: the 2 vs 3 distinction is gone.
	if created.PerformanceRating == nil || *created.PerformanceRating != 3 {
		t.Errorf("response rating = %v, want 3", created.PerformanceRating)
	}
}

func TestCreateInternshipRejectsBadDates(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)

	req := &dto.InternshipRecordRequest{
		Company:   "Zentrix Labs",
		Position:  "Backend Intern",
		StartDate: "2024-07-15",
		EndDate:   strPtr("2024-05-15"),
	}
	_, err := svc.CreateInternship(context.Background(), 5, req)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateInternship() error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["endDate"]; !ok {
		t.Errorf("validation fields = %v, want an endDate entry", verr.Fields)
	}
}

func TestDeleteInternshipNotFound(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)

	err := svc.DeleteInternship(context.Background(), 5, 99)
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("DeleteInternship() error = %v, want ErrRecordNotFound", err)
	}
}

func TestGetStatisticsMeanCGPA(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	for i, cgpa := range []float64{8.0, 8.5} {
		req := academicRequest(i + 1)
		req.CGPA = floatPtr(cgpa)
		if _, err := svc.CreateAcademicRecord(ctx, 5, req); err != nil {
			t.Fatalf("CreateAcademicRecord(%d) error = %v", i+1, err)
		}
	}
	// A record without a CGPA does not drag the mean down.
	req := academicRequest(3)
	req.CGPA = nil
	if _, err := svc.CreateAcademicRecord(ctx, 5, req); err != nil {
		t.Fatalf("CreateAcademicRecord(3) error = %v", err)
	}

	stats, err := svc.GetStatistics(ctx, 5)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}
	if stats.AcademicRecords != 3 {
		t.Errorf("stats.AcademicRecords = %d, want 3", stats.AcademicRecords)
	}
	if stats.AverageCGPA == nil || *stats.AverageCGPA != 8.25 {
		t.Errorf("stats.AverageCGPA = %v, want 8.25", stats.AverageCGPA)
	}
}

func TestGetStatisticsNoCGPA(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)

	stats, err := svc.GetStatistics(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}
	if stats.AverageCGPA != nil {
		t.Errorf("stats.AverageCGPA = %v, want nil with no records", stats.AverageCGPA)
	}
}

func TestGetPublicByEnrollmentNo(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	if _, err := svc.UpdateOverview(ctx, 5, &dto.UpdateOverviewRequest{
		EnrollmentNo:    strPtr("EN2023051"),
		CurrentSemester: intPtr(3),
	}); err != nil {
		t.Fatalf("UpdateOverview() error = %v", err)
	}

	public, err := svc.GetPublicByEnrollmentNo(ctx, "EN2023051")
	if err != nil {
		t.Fatalf("GetPublicByEnrollmentNo() error = %v", err)
	}
	if public.FirstName != "Asha" || public.Course != "CSE" || public.CurrentSemester != 3 {
		t.Errorf("public projection = %+v", public)
	}

	_, err = svc.GetPublicByEnrollmentNo(ctx, "EN0000000")
	if !errors.Is(err, apperrors.ErrSARHeaderNotFound) {
		t.Errorf("unknown enrollment error = %v, want ErrSARHeaderNotFound", err)
	}
}

func TestGetCompleteSARAssemblesAllKinds(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, _, _, _, _ := newTestSARService(students)
	ctx := context.Background()

	if _, err := svc.CreateAcademicRecord(ctx, 5, academicRequest(1)); err != nil {
		t.Fatalf("CreateAcademicRecord() error = %v", err)
	}
	if _, err := svc.CreateInternship(ctx, 5, &dto.InternshipRecordRequest{
		Company: "Zentrix Labs", Position: "Intern", StartDate: "2024-05-15",
	}); err != nil {
		t.Fatalf("CreateInternship() error = %v", err)
	}
	if _, err := svc.CreateAchievement(ctx, 5, &dto.AchievementRecordRequest{
		Title: "Hackathon Winner", Category: "technical", Level: "national",
	}); err != nil {
		t.Fatalf("CreateAchievement() error = %v", err)
	}

	complete, err := svc.GetCompleteSAR(ctx, 5)
	if err != nil {
		t.Fatalf("GetCompleteSAR() error = %v", err)
	}
	if complete.Student == nil || complete.Student.ID != 5 {
		t.Errorf("complete.Student = %+v, want student 5", complete.Student)
	}
	if len(complete.Academic) != 1 || len(complete.Internships) != 1 || len(complete.Achievements) != 1 {
		t.Errorf("child counts = %d/%d/%d, want 1/1/1",
			len(complete.Academic), len(complete.Internships), len(complete.Achievements))
	}
}
