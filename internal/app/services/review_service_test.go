package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/app/models/dto"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
)

func newTestReviewService(students *stubStudentStore) (ReviewService, *stubMailer) {
	mailer := &stubMailer{}
	return NewReviewService(students, mailer, zerolog.Nop()), mailer
}

func TestVerifyStudentApprove(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, mailer := newTestReviewService(students)

	student, err := svc.VerifyStudent(context.Background(), &dto.VerifyStudentRequest{
		StudentID: 5,
		Status:    "approved",
	})
	if err != nil {
		t.Fatalf("VerifyStudent() error = %v", err)
	}
	if student.Status != models.StatusApproved {
		t.Errorf("student.Status = %q, want approved", student.Status)
	}
	if len(student.DeclinedFields) != 0 {
		t.Errorf("student.DeclinedFields = %v, want empty", student.DeclinedFields)
	}
	if len(mailer.approvals) != 1 || mailer.approvals[0] != "asha@college.edu" {
		t.Errorf("approval mails = %v, want one to asha@college.edu", mailer.approvals)
	}
}

func TestVerifyStudentDeclineStoresFields(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, mailer := newTestReviewService(students)

	fields := []string{"father.mobile", "mother.name"}
	student, err := svc.VerifyStudent(context.Background(), &dto.VerifyStudentRequest{
		StudentID:      5,
		Status:         "declined",
		DeclinedFields: fields,
	})
	if err != nil {
		t.Fatalf("VerifyStudent() error = %v", err)
	}
	if student.Status != models.StatusDeclined {
		t.Errorf("student.Status = %q, want declined", student.Status)
	}
	if !reflect.DeepEqual(student.DeclinedFields, fields) {
		t.Errorf("student.DeclinedFields = %v, want %v", student.DeclinedFields, fields)
	}
	if len(mailer.declines) != 1 || !reflect.DeepEqual(mailer.fields[0], fields) {
		t.Errorf("decline mails = %v with fields %v", mailer.declines, mailer.fields)
	}
}

func TestVerifyStudentValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.VerifyStudentRequest
	}{
		{"decline without fields", dto.VerifyStudentRequest{StudentID: 5, Status: "declined"}},
		{"approve with fields", dto.VerifyStudentRequest{StudentID: 5, Status: "approved", DeclinedFields: []string{"course"}}},
		{"unknown status", dto.VerifyStudentRequest{StudentID: 5, Status: "rejected"}},
		{"blank path", dto.VerifyStudentRequest{StudentID: 5, Status: "declined", DeclinedFields: []string{"  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := newStubStudentStore(pendingStudent(5))
			svc, _ := newTestReviewService(students)

			_, err := svc.VerifyStudent(context.Background(), &tt.req)
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("VerifyStudent() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestVerifyStudentApprovedIsTerminal(t *testing.T) {
	approved := pendingStudent(5)
	approved.Status = models.StatusApproved
	students := newStubStudentStore(approved)
	svc, mailer := newTestReviewService(students)

	_, err := svc.VerifyStudent(context.Background(), &dto.VerifyStudentRequest{
		StudentID:      5,
		Status:         "declined",
		DeclinedFields: []string{"course"},
	})
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("VerifyStudent() error = %v, want ErrInvalidTransition", err)
	}
	if len(mailer.declines) != 0 {
		t.Errorf("decline mails = %v, want none", mailer.declines)
	}
}

func TestVerifyStudentNotFound(t *testing.T) {
	students := newStubStudentStore()
	svc, _ := newTestReviewService(students)

	_, err := svc.VerifyStudent(context.Background(), &dto.VerifyStudentRequest{
		StudentID: 42,
		Status:    "approved",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("VerifyStudent() error = %v, want ErrStudentNotFound", err)
	}
}

func TestVerifyStudentMailFailureDoesNotRollBack(t *testing.T) {
	students := newStubStudentStore(pendingStudent(5))
	svc, mailer := newTestReviewService(students)
	mailer.err = errors.New("smtp unreachable")

	student, err := svc.VerifyStudent(context.Background(), &dto.VerifyStudentRequest{
		StudentID: 5,
		Status:    "approved",
	})
	if err != nil {
		t.Fatalf("VerifyStudent() error = %v, want nil despite mail failure", err)
	}
	if student.Status != models.StatusApproved {
		t.Errorf("student.Status = %q, want approved", student.Status)
	}
}

func declinedStudent(id int64, fields ...string) *models.Student {
	st := pendingStudent(id)
	st.Status = models.StatusDeclined
	st.DeclinedFields = fields
	return st
}

func TestResubmitDeclinedFieldsIntersection(t *testing.T) {
	students := newStubStudentStore(declinedStudent(5, "father.mobile", "mother.name"))
	svc, _ := newTestReviewService(students)

	// "course" was never declined; only father.mobile may land.
	student, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
		Updates: map[string]string{
			"father.mobile": "9876543210",
			"course":        "ECE",
		},
	})
	if err != nil {
		t.Fatalf("ResubmitDeclinedFields() error = %v", err)
	}

	if want := map[string]string{"father.mobile": "9876543210"}; !reflect.DeepEqual(students.appliedUpdates, want) {
		t.Errorf("applied updates = %v, want %v", students.appliedUpdates, want)
	}
	if student.Status != models.StatusPending {
		t.Errorf("student.Status = %q, want pending", student.Status)
	}
	if want := []string{"mother.name"}; !reflect.DeepEqual(student.DeclinedFields, want) {
		t.Errorf("student.DeclinedFields = %v, want %v", student.DeclinedFields, want)
	}
	if student.Course != "CSE" {
		t.Errorf("student.Course = %q, want unchanged CSE", student.Course)
	}
	if student.FatherMobile == nil || *student.FatherMobile != "9876543210" {
		t.Errorf("student.FatherMobile = %v, want 9876543210", student.FatherMobile)
	}
}

func TestResubmitDeclinedFieldsNoOverlap(t *testing.T) {
	students := newStubStudentStore(declinedStudent(5, "mother.name"))
	svc, _ := newTestReviewService(students)

	_, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
		Updates: map[string]string{"course": "ECE"},
	})
	if !errors.Is(err, apperrors.ErrNoDeclinedFields) {
		t.Errorf("ResubmitDeclinedFields() error = %v, want ErrNoDeclinedFields", err)
	}
	if students.students[5].Course != "CSE" {
		t.Errorf("student.Course = %q, want unchanged CSE", students.students[5].Course)
	}
}

func TestResubmitUnrecognizedDeclinedPathStaysDeclined(t *testing.T) {
	// A legacy row may hold a declined path the workflow no longer maps to a
	// column. A resubmission naming it must not count as a correction.
	students := newStubStudentStore(declinedStudent(5, "guardian.name", "mother.name"))
	svc, _ := newTestReviewService(students)

	_, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
		Updates: map[string]string{"guardian.name": "R. Verma"},
	})
	if !errors.Is(err, apperrors.ErrNoDeclinedFields) {
		t.Fatalf("ResubmitDeclinedFields() error = %v, want ErrNoDeclinedFields", err)
	}
	if students.students[5].Status != models.StatusDeclined {
		t.Errorf("student.Status = %q, want still declined", students.students[5].Status)
	}

	// With a recognized path alongside it, only that path is applied; the
	// unrecognized one stays in the declined set.
	student, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
		Updates: map[string]string{
			"guardian.name": "R. Verma",
			"mother.name":   "Sunita Verma",
		},
	})
	if err != nil {
		t.Fatalf("ResubmitDeclinedFields() error = %v", err)
	}
	if want := map[string]string{"mother.name": "Sunita Verma"}; !reflect.DeepEqual(students.appliedUpdates, want) {
		t.Errorf("applied updates = %v, want %v", students.appliedUpdates, want)
	}
	if want := []string{"guardian.name"}; !reflect.DeepEqual(student.DeclinedFields, want) {
		t.Errorf("student.DeclinedFields = %v, want %v", student.DeclinedFields, want)
	}
	if student.Status != models.StatusPending {
		t.Errorf("student.Status = %q, want pending", student.Status)
	}
}

func TestResubmitDeclinedFieldsWrongStatus(t *testing.T) {
	for _, status := range []models.StudentStatus{models.StatusPending, models.StatusApproved} {
		t.Run(string(status), func(t *testing.T) {
			st := pendingStudent(5)
			st.Status = status
			students := newStubStudentStore(st)
			svc, _ := newTestReviewService(students)

			_, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
				Updates: map[string]string{"mobile": "9876543210"},
			})
			if !errors.Is(err, apperrors.ErrStudentNotDeclined) {
				t.Errorf("ResubmitDeclinedFields() error = %v, want ErrStudentNotDeclined", err)
			}
		})
	}
}

func TestResubmitAllDeclinedFieldsClearsList(t *testing.T) {
	students := newStubStudentStore(declinedStudent(5, "mobile"))
	svc, _ := newTestReviewService(students)

	student, err := svc.ResubmitDeclinedFields(context.Background(), 5, &dto.ResubmitDeclinedRequest{
		Updates: map[string]string{"mobile": "9876543210"},
	})
	if err != nil {
		t.Fatalf("ResubmitDeclinedFields() error = %v", err)
	}
	if len(student.DeclinedFields) != 0 {
		t.Errorf("student.DeclinedFields = %v, want empty", student.DeclinedFields)
	}
	if student.Status != models.StatusPending {
		t.Errorf("student.Status = %q, want pending", student.Status)
	}
}

func TestSuggestReview(t *testing.T) {
	complete := pendingStudent(5)
	complete.Mobile = strPtr("9876543210")
	complete.DateOfBirth = strPtr("2005-01-15")
	complete.Address = strPtr("12 MG Road")
	complete.FatherName = strPtr("Ramesh Verma")
	complete.FatherMobile = strPtr("9876543211")
	complete.MotherName = strPtr("Sunita Verma")
	complete.MotherMobile = strPtr("9876543212")
	complete.PhotoURL = strPtr("https://cdn.example.com/photo.jpg")
	complete.MarksheetURL = strPtr("https://cdn.example.com/marksheet.pdf")

	partial := pendingStudent(6)
	partial.Mobile = strPtr("9876543210")

	students := newStubStudentStore(complete, partial)
	svc, _ := newTestReviewService(students)
	ctx := context.Background()

	suggestion, err := svc.SuggestReview(ctx, 5)
	if err != nil {
		t.Fatalf("SuggestReview(complete) error = %v", err)
	}
	if suggestion.SuggestedStatus != "approved" || len(suggestion.SuggestedDeclinedFields) != 0 {
		t.Errorf("complete suggestion = %+v, want approved with no fields", suggestion)
	}

	suggestion, err = svc.SuggestReview(ctx, 6)
	if err != nil {
		t.Fatalf("SuggestReview(partial) error = %v", err)
	}
	if suggestion.SuggestedStatus != "declined" {
		t.Errorf("partial suggestion status = %q, want declined", suggestion.SuggestedStatus)
	}
	want := []string{
		"dateOfBirth", "address",
		"father.name", "father.mobile", "mother.name", "mother.mobile",
		"documents.photo", "documents.marksheet",
	}
	if !reflect.DeepEqual(suggestion.SuggestedDeclinedFields, want) {
		t.Errorf("partial suggestion fields = %v, want %v", suggestion.SuggestedDeclinedFields, want)
	}
}

func TestListStudentsStatusFilter(t *testing.T) {
	approved := pendingStudent(2)
	approved.Status = models.StatusApproved
	students := newStubStudentStore(pendingStudent(1), approved, declinedStudent(3, "mobile"))
	svc, _ := newTestReviewService(students)

	all, err := svc.ListStudents(context.Background(), nil, 1, 10)
	if err != nil {
		t.Fatalf("ListStudents(nil) error = %v", err)
	}
	if len(all.Students) != 3 || all.Pagination.TotalItems != 3 {
		t.Errorf("unfiltered list = %d students, total %d, want 3/3", len(all.Students), all.Pagination.TotalItems)
	}

	status := models.StatusDeclined
	declined, err := svc.ListStudents(context.Background(), &status, 1, 10)
	if err != nil {
		t.Fatalf("ListStudents(declined) error = %v", err)
	}
	if len(declined.Students) != 1 || declined.Students[0].ID != 3 {
		t.Errorf("declined list = %+v, want only student 3", declined.Students)
	}
}
