package models

import "time"

// StudentStatus is the admin review state of an application
type StudentStatus string

const (
	StatusPending  StudentStatus = "pending"
	StatusApproved StudentStatus = "approved"
	StatusDeclined StudentStatus = "declined"
)

// reviewableFieldPaths is the vocabulary of dotted field paths the review
// workflow recognizes. Declines may only name these paths, and resubmissions
// only apply them; the storage layer maps each path to its column.
var reviewableFieldPaths = map[string]struct{}{
	"firstName":           {},
	"middleName":          {},
	"lastName":            {},
	"email":               {},
	"mobile":              {},
	"dateOfBirth":         {},
	"address":             {},
	"course":              {},
	"father.name":         {},
	"father.mobile":       {},
	"mother.name":         {},
	"mother.mobile":       {},
	"documents.photo":     {},
	"documents.marksheet": {},
}

// IsReviewableFieldPath reports whether the review workflow recognizes path.
func IsReviewableFieldPath(path string) bool {
	_, ok := reviewableFieldPaths[path]
	return ok
}

// Student defines the applicant model based on the 'students' table.
// DeclinedFields holds the dotted field paths an admin rejected; it is empty
// whenever Status is not declined, and it is the allowlist of fields the
// student may resubmit.
type Student struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	Email          string        `json:"email" db:"email" example:"applicant@college.edu"`
	FirstName      string        `json:"firstName" db:"first_name" example:"Asha"`
	MiddleName     *string       `json:"middleName,omitempty" db:"middle_name"`
	LastName       string        `json:"lastName" db:"last_name" example:"Verma"`
	Course         string        `json:"course" db:"course" example:"CSE"`
	Mobile         *string       `json:"mobile,omitempty" db:"mobile"`
	DateOfBirth    *string       `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Address        *string       `json:"address,omitempty" db:"address"`
	FatherName     *string       `json:"fatherName,omitempty" db:"father_name"`
	FatherMobile   *string       `json:"fatherMobile,omitempty" db:"father_mobile"`
	MotherName     *string       `json:"motherName,omitempty" db:"mother_name"`
	MotherMobile   *string       `json:"motherMobile,omitempty" db:"mother_mobile"`
	PhotoURL       *string       `json:"photoUrl,omitempty" db:"photo_url"`
	MarksheetURL   *string       `json:"marksheetUrl,omitempty" db:"marksheet_url"`
	Status         StudentStatus `json:"status" db:"status" example:"pending"`
	DeclinedFields []string      `json:"declinedFields" db:"declined_fields"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`
}
