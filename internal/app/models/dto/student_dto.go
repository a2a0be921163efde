package dto

import "github.com/campuskit/admitportal/internal/app/models"

// PublicStudentResponse is the trimmed projection served by the public
// enrollment-number lookup. It leaks nothing beyond what a notice board
// would: name, course and SAR identity.
type PublicStudentResponse struct {
	FirstName       string `json:"firstName" example:"Asha"`
	LastName        string `json:"lastName" example:"Verma"`
	Course          string `json:"course" example:"CSE"`
	EnrollmentNo    string `json:"enrollmentNo" example:"EN2023051"`
	CurrentSemester int    `json:"currentSemester" example:"3"`
}

// StudentListResponse is the admin dashboard's paginated student feed.
type StudentListResponse struct {
	Students   []models.Student `json:"students"`
	Pagination PaginationInfo   `json:"pagination"`
}
