package services

import (
	"context"

	"github.com/campuskit/admitportal/internal/app/models"
)

// Store interfaces consumed by the services. The concrete implementations
// live in the repositories package; tests substitute in-memory stubs.

// StudentStore is the student table surface the services need
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, status *models.StudentStatus, offset uint64, limit int) ([]models.Student, int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.StudentStatus, declinedFields []string) error
	ApplyFieldUpdates(ctx context.Context, id int64, updates map[string]string, status models.StudentStatus, declinedFields []string) error
}

// SARHeaderStore is the header table surface
type SARHeaderStore interface {
	GetByStudentID(ctx context.Context, studentID int64) (*models.SARHeader, error)
	GetOrCreateForStudent(ctx context.Context, studentID int64) (*models.SARHeader, error)
	Update(ctx context.Context, header *models.SARHeader) error
	UpdateCompletion(ctx context.Context, headerID int64, percentage float64) error
	GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.SARHeader, error)
}

// AcademicStore is the semester record surface
type AcademicStore interface {
	ListBySAR(ctx context.Context, sarID int64) ([]models.AcademicRecord, error)
	GetByID(ctx context.Context, sarID, id int64) (*models.AcademicRecord, error)
	ExistsForSemester(ctx context.Context, sarID int64, semester int) (bool, error)
	Create(ctx context.Context, rec *models.AcademicRecord) (int64, error)
	Update(ctx context.Context, rec *models.AcademicRecord) error
	Delete(ctx context.Context, sarID, id int64) error
}

// InternshipStore is the internship record surface
type InternshipStore interface {
	ListBySAR(ctx context.Context, sarID int64) ([]models.InternshipRecord, error)
	GetByID(ctx context.Context, sarID, id int64) (*models.InternshipRecord, error)
	Create(ctx context.Context, rec *models.InternshipRecord) (int64, error)
	Update(ctx context.Context, rec *models.InternshipRecord) error
	Delete(ctx context.Context, sarID, id int64) error
}

// AchievementStore is the achievement record surface
type AchievementStore interface {
	ListBySAR(ctx context.Context, sarID int64) ([]models.AchievementRecord, error)
	GetByID(ctx context.Context, sarID, id int64) (*models.AchievementRecord, error)
	Create(ctx context.Context, rec *models.AchievementRecord) (int64, error)
	Update(ctx context.Context, rec *models.AchievementRecord) error
	Delete(ctx context.Context, sarID, id int64) error
}
