package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all data access objects
type Repositories struct {
	StudentRepository     *StudentRepository
	SARHeaderRepository   *SARHeaderRepository
	AcademicRepository    *AcademicRepository
	InternshipRepository  *InternshipRepository
	AchievementRepository *AchievementRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		SARHeaderRepository:   NewSARHeaderRepository(db),
		AcademicRepository:    NewAcademicRepository(db),
		InternshipRepository:  NewInternshipRepository(db),
		AchievementRepository: NewAchievementRepository(db),
	}
}
