package dto

import (
	"github.com/campuskit/admitportal/internal/app/models"
)

// UpdateOverviewRequest updates the SAR header identity fields. All fields
// are optional; absent fields are left untouched.
type UpdateOverviewRequest struct {
	EnrollmentNo    *string `json:"enrollmentNo" example:"EN2023051"`
	MicrosoftEmail  *string `json:"microsoftEmail" binding:"omitempty,email" example:"asha.verma@college.edu"`
	CurrentSemester *int    `json:"currentSemester" example:"3"`
}

// AcademicRecordRequest is the create/update payload for one semester
// attempt. Range and cross-field rules are enforced by the validation
// package, not binding tags, so every problem is reported at once.
type AcademicRecordRequest struct {
	Semester             int              `json:"semester" example:"3"`
	AcademicYear         string           `json:"academicYear" example:"2023-24"`
	SGPA                 *float64         `json:"sgpa" example:"8.4"`
	CGPA                 *float64         `json:"cgpa" example:"8.1"`
	CreditsEarned        *float64         `json:"creditsEarned" example:"22"`
	CreditsTotal         *float64         `json:"creditsTotal" example:"24"`
	AttendancePercentage *float64         `json:"attendancePercentage" example:"87.5"`
	BacklogCount         *int             `json:"backlogCount" example:"0"`
	SemesterResult       *string          `json:"semesterResult" example:"PASS"`
	Subjects             []models.Subject `json:"subjects"`
}

// InternshipRecordRequest is the create/update payload for one internship
// stint. Dates travel as "2006-01-02" strings; PerformanceRating is numeric
// 1-5 at this boundary and transcoded to the stored bucket.
type InternshipRecordRequest struct {
	Company             string   `json:"company" example:"Zentrix Labs"`
	Position            string   `json:"position" example:"Backend Intern"`
	InternshipType      *string  `json:"internshipType" example:"summer"`
	StartDate           string   `json:"startDate" example:"2024-05-15"`
	EndDate             *string  `json:"endDate" example:"2024-07-15"`
	Stipend             *float64 `json:"stipend" example:"15000"`
	StipendCurrency     *string  `json:"stipendCurrency" example:"INR"`
	WorkMode            *string  `json:"workMode" example:"remote"`
	Description         *string  `json:"description"`
	SkillsLearned       []string `json:"skillsLearned"`
	TechnologiesUsed    []string `json:"technologiesUsed"`
	SupervisorName      *string  `json:"supervisorName"`
	SupervisorEmail     *string  `json:"supervisorEmail" binding:"omitempty,email"`
	SupervisorPhone     *string  `json:"supervisorPhone"`
	PerformanceRating   *int     `json:"performanceRating" example:"4"`
	CertificateProvided bool     `json:"certificateProvided"`
	PPOReceived         bool     `json:"ppoReceived"`
	OfferLetterURL      *string  `json:"offerLetterUrl" binding:"omitempty,url"`
}

// AchievementRecordRequest is the create/update payload for one recognized
// accomplishment.
type AchievementRecordRequest struct {
	Title              string   `json:"title" example:"Smart India Hackathon Winner"`
	Category           string   `json:"category" example:"technical"`
	Subcategory        *string  `json:"subcategory" example:"hackathon"`
	Level              string   `json:"level" example:"national"`
	Organization       *string  `json:"organization"`
	EventName          *string  `json:"eventName"`
	EventDate          *string  `json:"eventDate" example:"2024-03-12"`
	DateAwarded        *string  `json:"dateAwarded" example:"2024-03-14"`
	PositionRank       *string  `json:"positionRank" example:"1st"`
	ParticipantsCount  *int     `json:"participantsCount"`
	TeamSize           *int     `json:"teamSize"`
	TeamMembers        []string `json:"teamMembers"`
	PrizeAmount        *float64 `json:"prizeAmount"`
	PrizeCurrency      *string  `json:"prizeCurrency"`
	CertificateURL     *string  `json:"certificateUrl" binding:"omitempty,url"`
	IsTeamAchievement  bool     `json:"isTeamAchievement"`
	Verified           bool     `json:"verified"`
	MediaURLs          []string `json:"mediaUrls"`
	SkillsDemonstrated []string `json:"skillsDemonstrated"`
	TechnologiesUsed   []string `json:"technologiesUsed"`
	Tags               []string `json:"tags"`
	SemesterAchieved   *int     `json:"semesterAchieved"`
}

// InternshipResponse presents an internship with the numeric rating the API
// boundary speaks.
type InternshipResponse struct {
	models.InternshipRecord
	PerformanceRating *int `json:"performanceRating,omitempty" example:"4"`
}

// CompleteSARResponse is the full aggregate: the owning student row, the
// header and the three child lists in one payload.
type CompleteSARResponse struct {
	Student      *models.Student            `json:"student"`
	Header       *models.SARHeader          `json:"header"`
	Academic     []models.AcademicRecord    `json:"academicRecords"`
	Internships  []InternshipResponse       `json:"internships"`
	Achievements []models.AchievementRecord `json:"achievements"`
}

// StatisticsResponse carries per-kind counts and the arithmetic mean CGPA
// across academic records that have one.
type StatisticsResponse struct {
	AcademicRecords int      `json:"academicRecords" example:"4"`
	Internships     int      `json:"internships" example:"2"`
	Achievements    int      `json:"achievements" example:"5"`
	AverageCGPA     *float64 `json:"averageCgpa,omitempty" example:"8.12"`
}
