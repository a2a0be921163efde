package models

import "time"

// SARHeader is the one-per-student root record that academic, internship and
// achievement records attach to. It is created lazily on the first write to
// any child resource.
type SARHeader struct {
	ID                          int64     `json:"id" db:"id" example:"1"`
	StudentID                   int64     `json:"studentId" db:"student_id" example:"5"`
	EnrollmentNo                string    `json:"enrollmentNo" db:"enrollment_no" example:"EN2023051"`
	MicrosoftEmail              string    `json:"microsoftEmail" db:"microsoft_email" example:"asha.verma@college.edu"`
	CurrentSemester             int       `json:"currentSemester" db:"current_semester" example:"3"`
	ProfileCompletionPercentage float64   `json:"profileCompletionPercentage" db:"profile_completion_percentage" example:"62.5"`
	CreatedAt                   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt                   time.Time `json:"updatedAt" db:"updated_at"`
}

// AcademicRecord is one semester attempt. At most one record exists per
// (SARID, Semester); the storage layer enforces this with a unique constraint.
// Subjects are stored as a JSON sub-document in a single column.
type AcademicRecord struct {
	ID                   int64     `json:"id" db:"id"`
	SARID                int64     `json:"-" db:"sar_id"`
	Semester             int       `json:"semester" db:"semester" example:"3"`
	AcademicYear         string    `json:"academicYear" db:"academic_year" example:"2023-24"`
	SGPA                 *float64  `json:"sgpa,omitempty" db:"sgpa" example:"8.4"`
	CGPA                 *float64  `json:"cgpa,omitempty" db:"cgpa" example:"8.1"`
	CreditsEarned        *float64  `json:"creditsEarned,omitempty" db:"credits_earned"`
	CreditsTotal         *float64  `json:"creditsTotal,omitempty" db:"credits_total"`
	AttendancePercentage *float64  `json:"attendancePercentage,omitempty" db:"attendance_percentage"`
	BacklogCount         int       `json:"backlogCount" db:"backlog_count"`
	SemesterResult       *string   `json:"semesterResult,omitempty" db:"semester_result" example:"PASS"`
	Subjects             []Subject `json:"subjects"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`
}

// PerformanceRating is the stored qualitative bucket for an internship
// rating. The API boundary speaks numeric 1-5; see the subdoc package for the
// transcoding rules.
type PerformanceRating string

const (
	RatingPoor      PerformanceRating = "poor"
	RatingAverage   PerformanceRating = "average"
	RatingGood      PerformanceRating = "good"
	RatingExcellent PerformanceRating = "excellent"
)

// InternshipRecord is one internship stint.
type InternshipRecord struct {
	ID                  int64              `json:"id" db:"id"`
	SARID               int64              `json:"-" db:"sar_id"`
	Company             string             `json:"company" db:"company" example:"Zentrix Labs"`
	Position            string             `json:"position" db:"position" example:"Backend Intern"`
	InternshipType      *string            `json:"internshipType,omitempty" db:"internship_type" example:"summer"`
	StartDate           time.Time          `json:"startDate" db:"start_date"`
	EndDate             *time.Time         `json:"endDate,omitempty" db:"end_date"`
	Stipend             *float64           `json:"stipend,omitempty" db:"stipend"`
	StipendCurrency     *string            `json:"stipendCurrency,omitempty" db:"stipend_currency" example:"INR"`
	WorkMode            *string            `json:"workMode,omitempty" db:"work_mode" example:"remote"`
	Description         *string            `json:"description,omitempty" db:"description"`
	SkillsLearned       []string           `json:"skillsLearned"`
	TechnologiesUsed    []string           `json:"technologiesUsed"`
	SupervisorName      *string            `json:"supervisorName,omitempty" db:"supervisor_name"`
	SupervisorEmail     *string            `json:"supervisorEmail,omitempty" db:"supervisor_email"`
	SupervisorPhone     *string            `json:"supervisorPhone,omitempty" db:"supervisor_phone"`
	PerformanceRating   *PerformanceRating `json:"-" db:"performance_rating"`
	CertificateProvided bool               `json:"certificateProvided" db:"certificate_provided"`
	PPOReceived         bool               `json:"ppoReceived" db:"ppo_received"`
	OfferLetterURL      *string            `json:"offerLetterUrl,omitempty" db:"offer_letter_url"`
	CreatedAt           time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time          `json:"updatedAt" db:"updated_at"`
}

// AchievementRecord is one recognized accomplishment.
type AchievementRecord struct {
	ID                 int64      `json:"id" db:"id"`
	SARID              int64      `json:"-" db:"sar_id"`
	Title              string     `json:"title" db:"title" example:"Smart India Hackathon Winner"`
	Category           string     `json:"category" db:"category" example:"technical"`
	Subcategory        *string    `json:"subcategory,omitempty" db:"subcategory" example:"hackathon"`
	Level              string     `json:"level" db:"level" example:"national"`
	Organization       *string    `json:"organization,omitempty" db:"organization"`
	EventName          *string    `json:"eventName,omitempty" db:"event_name"`
	EventDate          *time.Time `json:"eventDate,omitempty" db:"event_date"`
	DateAwarded        *time.Time `json:"dateAwarded,omitempty" db:"date_awarded"`
	PositionRank       *string    `json:"positionRank,omitempty" db:"position_rank" example:"1st"`
	ParticipantsCount  *int       `json:"participantsCount,omitempty" db:"participants_count"`
	TeamSize           *int       `json:"teamSize,omitempty" db:"team_size"`
	TeamMembers        []string   `json:"teamMembers"`
	PrizeAmount        *float64   `json:"prizeAmount,omitempty" db:"prize_amount"`
	PrizeCurrency      *string    `json:"prizeCurrency,omitempty" db:"prize_currency"`
	CertificateURL     *string    `json:"certificateUrl,omitempty" db:"certificate_url"`
	IsTeamAchievement  bool       `json:"isTeamAchievement" db:"is_team_achievement"`
	Verified           bool       `json:"verified" db:"verified"`
	MediaURLs          []string   `json:"mediaUrls"`
	SkillsDemonstrated []string   `json:"skillsDemonstrated"`
	TechnologiesUsed   []string   `json:"technologiesUsed"`
	Tags               []string   `json:"tags"`
	SemesterAchieved   *int       `json:"semesterAchieved,omitempty" db:"semester_achieved"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
