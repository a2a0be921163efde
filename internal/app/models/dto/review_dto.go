package dto

// VerifyStudentRequest drives the admin review transition. Status must be
// "approved" or "declined"; DeclinedFields is required (non-empty) for a
// decline and must be empty for an approval.
type VerifyStudentRequest struct {
	StudentID      int64    `json:"studentId" binding:"required" example:"5"`
	Status         string   `json:"status" binding:"required,oneof=approved declined" example:"declined"`
	DeclinedFields []string `json:"declinedFields" example:"father.mobile,mother.name"`
}

// ResubmitDeclinedRequest is the student's correction of previously declined
// fields: dotted field path to new value. Paths outside the declined set are
// ignored.
type ResubmitDeclinedRequest struct {
	Updates map[string]string `json:"updates" binding:"required"`
}

// ReviewSuggestionResponse is the advisory pre-review: a recomputed candidate
// status plus every required field found missing. It never reflects or causes
// a stored transition; the admin must still invoke verify-student.
type ReviewSuggestionResponse struct {
	SuggestedStatus         string   `json:"suggestedStatus" example:"declined"`
	SuggestedDeclinedFields []string `json:"suggestedDeclinedFields" example:"father.mobile,documents.photo"`
}
