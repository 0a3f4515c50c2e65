package dto

// SaveAnswerRequest carries one free-text answer. An empty string is
// accepted and counts as "unanswered".
type SaveAnswerRequest struct {
	Answer *string `json:"answer" binding:"required"`
}

// SubmitRequest is the explicit yes/no gate for the one-way submission.
type SubmitRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}
