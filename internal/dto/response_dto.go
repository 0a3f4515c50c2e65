package dto

import "time"

type SectionResponse struct {
	Index     int      `json:"index"`
	Title     string   `json:"title"`
	Icon      string   `json:"icon"`
	Questions []string `json:"questions"`
}

type CatalogResponse struct {
	Sections       []SectionResponse `json:"sections"`
	TotalQuestions int               `json:"total_questions"`
}

// StateResponse is everything a client needs to restore the page:
// saved answers, aggregate progress and the terminal submitted flag.
type StateResponse struct {
	Answers        map[string]string `json:"answers"`
	AnsweredCount  int               `json:"answered_count"`
	TotalQuestions int               `json:"total_questions"`
	Percent        int               `json:"percent"`
	Submitted      bool              `json:"submitted"`
	StartedAt      *time.Time        `json:"started_at,omitempty"`
	SubmittedAt    *time.Time        `json:"submitted_at,omitempty"`
}

// SaveAnswerResponse acknowledges an accepted (debounced, not yet
// durable) answer write.
type SaveAnswerResponse struct {
	QuestionKey    string `json:"question_key"`
	AnsweredCount  int    `json:"answered_count"`
	TotalQuestions int    `json:"total_questions"`
	Percent        int    `json:"percent"`
}

type SubmissionReceipt struct {
	AnsweredCount  int       `json:"answered_count"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
