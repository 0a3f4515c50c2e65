package dto

// CompiledQuestion is one row of the final report: the question paired
// with its answer (or the unanswered placeholder) and its 1-based
// sequential number, continuous across sections.
type CompiledQuestion struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CompiledSection struct {
	Section   string             `json:"section"`
	Icon      string             `json:"icon"`
	Questions []CompiledQuestion `json:"questions"`
}

// CompiledSubmission is the full report built at submission time and
// handed to the mailer. It is not persisted.
type CompiledSubmission struct {
	Sections       []CompiledSection `json:"answers"`
	AnsweredCount  int               `json:"answered_count"`
	TotalQuestions int               `json:"total_questions"`
}
