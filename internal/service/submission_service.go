package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mastrino/reflection/internal/catalog"
	"github.com/mastrino/reflection/internal/dto"
	"github.com/mastrino/reflection/internal/mailer"
	"github.com/mastrino/reflection/internal/repository"
)

// UnansweredPlaceholder is what an unanswered question serializes to in
// the compiled report.
const UnansweredPlaceholder = "[No answer provided]"

// ErrAlreadySubmitted signals that the questionnaire is in its terminal
// state and cannot be submitted again.
var ErrAlreadySubmitted = errors.New("questionnaire already submitted")

// SubmissionService compiles the final report, sends it, and moves the
// record and the tracker into the terminal submitted state.
type SubmissionService interface {
	Submit() (*dto.SubmissionReceipt, error)
}

type submissionService struct {
	tracker      TrackerService
	progressRepo repository.ProgressRepository
	mail         mailer.Mailer
}

func NewSubmissionService(
	tracker TrackerService,
	progressRepo repository.ProgressRepository,
	mail mailer.Mailer,
) SubmissionService {
	return &submissionService{tracker: tracker, progressRepo: progressRepo, mail: mail}
}

// Submit sends the compiled report and persists the submission flag.
// Ordering: email first, then the flag, and the tracker flips to
// submitted only after the flag write succeeds. A failure at either step
// returns an error and leaves the questionnaire retryable.
func (s *submissionService) Submit() (*dto.SubmissionReceipt, error) {
	if s.tracker.IsSubmitted() {
		return nil, ErrAlreadySubmitted
	}

	// Make sure the report reflects every edit, including ones still
	// sitting in the debounce window.
	s.tracker.FlushPending()

	report := CompileSubmission(s.tracker.Snapshot())
	submittedAt := time.Now()

	if err := s.mail.SendSubmission(report, submittedAt); err != nil {
		log.Error().Err(err).Msg("Submission: report email failed")
		return nil, fmt.Errorf("sending submission email: %w", err)
	}

	claimed, err := s.progressRepo.ClaimSubmit(submittedAt)
	if err != nil {
		// The email went out but the record still says unsubmitted; the
		// caller stays retryable, at the cost of a possible duplicate
		// report on retry.
		log.Error().Err(err).Msg("Submission: failed to persist submitted flag after email dispatch")
		return nil, fmt.Errorf("recording submission: %w", err)
	}
	if !claimed {
		log.Warn().Msg("Submission: record was already marked submitted")
	}

	s.tracker.MarkSubmitted(submittedAt)
	log.Info().Int("answered", report.AnsweredCount).Int("total", report.TotalQuestions).Msg("Submission complete")

	return &dto.SubmissionReceipt{
		AnsweredCount:  report.AnsweredCount,
		TotalQuestions: report.TotalQuestions,
		SubmittedAt:    submittedAt,
	}, nil
}

// CompileSubmission pairs every catalog question, in section-then-question
// order, with its answer or the unanswered placeholder. Numbering is
// 1-based and continuous across sections.
func CompileSubmission(answers map[string]string) dto.CompiledSubmission {
	report := dto.CompiledSubmission{TotalQuestions: catalog.TotalQuestions}

	number := 0
	for sectionIdx, section := range catalog.Sections {
		compiled := dto.CompiledSection{
			Section: section.Title,
			Icon:    section.Icon,
		}
		for questionIdx, question := range section.Questions {
			number++
			answer, ok := answers[catalog.Key(sectionIdx, questionIdx)]
			if !ok || answer == "" {
				answer = UnansweredPlaceholder
			}
			compiled.Questions = append(compiled.Questions, dto.CompiledQuestion{
				Number:   number,
				Question: question,
				Answer:   answer,
			})
		}
		report.Sections = append(report.Sections, compiled)
	}

	for _, text := range answers {
		if strings.TrimSpace(text) != "" {
			report.AnsweredCount++
		}
	}
	return report
}
