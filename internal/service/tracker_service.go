package service

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mastrino/reflection/internal/catalog"
	"github.com/mastrino/reflection/internal/debounce"
	"github.com/mastrino/reflection/internal/dto"
	"github.com/mastrino/reflection/internal/repository"
)

// TrackerService owns the authoritative in-memory answer map, mirrors
// edits to storage through a debounced flush, and derives aggregate
// completion for the state endpoint.
type TrackerService interface {
	// Load restores persisted answers and the submitted flag. It fails
	// soft: any retrieval error leaves the tracker empty rather than
	// blocking the user.
	Load()
	// SetAnswer validates the key, updates memory synchronously and
	// schedules a debounced persistence write.
	SetAnswer(key, text string) error
	// FlushPending forces any debounced edits out immediately.
	FlushPending()
	// Stop tears the debouncer down, flushing pending edits first.
	Stop()
	AnsweredCount() int
	Snapshot() map[string]string
	IsSubmitted() bool
	MarkSubmitted(at time.Time)
	State() dto.StateResponse
}

type trackerService struct {
	answerRepo   repository.AnswerRepository
	progressRepo repository.ProgressRepository
	notifier     NotifierService

	mu          sync.RWMutex
	answers     map[string]string
	submitted   bool
	startedAt   *time.Time
	submittedAt *time.Time

	debouncer *debounce.Debouncer
}

func NewTrackerService(
	answerRepo repository.AnswerRepository,
	progressRepo repository.ProgressRepository,
	notifier NotifierService,
	debounceWindow time.Duration,
) TrackerService {
	s := &trackerService{
		answerRepo:   answerRepo,
		progressRepo: progressRepo,
		notifier:     notifier,
		answers:      make(map[string]string),
	}
	s.debouncer = debounce.New(debounceWindow, s.flush)
	return s
}

func (s *trackerService) Load() {
	answers, err := s.answerRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Tracker: failed to load answers, starting empty")
	} else {
		s.mu.Lock()
		for _, row := range answers {
			s.answers[row.QuestionKey] = row.Answer
		}
		s.mu.Unlock()
		log.Info().Int("answers", len(answers)).Msg("Tracker: restored saved answers")
	}

	progress, err := s.progressRepo.Get()
	if err != nil {
		log.Error().Err(err).Msg("Tracker: failed to load progress record")
		return
	}
	s.mu.Lock()
	s.submitted = progress.SubmittedAt != nil
	s.startedAt = progress.StartedAt
	s.submittedAt = progress.SubmittedAt
	s.mu.Unlock()
}

func (s *trackerService) SetAnswer(key, text string) error {
	if _, _, err := catalog.ParseKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	s.answers[key] = text
	s.mu.Unlock()
	s.debouncer.Schedule(key, text)
	return nil
}

// flush is the debouncer callback: persist the coalesced batch, then run
// the milestone check against the fresh answered count. Errors here are
// background noise to the user and are logged, never propagated.
func (s *trackerService) flush(batch map[string]string) {
	if err := s.answerRepo.UpsertAll(batch); err != nil {
		log.Error().Err(err).Int("batch", len(batch)).Msg("Tracker: autosave flush failed")
		return
	}
	log.Debug().Int("batch", len(batch)).Msg("Tracker: autosave flush complete")
	s.notifier.CheckMilestones(s.AnsweredCount())
}

func (s *trackerService) FlushPending() {
	s.debouncer.Flush()
}

func (s *trackerService) Stop() {
	s.debouncer.Flush()
	s.debouncer.Stop()
}

func (s *trackerService) AnsweredCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, text := range s.answers {
		if strings.TrimSpace(text) != "" {
			count++
		}
	}
	return count
}

func (s *trackerService) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]string, len(s.answers))
	for key, text := range s.answers {
		snapshot[key] = text
	}
	return snapshot
}

func (s *trackerService) IsSubmitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitted
}

func (s *trackerService) MarkSubmitted(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = true
	s.submittedAt = &at
}

func (s *trackerService) State() dto.StateResponse {
	answered := s.AnsweredCount()
	s.mu.RLock()
	defer s.mu.RUnlock()
	answers := make(map[string]string, len(s.answers))
	for key, text := range s.answers {
		answers[key] = text
	}
	return dto.StateResponse{
		Answers:        answers,
		AnsweredCount:  answered,
		TotalQuestions: catalog.TotalQuestions,
		Percent:        catalog.Percent(answered, catalog.TotalQuestions),
		Submitted:      s.submitted,
		StartedAt:      s.startedAt,
		SubmittedAt:    s.submittedAt,
	}
}
