package service

import (
	"sync"
	"time"

	"github.com/mastrino/reflection/internal/dto"
	"github.com/mastrino/reflection/internal/mailer"
	"github.com/mastrino/reflection/internal/model"
)

type fakeAnswerRepo struct {
	mu       sync.Mutex
	rows     map[string]string
	findErr  error
	writeErr error
	flushes  int
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{rows: make(map[string]string)}
}

func (r *fakeAnswerRepo) Upsert(key, text string) error {
	return r.UpsertAll(map[string]string{key: text})
}

func (r *fakeAnswerRepo) UpsertAll(answers map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	for key, text := range answers {
		r.rows[key] = text
	}
	r.flushes++
	return nil
}

func (r *fakeAnswerRepo) FindAll() ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	answers := make([]model.Answer, 0, len(r.rows))
	for key, text := range r.rows {
		answers = append(answers, model.Answer{QuestionKey: key, Answer: text})
	}
	return answers, nil
}

func (r *fakeAnswerRepo) stored(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	text, ok := r.rows[key]
	return text, ok
}

func (r *fakeAnswerRepo) flushCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// fakeProgressRepo mirrors the conditional-update semantics of the real
// repository: a claim succeeds only when the flag is still false.
type fakeProgressRepo struct {
	mu       sync.Mutex
	progress model.Progress
	getErr   error
	claimErr error

	startClaims   int
	halfwayClaims int
	submitClaims  int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{progress: model.Progress{ID: model.ProgressID}}
}

func (r *fakeProgressRepo) Get() (*model.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	copied := r.progress
	return &copied, nil
}

func (r *fakeProgressRepo) EnsureExists() error { return nil }

func (r *fakeProgressRepo) ClaimStart(now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimErr != nil {
		return false, r.claimErr
	}
	if r.progress.NotifiedStart {
		return false, nil
	}
	r.progress.NotifiedStart = true
	r.progress.StartedAt = &now
	r.startClaims++
	return true, nil
}

func (r *fakeProgressRepo) ClaimHalfway() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimErr != nil {
		return false, r.claimErr
	}
	if r.progress.Notified50 {
		return false, nil
	}
	r.progress.Notified50 = true
	r.progress.Reached50 = true
	r.halfwayClaims++
	return true, nil
}

func (r *fakeProgressRepo) ClaimSubmit(now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimErr != nil {
		return false, r.claimErr
	}
	if r.progress.NotifiedSubmit {
		return false, nil
	}
	r.progress.NotifiedSubmit = true
	r.progress.SubmittedAt = &now
	r.submitClaims++
	return true, nil
}

type fakeMailer struct {
	mu          sync.Mutex
	milestones  []mailer.Kind
	submissions []dto.CompiledSubmission
	sendErr     error
}

func (m *fakeMailer) SendMilestone(kind mailer.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.milestones = append(m.milestones, kind)
	return nil
}

func (m *fakeMailer) SendSubmission(report dto.CompiledSubmission, submittedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.submissions = append(m.submissions, report)
	return nil
}

func (m *fakeMailer) sentMilestones() []mailer.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Kind(nil), m.milestones...)
}

func (m *fakeMailer) sentSubmissions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.submissions)
}

type fakeNotifier struct {
	mu     sync.Mutex
	counts []int
}

func (n *fakeNotifier) CheckMilestones(answeredCount int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.counts = append(n.counts, answeredCount)
}

func (n *fakeNotifier) seen() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]int(nil), n.counts...)
}

// fakeTracker is a minimal TrackerService for submission tests.
type fakeTracker struct {
	answers   map[string]string
	submitted bool
	flushed   int
}

func (t *fakeTracker) Load()                       {}
func (t *fakeTracker) SetAnswer(_, _ string) error { return nil }
func (t *fakeTracker) FlushPending()               { t.flushed++ }
func (t *fakeTracker) Stop()                       {}
func (t *fakeTracker) IsSubmitted() bool           { return t.submitted }
func (t *fakeTracker) MarkSubmitted(time.Time)     { t.submitted = true }
func (t *fakeTracker) State() dto.StateResponse    { return dto.StateResponse{} }

func (t *fakeTracker) AnsweredCount() int {
	count := 0
	for _, text := range t.answers {
		if text != "" {
			count++
		}
	}
	return count
}

func (t *fakeTracker) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(t.answers))
	for key, text := range t.answers {
		snapshot[key] = text
	}
	return snapshot
}
