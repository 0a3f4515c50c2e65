package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastrino/reflection/internal/catalog"
)

func newTestTracker(answerRepo *fakeAnswerRepo, progressRepo *fakeProgressRepo, notifier *fakeNotifier) TrackerService {
	return NewTrackerService(answerRepo, progressRepo, notifier, 10*time.Millisecond)
}

func TestLoadRestoresAnswersAndSubmittedFlag(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	answerRepo.rows["0-0"] = "I met him at school"
	answerRepo.rows["1-2"] = "draft"
	progressRepo := newFakeProgressRepo()
	now := time.Now()
	progressRepo.progress.SubmittedAt = &now

	tracker := newTestTracker(answerRepo, progressRepo, &fakeNotifier{})
	tracker.Load()
	defer tracker.Stop()

	state := tracker.State()
	assert.Equal(t, "I met him at school", state.Answers["0-0"])
	assert.Equal(t, 2, state.AnsweredCount)
	assert.True(t, state.Submitted)
	require.NotNil(t, state.SubmittedAt)
}

func TestLoadFailsSoftOnStorageError(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	answerRepo.findErr = errors.New("connection refused")
	progressRepo := newFakeProgressRepo()
	progressRepo.getErr = errors.New("connection refused")

	tracker := newTestTracker(answerRepo, progressRepo, &fakeNotifier{})
	tracker.Load()
	defer tracker.Stop()

	// The user is never blocked: empty state, not submitted.
	state := tracker.State()
	assert.Empty(t, state.Answers)
	assert.False(t, state.Submitted)
}

func TestSetAnswerValidatesKey(t *testing.T) {
	tracker := newTestTracker(newFakeAnswerRepo(), newFakeProgressRepo(), &fakeNotifier{})
	defer tracker.Stop()

	assert.Error(t, tracker.SetAnswer("99-0", "out of range"))
	assert.Error(t, tracker.SetAnswer("not-a-key", "malformed"))
	assert.NoError(t, tracker.SetAnswer("0-0", "fine"))
	assert.NoError(t, tracker.SetAnswer("0-1", "")) // empty accepted
}

func TestAnsweredCountIgnoresWhitespaceOnlyAnswers(t *testing.T) {
	tracker := newTestTracker(newFakeAnswerRepo(), newFakeProgressRepo(), &fakeNotifier{})
	defer tracker.Stop()

	require.NoError(t, tracker.SetAnswer("0-0", "real answer"))
	require.NoError(t, tracker.SetAnswer("0-1", "   \n\t"))
	require.NoError(t, tracker.SetAnswer("0-2", ""))

	assert.Equal(t, 1, tracker.AnsweredCount())
}

func TestDebouncedFlushPersistsAndChecksMilestones(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	notifier := &fakeNotifier{}
	tracker := newTestTracker(answerRepo, newFakeProgressRepo(), notifier)
	defer tracker.Stop()

	require.NoError(t, tracker.SetAnswer("0-0", "first draft"))
	require.NoError(t, tracker.SetAnswer("0-0", "final draft"))
	require.NoError(t, tracker.SetAnswer("0-1", "another"))

	require.Eventually(t, func() bool { return answerRepo.flushCount() == 1 }, time.Second, 5*time.Millisecond)

	// One coalesced write, last value per key.
	stored, ok := answerRepo.stored("0-0")
	require.True(t, ok)
	assert.Equal(t, "final draft", stored)
	stored, ok = answerRepo.stored("0-1")
	require.True(t, ok)
	assert.Equal(t, "another", stored)

	// Milestone check ran with the post-flush count.
	require.Eventually(t, func() bool { return len(notifier.seen()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, notifier.seen())
}

func TestFlushErrorSkipsMilestoneCheck(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	answerRepo.writeErr = errors.New("disk full")
	notifier := &fakeNotifier{}
	tracker := newTestTracker(answerRepo, newFakeProgressRepo(), notifier)
	defer tracker.Stop()

	require.NoError(t, tracker.SetAnswer("0-0", "lost"))
	tracker.FlushPending()

	assert.Empty(t, notifier.seen())
	// In-memory state still holds the edit.
	assert.Equal(t, 1, tracker.AnsweredCount())
}

func TestStatePercent(t *testing.T) {
	tracker := newTestTracker(newFakeAnswerRepo(), newFakeProgressRepo(), &fakeNotifier{})
	defer tracker.Stop()

	require.NoError(t, tracker.SetAnswer("0-0", "one"))
	state := tracker.State()
	assert.Equal(t, catalog.TotalQuestions, state.TotalQuestions)
	assert.Equal(t, catalog.Percent(1, catalog.TotalQuestions), state.Percent)
}

func TestLastWritePerKeyWinsAcrossBursts(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	tracker := newTestTracker(answerRepo, newFakeProgressRepo(), &fakeNotifier{})
	defer tracker.Stop()

	require.NoError(t, tracker.SetAnswer("2-1", "v1"))
	tracker.FlushPending()
	require.NoError(t, tracker.SetAnswer("2-1", "v2"))
	tracker.FlushPending()

	stored, ok := answerRepo.stored("2-1")
	require.True(t, ok)
	assert.Equal(t, "v2", stored)
}
