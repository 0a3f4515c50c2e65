package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mastrino/reflection/internal/catalog"
	"github.com/mastrino/reflection/internal/mailer"
	"github.com/mastrino/reflection/internal/repository"
)

// NotifierService decides, on each answered-count change, whether a
// milestone has newly been crossed and dispatches at most one email per
// milestone for the lifetime of the progress record.
type NotifierService interface {
	// CheckMilestones runs as a background side effect of autosave; it
	// never returns an error and never blocks the save path on failure.
	CheckMilestones(answeredCount int)
}

type notifierService struct {
	progressRepo repository.ProgressRepository
	mail         mailer.Mailer
}

func NewNotifierService(progressRepo repository.ProgressRepository, mail mailer.Mailer) NotifierService {
	return &notifierService{progressRepo: progressRepo, mail: mail}
}

func (s *notifierService) CheckMilestones(answeredCount int) {
	// Thresholds are evaluated against the current count, not a delta.
	// The flag claim is a conditional UPDATE, so two racing saves cannot
	// both win it; the claiming call alone sends the email. Both checks
	// are independent and may fire in the same invocation.
	if answeredCount >= 1 {
		claimed, err := s.progressRepo.ClaimStart(time.Now())
		if err != nil {
			log.Error().Err(err).Msg("Notifier: failed to claim start milestone")
		} else if claimed {
			s.dispatch(mailer.KindStarted)
		}
	}

	if answeredCount >= catalog.HalfwayThreshold(catalog.TotalQuestions) {
		claimed, err := s.progressRepo.ClaimHalfway()
		if err != nil {
			log.Error().Err(err).Msg("Notifier: failed to claim halfway milestone")
		} else if claimed {
			s.dispatch(mailer.KindHalfway)
		}
	}
}

func (s *notifierService) dispatch(kind mailer.Kind) {
	if err := s.mail.SendMilestone(kind); err != nil {
		// The flag is already claimed: a failed dispatch loses this one
		// courtesy email rather than risking a duplicate. No retry.
		log.Error().Err(err).Str("kind", string(kind)).Msg("Notifier: milestone email failed")
		return
	}
	log.Info().Str("kind", string(kind)).Msg("Notifier: milestone email sent")
}
