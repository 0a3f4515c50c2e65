package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mastrino/reflection/internal/model"
)

// ProgressRepository manages the singleton progress row. The Claim*
// methods perform a single conditional UPDATE guarded on the flag still
// being false and report whether this call made the transition, so each
// milestone can dispatch at most once no matter how saves interleave.
type ProgressRepository interface {
	Get() (*model.Progress, error)
	EnsureExists() error
	ClaimStart(now time.Time) (bool, error)
	ClaimHalfway() (bool, error)
	ClaimSubmit(now time.Time) (bool, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get() (*model.Progress, error) {
	var progress model.Progress
	if err := r.db.First(&progress, model.ProgressID).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// EnsureExists seeds the singleton row with default (false) flags.
func (r *progressRepository) EnsureExists() error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Progress{ID: model.ProgressID}).Error
}

func (r *progressRepository) ClaimStart(now time.Time) (bool, error) {
	return r.claim(map[string]interface{}{
		"started_at":     now,
		"notified_start": true,
	}, "notified_start")
}

func (r *progressRepository) ClaimHalfway() (bool, error) {
	return r.claim(map[string]interface{}{
		"reached_50":  true,
		"notified_50": true,
	}, "notified_50")
}

func (r *progressRepository) ClaimSubmit(now time.Time) (bool, error) {
	return r.claim(map[string]interface{}{
		"submitted_at":    now,
		"notified_submit": true,
	}, "notified_submit")
}

func (r *progressRepository) claim(updates map[string]interface{}, flagColumn string) (bool, error) {
	result := r.db.Model(&model.Progress{}).
		Where("id = ? AND "+flagColumn+" = ?", model.ProgressID, false).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
