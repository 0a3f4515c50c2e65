package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mastrino/reflection/internal/model"
)

type AnswerRepository interface {
	Upsert(key, text string) error
	UpsertAll(answers map[string]string) error
	FindAll() ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(key, text string) error {
	answer := model.Answer{
		QuestionKey: key,
		Answer:      text,
		UpdatedAt:   time.Now(),
	}
	// Insert-or-update on question_key so a row is never duplicated.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
	}).Create(&answer).Error
}

func (r *answerRepository) UpsertAll(answers map[string]string) error {
	if len(answers) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.Answer, 0, len(answers))
	for key, text := range answers {
		rows = append(rows, model.Answer{QuestionKey: key, Answer: text, UpdatedAt: now})
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
	}).Create(&rows).Error
}

func (r *answerRepository) FindAll() ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
