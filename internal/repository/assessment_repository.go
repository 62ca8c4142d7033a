package repository

import (
	"errors"

	"github.com/ardiansf/career-copilot/internal/model"
	"gorm.io/gorm"
)

const maxHistoryLimit = 100

type AssessmentRepositoryInterface interface {
	Create(rec *model.PathwayAssessment) error
	Latest(employeeID string) (*model.PathwayAssessment, error)
	History(employeeID string, limit int) ([]model.PathwayAssessment, error)
}

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) Create(rec *model.PathwayAssessment) error {
	return r.db.Create(rec).Error
}

// Latest returns (nil, nil) when the employee has no assessments yet.
// Concurrent writers race on this; generated_at ordering makes it
// last write wins.
func (r *AssessmentRepository) Latest(employeeID string) (*model.PathwayAssessment, error) {
	var rec model.PathwayAssessment
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AssessmentRepository) History(employeeID string, limit int) ([]model.PathwayAssessment, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	var recs []model.PathwayAssessment
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
