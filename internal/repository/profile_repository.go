package repository

import (
	"github.com/ardiansf/career-copilot/internal/model"
	"gorm.io/gorm"
)

type ProfileRepositoryInterface interface {
	Positions(employeeID string) ([]model.PositionHistory, error)
	Projects(employeeID string) ([]model.Project, error)
	Experiences(employeeID string) ([]model.Experience, error)
}

// ProfileRepository serves the read-only inputs of the leadership
// potential prompt.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) Positions(employeeID string) ([]model.PositionHistory, error) {
	var positions []model.PositionHistory
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&positions).Error
	return positions, err
}

func (r *ProfileRepository) Projects(employeeID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProfileRepository) Experiences(employeeID string) ([]model.Experience, error) {
	var experiences []model.Experience
	err := r.db.
		Where("employee_id = ?", employeeID).
		Find(&experiences).Error
	return experiences, err
}
