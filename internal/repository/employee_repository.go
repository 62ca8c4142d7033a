package repository

import (
	"errors"

	"github.com/ardiansf/career-copilot/internal/model"
	"gorm.io/gorm"
)

type EmployeeRepositoryInterface interface {
	FindByID(id string) (*model.Employee, error)
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db}
}

// FindByID returns (nil, nil) when the employee does not exist.
func (r *EmployeeRepository) FindByID(id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.First(&emp, "employee_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
