package repository

import (
	"github.com/ardiansf/career-copilot/internal/model"
	"gorm.io/gorm"
)

type SkillRepositoryInterface interface {
	Possessed(employeeID string) ([]model.Skill, error)
	Catalogue(functionArea, specialization string) ([]model.Skill, error)
	FunctionAreas() ([]string, error)
}

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db}
}

func (r *SkillRepository) Possessed(employeeID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("function_area, specialization, skill_name").
		Find(&skills).Error
	return skills, err
}

// Catalogue returns org-level rows (no owning employee) filtered in SQL;
// the catalogue can be organization-wide, so the filter never moves
// client-side.
func (r *SkillRepository) Catalogue(functionArea, specialization string) ([]model.Skill, error) {
	var skills []model.Skill
	q := r.db.
		Where("employee_id IS NULL").
		Where("function_area = ?", functionArea)
	if specialization != "" {
		q = q.Where("specialization = ?", specialization)
	}
	err := q.Order("specialization, skill_name").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FunctionAreas() ([]string, error) {
	var areas []string
	err := r.db.Model(&model.Skill{}).
		Distinct("function_area").
		Where("employee_id IS NULL").
		Where("TRIM(function_area) <> ''").
		Order("function_area").
		Pluck("function_area", &areas).Error
	return areas, err
}
