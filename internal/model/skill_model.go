package model

import (
	"time"

	"github.com/google/uuid"
)

// Skill rows come in two flavors: possessed (EmployeeID set) and
// catalogue/required (EmployeeID NULL, org-level requirement).
type Skill struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID     *string   `gorm:"type:varchar(20);index" json:"employee_id"`
	FunctionArea   string    `gorm:"type:varchar(255);index" json:"function_area"`
	Specialization string    `gorm:"type:varchar(255)" json:"specialization"`
	SkillName      string    `gorm:"type:varchar(255)" json:"skill_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *Skill) TableName() string {
	return "skills"
}
