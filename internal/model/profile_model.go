package model

import (
	"time"

	"github.com/google/uuid"
)

type PositionHistory struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID    string     `gorm:"type:varchar(20);index" json:"employee_id"`
	RoleTitle     string     `gorm:"type:varchar(255)" json:"role_title"`
	Organization  string     `gorm:"type:varchar(255)" json:"organization"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	FocusArea     string     `gorm:"type:text" json:"focus_area"`
	KeySkillsUsed string     `gorm:"type:text" json:"key_skills_used"`
}

func (p *PositionHistory) TableName() string {
	return "positions_history"
}

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID  string     `gorm:"type:varchar(20);index" json:"employee_id"`
	ProjectName string     `gorm:"type:varchar(255)" json:"project_name"`
	Role        string     `gorm:"type:varchar(255)" json:"role"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `gorm:"type:text" json:"description"`
	Outcomes    string     `gorm:"type:jsonb" json:"outcomes"`
}

func (p *Project) TableName() string {
	return "projects"
}

type Experience struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID   string     `gorm:"type:varchar(20);index" json:"employee_id"`
	Type         string     `gorm:"type:varchar(100)" json:"type"`
	Organization string     `gorm:"type:varchar(255)" json:"organization"`
	Program      string     `gorm:"type:varchar(255)" json:"program"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Focus        string     `gorm:"type:text" json:"focus"`
}

func (e *Experience) TableName() string {
	return "experiences"
}
