package model

import (
	"time"
)

type Employee struct {
	EmployeeID  string     `gorm:"type:varchar(20);primaryKey" json:"employee_id"`
	Name        string     `gorm:"type:varchar(255)" json:"name"`
	Email       string     `gorm:"type:varchar(255)" json:"email"`
	JobTitle    string     `gorm:"type:varchar(255)" json:"job_title"`
	Department  string     `gorm:"type:varchar(255)" json:"department"`
	Unit        string     `gorm:"type:varchar(255)" json:"unit"`
	HireDate    *time.Time `json:"hire_date"`
	InRoleSince *time.Time `json:"in_role_since"`
	LineManager string     `gorm:"type:varchar(255)" json:"line_manager"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (e *Employee) TableName() string {
	return "employees"
}
