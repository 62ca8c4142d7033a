package model

import (
	"time"

	"github.com/google/uuid"
)

// PathwayAssessment is append-only: rows are inserted once and never
// updated; "latest" is resolved by generated_at ordering at read time.
type PathwayAssessment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID  string    `gorm:"type:varchar(20);index" json:"employee_id"`
	Aspiration  string    `gorm:"type:jsonb" json:"aspiration"`
	Result      string    `gorm:"type:jsonb" json:"result"`
	ModelUsed   string    `gorm:"type:varchar(100)" json:"model_used"`
	GeneratedAt time.Time `gorm:"index" json:"generated_at"`
}

func (p *PathwayAssessment) TableName() string {
	return "pathway_assessments"
}
