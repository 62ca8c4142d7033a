package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Aspiration struct {
	FunctionArea   string `json:"function_area"`
	Specialization string `json:"specialization,omitempty"`
	ShortTerm      string `json:"short_term,omitempty"`
	LongTerm       string `json:"long_term,omitempty"`
}

type Pathway struct {
	Title          string   `json:"title"`
	Readiness      int      `json:"readiness"`
	TimeEstimate   string   `json:"time_estimate"`
	RequiredSkills []string `json:"required_skills"`
	Gaps           []string `json:"gaps"`
	Tags           []string `json:"tags"`
}

type InternalOpportunity struct {
	Title    string   `json:"title"`
	Unit     string   `json:"unit"`
	Location string   `json:"location"`
	PostedAt string   `json:"posted_at"`
	Match    int      `json:"match"`
	Tags     []string `json:"tags"`
}

// PathwayResult keeps both slots loosely typed: the fallback path fills them
// with []Pathway / []InternalOpportunity, while model-supplied arrays pass
// through without per-item validation.
type PathwayResult struct {
	Pathways              any `json:"pathways"`
	InternalOpportunities any `json:"internal_opportunities"`
}

type AssessRequest struct {
	EmployeeID string     `json:"employee_id"`
	Aspiration Aspiration `json:"aspiration"`
}

type AssessResponse struct {
	Result PathwayResult `json:"result"`
	Saved  bool          `json:"saved"`
}

type AssessmentRecordDTO struct {
	ID          uuid.UUID       `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Aspiration  json.RawMessage `json:"aspiration"`
	Result      json.RawMessage `json:"result"`
	ModelUsed   string          `json:"model_used"`
	GeneratedAt time.Time       `json:"generated_at"`
}
