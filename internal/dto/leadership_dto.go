package dto

import "time"

type ComponentScores struct {
	Performance     int `json:"performance"`
	LearningAgility int `json:"learning_agility"`
	Stability       int `json:"stability"`
}

type KeyMetrics struct {
	YearsTenure     float64 `json:"years_tenure"`
	YearsInRole     float64 `json:"years_in_role"`
	RoleCount       int     `json:"role_count"`
	SkillCount      int     `json:"skill_count"`
	ProjectCount    int     `json:"project_count"`
	ExperienceCount int     `json:"experience_count"`
}

type LeadershipReport struct {
	EmployeeID             string            `json:"employee_id"`
	EmployeeName           string            `json:"employee_name"`
	CurrentRole            string            `json:"current_role"`
	CurrentDepartment      string            `json:"current_department"`
	OverallScore           int               `json:"overall_score"`
	Tier                   string            `json:"tier"`
	Readiness              string            `json:"readiness"`
	ComponentScores        ComponentScores   `json:"component_scores"`
	Strengths              []string          `json:"strengths"`
	DevelopmentAreas       []string          `json:"development_areas"`
	RecommendedDevelopment []string          `json:"recommended_development"`
	NextRoleOptions        []string          `json:"next_role_options"`
	RiskFactors            []string          `json:"risk_factors"`
	BehavioralIndicators   map[string]string `json:"behavioral_indicators"`
	NarrativeSummary       string            `json:"narrative_summary"`
	KeyMetrics             KeyMetrics        `json:"key_metrics"`
	GeneratedAt            time.Time         `json:"generated_at"`
	ModelUsed              string            `json:"model_used"`
}
