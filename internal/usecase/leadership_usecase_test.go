package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubProfileRepo struct {
	positions   []model.PositionHistory
	projects    []model.Project
	experiences []model.Experience
}

func (s *stubProfileRepo) Positions(string) ([]model.PositionHistory, error) {
	return s.positions, nil
}

func (s *stubProfileRepo) Projects(string) ([]model.Project, error) {
	return s.projects, nil
}

func (s *stubProfileRepo) Experiences(string) ([]model.Experience, error) {
	return s.experiences, nil
}

func testProfile() *leadershipProfile {
	hired := time.Now().AddDate(-4, 0, 0)
	return &leadershipProfile{
		employee: &model.Employee{
			EmployeeID: "EMP-20001",
			Name:       "Tan Wei Ling",
			JobTitle:   "Data Analyst",
			Department: "Digital",
			HireDate:   &hired,
		},
		positions: []model.PositionHistory{{RoleTitle: "Junior Analyst"}},
		skills:    possessedSkills("Python", "SQL"),
		projects:  []model.Project{{ProjectName: "Yard Optimization"}},
	}
}

func TestParseLeadershipReportFullResponse(t *testing.T) {
	raw := "```json\n" + `{
		"overall_score": 78,
		"tier": "HIGH POTENTIAL",
		"readiness": "Ready now",
		"component_scores": {"performance": 80, "learning_agility": 75, "stability": 70},
		"strengths": ["drives outcomes", "broad skills"],
		"development_areas": ["stakeholder management"],
		"recommended_development": ["mentoring"],
		"next_role_options": ["Team Lead"],
		"risk_factors": [],
		"behavioral_indicators": {"adaptability": "high"},
		"narrative_summary": "Strong trajectory."
	}` + "\n```"

	report := parseLeadershipReport(raw, testProfile(), "gpt-4.1-nano")

	assert.Equal(t, 78, report.OverallScore)
	assert.Equal(t, "HIGH POTENTIAL", report.Tier)
	assert.Equal(t, "Ready now", report.Readiness)
	assert.Equal(t, 80, report.ComponentScores.Performance)
	assert.Equal(t, []string{"drives outcomes", "broad skills"}, report.Strengths)
	assert.Equal(t, []string{}, report.RiskFactors)
	assert.Equal(t, map[string]string{"adaptability": "high"}, report.BehavioralIndicators)
	assert.Equal(t, "Strong trajectory.", report.NarrativeSummary)
	assert.Equal(t, "gpt-4.1-nano", report.ModelUsed)
}

func TestParseLeadershipReportDefaultsOnProse(t *testing.T) {
	report := parseLeadershipReport("I cannot produce JSON today.", testProfile(), "gpt-4.1-nano")

	assert.Equal(t, 50, report.OverallScore)
	assert.Equal(t, "MEDIUM POTENTIAL", report.Tier)
	assert.Equal(t, "Assessment in progress", report.Readiness)
	assert.Equal(t, 50, report.ComponentScores.Performance)
	assert.Equal(t, 50, report.ComponentScores.LearningAgility)
	assert.Equal(t, 50, report.ComponentScores.Stability)
	assert.Equal(t, []string{}, report.Strengths)
	assert.Equal(t, map[string]string{}, report.BehavioralIndicators)
	assert.Empty(t, report.NarrativeSummary)
}

func TestParseLeadershipReportNonNumericScores(t *testing.T) {
	raw := `{"overall_score": "very high", "component_scores": {"performance": "great"}}`
	report := parseLeadershipReport(raw, testProfile(), "gpt-4.1-nano")

	assert.Equal(t, 50, report.OverallScore)
	assert.Equal(t, 50, report.ComponentScores.Performance)
}

func TestParseLeadershipReportKeyMetrics(t *testing.T) {
	profile := testProfile()
	report := parseLeadershipReport("{}", profile, "gpt-4.1-nano")

	assert.Equal(t, 1, report.KeyMetrics.RoleCount)
	assert.Equal(t, 2, report.KeyMetrics.SkillCount)
	assert.Equal(t, 1, report.KeyMetrics.ProjectCount)
	assert.Equal(t, 0, report.KeyMetrics.ExperienceCount)
	assert.InDelta(t, 4.0, report.KeyMetrics.YearsTenure, 0.1)
	assert.Equal(t, "EMP-20001", report.EmployeeID)
	assert.Equal(t, "Tan Wei Ling", report.EmployeeName)
}

func TestLeadershipAssessUnknownEmployee(t *testing.T) {
	gen := &stubGenerator{}
	uc := NewLeadershipUsecase(&stubEmployeeRepo{emp: nil}, &stubSkillRepo{}, &stubProfileRepo{}, gen, zaptest.NewLogger(t))

	_, err := uc.Assess(context.Background(), "EMP-99999")

	require.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Zero(t, gen.calls)
}

func TestLeadershipAssessGenerationFailureIsHardError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("generation failed: status 503")}
	uc := NewLeadershipUsecase(&stubEmployeeRepo{emp: testEmployee()}, &stubSkillRepo{}, &stubProfileRepo{}, gen, zaptest.NewLogger(t))

	_, err := uc.Assess(context.Background(), "EMP-20001")

	require.Error(t, err)
}

func TestBuildLeadershipPromptSections(t *testing.T) {
	prompt := buildLeadershipPrompt(testProfile())

	assert.Contains(t, prompt, "**Name:** Tan Wei Ling")
	assert.Contains(t, prompt, "## Career Progression (Positions History)")
	assert.Contains(t, prompt, "- Junior Analyst at PSA")
	assert.Contains(t, prompt, "Data & AI → : Python")
	assert.Contains(t, prompt, "- Yard Optimization")
	assert.Contains(t, prompt, "No experiences recorded")
	assert.Contains(t, prompt, `"overall_score"`)
}
