package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubEmployeeRepo struct {
	emp   *model.Employee
	err   error
	calls int
}

func (s *stubEmployeeRepo) FindByID(string) (*model.Employee, error) {
	s.calls++
	return s.emp, s.err
}

type stubSkillRepo struct {
	possessed      []model.Skill
	catalogue      []model.Skill
	areas          []string
	possessedCalls int
	catalogueCalls int
}

func (s *stubSkillRepo) Possessed(string) ([]model.Skill, error) {
	s.possessedCalls++
	return s.possessed, nil
}

func (s *stubSkillRepo) Catalogue(string, string) ([]model.Skill, error) {
	s.catalogueCalls++
	return s.catalogue, nil
}

func (s *stubSkillRepo) FunctionAreas() ([]string, error) {
	return s.areas, nil
}

type stubAssessmentRepo struct {
	saveErr error
	created []*model.PathwayAssessment
	latest  *model.PathwayAssessment
	history []model.PathwayAssessment
}

func (s *stubAssessmentRepo) Create(rec *model.PathwayAssessment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.created = append(s.created, rec)
	return nil
}

func (s *stubAssessmentRepo) Latest(string) (*model.PathwayAssessment, error) {
	return s.latest, nil
}

func (s *stubAssessmentRepo) History(string, int) ([]model.PathwayAssessment, error) {
	return s.history, nil
}

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func newTestUsecase(t *testing.T, empRepo *stubEmployeeRepo, skillRepo *stubSkillRepo, storeRepo *stubAssessmentRepo, gen *stubGenerator) *PathwayUsecase {
	t.Helper()
	return NewPathwayUsecase(empRepo, skillRepo, storeRepo, gen, zaptest.NewLogger(t))
}

func TestAssessInvalidAspirationBeforeAnyIO(t *testing.T) {
	empRepo := &stubEmployeeRepo{emp: testEmployee()}
	skillRepo := &stubSkillRepo{}
	storeRepo := &stubAssessmentRepo{}
	gen := &stubGenerator{}
	uc := newTestUsecase(t, empRepo, skillRepo, storeRepo, gen)

	_, _, err := uc.Assess(context.Background(), "EMP-20001", dto.Aspiration{FunctionArea: "  "})

	require.ErrorIs(t, err, ErrInvalidAspiration)
	assert.Zero(t, empRepo.calls)
	assert.Zero(t, skillRepo.possessedCalls)
	assert.Zero(t, skillRepo.catalogueCalls)
	assert.Zero(t, gen.calls)
	assert.Empty(t, storeRepo.created)
}

func TestAssessUnknownEmployee(t *testing.T) {
	empRepo := &stubEmployeeRepo{emp: nil}
	storeRepo := &stubAssessmentRepo{}
	gen := &stubGenerator{}
	uc := newTestUsecase(t, empRepo, &stubSkillRepo{}, storeRepo, gen)

	_, _, err := uc.Assess(context.Background(), "EMP-99999", dto.Aspiration{FunctionArea: "Data & AI"})

	require.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Zero(t, gen.calls, "no generative call for unknown employee")
	assert.Empty(t, storeRepo.created, "no persistence write for unknown employee")
}

func TestAssessFallsBackWhenGeneratorFails(t *testing.T) {
	empRepo := &stubEmployeeRepo{emp: testEmployee()}
	skillRepo := &stubSkillRepo{
		possessed: possessedSkills("Python", "SQL"),
		catalogue: catalogueSkills("Python", "SQL", "Spark", "ML Ops"),
	}
	storeRepo := &stubAssessmentRepo{}
	gen := &stubGenerator{err: errors.New("generation failed: connection refused")}
	uc := newTestUsecase(t, empRepo, skillRepo, storeRepo, gen)

	result, saved, err := uc.Assess(context.Background(), "EMP-20001", dto.Aspiration{FunctionArea: "Data & AI"})

	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, gen.calls)

	p := firstPathway(t, result)
	assert.Equal(t, 50, p.Readiness)
	assert.Equal(t, []string{"ML Ops", "Spark"}, p.Gaps)

	require.Len(t, storeRepo.created, 1)
	rec := storeRepo.created[0]
	assert.Equal(t, "EMP-20001", rec.EmployeeID)
	assert.Equal(t, "stub-model", rec.ModelUsed)
	assert.False(t, rec.GeneratedAt.IsZero())

	var storedResult dto.PathwayResult
	require.NoError(t, json.Unmarshal([]byte(rec.Result), &storedResult))
	var storedAsp dto.Aspiration
	require.NoError(t, json.Unmarshal([]byte(rec.Aspiration), &storedAsp))
	assert.Equal(t, "Data & AI", storedAsp.FunctionArea)
}

func TestAssessUsesGeneratorOutput(t *testing.T) {
	empRepo := &stubEmployeeRepo{emp: testEmployee()}
	skillRepo := &stubSkillRepo{catalogue: catalogueSkills("Python")}
	storeRepo := &stubAssessmentRepo{}
	gen := &stubGenerator{response: "```json\n{\"pathways\":[{\"title\":\"Data Engineer\",\"readiness\":80}],\"internal_opportunities\":[]}\n```"}
	uc := newTestUsecase(t, empRepo, skillRepo, storeRepo, gen)

	result, saved, err := uc.Assess(context.Background(), "EMP-20001", dto.Aspiration{FunctionArea: "Data & AI"})

	require.NoError(t, err)
	assert.True(t, saved)

	pathways, ok := result.Pathways.([]any)
	require.True(t, ok)
	require.Len(t, pathways, 1)
	assert.Equal(t, "Data Engineer", pathways[0].(map[string]any)["title"])
}

func TestAssessReportsPersistenceFailure(t *testing.T) {
	empRepo := &stubEmployeeRepo{emp: testEmployee()}
	skillRepo := &stubSkillRepo{catalogue: catalogueSkills("Python")}
	storeRepo := &stubAssessmentRepo{saveErr: errors.New("connection reset")}
	gen := &stubGenerator{response: "not json"}
	uc := newTestUsecase(t, empRepo, skillRepo, storeRepo, gen)

	result, saved, err := uc.Assess(context.Background(), "EMP-20001", dto.Aspiration{FunctionArea: "Data & AI"})

	require.NoError(t, err, "persistence failure must not discard the result")
	assert.False(t, saved)
	firstPathway(t, result)
}

func TestGetLatestAndHistoryPassThrough(t *testing.T) {
	latest := &model.PathwayAssessment{EmployeeID: "EMP-20001"}
	storeRepo := &stubAssessmentRepo{
		latest:  latest,
		history: []model.PathwayAssessment{{EmployeeID: "EMP-20001"}, {EmployeeID: "EMP-20001"}},
	}
	uc := newTestUsecase(t, &stubEmployeeRepo{}, &stubSkillRepo{}, storeRepo, &stubGenerator{})

	got, err := uc.GetLatest("EMP-20001")
	require.NoError(t, err)
	assert.Same(t, latest, got)

	history, err := uc.GetHistory("EMP-20001", 5)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
