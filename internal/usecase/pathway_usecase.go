package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/logger"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/ardiansf/career-copilot/internal/repository"
	"github.com/ardiansf/career-copilot/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidAspiration = errors.New("aspiration.function_area is required")
)

type PathwayUsecase struct {
	employeeRepo   repository.EmployeeRepositoryInterface
	skillRepo      repository.SkillRepositoryInterface
	assessmentRepo repository.AssessmentRepositoryInterface
	ai             service.GenerativeTextService
	log            *zap.Logger
}

func NewPathwayUsecase(
	employeeRepo repository.EmployeeRepositoryInterface,
	skillRepo repository.SkillRepositoryInterface,
	assessmentRepo repository.AssessmentRepositoryInterface,
	ai service.GenerativeTextService,
	log *zap.Logger,
) *PathwayUsecase {
	return &PathwayUsecase{
		employeeRepo:   employeeRepo,
		skillRepo:      skillRepo,
		assessmentRepo: assessmentRepo,
		ai:             ai,
		log:            log,
	}
}

// Assess runs one end-to-end pathway assessment. Generation failure degrades
// to the deterministic fallback; persistence failure is reported through
// saved=false but the result is still returned.
func (uc *PathwayUsecase) Assess(ctx context.Context, employeeID string, asp dto.Aspiration) (dto.PathwayResult, bool, error) {
	if strings.TrimSpace(asp.FunctionArea) == "" {
		return dto.PathwayResult{}, false, ErrInvalidAspiration
	}

	var (
		emp       *model.Employee
		possessed []model.Skill
		catalogue []model.Skill
	)

	// the three reads are independent, issue them together
	var g errgroup.Group
	g.Go(func() error {
		var err error
		emp, err = uc.employeeRepo.FindByID(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		possessed, err = uc.skillRepo.Possessed(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		catalogue, err = uc.skillRepo.Catalogue(asp.FunctionArea, asp.Specialization)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.PathwayResult{}, false, err
	}
	if emp == nil {
		return dto.PathwayResult{}, false, ErrEmployeeNotFound
	}

	prompt := buildPathwayPrompt(emp, possessed, catalogue, asp)

	raw, err := uc.ai.Complete(ctx, pathwaySystemPrompt, prompt)
	if err != nil {
		// degrade to the deterministic fallback, never abort here
		uc.log.Warn("generation failed, falling back",
			zap.String("employee_id", employeeID),
			zap.Error(err))
		raw = ""
	} else {
		uc.log.Debug("model output",
			zap.String("employee_id", employeeID),
			zap.String("raw", logger.TruncateForLog(raw, 500)))
	}

	result := normalizeOrFallback(raw, possessed, catalogue, asp)

	saved := true
	aspJSON, _ := json.Marshal(asp)
	resultJSON, _ := json.Marshal(result)
	rec := &model.PathwayAssessment{
		EmployeeID:  employeeID,
		Aspiration:  string(aspJSON),
		Result:      string(resultJSON),
		ModelUsed:   uc.ai.Model(),
		GeneratedAt: time.Now().UTC(),
	}
	if err := uc.assessmentRepo.Create(rec); err != nil {
		uc.log.Error("persist assessment",
			zap.String("employee_id", employeeID),
			zap.Error(err))
		saved = false
	}

	return result, saved, nil
}

// GetLatest returns nil when the employee has no assessments.
func (uc *PathwayUsecase) GetLatest(employeeID string) (*model.PathwayAssessment, error) {
	return uc.assessmentRepo.Latest(employeeID)
}

func (uc *PathwayUsecase) GetHistory(employeeID string, limit int) ([]model.PathwayAssessment, error) {
	return uc.assessmentRepo.History(employeeID, limit)
}
