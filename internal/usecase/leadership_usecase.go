package usecase

import (
	"context"
	"time"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/ardiansf/career-copilot/internal/repository"
	"github.com/ardiansf/career-copilot/internal/service"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type leadershipProfile struct {
	employee    *model.Employee
	positions   []model.PositionHistory
	skills      []model.Skill
	projects    []model.Project
	experiences []model.Experience
}

type LeadershipUsecase struct {
	employeeRepo repository.EmployeeRepositoryInterface
	skillRepo    repository.SkillRepositoryInterface
	profileRepo  repository.ProfileRepositoryInterface
	ai           service.GenerativeTextService
	log          *zap.Logger
}

func NewLeadershipUsecase(
	employeeRepo repository.EmployeeRepositoryInterface,
	skillRepo repository.SkillRepositoryInterface,
	profileRepo repository.ProfileRepositoryInterface,
	ai service.GenerativeTextService,
	log *zap.Logger,
) *LeadershipUsecase {
	return &LeadershipUsecase{
		employeeRepo: employeeRepo,
		skillRepo:    skillRepo,
		profileRepo:  profileRepo,
		ai:           ai,
		log:          log,
	}
}

// Assess builds a leadership potential report for one employee. Unlike the
// pathway flow there is no deterministic fallback result; generation failure
// is a hard error here.
func (uc *LeadershipUsecase) Assess(ctx context.Context, employeeID string) (*dto.LeadershipReport, error) {
	profile, err := uc.fetchProfile(employeeID)
	if err != nil {
		return nil, err
	}
	if profile.employee == nil {
		return nil, ErrEmployeeNotFound
	}

	prompt := buildLeadershipPrompt(profile)
	raw, err := uc.ai.Complete(ctx, leadershipSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	report := parseLeadershipReport(raw, profile, uc.ai.Model())
	return &report, nil
}

func (uc *LeadershipUsecase) fetchProfile(employeeID string) (*leadershipProfile, error) {
	p := &leadershipProfile{}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		p.employee, err = uc.employeeRepo.FindByID(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		p.skills, err = uc.skillRepo.Possessed(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		p.positions, err = uc.profileRepo.Positions(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		p.projects, err = uc.profileRepo.Projects(employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		p.experiences, err = uc.profileRepo.Experiences(employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

func scoreOrDefault(v gjson.Result, def int) int {
	if v.Type == gjson.Number {
		return int(v.Int())
	}
	return def
}

func stringsOrEmpty(v gjson.Result) []string {
	out := []string{}
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		out = append(out, item.String())
	}
	return out
}

// parseLeadershipReport extracts the model's fields with per-field defaults;
// unusable output degrades to a defaulted report instead of an error.
func parseLeadershipReport(raw string, profile *leadershipProfile, modelUsed string) dto.LeadershipReport {
	emp := profile.employee

	body := stripCodeFence(raw)
	var parsed gjson.Result
	if gjson.Valid(body) {
		if root := gjson.Parse(body); root.IsObject() {
			parsed = root
		}
	}

	behavioral := map[string]string{}
	if bi := parsed.Get("behavioral_indicators"); bi.IsObject() {
		bi.ForEach(func(key, value gjson.Result) bool {
			behavioral[key.String()] = value.String()
			return true
		})
	}

	tier := parsed.Get("tier").String()
	if tier == "" {
		tier = "MEDIUM POTENTIAL"
	}
	readiness := parsed.Get("readiness").String()
	if readiness == "" {
		readiness = "Assessment in progress"
	}

	return dto.LeadershipReport{
		EmployeeID:        emp.EmployeeID,
		EmployeeName:      emp.Name,
		CurrentRole:       emp.JobTitle,
		CurrentDepartment: emp.Department,
		OverallScore:      scoreOrDefault(parsed.Get("overall_score"), 50),
		Tier:              tier,
		Readiness:         readiness,
		ComponentScores: dto.ComponentScores{
			Performance:     scoreOrDefault(parsed.Get("component_scores.performance"), 50),
			LearningAgility: scoreOrDefault(parsed.Get("component_scores.learning_agility"), 50),
			Stability:       scoreOrDefault(parsed.Get("component_scores.stability"), 50),
		},
		Strengths:              stringsOrEmpty(parsed.Get("strengths")),
		DevelopmentAreas:       stringsOrEmpty(parsed.Get("development_areas")),
		RecommendedDevelopment: stringsOrEmpty(parsed.Get("recommended_development")),
		NextRoleOptions:        stringsOrEmpty(parsed.Get("next_role_options")),
		RiskFactors:            stringsOrEmpty(parsed.Get("risk_factors")),
		BehavioralIndicators:   behavioral,
		NarrativeSummary:       parsed.Get("narrative_summary").String(),
		KeyMetrics: dto.KeyMetrics{
			YearsTenure:     yearsSince(emp.HireDate),
			YearsInRole:     yearsSince(emp.InRoleSince),
			RoleCount:       len(profile.positions),
			SkillCount:      len(profile.skills),
			ProjectCount:    len(profile.projects),
			ExperienceCount: len(profile.experiences),
		},
		GeneratedAt: time.Now().UTC(),
		ModelUsed:   modelUsed,
	}
}
