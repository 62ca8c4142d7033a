package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/middleware"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/ardiansf/career-copilot/internal/response"
	"github.com/ardiansf/career-copilot/internal/usecase"
	"github.com/ardiansf/career-copilot/internal/util"
	"github.com/gofiber/fiber/v2"
)

type PathwayHandler struct {
	uc *usecase.PathwayUsecase
}

func NewPathwayHandler(uc *usecase.PathwayUsecase) *PathwayHandler {
	return &PathwayHandler{uc: uc}
}

func (h *PathwayHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/pathways")
	api.Post("/assess", middleware.RateLimiter(1, 4*time.Second), h.Assess)
	api.Get("/llm/:employeeId", h.AssessDefault)
	api.Get("/latest/:employeeId", h.Latest)
	api.Get("/history/:employeeId", h.History)
}

func (h *PathwayHandler) Assess(c *fiber.Ctx) error {
	var req dto.AssessRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.EmployeeID == "" || req.Aspiration.FunctionArea == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "employee_id and aspiration.function_area are required",
		})
	}

	return h.assess(c, req.EmployeeID, req.Aspiration)
}

// AssessDefault keeps the old GET route alive: a bare assessment against the
// Data & AI function area.
func (h *PathwayHandler) AssessDefault(c *fiber.Ctx) error {
	return h.assess(c, c.Params("employeeId"), dto.Aspiration{FunctionArea: "Data & AI"})
}

func (h *PathwayHandler) assess(c *fiber.Ctx, employeeID string, asp dto.Aspiration) error {
	result, saved, err := h.uc.Assess(c.Context(), employeeID, asp)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAspiration):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "employee not found",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to assess pathways",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success assess pathways",
		Data:    dto.AssessResponse{Result: result, Saved: saved},
	})
}

func (h *PathwayHandler) Latest(c *fiber.Ctx) error {
	rec, err := h.uc.GetLatest(c.Params("employeeId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get latest assessment",
		}, err)
	}
	if rec == nil {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "No assessment yet",
			Data:    fiber.Map{},
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get latest assessment",
		Data:    toRecordDTO(rec),
	})
}

func (h *PathwayHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	recs, err := h.uc.GetHistory(c.Params("employeeId"), limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get assessment history",
		}, err)
	}

	data := make([]dto.AssessmentRecordDTO, 0, len(recs))
	for i := range recs {
		data = append(data, toRecordDTO(&recs[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get assessment history",
		Data:       data,
		Pagination: response.SinglePage(limit, len(data)),
	})
}

func toRecordDTO(rec *model.PathwayAssessment) dto.AssessmentRecordDTO {
	return dto.AssessmentRecordDTO{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Aspiration:  json.RawMessage(rec.Aspiration),
		Result:      json.RawMessage(rec.Result),
		ModelUsed:   rec.ModelUsed,
		GeneratedAt: rec.GeneratedAt,
	}
}
