package handler

import (
	"errors"

	"github.com/ardiansf/career-copilot/internal/usecase"
	"github.com/ardiansf/career-copilot/internal/util"
	"github.com/gofiber/fiber/v2"
)

type LeadershipHandler struct {
	uc *usecase.LeadershipUsecase
}

func NewLeadershipHandler(uc *usecase.LeadershipUsecase) *LeadershipHandler {
	return &LeadershipHandler{uc: uc}
}

func (h *LeadershipHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/leadership/llm/:employeeId", h.Assess)
}

func (h *LeadershipHandler) Assess(c *fiber.Ctx) error {
	report, err := h.uc.Assess(c.Context(), c.Params("employeeId"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "employee not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to assess leadership potential",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success assess leadership potential",
		Data:    report,
	})
}
