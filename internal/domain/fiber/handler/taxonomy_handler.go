package handler

import (
	"github.com/ardiansf/career-copilot/internal/repository"
	"github.com/ardiansf/career-copilot/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TaxonomyHandler struct {
	skillRepo repository.SkillRepositoryInterface
}

func NewTaxonomyHandler(skillRepo repository.SkillRepositoryInterface) *TaxonomyHandler {
	return &TaxonomyHandler{skillRepo: skillRepo}
}

func (h *TaxonomyHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/taxonomy/function-areas", h.FunctionAreas)
}

func (h *TaxonomyHandler) FunctionAreas(c *fiber.Ctx) error {
	areas, err := h.skillRepo.FunctionAreas()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch function areas",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get function areas",
		Data:    areas,
	})
}
