package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sanchita-88/meal-planner/domain"
	"github.com/sanchita-88/meal-planner/internal/api/presenters"
	"github.com/sanchita-88/meal-planner/pkg/plan"
)

type (
	PlanHandler interface {
		GetFoods(c *fiber.Ctx) error
		GeneratePlan(c *fiber.Ctx) error
		RegenerateMeal(c *fiber.Ctx) error
		ExportPlan(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) GetFoods(c *fiber.Ctx) error {
	foods := h.planService.GetFoods(c.Context())
	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *planHandler) GeneratePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GeneratePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	// Required biometrics are enforced here; the engine itself never
	// validates and never fails.
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, domain.ErrMissingBiometrics)
	}

	res, err := h.planService.GeneratePlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGeneratePlan)
}

func (h *planHandler) RegenerateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RegenerateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegenerate, err)
	}

	res, err := h.planService.RegenerateMeal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegenerate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegenerate)
}

func (h *planHandler) ExportPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ExportPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportPlan, domain.ErrEmptyPlanExport)
	}

	res, err := h.planService.ExportPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportPlan)
}
