package domain

import (
	"errors"

	"github.com/sanchita-88/meal-planner/pkg/mealplan"
)

var (
	MessageSuccessGetFoods     = "foods retrieved successfully"
	MessageSuccessGeneratePlan = "weekly plan generated successfully"
	MessageSuccessRegenerate   = "meal regenerated successfully"
	MessageSuccessExportPlan   = "plan exported successfully"

	MessageFailedGetFoods     = "failed to load foods"
	MessageFailedGeneratePlan = "failed to generate plan"
	MessageFailedRegenerate   = "failed to regenerate meal"
	MessageFailedExportPlan   = "failed to export plan"

	ErrMissingBiometrics = errors.New("missing biometric data")
	ErrUnknownMealSlot   = errors.New("unknown meal slot")
	ErrEmptyPlanExport   = errors.New("plan export body is empty")
)

type (
	// GeneratePlanRequest carries the biometric profile and dietary
	// constraints for a weekly plan. Age, height and weight are the
	// required biometrics; everything else has engine-side defaults.
	GeneratePlanRequest struct {
		Age       int      `json:"age" validate:"required,min=10,max=120"`
		Gender    string   `json:"gender" validate:"omitempty,oneof=male female"`
		HeightCM  float64  `json:"height" validate:"required,gt=0"`
		WeightKG  float64  `json:"weight" validate:"required,gt=0"`
		Activity  string   `json:"activity" validate:"omitempty"`
		Goal      string   `json:"goal" validate:"omitempty"`
		Diet      string   `json:"diet" validate:"omitempty,oneof=veg vegan non-veg"`
		Allergies []string `json:"allergies"`
		Dislikes  []string `json:"dislikes"`
	}

	// PlanMeta is the satisfaction prediction attached to a generated plan.
	PlanMeta struct {
		PredictedSatisfaction string `json:"predicted_satisfaction"`
		Analysis              string `json:"analysis"`
	}

	GeneratePlanResponse struct {
		Targets  mealplan.Targets   `json:"targets"`
		WeekPlan []mealplan.DayPlan `json:"weekPlan"`
		Meta     PlanMeta           `json:"meta"`
	}

	RegenerateMealRequest struct {
		GeneratePlanRequest
		MealType      string `json:"mealType" validate:"required,oneof=breakfast lunch snack dinner"`
		CurrentFoodID string `json:"currentFoodId"`
	}

	RegenerateMealResponse struct {
		Meal mealplan.Meal `json:"meal"`
	}

	// ExportPlanRequest is a finished plan handed back for archival. The
	// document is stored as-is; the engine is not re-run.
	ExportPlanRequest struct {
		Targets  mealplan.Targets   `json:"targets" validate:"required"`
		WeekPlan []mealplan.DayPlan `json:"weekPlan" validate:"required,min=1"`
	}

	ExportPlanResponse struct {
		URL string `json:"url"`
	}
)
