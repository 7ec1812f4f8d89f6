package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sanchita-88/meal-planner/domain"
	"github.com/sanchita-88/meal-planner/internal/utils/storage"
	"github.com/sanchita-88/meal-planner/pkg/catalog"
	"github.com/sanchita-88/meal-planner/pkg/mealplan"
)

type (
	// TagScoreSource provides a user's learned tag weights. Implemented
	// by the user service; kept narrow so tests can fake it.
	TagScoreSource interface {
		GetLearnedTagScores(ctx context.Context, userID string) (map[string]int, error)
	}

	PlanService interface {
		GetFoods(ctx context.Context) []catalog.FoodItem
		GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest, userID string) (domain.GeneratePlanResponse, error)
		RegenerateMeal(ctx context.Context, req domain.RegenerateMealRequest, userID string) (domain.RegenerateMealResponse, error)
		ExportPlan(ctx context.Context, req domain.ExportPlanRequest, userID string) (domain.ExportPlanResponse, error)
	}

	planService struct {
		catalogRepository catalog.CatalogRepository
		tagScores         TagScoreSource
		s3                storage.AwsS3
	}
)

func NewPlanService(catalogRepository catalog.CatalogRepository, tagScores TagScoreSource, s3 storage.AwsS3) PlanService {
	return &planService{
		catalogRepository: catalogRepository,
		tagScores:         tagScores,
		s3:                s3,
	}
}

func (s *planService) GetFoods(ctx context.Context) []catalog.FoodItem {
	return s.catalogRepository.GetFoods()
}

// GeneratePlan derives the nutrition targets from the request's biometrics,
// runs the weekly planner over the catalog and attaches the satisfaction
// prediction. Each request gets its own engine and state; nothing survives
// the call.
func (s *planService) GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest, userID string) (domain.GeneratePlanResponse, error) {
	profile := toEngineProfile(req)
	targets := mealplan.ComputeTargets(profile)
	prefs := toEnginePreferences(req)
	learned := s.learnedScores(ctx, userID)

	engine := mealplan.NewEngine(nil)
	plan := engine.GenerateWeeklyPlan(s.catalogRepository.GetFoods(), targets, prefs, learned)

	satisfaction := mealplan.EstimateSatisfaction(profile, plan)
	analysis := "Standard Plan"
	if satisfaction > 80 {
		analysis = "Highly Optimized for your Goal"
	}

	return domain.GeneratePlanResponse{
		Targets:  plan.Targets,
		WeekPlan: plan.Days,
		Meta: domain.PlanMeta{
			PredictedSatisfaction: fmt.Sprintf("%d%% Match", satisfaction),
			Analysis:              analysis,
		},
	}, nil
}

// RegenerateMeal rebuilds a single meal against the slot's share of the
// user's daily target, keeping the replaced food out of the result.
func (s *planService) RegenerateMeal(ctx context.Context, req domain.RegenerateMealRequest, userID string) (domain.RegenerateMealResponse, error) {
	slotTargets := mealplan.SlotTargets(mealplan.ComputeTargets(toEngineProfile(req.GeneratePlanRequest)).Calories)
	target, ok := slotTargets[req.MealType]
	if !ok {
		return domain.RegenerateMealResponse{}, domain.ErrUnknownMealSlot
	}

	engine := mealplan.NewEngine(nil)
	meal := engine.RegenerateSingleMeal(
		s.catalogRepository.GetFoods(),
		req.MealType,
		target,
		toEnginePreferences(req.GeneratePlanRequest),
		req.CurrentFoodID,
		s.learnedScores(ctx, userID),
	)

	return domain.RegenerateMealResponse{Meal: meal}, nil
}

// ExportPlan archives a finished plan as a JSON document in S3 and returns
// the object URL.
func (s *planService) ExportPlan(ctx context.Context, req domain.ExportPlanRequest, userID string) (domain.ExportPlanResponse, error) {
	if len(req.WeekPlan) == 0 {
		return domain.ExportPlanResponse{}, domain.ErrEmptyPlanExport
	}

	document, err := json.MarshalIndent(struct {
		Targets    mealplan.Targets   `json:"targets"`
		WeekPlan   []mealplan.DayPlan `json:"weekPlan"`
		ExportedAt time.Time          `json:"exported_at"`
	}{req.Targets, req.WeekPlan, time.Now().UTC()}, "", "  ")
	if err != nil {
		return domain.ExportPlanResponse{}, err
	}

	key := fmt.Sprintf("plans/%s/%s.json", userID, uuid.New().String())
	url, err := s.s3.UploadDocument(ctx, key, document, "application/json")
	if err != nil {
		return domain.ExportPlanResponse{}, err
	}

	return domain.ExportPlanResponse{URL: url}, nil
}

// learnedScores fetches the user's learned tag weights; a lookup failure
// degrades to planning without personalization rather than failing the
// request.
func (s *planService) learnedScores(ctx context.Context, userID string) mealplan.TagScores {
	if userID == "" {
		return nil
	}
	scores, err := s.tagScores.GetLearnedTagScores(ctx, userID)
	if err != nil {
		return nil
	}
	return mealplan.NormalizeTagScores(scores)
}

func toEngineProfile(req domain.GeneratePlanRequest) mealplan.Profile {
	gender := req.Gender
	if gender == "" {
		gender = "male"
	}
	goal := req.Goal
	if goal == "" {
		goal = mealplan.GoalMaintenance
	}
	activity := req.Activity
	if activity == "" {
		activity = "sedentary"
	}
	return mealplan.Profile{
		Age:      req.Age,
		Gender:   gender,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Activity: activity,
		Goal:     goal,
	}
}

func toEnginePreferences(req domain.GeneratePlanRequest) mealplan.Preferences {
	return mealplan.Preferences{
		Vegetarian: req.Diet == "veg" || req.Diet == "vegan",
		Allergies:  req.Allergies,
		Dislikes:   req.Dislikes,
	}
}
