package mealplan

import (
	"math"

	"github.com/sanchita-88/meal-planner/pkg/catalog"
)

// SlotTargets splits a daily calorie target into per-slot targets using the
// fixed 25/35/10/30 breakfast/lunch/snack/dinner proportions. Each slot is
// rounded independently.
func SlotTargets(dailyCalories int) map[string]int {
	targets := make(map[string]int, len(Slots))
	for slot, share := range slotShares {
		targets[slot] = int(math.Round(float64(dailyCalories) * share))
	}
	return targets
}

// GenerateWeeklyPlan produces a 7-day plan for the given targets. The
// catalog is filtered once against the dietary preferences, then each day
// is planned strictly in sequence on a fresh State: a day's gating
// decisions depend on the previous day's output, and no state survives
// this call.
func (e *Engine) GenerateWeeklyPlan(foods []catalog.FoodItem, targets Targets, prefs Preferences, learned TagScores) WeekPlan {
	safeFoods := FilterCatalog(foods, prefs)
	scores := NormalizeTagScores(learned)
	slotTargets := SlotTargets(targets.Calories)
	state := NewState()

	plan := WeekPlan{
		Targets: targets,
		Days:    make([]DayPlan, 0, len(DayNames)),
	}

	for _, day := range DayNames {
		meals := DayMeals{
			Breakfast: e.BuildMeal(SlotBreakfast, slotTargets[SlotBreakfast], safeFoods, state, scores),
			Lunch:     e.BuildMeal(SlotLunch, slotTargets[SlotLunch], safeFoods, state, scores),
			Snack:     e.BuildMeal(SlotSnack, slotTargets[SlotSnack], safeFoods, state, scores),
			Dinner:    e.BuildMeal(SlotDinner, slotTargets[SlotDinner], safeFoods, state, scores),
		}
		state.rememberDay(meals)

		plan.Days = append(plan.Days, DayPlan{Day: day, Meals: meals})
	}

	return plan
}

// RegenerateSingleMeal rebuilds one meal outside the context of a weekly
// plan. It runs on fresh usage state, so a week's history plays no part;
// the food being replaced is seeded past the repetition cap so only the
// last-resort fallback could bring it back.
func (e *Engine) RegenerateSingleMeal(foods []catalog.FoodItem, slot string, targetCalories int, prefs Preferences, avoidFoodID string, learned TagScores) Meal {
	safeFoods := FilterCatalog(foods, prefs)
	scores := NormalizeTagScores(learned)

	state := NewState()
	if avoidFoodID != "" {
		state.AvoidFood(avoidFoodID)
	}

	return e.BuildMeal(slot, targetCalories, safeFoods, state, scores)
}
