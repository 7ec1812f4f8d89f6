package mealplan

// EstimateSatisfaction is a post-hoc heuristic over a finished plan, scored
// 0-100: a base of 80, +10 when the week spans more than 15 distinct foods,
// +5 when a muscle-gain plan carries more than 150g of daily protein. It is
// a deterministic stand-in for a satisfaction model, not a trained one.
func EstimateSatisfaction(profile Profile, plan WeekPlan) int {
	score := 80

	unique := make(map[string]bool)
	for _, day := range plan.Days {
		for _, slot := range Slots {
			for _, item := range day.Meals.MealForSlot(slot).Items {
				unique[item.ID] = true
			}
		}
	}
	if len(unique) > 15 {
		score += 10
	}

	if profile.Goal == GoalMuscleGain && plan.Targets.Protein > 150 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
