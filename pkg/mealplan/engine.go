package mealplan

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/sanchita-88/meal-planner/pkg/catalog"
)

const (
	// maxWeeklyUses is the repetition cap for non-staple items.
	maxWeeklyUses = 3
	// avoidSeed marks a food as already over the repetition cap.
	avoidSeed = 99
	// gapThreshold is the remaining-calorie gap below which a meal is
	// considered close enough to its target.
	gapThreshold = 80
	// maxSideRounds bounds the gap-filling loop.
	maxSideRounds = 3
)

// Carbohydrate staples are exempt from rotation rules; a plate usually
// carries one regardless of how often it appeared this week.
var stapleLexicon = []string{"roti", "naan", "rice", "bread", "toast", "idli", "poha", "upma"}

func isStaple(item catalog.FoodItem) bool {
	name := strings.ToLower(item.Name)
	for _, staple := range stapleLexicon {
		if strings.Contains(name, staple) {
			return true
		}
	}
	return false
}

type (
	// State tracks diversity across one plan-generation call: how often
	// each food has been picked so far and what each slot served on the
	// immediately preceding day. A fresh State is created per top-level
	// call and never shared between calls.
	State struct {
		usage   map[string]int
		prevDay map[string]map[string]bool
	}

	// Engine selects meals against calorie targets under rotation and
	// diversity constraints. The random source only feeds the score
	// jitter; fix the seed for deterministic selections in tests.
	Engine struct {
		rng *rand.Rand
	}
)

func NewState() *State {
	return &State{
		usage:   make(map[string]int),
		prevDay: make(map[string]map[string]bool),
	}
}

// AvoidFood seeds the food's usage count past the repetition cap so the
// gating phase always rejects it; only the relax-everything fallback can
// still surface it.
func (s *State) AvoidFood(id string) {
	s.usage[id] = avoidSeed
}

func (s *State) markUsed(id string) {
	s.usage[id]++
}

// rememberDay overwrites the previous-day tracking with the given day's
// selections. Only the immediately preceding day matters; there is no
// longer lookback window.
func (s *State) rememberDay(day DayMeals) {
	s.prevDay = make(map[string]map[string]bool)
	for _, slot := range Slots {
		ids := make(map[string]bool)
		for _, item := range day.MealForSlot(slot).Items {
			ids[item.ID] = true
		}
		s.prevDay[slot] = ids
	}
}

// allowed is the hard eligibility gate: staples always pass, everything
// else is rejected once it hits the weekly cap or repeats the same slot
// from the previous day.
func (s *State) allowed(item catalog.FoodItem, slot string) bool {
	if isStaple(item) {
		return true
	}
	if s.usage[item.ID] >= maxWeeklyUses {
		return false
	}
	return !s.prevDay[slot][item.ID]
}

func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// score rates one candidate against a calorie target. Calorie fit is a
// Gaussian centered on the target (sigma 150 kcal), diversity nudges the
// choice away from repeats without forbidding them, and the learned tag
// weights are the only place per-user history enters selection. A small
// uniform jitter breaks ties between otherwise identical runs.
func (e *Engine) score(item catalog.FoodItem, targetCalories int, state *State, scores TagScores) float64 {
	diff := float64(item.Calories - targetCalories)
	calorieScore := 100 * math.Exp(-(diff*diff)/(2*150*150))

	var diversityScore float64
	switch usage := state.usage[item.ID]; {
	case usage == 0:
		diversityScore = 10
	case usage == 1:
		diversityScore = -5
	default:
		diversityScore = -20
	}

	var prefScore float64
	for _, tag := range item.Tags {
		prefScore += float64(scores[tag])
	}

	jitter := e.rng.Float64() * 5

	return 0.6*calorieScore + 0.2*diversityScore + 0.2*prefScore + jitter
}

// pickBest returns the highest-scoring candidate. Phase 1 scores only items
// passing the eligibility gate; if that leaves nothing, phase 2 relaxes the
// gate and scores the whole pool, so a meal is produced whenever any
// candidate exists at all. Ties fall to the earlier item in catalog order.
func (e *Engine) pickBest(candidates []catalog.FoodItem, targetCalories int, slot string, state *State, scores TagScores) (catalog.FoodItem, bool) {
	pool := make([]catalog.FoodItem, 0, len(candidates))
	for _, item := range candidates {
		if state.allowed(item, slot) {
			pool = append(pool, item)
		}
	}
	if len(pool) == 0 {
		pool = candidates
	}
	if len(pool) == 0 {
		return catalog.FoodItem{}, false
	}

	best := pool[0]
	bestScore := math.Inf(-1)
	for _, item := range pool {
		if s := e.score(item, targetCalories, state, scores); s > bestScore {
			bestScore = s
			best = item
		}
	}
	return best, true
}

// BuildMeal assembles one meal for a slot: a main item picked against the
// full target, then up to three side rounds against the remaining calorie
// gap, stopping once the gap drops under the close-enough threshold or no
// side can be found. Each accepted item bumps its weekly usage counter
// immediately. Exhausted pools degrade to fewer items or an empty meal,
// never an error.
func (e *Engine) BuildMeal(slot string, targetCalories int, foods []catalog.FoodItem, state *State, scores TagScores) Meal {
	candidates := make([]catalog.FoodItem, 0, len(foods))
	for _, item := range foods {
		if item.HasCategory(slot) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		return emptyMeal()
	}

	main, ok := e.pickBest(candidates, targetCalories, slot, state, scores)
	if !ok {
		return emptyMeal()
	}
	items := []catalog.FoodItem{main}
	state.markUsed(main.ID)

	for round := 0; round < maxSideRounds; round++ {
		gap := targetCalories - sumCalories(items)
		if gap < gapThreshold {
			break
		}

		side, ok := e.pickBest(withoutItems(candidates, items), gap, slot, state, scores)
		if !ok {
			break
		}
		items = append(items, side)
		state.markUsed(side.ID)
	}

	return newMeal(items)
}

func sumCalories(items []catalog.FoodItem) int {
	total := 0
	for _, item := range items {
		total += item.Calories
	}
	return total
}

// withoutItems drops candidates already placed in the meal under assembly.
func withoutItems(candidates, chosen []catalog.FoodItem) []catalog.FoodItem {
	chosenIDs := make(map[string]bool, len(chosen))
	for _, item := range chosen {
		chosenIDs[item.ID] = true
	}

	remaining := make([]catalog.FoodItem, 0, len(candidates))
	for _, item := range candidates {
		if !chosenIDs[item.ID] {
			remaining = append(remaining, item)
		}
	}
	return remaining
}
