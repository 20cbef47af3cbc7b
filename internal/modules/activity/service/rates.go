package activity

// Calorie burn rates in kcal per minute, keyed by activity type. Applied once at
// creation when the client does not supply a calorie value; stored activities are
// never re-rated.
var calorieRates = map[string]int{
	"Running":         12,
	"Swimming":        10,
	"Cycling":         9,
	"Weight Training": 8,
	"Boxing":          13,
	"Yoga":            5,
	"CrossFit":        14,
	"Martial Arts":    11,
}

const defaultCalorieRate = 8

// CaloriesFor returns the derived calorie burn for an activity of the given type
// and duration in minutes.
func CaloriesFor(activityType string, duration int) int {
	rate, ok := calorieRates[activityType]
	if !ok {
		rate = defaultCalorieRate
	}
	return rate * duration
}
