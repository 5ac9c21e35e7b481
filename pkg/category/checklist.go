package category

import (
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/pkg/recipe"
	"strings"
)

// AggregateIngredients walks the given recipes in order and returns the
// deduplicated list of their ingredient strings. Matching is on the exact
// trimmed string: no normalization, no fuzzy matching, no unit parsing.
// Empty lines are skipped and the first occurrence of an ingredient decides
// its position.
func AggregateIngredients(recipes []*entities.Recipe) []string {
	seen := make(map[string]bool)
	var ingredients []string

	for _, r := range recipes {
		for _, line := range recipe.SplitLines(r.Ingredients) {
			ingredient := strings.TrimSpace(line)
			if ingredient == "" {
				continue
			}
			if seen[ingredient] {
				continue
			}
			seen[ingredient] = true
			ingredients = append(ingredients, ingredient)
		}
	}

	return ingredients
}
