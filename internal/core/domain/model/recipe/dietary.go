package recipe

// DietaryRequest describes the adjustments a guest asks for when placing
// an order. The boolean flags classify the request; the exclusion list
// names the ingredients the guest cannot have.
//
// DietaryRequest is a plain value: it carries data and no behaviour.
// Interpretation happens in an Accommodator.
type DietaryRequest struct {
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	NutFree    bool
	LowSodium  bool
	LowSugar   bool

	// Exclusions lists ingredient names to strip from the recipe.
	Exclusions []string
}

// Accommodator adapts a recipe to a dietary request.
// The built-in behaviour is provided by DefaultAccommodator; bespoke
// implementations can substitute ingredients, adjust quantities, or
// veto the order entirely based on the request's flags.
type Accommodator interface {
	// Accommodate mutates the given recipe so it satisfies the request.
	// Implementations return an error when the recipe cannot be adapted.
	Accommodate(recipe *Recipe, request DietaryRequest) error
}

// DefaultAccommodator implements the built-in dietary behaviour:
// every ingredient named in the request's exclusion list is removed
// from the recipe's requirements. Exclusions that name no requirement
// are ignored. The boolean flags are carried for bespoke Accommodator
// implementations and are not interpreted here.
type DefaultAccommodator struct{}

// Accommodate applies the request's exclusions to the recipe.
func (DefaultAccommodator) Accommodate(recipe *Recipe, request DietaryRequest) error {
	return recipe.Accommodate(request)
}
