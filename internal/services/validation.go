package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// Field limits, counted in characters (runes) after normalization.
const (
	RecipeTitleMin = 3
	RecipeTitleMax = 50
	DescriptionMax = 5000

	// IngredientTitleMax matches the ingredients.title column width.
	IngredientTitleMax = 255
)

// IngredientInput is the service-level shape of an ingredient write.
// A nil Amount means "to taste".
type IngredientInput struct {
	Title  string
	Amount *float64
	Unit   domain.Unit
}

// RecipeInput is the service-level shape of a recipe write.
//
// Ingredients distinguishes three cases: a nil slice leaves the stored set
// untouched on update, a non-nil empty slice clears it, and a non-empty slice
// replaces it.
type RecipeInput struct {
	Title       string
	Description string
	Ingredients []IngredientInput
}

// normalizeTitle composes the string to NFC, trims it and collapses internal
// runs of whitespace to a single space.
func normalizeTitle(s string) string {
	s = norm.NFC.String(s)
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)

// normalizeRecipe validates in and returns a normalized copy. The first
// violation wins; nested ingredient fields are reported by index.
func normalizeRecipe(in RecipeInput) (RecipeInput, error) {
	out := RecipeInput{
		Title:       normalizeTitle(in.Title),
		Description: strings.TrimSpace(norm.NFC.String(in.Description)),
	}
	switch n := utf8.RuneCountInString(out.Title); {
	case n == 0:
		return out, invalid("title", ErrTitleRequired)
	case n < RecipeTitleMin || n > RecipeTitleMax:
		return out, invalid("title", ErrTitleLength)
	}
	if utf8.RuneCountInString(out.Description) > DescriptionMax {
		return out, invalid("description", ErrDescriptionTooLong)
	}

	if in.Ingredients != nil {
		out.Ingredients = make([]IngredientInput, 0, len(in.Ingredients))
		for i, ing := range in.Ingredients {
			n, err := normalizeIngredient(ing, fmt.Sprintf("ingredients[%d].", i))
			if err != nil {
				return out, err
			}
			out.Ingredients = append(out.Ingredients, n)
		}
	}
	return out, nil
}

// normalizeIngredient validates a single ingredient. prefix is prepended to
// field names in the returned error.
func normalizeIngredient(in IngredientInput, prefix string) (IngredientInput, error) {
	out := IngredientInput{Title: normalizeTitle(in.Title)}
	if out.Title == "" {
		return out, invalid(prefix+"title", ErrTitleRequired)
	}
	if utf8.RuneCountInString(out.Title) > IngredientTitleMax {
		return out, invalid(prefix+"title", ErrTitleTooLong)
	}
	if in.Amount != nil {
		// NaN fails the comparison as well.
		if !(*in.Amount > 0) {
			return out, invalid(prefix+"amount", ErrAmountNotPositive)
		}
		v := *in.Amount
		out.Amount = &v
	}
	raw := strings.TrimSpace(string(in.Unit))
	if raw == "" {
		return out, invalid(prefix+"unit", ErrUnitRequired)
	}
	u, ok := domain.ParseUnit(raw)
	if !ok {
		return out, invalid(prefix+"unit", ErrUnitInvalid)
	}
	out.Unit = u
	return out, nil
}

// toIngredients converts validated inputs into entities (recipe id unset).
func toIngredients(in []IngredientInput) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(in))
	for _, i := range in {
		out = append(out, domain.Ingredient{Title: i.Title, Amount: i.Amount, Unit: i.Unit})
	}
	return out
}
