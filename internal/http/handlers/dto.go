package handlers

import (
	"time"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/services"
)

//
// Requests
//

// IngredientRequest is the JSON payload for creating or updating an ingredient.
type IngredientRequest struct {
	// Title is the ingredient name (non-blank).
	Title string `json:"title" example:"Flour"`
	// Amount is optional; when present it must be greater than zero.
	Amount *float64 `json:"amount,omitempty" example:"200"`
	// Unit is the symbolic unit name.
	Unit string `json:"unit" example:"G" enums:"G,ML,KG,L,TL,EL,PRISE,MESSERSPITZE,TASSE,GLAS"`
}

// RecipeRequest is the JSON payload for creating or updating a recipe.
//
// Omitting `ingredients` leaves the stored set untouched on update; sending
// an empty array clears it.
type RecipeRequest struct {
	// Title is 3–50 characters.
	Title string `json:"title" example:"Pasta Carbonara"`
	// Description is optional, at most 5000 characters.
	Description string `json:"description,omitempty" example:"Italian pasta"`
	// Ingredients replaces the ingredient set when present.
	Ingredients []IngredientRequest `json:"ingredients,omitempty"`
}

func (r IngredientRequest) input() services.IngredientInput {
	return services.IngredientInput{
		Title:  r.Title,
		Amount: r.Amount,
		Unit:   domain.Unit(r.Unit),
	}
}

func (r RecipeRequest) input() services.RecipeInput {
	in := services.RecipeInput{Title: r.Title, Description: r.Description}
	if r.Ingredients != nil {
		in.Ingredients = make([]services.IngredientInput, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			in.Ingredients = append(in.Ingredients, ing.input())
		}
	}
	return in
}

//
// Responses
//

// RecipeSummary is the list-view shape of a recipe.
type RecipeSummary struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Pasta Carbonara"`
	CreatedAt time.Time `json:"createdAt" example:"2025-01-01T12:00:00Z"`
}

// IngredientResponse is the wire shape of an ingredient. A missing amount
// means "to taste" and is omitted.
type IngredientResponse struct {
	ID     int64       `json:"id" example:"1"`
	Title  string      `json:"title" example:"Flour"`
	Amount *float64    `json:"amount,omitempty" example:"200"`
	Unit   domain.Unit `json:"unit" example:"G"`
}

// RecipeDetailResponse is the single-item shape of a recipe.
type RecipeDetailResponse struct {
	ID          int64                `json:"id" example:"1"`
	Title       string               `json:"title" example:"Pasta Carbonara"`
	Description string               `json:"description,omitempty" example:"Italian pasta"`
	CreatedAt   time.Time            `json:"createdAt" example:"2025-01-01T12:00:00Z"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// UnitResponse pairs a unit's wire value with its display label.
type UnitResponse struct {
	Value domain.Unit `json:"value" example:"G"`
	Label string      `json:"label" example:"Gram"`
}

//
// Mapping (pure, total)
//

func toSummaries(in []domain.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(in))
	for _, r := range in {
		out = append(out, RecipeSummary{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt})
	}
	return out
}

func toIngredient(i domain.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Title: i.Title, Amount: i.Amount, Unit: i.Unit}
}

func toIngredients(in []domain.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(in))
	for _, i := range in {
		out = append(out, toIngredient(i))
	}
	return out
}

func toDetail(d *domain.RecipeDetail) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Ingredients: toIngredients(d.Ingredients),
	}
}

func toUnits(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, UnitResponse{Value: u, Label: u.Label()})
	}
	return out
}
