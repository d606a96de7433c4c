// Package services – IngredientService
//
// IngredientService manages single ingredients. Writes address an ingredient
// by its own id; the owning recipe is resolved only on create and is never
// changed afterwards.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IngredientService provides ingredient-level operations.
type IngredientService struct {
	DB          *gorm.DB
	Recipes     RecipeRepo
	Ingredients IngredientRepo
}

// NewIngredientService constructs an IngredientService.
func NewIngredientService(db *gorm.DB, recipes RecipeRepo, ingredients IngredientRepo) *IngredientService {
	return &IngredientService{DB: db, Recipes: recipes, Ingredients: ingredients}
}

// ListByRecipe returns the ingredients of recipeID. An unknown recipe yields
// an empty slice.
func (s *IngredientService) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	ctx, span := otel.Tracer("services/IngredientService").Start(ctx, "ListByRecipe",
		trace.WithAttributes(attribute.Int64("recipe.id", recipeID)),
	)
	defer span.End()

	return s.Ingredients.ListIngredientsByRecipe(ctx, s.DB, recipeID)
}

// Get returns ingredient id or ErrIngredientNotFound.
func (s *IngredientService) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	ctx, span := otel.Tracer("services/IngredientService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("ingredient.id", id)),
	)
	defer span.End()

	ing, err := s.Ingredients.GetIngredient(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return ing, nil
}

// Create validates in and adds it to recipeID. Validation runs first; a
// missing recipe yields ErrRecipeNotFound.
func (s *IngredientService) Create(ctx context.Context, recipeID int64, in IngredientInput) (*domain.Ingredient, error) {
	ctx, span := otel.Tracer("services/IngredientService").Start(ctx, "Create",
		trace.WithAttributes(attribute.Int64("recipe.id", recipeID)),
	)
	defer span.End()

	in, err := normalizeIngredient(in, "")
	if err != nil {
		return nil, err
	}

	var out *domain.Ingredient
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.Recipes.RecipeExists(ctx, tx, recipeID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRecipeNotFound
		}
		out, err = s.Ingredients.CreateIngredient(ctx, tx, recipeID, in.Title, in.Amount, in.Unit)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("ingredient.id", out.ID))
	ingredientsCreated.Inc()
	return out, nil
}

// Update overwrites title, amount and unit of ingredient id. A nil amount
// clears a previously set quantity.
func (s *IngredientService) Update(ctx context.Context, id int64, in IngredientInput) (*domain.Ingredient, error) {
	ctx, span := otel.Tracer("services/IngredientService").Start(ctx, "Update",
		trace.WithAttributes(attribute.Int64("ingredient.id", id)),
	)
	defer span.End()

	in, err := normalizeIngredient(in, "")
	if err != nil {
		return nil, err
	}

	var out *domain.Ingredient
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Ingredients.UpdateIngredient(ctx, tx, id, in.Title, in.Amount, in.Unit); err != nil {
			if isNotFound(err) {
				return ErrIngredientNotFound
			}
			return err
		}
		var err error
		out, err = s.Ingredients.GetIngredient(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes ingredient id, or returns ErrIngredientNotFound. The owning
// recipe is left untouched.
func (s *IngredientService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/IngredientService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("ingredient.id", id)),
	)
	defer span.End()

	if err := s.Ingredients.DeleteIngredient(ctx, s.DB, id); err != nil {
		if isNotFound(err) {
			return ErrIngredientNotFound
		}
		return err
	}
	ingredientsDeleted.Inc()
	return nil
}
