package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// Recipes adapts the recipe free functions to the method set expected by
// services.RecipeRepo, so services stay decoupled from this package.
type Recipes struct{}

// CreateRecipe proxies CreateRecipe.
func (Recipes) CreateRecipe(ctx context.Context, db *gorm.DB, title, description string) (*domain.Recipe, error) {
	return CreateRecipe(ctx, db, title, description)
}

// ListRecipes proxies ListRecipes.
func (Recipes) ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error) {
	return ListRecipes(ctx, db)
}

// GetRecipe proxies GetRecipe.
func (Recipes) GetRecipe(ctx context.Context, db *gorm.DB, id int64) (*domain.Recipe, error) {
	return GetRecipe(ctx, db, id)
}

// RecipeExists proxies RecipeExists.
func (Recipes) RecipeExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return RecipeExists(ctx, db, id)
}

// UpdateRecipe proxies UpdateRecipe.
func (Recipes) UpdateRecipe(ctx context.Context, db *gorm.DB, id int64, title, description string) error {
	return UpdateRecipe(ctx, db, id, title, description)
}

// DeleteRecipe proxies DeleteRecipe.
func (Recipes) DeleteRecipe(ctx context.Context, db *gorm.DB, id int64) error {
	return DeleteRecipe(ctx, db, id)
}

// RecipesStats proxies RecipesStats.
func (Recipes) RecipesStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return RecipesStats(ctx, db)
}

// Ingredients adapts the ingredient free functions to services.IngredientRepo.
type Ingredients struct{}

// CreateIngredient proxies CreateIngredient.
func (Ingredients) CreateIngredient(ctx context.Context, db *gorm.DB, recipeID int64, title string, amount *float64, unit domain.Unit) (*domain.Ingredient, error) {
	return CreateIngredient(ctx, db, recipeID, title, amount, unit)
}

// CreateIngredients proxies CreateIngredients.
func (Ingredients) CreateIngredients(ctx context.Context, db *gorm.DB, recipeID int64, items []domain.Ingredient) ([]domain.Ingredient, error) {
	return CreateIngredients(ctx, db, recipeID, items)
}

// ListIngredientsByRecipe proxies ListIngredientsByRecipe.
func (Ingredients) ListIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) ([]domain.Ingredient, error) {
	return ListIngredientsByRecipe(ctx, db, recipeID)
}

// GetIngredient proxies GetIngredient.
func (Ingredients) GetIngredient(ctx context.Context, db *gorm.DB, id int64) (*domain.Ingredient, error) {
	return GetIngredient(ctx, db, id)
}

// IngredientExists proxies IngredientExists.
func (Ingredients) IngredientExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return IngredientExists(ctx, db, id)
}

// UpdateIngredient proxies UpdateIngredient.
func (Ingredients) UpdateIngredient(ctx context.Context, db *gorm.DB, id int64, title string, amount *float64, unit domain.Unit) error {
	return UpdateIngredient(ctx, db, id, title, amount, unit)
}

// DeleteIngredient proxies DeleteIngredient.
func (Ingredients) DeleteIngredient(ctx context.Context, db *gorm.DB, id int64) error {
	return DeleteIngredient(ctx, db, id)
}

// DeleteIngredientsByRecipe proxies DeleteIngredientsByRecipe.
func (Ingredients) DeleteIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) (int64, error) {
	return DeleteIngredientsByRecipe(ctx, db, recipeID)
}
