// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Ingredient
// model. Ingredients are always addressed either by their own id or by the
// owning recipe id; there is no implicit loading through Recipe.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// CreateIngredient inserts one ingredient bound to recipeID.
func CreateIngredient(ctx context.Context, db *gorm.DB, recipeID int64, title string, amount *float64, unit domain.Unit) (*domain.Ingredient, error) {
	now := time.Now().UTC()
	in := &domain.Ingredient{
		RecipeID:  recipeID,
		Title:     title,
		Amount:    amount,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

// CreateIngredients batch-inserts items, binding each one to recipeID.
// Ids are written back into the returned slice. An empty input is a no-op.
func CreateIngredients(ctx context.Context, db *gorm.DB, recipeID int64, items []domain.Ingredient) ([]domain.Ingredient, error) {
	if len(items) == 0 {
		return []domain.Ingredient{}, nil
	}
	now := time.Now().UTC()
	out := make([]domain.Ingredient, len(items))
	for i, it := range items {
		out[i] = domain.Ingredient{
			RecipeID:  recipeID,
			Title:     it.Title,
			Amount:    it.Amount,
			Unit:      it.Unit,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	if err := db.WithContext(ctx).Create(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListIngredientsByRecipe returns the ingredients of recipeID in insertion
// order. It does not check that the recipe exists.
func ListIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) ([]domain.Ingredient, error) {
	out := []domain.Ingredient{}
	err := db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// GetIngredient fetches an ingredient by id, or ErrNotFound if missing.
func GetIngredient(ctx context.Context, db *gorm.DB, id int64) (*domain.Ingredient, error) {
	var in domain.Ingredient
	if err := db.WithContext(ctx).Where("id = ?", id).First(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

// IngredientExists reports whether an ingredient with the given id is stored.
func IngredientExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Ingredient{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// UpdateIngredient overwrites title, amount and unit. A nil amount is
// written as NULL. recipe_id is never touched. Returns ErrNotFound when no
// row matches id.
func UpdateIngredient(ctx context.Context, db *gorm.DB, id int64, title string, amount *float64, unit domain.Unit) error {
	res := db.WithContext(ctx).
		Model(&domain.Ingredient{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"amount":     amount,
			"unit":       unit,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteIngredient removes one ingredient. Returns ErrNotFound when no row
// matches id.
func DeleteIngredient(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Ingredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteIngredientsByRecipe removes every ingredient of recipeID and
// returns how many rows were deleted.
func DeleteIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) (int64, error) {
	res := db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&domain.Ingredient{})
	return res.RowsAffected, res.Error
}
