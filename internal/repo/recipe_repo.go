// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Recipe model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a recipe is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - DeleteRecipe is the exception: deleting a missing row is not an error.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Usage:
//
//	r, err := repo.GetRecipe(ctx, db, 42)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	} else if err != nil {
//	    // handle DB failure
//	}
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateRecipe inserts a new recipe. The id is assigned by the database and
// CreatedAt is stamped here, once, in UTC.
func CreateRecipe(ctx context.Context, db *gorm.DB, title, description string) (*domain.Recipe, error) {
	now := time.Now().UTC()
	r := &domain.Recipe{
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecipes returns every recipe in insertion (id) order. It returns an
// empty slice when there are none.
func ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error) {
	out := []domain.Recipe{}
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// GetRecipe fetches a single recipe by id, or ErrNotFound if missing.
func GetRecipe(ctx context.Context, db *gorm.DB, id int64) (*domain.Recipe, error) {
	var r domain.Recipe
	if err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// RecipeExists reports whether a recipe with the given id is stored.
func RecipeExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Recipe{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// UpdateRecipe overwrites title and description. CreatedAt is never written.
// If no row matches id it returns ErrNotFound.
func UpdateRecipe(ctx context.Context, db *gorm.DB, id int64, title, description string) error {
	res := db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       title,
			"description": description,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRecipe removes the recipe row with the given id. Missing rows are
// not an error.
func DeleteRecipe(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Recipe{}).Error
}
