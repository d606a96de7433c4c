package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/repo"
)

// ---------- test helpers ----------

func newSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newRecipeSvc(db *gorm.DB) *RecipeService {
	return NewRecipeService(db, repo.Recipes{}, repo.Ingredients{})
}

func newIngredientSvc(db *gorm.DB) *IngredientService {
	return NewIngredientService(db, repo.Recipes{}, repo.Ingredients{})
}

func f64(v float64) *float64 { return &v }

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

// ---------- fakes ----------

var errBoom = errors.New("boom")

// flakyIngredients behaves like the real repository except for the
// operations whose error field is set.
type flakyIngredients struct {
	repo.Ingredients
	createManyErr error
	listErr       error
	deleteErr     error
}

func (f flakyIngredients) CreateIngredients(ctx context.Context, db *gorm.DB, recipeID int64, items []domain.Ingredient) ([]domain.Ingredient, error) {
	if f.createManyErr != nil {
		return nil, f.createManyErr
	}
	return f.Ingredients.CreateIngredients(ctx, db, recipeID, items)
}

func (f flakyIngredients) ListIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) ([]domain.Ingredient, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Ingredients.ListIngredientsByRecipe(ctx, db, recipeID)
}

func (f flakyIngredients) DeleteIngredient(ctx context.Context, db *gorm.DB, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Ingredients.DeleteIngredient(ctx, db, id)
}

// flakyRecipes mirrors flakyIngredients for recipe rows.
type flakyRecipes struct {
	repo.Recipes
	listErr   error
	getErr    error
	existsErr error
}

func (f flakyRecipes) ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Recipes.ListRecipes(ctx, db)
}

func (f flakyRecipes) GetRecipe(ctx context.Context, db *gorm.DB, id int64) (*domain.Recipe, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Recipes.GetRecipe(ctx, db, id)
}

func (f flakyRecipes) RecipeExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.Recipes.RecipeExists(ctx, db, id)
}
