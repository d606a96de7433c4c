// Package services – RecipeService
//
// This file implements RecipeService, which owns the lifecycle of recipes and
// of the ingredient set attached to them. It validates and normalizes input
// before touching storage, and runs every write that spans both tables inside
// a single transaction so a partially replaced ingredient set is never
// observable.
//
// Observability: public methods are OpenTelemetry-instrumented and writes
// bump the domain Prometheus counters.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecipeRepo defines the repository contract required by the services for
// recipe rows.
type RecipeRepo interface {
	// CreateRecipe inserts a recipe and returns it with id and timestamps set.
	CreateRecipe(ctx context.Context, db *gorm.DB, title, description string) (*domain.Recipe, error)

	// ListRecipes returns all recipes in ascending id order.
	ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error)

	// GetRecipe fetches a recipe by id (gorm.ErrRecordNotFound when absent).
	GetRecipe(ctx context.Context, db *gorm.DB, id int64) (*domain.Recipe, error)

	// RecipeExists reports whether a recipe with id exists.
	RecipeExists(ctx context.Context, db *gorm.DB, id int64) (bool, error)

	// UpdateRecipe overwrites title and description.
	UpdateRecipe(ctx context.Context, db *gorm.DB, id int64, title, description string) error

	// DeleteRecipe removes the recipe row; a missing row is not an error.
	DeleteRecipe(ctx context.Context, db *gorm.DB, id int64) error

	// RecipesStats returns the row count and the latest updated_at.
	RecipesStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error)
}

// IngredientRepo defines the repository contract for ingredient rows.
type IngredientRepo interface {
	CreateIngredient(ctx context.Context, db *gorm.DB, recipeID int64, title string, amount *float64, unit domain.Unit) (*domain.Ingredient, error)
	CreateIngredients(ctx context.Context, db *gorm.DB, recipeID int64, items []domain.Ingredient) ([]domain.Ingredient, error)
	ListIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, db *gorm.DB, id int64) (*domain.Ingredient, error)
	IngredientExists(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	UpdateIngredient(ctx context.Context, db *gorm.DB, id int64, title string, amount *float64, unit domain.Unit) error
	DeleteIngredient(ctx context.Context, db *gorm.DB, id int64) error
	DeleteIngredientsByRecipe(ctx context.Context, db *gorm.DB, recipeID int64) (int64, error)
}

// RecipeService provides recipe-level operations.
type RecipeService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Recipes and Ingredients are the repositories used by this service.
	Recipes     RecipeRepo
	Ingredients IngredientRepo
}

// NewRecipeService constructs a RecipeService.
func NewRecipeService(db *gorm.DB, recipes RecipeRepo, ingredients IngredientRepo) *RecipeService {
	return &RecipeService{DB: db, Recipes: recipes, Ingredients: ingredients}
}

// List returns every recipe in storage order. No recipes yields an empty slice.
func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "List")
	defer span.End()

	items, err := s.Recipes.ListRecipes(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("recipe.count", len(items)))
	return items, nil
}

// Stats returns the number of recipes and the most recent modification time,
// used by the transport layer to derive a list validator.
func (s *RecipeService) Stats(ctx context.Context) (int64, *time.Time, error) {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "Stats")
	defer span.End()
	return s.Recipes.RecipesStats(ctx, s.DB)
}

// Get returns the recipe with its ingredient set, or ErrRecipeNotFound.
func (s *RecipeService) Get(ctx context.Context, id int64) (*domain.RecipeDetail, error) {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("recipe.id", id)),
	)
	defer span.End()

	return s.detail(ctx, s.DB, id)
}

// Create validates in, then persists the recipe and its ingredients in one
// transaction.
func (s *RecipeService) Create(ctx context.Context, in RecipeInput) (*domain.RecipeDetail, error) {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "Create")
	defer span.End()

	in, err := normalizeRecipe(in)
	if err != nil {
		return nil, err
	}

	var out *domain.RecipeDetail
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := s.Recipes.CreateRecipe(ctx, tx, in.Title, in.Description)
		if err != nil {
			return err
		}
		items, err := s.Ingredients.CreateIngredients(ctx, tx, r.ID, toIngredients(in.Ingredients))
		if err != nil {
			return err
		}
		out = &domain.RecipeDetail{Recipe: *r, Ingredients: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("recipe.id", out.ID),
		attribute.Int("ingredient.count", len(out.Ingredients)),
	)
	recipesCreated.Inc()
	ingredientsCreated.Add(float64(len(out.Ingredients)))
	return out, nil
}

// Update overwrites title and description of an existing recipe. When
// in.Ingredients is non-nil the whole ingredient set is replaced by it.
func (s *RecipeService) Update(ctx context.Context, id int64, in RecipeInput) (*domain.RecipeDetail, error) {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "Update",
		trace.WithAttributes(
			attribute.Int64("recipe.id", id),
			attribute.Bool("ingredients.replace", in.Ingredients != nil),
		),
	)
	defer span.End()

	in, err := normalizeRecipe(in)
	if err != nil {
		return nil, err
	}

	var (
		out     *domain.RecipeDetail
		created int
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Recipes.UpdateRecipe(ctx, tx, id, in.Title, in.Description); err != nil {
			if isNotFound(err) {
				return ErrRecipeNotFound
			}
			return err
		}
		if in.Ingredients != nil {
			if _, err := s.Ingredients.DeleteIngredientsByRecipe(ctx, tx, id); err != nil {
				return err
			}
			items, err := s.Ingredients.CreateIngredients(ctx, tx, id, toIngredients(in.Ingredients))
			if err != nil {
				return err
			}
			created = len(items)
		}
		d, err := s.detail(ctx, tx, id)
		if err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	ingredientsCreated.Add(float64(created))
	return out, nil
}

// Delete removes a recipe and its ingredients. Deleting a missing id
// succeeds.
func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/RecipeService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("recipe.id", id)),
	)
	defer span.End()

	var existed bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.Recipes.RecipeExists(ctx, tx, id)
		if err != nil || !ok {
			return err
		}
		existed = true
		if _, err := s.Ingredients.DeleteIngredientsByRecipe(ctx, tx, id); err != nil {
			return err
		}
		return s.Recipes.DeleteRecipe(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.Bool("recipe.existed", existed))
	if existed {
		recipesDeleted.Inc()
	}
	return nil
}

// detail loads a recipe and its ingredient set through db, which may be a
// transaction.
func (s *RecipeService) detail(ctx context.Context, db *gorm.DB, id int64) (*domain.RecipeDetail, error) {
	r, err := s.Recipes.GetRecipe(ctx, db, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	items, err := s.Ingredients.ListIngredientsByRecipe(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeDetail{Recipe: *r, Ingredients: items}, nil
}

// isNotFound reports whether err signals a missing row.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
