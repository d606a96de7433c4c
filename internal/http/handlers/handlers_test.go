package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/http/middleware"
	"github.com/tbourn/go-recipe-backend/internal/repo"
	"github.com/tbourn/go-recipe-backend/internal/services"
)

// ---------- test plumbing ----------

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
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
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// realHandlers wires Handlers to the real services on a fresh database.
func realHandlers(t *testing.T) (*Handlers, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	h := New(
		services.NewRecipeService(db, repo.Recipes{}, repo.Ingredients{}),
		services.NewIngredientService(db, repo.Recipes{}, repo.Ingredients{}),
		services.NewIdempotencyService(db, time.Hour),
	)
	return h, db
}

func newEngine(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))

	r.GET("/units", h.ListUnits)
	r.GET("/recipes", h.ListRecipes)
	r.POST("/recipes", h.CreateRecipe)
	r.GET("/recipes/:id", h.GetRecipe)
	r.PUT("/recipes/:id", h.UpdateRecipe)
	r.DELETE("/recipes/:id", h.DeleteRecipe)
	r.GET("/recipes/:id/ingredients", h.ListIngredients)
	r.POST("/recipes/:id/ingredients", h.CreateIngredient)
	r.PATCH("/recipes/:id/ingredients/:ingredientId", h.UpdateIngredient)
	r.PUT("/recipes/:id/ingredients/:ingredientId", h.UpdateIngredient)
	r.DELETE("/recipes/:id/ingredients/:ingredientId", h.DeleteIngredient)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("json: %v (body=%s)", err, w.Body.String())
	}
	return v
}

// ---------- failing stubs ----------

type brokenRecipes struct{ err error }

func (s brokenRecipes) List(context.Context) ([]domain.Recipe, error) { return nil, s.err }
func (s brokenRecipes) Stats(context.Context) (int64, *time.Time, error) {
	return 0, nil, s.err
}
func (s brokenRecipes) Get(context.Context, int64) (*domain.RecipeDetail, error) { return nil, s.err }
func (s brokenRecipes) Create(context.Context, services.RecipeInput) (*domain.RecipeDetail, error) {
	return nil, s.err
}
func (s brokenRecipes) Update(context.Context, int64, services.RecipeInput) (*domain.RecipeDetail, error) {
	return nil, s.err
}
func (s brokenRecipes) Delete(context.Context, int64) error { return s.err }

type brokenIngredients struct{ err error }

func (s brokenIngredients) ListByRecipe(context.Context, int64) ([]domain.Ingredient, error) {
	return nil, s.err
}
func (s brokenIngredients) Get(context.Context, int64) (*domain.Ingredient, error) { return nil, s.err }
func (s brokenIngredients) Create(context.Context, int64, services.IngredientInput) (*domain.Ingredient, error) {
	return nil, s.err
}
func (s brokenIngredients) Update(context.Context, int64, services.IngredientInput) (*domain.Ingredient, error) {
	return nil, s.err
}
func (s brokenIngredients) Delete(context.Context, int64) error { return s.err }

type brokenIdem struct{}

func (brokenIdem) Lookup(context.Context, string, string) (int64, bool, error) {
	return 0, false, fmt.Errorf("idem store down")
}
func (brokenIdem) Remember(context.Context, string, string, int64, int) error {
	return fmt.Errorf("idem store down")
}
