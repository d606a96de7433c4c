package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:domain_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Enforce FKs so cascades actually execute; one connection keeps the
	// pragma and the shared in-memory schema consistent.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	if err := db.AutoMigrate(&Recipe{}, &Ingredient{}, &Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func ptr(f float64) *float64 { return &f }

func TestTableNames(t *testing.T) {
	if (Recipe{}).TableName() != "recipes" {
		t.Fatalf("Recipe.TableName() = %q", (Recipe{}).TableName())
	}
	if (Ingredient{}).TableName() != "ingredients" {
		t.Fatalf("Ingredient.TableName() = %q", (Ingredient{}).TableName())
	}
	if (Idempotency{}).TableName() != "idempotency" {
		t.Fatalf("Idempotency.TableName() = %q", (Idempotency{}).TableName())
	}
}

func TestMigrations_Indexes(t *testing.T) {
	db := newDomainDB(t)
	m := db.Migrator()

	for _, tbl := range []any{&Recipe{}, &Ingredient{}, &Idempotency{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Ingredient{}, "idx_recipe_ingredients") {
		t.Fatalf("expected index idx_recipe_ingredients on ingredients")
	}
	if !m.HasIndex(&Idempotency{}, "ux_scope_key") {
		t.Fatalf("expected unique index ux_scope_key on idempotency")
	}
}

func TestRecipeDelete_CascadesToIngredients(t *testing.T) {
	db := newDomainDB(t)

	r := &Recipe{Title: "Pancakes", CreatedAt: time.Now().UTC()}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("insert recipe: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("expected storage-assigned id")
	}
	ings := []Ingredient{
		{RecipeID: r.ID, Title: "Flour", Amount: ptr(200), Unit: UnitGram},
		{RecipeID: r.ID, Title: "Salt", Unit: UnitPinch},
	}
	if err := db.Create(&ings).Error; err != nil {
		t.Fatalf("insert ingredients: %v", err)
	}

	if err := db.Delete(&Recipe{}, r.ID).Error; err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	var n int64
	db.Model(&Ingredient{}).Where("recipe_id = ?", r.ID).Count(&n)
	if n != 0 {
		t.Fatalf("expected ingredients to cascade, %d left", n)
	}
}

func TestIngredient_ForeignKeyRequired(t *testing.T) {
	db := newDomainDB(t)
	err := db.Create(&Ingredient{RecipeID: 4242, Title: "Orphan", Unit: UnitGram}).Error
	if err == nil {
		t.Fatalf("expected FK violation for missing recipe")
	}
}

func TestIngredient_CheckConstraints(t *testing.T) {
	db := newDomainDB(t)
	r := &Recipe{Title: "Soup", CreatedAt: time.Now().UTC()}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("insert recipe: %v", err)
	}

	if err := db.Create(&Ingredient{RecipeID: r.ID, Title: "Water", Amount: ptr(0), Unit: UnitLiter}).Error; err == nil {
		t.Fatalf("expected check violation for zero amount")
	}
	if err := db.Create(&Ingredient{RecipeID: r.ID, Title: "Water", Amount: ptr(1), Unit: Unit("BUCKET")}).Error; err == nil {
		t.Fatalf("expected check violation for unknown unit")
	}
	if err := db.Create(&Ingredient{RecipeID: r.ID, Title: "Pepper", Unit: UnitKnifeTip}).Error; err != nil {
		t.Fatalf("nil amount must be accepted: %v", err)
	}
}

func TestRecipe_CreatedAtIsCreateOnly(t *testing.T) {
	db := newDomainDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := &Recipe{Title: "Bread", CreatedAt: created}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	r.Title = "Rye bread"
	r.CreatedAt = created.Add(48 * time.Hour)
	if err := db.Save(r).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	var got Recipe
	if err := db.First(&got, r.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "Rye bread" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt mutated: got %v want %v", got.CreatedAt, created)
	}
}
