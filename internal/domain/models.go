// Package domain defines the persistence models for recipes and their
// ingredients. These types are mapped with GORM and form the core data layer
// of the recipe manager.
package domain

import (
	"time"
)

// Recipe describes a dish. Its ingredients live in their own table and are
// loaded explicitly by the service layer (see RecipeDetail); a Recipe value
// never carries them implicitly.
//
// Fields:
//   - ID: surrogate integer primary key assigned by the database.
//   - Title: required, 3–50 characters (enforced by the service layer).
//   - Description: optional free text, at most 5000 characters.
//   - CreatedAt: set once on insert; GORM never writes it on update.
//   - UpdatedAt: bookkeeping for conditional list responses, not exposed.
type Recipe struct {
	ID          int64     `json:"id"                    gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title"                 gorm:"type:varchar(50);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"             gorm:"<-:create;not null"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the database table name for Recipe.
func (Recipe) TableName() string { return "recipes" }

// Ingredient is a quantity of a named item that belongs to exactly one
// recipe. RecipeID is fixed at construction; updates never reparent.
//
// Amount is nil for "to taste" items (salt, pepper) and strictly positive
// otherwise. Unit is always one of the values in Units.
type Ingredient struct {
	ID        int64     `json:"id"               gorm:"primaryKey;autoIncrement"`
	RecipeID  int64     `json:"-"                gorm:"not null;index:idx_recipe_ingredients"`
	Title     string    `json:"title"            gorm:"type:varchar(255);not null"`
	Amount    *float64  `json:"amount,omitempty" gorm:"check:amount IS NULL OR amount > 0"`
	Unit      Unit      `json:"unit"             gorm:"type:varchar(16);not null;check:unit IN ('G','ML','KG','L','TL','EL','PRISE','MESSERSPITZE','TASSE','GLAS')"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Recipe is the owning recipe. Ingredients are cascade-deleted when
	// their recipe row is removed.
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Ingredient.
func (Ingredient) TableName() string { return "ingredients" }

// RecipeDetail is a recipe together with its ingredient set, in storage
// order. It is assembled by the service layer from two explicit queries.
type RecipeDetail struct {
	Recipe
	Ingredients []Ingredient
}
