// Ingredient HTTP handlers.
//
// This file exposes REST endpoints for the ingredients of a recipe:
//   - GET    /recipes/{id}/ingredients
//   - POST   /recipes/{id}/ingredients
//   - PATCH  /recipes/{id}/ingredients/{ingredientId}  (PUT is an alias)
//   - DELETE /recipes/{id}/ingredients/{ingredientId}
//
// Update and delete address the ingredient by its own id; the recipe segment
// only has to be well formed.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// ListIngredients godoc
// @ID          listIngredients
// @Summary     List ingredients of a recipe
// @Description Returns the ingredients of a recipe. An unknown recipe yields an empty array.
// @Tags        Ingredients
// @Produce     json
//
// @Param       id  path  int  true  "Recipe ID"  minimum(1)
//
// @Success     200  {array}  handlers.IngredientResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id}/ingredients [get]
func (h *Handlers) ListIngredients(c *gin.Context) {
	recipeID, valid := pathID(c, "id")
	if !valid {
		return
	}
	items, err := h.ingSvc.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, toIngredients(items))
}

// CreateIngredient godoc
// @ID          createIngredient
// @Summary     Add an ingredient to a recipe
// @Description Validates the payload, then adds it to the recipe. A missing recipe is a 404.
// @Description Supports idempotency via the Idempotency-Key header.
// @Tags        Ingredients
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       id               path    int     true  "Recipe ID"  minimum(1)
// @Param       body             body    handlers.IngredientRequest  true  "Ingredient payload"
//
// @Success     201  {object} handlers.IngredientResponse
// @Header      201  {string} Idempotency-Replayed "true when served from a previous request"
// @Failure     400  {object} handlers.ErrorResponse "Bad request or validation failure"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id}/ingredients [post]
func (h *Handlers) CreateIngredient(c *gin.Context) {
	recipeID, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ctx := c.Request.Context()
	if id, found := h.replayID(c); found {
		if prev, err := h.ingSvc.Get(ctx, id); err == nil {
			c.Header("Idempotency-Replayed", "true")
			ok(c, http.StatusCreated, toIngredient(*prev))
			return
		}
	}

	ing, err := h.ingSvc.Create(ctx, recipeID, req.input())
	if err != nil {
		failErr(c, err)
		return
	}
	h.remember(c, ing.ID)
	ok(c, http.StatusCreated, toIngredient(*ing))
}

// UpdateIngredient godoc
// @ID          updateIngredient
// @Summary     Update an ingredient
// @Description Overwrites title, amount and unit. Omitting amount clears it. The owning recipe never changes.
// @Tags        Ingredients
// @Accept      json
// @Produce     json
//
// @Param       id            path  int  true  "Recipe ID"      minimum(1)
// @Param       ingredientId  path  int  true  "Ingredient ID"  minimum(1)
// @Param       body          body  handlers.IngredientRequest  true  "Ingredient payload"
//
// @Success     200  {object} handlers.IngredientResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request or validation failure"
// @Failure     404  {object} handlers.ErrorResponse "Ingredient not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id}/ingredients/{ingredientId} [patch]
// @Router      /recipes/{id}/ingredients/{ingredientId} [put]
func (h *Handlers) UpdateIngredient(c *gin.Context) {
	if _, valid := pathID(c, "id"); !valid {
		return
	}
	id, valid := pathID(c, "ingredientId")
	if !valid {
		return
	}
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ing, err := h.ingSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, toIngredient(*ing))
}

// DeleteIngredient godoc
// @ID          deleteIngredient
// @Summary     Delete an ingredient
// @Description Removes a single ingredient. The recipe itself is left untouched.
// @Tags        Ingredients
//
// @Param       id            path  int  true  "Recipe ID"      minimum(1)
// @Param       ingredientId  path  int  true  "Ingredient ID"  minimum(1)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Ingredient not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id}/ingredients/{ingredientId} [delete]
func (h *Handlers) DeleteIngredient(c *gin.Context) {
	if _, valid := pathID(c, "id"); !valid {
		return
	}
	id, valid := pathID(c, "ingredientId")
	if !valid {
		return
	}
	if err := h.ingSvc.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// ListUnits godoc
// @ID          listUnits
// @Summary     List measurement units
// @Description Returns every accepted unit value with its display label.
// @Tags        Units
// @Produce     json
//
// @Success     200  {array}  handlers.UnitResponse
// @Router      /units [get]
func (h *Handlers) ListUnits(c *gin.Context) {
	ok(c, http.StatusOK, toUnits(domain.Units))
}
