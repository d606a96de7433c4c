// Recipe HTTP handlers.
//
// This file exposes REST endpoints for recipe resources:
//   - GET    /recipes        (list summaries, ETag support)
//   - GET    /recipes/{id}   (detail with ingredients)
//   - POST   /recipes        (create, optional Idempotency-Key)
//   - PUT    /recipes/{id}   (update, optional full ingredient replace)
//   - DELETE /recipes/{id}   (idempotent delete)
//
// Handlers are transport-thin: they decode input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/http/middleware"
	"github.com/tbourn/go-recipe-backend/internal/services"
	"github.com/tbourn/go-recipe-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// RecipeService defines recipe operations consumed by HTTP handlers.
type RecipeService interface {
	List(ctx context.Context) ([]domain.Recipe, error)
	// Stats returns the recipe count and latest modification time.
	Stats(ctx context.Context) (int64, *time.Time, error)
	Get(ctx context.Context, id int64) (*domain.RecipeDetail, error)
	Create(ctx context.Context, in services.RecipeInput) (*domain.RecipeDetail, error)
	Update(ctx context.Context, id int64, in services.RecipeInput) (*domain.RecipeDetail, error)
	Delete(ctx context.Context, id int64) error
}

// IngredientService defines ingredient operations consumed by HTTP handlers.
type IngredientService interface {
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error)
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)
	Create(ctx context.Context, recipeID int64, in services.IngredientInput) (*domain.Ingredient, error)
	Update(ctx context.Context, id int64, in services.IngredientInput) (*domain.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

// IdempotencyStore remembers which resource a create with a given
// Idempotency-Key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (int64, bool, error)
	Remember(ctx context.Context, scope, key string, resourceID int64, status int) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for recipes, ingredients and units.
type Handlers struct {
	recipeSvc RecipeService
	ingSvc    IngredientService
	idem      IdempotencyStore
}

// New constructs Handlers. idem may be nil to disable replay support.
func New(recipeSvc RecipeService, ingSvc IngredientService, idem IdempotencyStore) *Handlers {
	return &Handlers{recipeSvc: recipeSvc, ingSvc: ingSvc, idem: idem}
}

//
// Helpers
//

// pathID parses a positive integer path parameter, writing a 400 when it is
// malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("%s: %v", name, err))
		return 0, false
	}
	return id, true
}

// replayID returns the resource id recorded for this request's
// Idempotency-Key, scoped to the request path. Lookup failures are logged and
// treated as "no replay".
func (h *Handlers) replayID(c *gin.Context) (int64, bool) {
	key, has := middleware.GetIdempotencyKey(c)
	if !has || h.idem == nil {
		return 0, false
	}
	id, found, err := h.idem.Lookup(c.Request.Context(), c.Request.URL.Path, key)
	if err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency lookup failed")
		return 0, false
	}
	return id, found
}

// remember records a completed create (best effort).
func (h *Handlers) remember(c *gin.Context, resourceID int64) {
	key, has := middleware.GetIdempotencyKey(c)
	if !has || h.idem == nil {
		return
	}
	if err := h.idem.Remember(c.Request.Context(), c.Request.URL.Path, key, resourceID, http.StatusCreated); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record failed")
	}
}

//
// Handlers
//

// ListRecipes godoc
// @ID          listRecipes
// @Summary     List recipes
// @Description Returns all recipes as summaries in creation order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Recipes
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"recipes:3:1735732800000000000\")
//
// @Success     200  {array}  handlers.RecipeSummary
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes [get]
func (h *Handlers) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if count, maxTS, err := h.recipeSvc.Stats(ctx); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.UnixNano()
		}
		etag := fmt.Sprintf(`W/"recipes:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.recipeSvc.List(ctx)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, toSummaries(items))
}

// GetRecipe godoc
// @ID          getRecipe
// @Summary     Get a recipe
// @Description Returns a recipe with its ingredients.
// @Tags        Recipes
// @Produce     json
//
// @Param       id  path  int  true  "Recipe ID"  minimum(1)
//
// @Success     200  {object} handlers.RecipeDetailResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [get]
func (h *Handlers) GetRecipe(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	d, err := h.recipeSvc.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, toDetail(d))
}

// CreateRecipe godoc
// @ID          createRecipe
// @Summary     Create a recipe
// @Description Creates a recipe and, when given, its ingredients in one step.
// @Description Supports idempotency via the Idempotency-Key header (same key → same recipe).
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.RecipeRequest  true  "Recipe payload"
//
// @Success     201  {object} handlers.RecipeDetailResponse
// @Header      201  {string} Idempotency-Replayed "true when served from a previous request"
// @Failure     400  {object} handlers.ErrorResponse "Bad request or validation failure"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes [post]
func (h *Handlers) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ctx := c.Request.Context()
	if id, found := h.replayID(c); found {
		if prev, err := h.recipeSvc.Get(ctx, id); err == nil {
			c.Header("Idempotency-Replayed", "true")
			ok(c, http.StatusCreated, toDetail(prev))
			return
		}
	}

	d, err := h.recipeSvc.Create(ctx, req.input())
	if err != nil {
		failErr(c, err)
		return
	}
	h.remember(c, d.ID)
	ok(c, http.StatusCreated, toDetail(d))
}

// UpdateRecipe godoc
// @ID          updateRecipe
// @Summary     Update a recipe
// @Description Overwrites title and description. When `ingredients` is present the whole ingredient set is replaced; an empty array clears it.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       id    path  int  true  "Recipe ID"  minimum(1)
// @Param       body  body  handlers.RecipeRequest  true  "Recipe payload"
//
// @Success     200  {object} handlers.RecipeDetailResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request or validation failure"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [put]
func (h *Handlers) UpdateRecipe(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	d, err := h.recipeSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, toDetail(d))
}

// DeleteRecipe godoc
// @ID          deleteRecipe
// @Summary     Delete a recipe
// @Description Deletes a recipe and its ingredients. Deleting a missing recipe also returns 204.
// @Tags        Recipes
//
// @Param       id  path  int  true  "Recipe ID"  minimum(1)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [delete]
func (h *Handlers) DeleteRecipe(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := h.recipeSvc.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
