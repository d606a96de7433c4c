package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

func TestCreateRecipe_Success_Detail(t *testing.T) {
	h, _ := realHandlers(t)
	r := newEngine(h)

	w := do(t, r, http.MethodPost, "/recipes",
		`{"title":"Pasta Carbonara","description":"Italian pasta","ingredients":[{"title":"Spaghetti","amount":400,"unit":"G"},{"title":"Pepper","unit":"PRISE"}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	d := decode[RecipeDetailResponse](t, w)
	if d.ID == 0 || d.Title != "Pasta Carbonara" || d.Description != "Italian pasta" || d.CreatedAt.IsZero() {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if len(d.Ingredients) != 2 || d.Ingredients[1].Amount != nil || d.Ingredients[1].Unit != domain.UnitPinch {
		t.Fatalf("unexpected ingredients: %+v", d.Ingredients)
	}
	if w.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("fresh create must not be flagged as replay")
	}
}

func TestCreateRecipe_BadJSONAndValidation(t *testing.T) {
	h, db := realHandlers(t)
	r := newEngine(h)

	cases := []struct {
		body  string
		code  string
		field string
	}{
		{`{`, ErrCodeBadRequest, ""},
		{``, ErrCodeBadRequest, ""},
		{`{"title":5}`, ErrCodeBadRequest, ""},
		{`{"title":"  "}`, ErrCodeValidation, "title"},
		{`{"title":"ab"}`, ErrCodeValidation, "title"},
		{`{"title":"` + strings.Repeat("x", 51) + `"}`, ErrCodeValidation, "title"},
		{`{"title":"Soup","description":"` + strings.Repeat("d", 5001) + `"}`, ErrCodeValidation, "description"},
		{`{"title":"Soup","ingredients":[{"title":"Salt","amount":0,"unit":"G"}]}`, ErrCodeValidation, "ingredients[0].amount"},
		{`{"title":"Soup","ingredients":[{"title":"Salt","unit":"g"}]}`, ErrCodeValidation, "ingredients[0].unit"},
	}
	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/recipes", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status=%d", tc.body, w.Code)
		}
		er := decode[ErrorResponse](t, w)
		if er.Code != tc.code || er.Field != tc.field || er.RequestID == "" {
			t.Fatalf("body %q: unexpected envelope %+v", tc.body, er)
		}
	}

	var n int64
	db.Model(&domain.Recipe{}).Count(&n)
	if n != 0 {
		t.Fatalf("invalid requests wrote %d recipes", n)
	}
}

func TestGetRecipe_NotFoundAndBadID(t *testing.T) {
	h, _ := realHandlers(t)
	r := newEngine(h)

	if w := do(t, r, http.MethodGet, "/recipes/999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing: status=%d", w.Code)
	} else if er := decode[ErrorResponse](t, w); er.Code != ErrCodeNotFound {
		t.Fatalf("missing: code=%q", er.Code)
	}
	for _, bad := range []string{"abc", "0", "-1", "1.5"} {
		w := do(t, r, http.MethodGet, "/recipes/"+bad, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("id %q: status=%d", bad, w.Code)
		}
	}
}

func TestListRecipes_SummariesAndETag(t *testing.T) {
	h, _ := realHandlers(t)
	r := newEngine(h)

	w := do(t, r, http.MethodGet, "/recipes", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("empty list: status=%d body=%s", w.Code, w.Body.String())
	}
	emptyTag := w.Header().Get("ETag")
	if !strings.HasPrefix(emptyTag, `W/"recipes:0:`) {
		t.Fatalf("unexpected ETag %q", emptyTag)
	}

	for _, title := range []string{"First dish", "Second dish"} {
		if w := do(t, r, http.MethodPost, "/recipes", `{"title":"`+title+`","description":"hidden in list"}`); w.Code != http.StatusCreated {
			t.Fatalf("seed: %d", w.Code)
		}
	}

	w = do(t, r, http.MethodGet, "/recipes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "description") {
		t.Fatalf("summaries must not carry description: %s", w.Body.String())
	}
	items := decode[[]RecipeSummary](t, w)
	if len(items) != 2 || items[0].Title != "First dish" || items[1].Title != "Second dish" {
		t.Fatalf("unexpected list: %+v", items)
	}
	etag := w.Header().Get("ETag")
	if etag == "" || etag == emptyTag {
		t.Fatalf("ETag should change after writes: %q vs %q", etag, emptyTag)
	}

	w = do(t, r, http.MethodGet, "/recipes", "", "If-None-Match", etag)
	if w.Code != http.StatusNotModified || w.Body.Len() != 0 {
		t.Fatalf("conditional GET: status=%d len=%d", w.Code, w.Body.Len())
	}
	if w := do(t, r, http.MethodGet, "/recipes", "", "If-None-Match", `W/"stale"`); w.Code != http.StatusOK {
		t.Fatalf("stale tag: status=%d", w.Code)
	}
}

func TestUpdateRecipe_ReplaceOmitAndNotFound(t *testing.T) {
	h, _ := realHandlers(t)
	r := newEngine(h)

	w := do(t, r, http.MethodPost, "/recipes", `{"title":"Pancakes","ingredients":[{"title":"Flour","amount":250,"unit":"G"},{"title":"Milk","amount":0.5,"unit":"L"}]}`)
	created := decode[RecipeDetailResponse](t, w)
	path := "/recipes/" + itoa64(created.ID)

	// Omitted ingredients: untouched.
	w = do(t, r, http.MethodPut, path, `{"title":"Fluffy Pancakes","description":"Sunday"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("omit: status=%d body=%s", w.Code, w.Body.String())
	}
	d := decode[RecipeDetailResponse](t, w)
	if d.Title != "Fluffy Pancakes" || len(d.Ingredients) != 2 || !d.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("omit: unexpected %+v", d)
	}

	// Provided list: full replace.
	w = do(t, r, http.MethodPut, path, `{"title":"Fluffy Pancakes","ingredients":[{"title":"Eggs","amount":2,"unit":"TASSE"},{"title":"Sugar","unit":"EL"}]}`)
	d = decode[RecipeDetailResponse](t, w)
	if len(d.Ingredients) != 2 || d.Ingredients[0].Title != "Eggs" || d.Ingredients[1].Title != "Sugar" {
		t.Fatalf("replace: unexpected %+v", d.Ingredients)
	}
	w = do(t, r, http.MethodGet, path, "")
	d = decode[RecipeDetailResponse](t, w)
	if len(d.Ingredients) != 2 || d.Ingredients[0].Title != "Eggs" || d.Ingredients[1].Title != "Sugar" {
		t.Fatalf("replace: read back %+v", d.Ingredients)
	}

	// Empty list: clears.
	w = do(t, r, http.MethodPut, path, `{"title":"Plain Pancakes","ingredients":[]}`)
	d = decode[RecipeDetailResponse](t, w)
	if len(d.Ingredients) != 0 || !strings.Contains(w.Body.String(), `"ingredients":[]`) {
		t.Fatalf("clear: unexpected %s", w.Body.String())
	}

	if w := do(t, r, http.MethodPut, "/recipes/9999", `{"title":"Valid title"}`); w.Code != http.StatusNotFound {
		t.Fatalf("missing: status=%d", w.Code)
	}
	if w := do(t, r, http.MethodPut, path, `{"title":"x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid: status=%d", w.Code)
	}
	if w := do(t, r, http.MethodPut, path, `not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status=%d", w.Code)
	}
}

func TestDeleteRecipe_IdempotentAndCascades(t *testing.T) {
	h, db := realHandlers(t)
	r := newEngine(h)

	if w := do(t, r, http.MethodDelete, "/recipes/12345", ""); w.Code != http.StatusNoContent {
		t.Fatalf("missing: status=%d", w.Code)
	}

	w := do(t, r, http.MethodPost, "/recipes", `{"title":"Goulash","ingredients":[{"title":"Beef","amount":1,"unit":"KG"}]}`)
	d := decode[RecipeDetailResponse](t, w)
	path := "/recipes/" + itoa64(d.ID)

	for i := 0; i < 2; i++ {
		if w := do(t, r, http.MethodDelete, path, ""); w.Code != http.StatusNoContent || w.Body.Len() != 0 {
			t.Fatalf("delete #%d: status=%d", i, w.Code)
		}
	}
	if w := do(t, r, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
		t.Fatalf("after delete: status=%d", w.Code)
	}
	var n int64
	db.Model(&domain.Ingredient{}).Count(&n)
	if n != 0 {
		t.Fatalf("ingredients not removed with recipe: %d", n)
	}
	if w := do(t, r, http.MethodDelete, "/recipes/nope", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status=%d", w.Code)
	}
}

func TestCreateRecipe_IdempotentReplay(t *testing.T) {
	h, db := realHandlers(t)
	r := newEngine(h)
	body := `{"title":"Retry Soup"}`

	w1 := do(t, r, http.MethodPost, "/recipes", body, "Idempotency-Key", "k-123")
	if w1.Code != http.StatusCreated {
		t.Fatalf("first: status=%d", w1.Code)
	}
	first := decode[RecipeDetailResponse](t, w1)

	w2 := do(t, r, http.MethodPost, "/recipes", body, "Idempotency-Key", "k-123")
	if w2.Code != http.StatusCreated || w2.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay: status=%d header=%q", w2.Code, w2.Header().Get("Idempotency-Replayed"))
	}
	if second := decode[RecipeDetailResponse](t, w2); second.ID != first.ID {
		t.Fatalf("replay returned a different recipe: %d vs %d", second.ID, first.ID)
	}

	// A different key creates a new recipe.
	if w := do(t, r, http.MethodPost, "/recipes", body, "Idempotency-Key", "k-456"); w.Code != http.StatusCreated || w.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("new key: status=%d", w.Code)
	}
	var n int64
	db.Model(&domain.Recipe{}).Count(&n)
	if n != 2 {
		t.Fatalf("expected 2 recipes, got %d", n)
	}

	// Malformed key is rejected by the validator.
	if w := do(t, r, http.MethodPost, "/recipes", body, "Idempotency-Key", "bad key!"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad key: status=%d", w.Code)
	}
}

func TestRecipeHandlers_StorageFailuresAre500(t *testing.T) {
	boom := errors.New("database is locked")
	h := New(brokenRecipes{err: boom}, brokenIngredients{err: boom}, brokenIdem{})
	r := newEngine(h)

	checks := []struct{ method, path, body string }{
		{http.MethodGet, "/recipes", ""},
		{http.MethodGet, "/recipes/1", ""},
		{http.MethodPost, "/recipes", `{"title":"Valid"}`},
		{http.MethodPut, "/recipes/1", `{"title":"Valid"}`},
		{http.MethodDelete, "/recipes/1", ""},
	}
	for _, c := range checks {
		w := do(t, r, c.method, c.path, c.body, "Idempotency-Key", "k1")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s %s: status=%d", c.method, c.path, w.Code)
		}
		er := decode[ErrorResponse](t, w)
		if er.Code != ErrCodeInternal || strings.Contains(er.Message, "locked") {
			t.Fatalf("%s %s: unexpected envelope %+v", c.method, c.path, er)
		}
	}
}

func itoa64(n int64) string { return strconv.FormatInt(n, 10) }
