package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

func TestGetIdempotency_BlankScopeOrKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	if rec, err := GetIdempotency(context.Background(), db, "   ", "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank scope, got (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(context.Background(), db, "/api/recipes", "", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestIdempotency_CreateGetExpireDuplicate(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()
	const scope = "/api/recipes"

	rec, err := CreateIdempotency(ctx, db, scope, "k1", 42, 201, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ResourceID != 42 || rec.Status != 201 || !rec.ExpiresAt.After(rec.CreatedAt) {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, scope, "k1", time.Now().UTC())
	if err != nil || got.ResourceID != 42 {
		t.Fatalf("GetIdempotency: got=%+v err=%v", got, err)
	}

	// Same key under another scope is independent.
	if _, err := GetIdempotency(ctx, db, "/api/recipes/1/ingredients", "k1", time.Now().UTC()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for other scope, got %v", err)
	}

	if _, err := CreateIdempotency(ctx, db, scope, "k1", 43, 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Past the TTL the record is invisible and purgeable.
	future := time.Now().UTC().Add(2 * time.Hour)
	if _, err := GetIdempotency(ctx, db, scope, "k1", future); err != ErrNotFound {
		t.Fatalf("expected expired record to be ErrNotFound, got %v", err)
	}
	n, err := PurgeExpiredIdempotency(ctx, db, future)
	if err != nil || n != 1 {
		t.Fatalf("PurgeExpiredIdempotency: n=%d err=%v", n, err)
	}
}

func TestCreateIdempotency_NoTable_ReturnsRawError(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	_, err := CreateIdempotency(context.Background(), db, "s", "k", 1, 201, time.Minute)
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}
