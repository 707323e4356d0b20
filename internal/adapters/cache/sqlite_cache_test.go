package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// the pool must stay on one connection or :memory: splits into
	// independent databases
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	db := openTestDB(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rc := NewSqliteRouteCache(db, time.Minute)
	rc.Now = func() time.Time { return now }

	ctx := context.Background()

	got, err := rc.Get(ctx, "A|B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected a miss, got %+v", got)
	}

	if err := rc.Put(ctx, "A|B", testRoute()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = rc.Get(ctx, "A|B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.TotalDistanceMeters != 1200 {
		t.Fatalf("cached route = %+v, want the stored route", got)
	}

	// entries read as misses once the TTL has elapsed
	now = now.Add(2 * time.Minute)
	got, err = rc.Get(ctx, "A|B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected a miss after TTL expiry, got %+v", got)
	}
}

func TestSqlitePlaceCacheRoundTrip(t *testing.T) {
	db := openTestDB(t)
	pc := NewSqlitePlaceCache(db)

	ctx := context.Background()

	_, ok, err := pc.Get(ctx, "33.45000,-112.07000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss before Put")
	}

	if err := pc.Put(ctx, "33.45000,-112.07000", "Heritage Square"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, ok, err := pc.Get(ctx, "33.45000,-112.07000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Heritage Square" {
		t.Errorf("got (%q, %v), want cached place name", name, ok)
	}

	// same key overwrites
	if err := pc.Put(ctx, "33.45000,-112.07000", "Heritage Square, Phoenix"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, _, _ = pc.Get(ctx, "33.45000,-112.07000")
	if name != "Heritage Square, Phoenix" {
		t.Errorf("name = %q, want overwritten value", name)
	}
}
