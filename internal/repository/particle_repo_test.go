package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"particleapi/internal/model"
	"particleapi/internal/repository"
	"particleapi/internal/testutil"
)

func newTestRepo(t *testing.T) *repository.ParticleRepository {
	t.Helper()
	return repository.NewParticleRepository(testutil.NewDB(t))
}

func electron() *model.ParticleInput {
	return &model.ParticleInput{
		PartType: "lepton",
		PartName: "electron",
		Mass:     511000,
		Charge:   "-1",
		Spin:     "1/2",
	}
}

func assertSameParticle(t *testing.T, got, want *model.Particle) {
	t.Helper()
	if got.PartID != want.PartID ||
		got.PartType != want.PartType ||
		got.PartName != want.PartName ||
		got.Mass != want.Mass ||
		got.Charge != want.Charge ||
		got.Spin != want.Spin ||
		!got.CreatedAt.Equal(want.CreatedAt.Time) ||
		!got.UpdatedAt.Equal(want.UpdatedAt.Time) {
		t.Fatalf("particle mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestParticleRepo_Create(t *testing.T) {
	r := newTestRepo(t)

	p, err := r.Create(context.Background(), nil, electron())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.PartID == 0 {
		t.Fatal("expected generated part_id")
	}
	if p.PartName != "electron" || p.Mass != 511000 {
		t.Fatalf("fields not echoed: %+v", p)
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt.Time) {
		t.Fatalf("timestamps should be equal and set: %v / %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestParticleRepo_Create_AcceptsAnyValues(t *testing.T) {
	r := newTestRepo(t)

	p, err := r.Create(context.Background(), nil, &model.ParticleInput{Mass: -7})
	if err != nil {
		t.Fatalf("create with empty strings and negative mass: %v", err)
	}
	if p.Mass != -7 || p.PartName != "" {
		t.Fatalf("unexpected particle: %+v", p)
	}
}

func TestParticleRepo_FindByID_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, nil, electron())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := r.FindByID(ctx, nil, created.PartID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected particle, got nil")
	}
	assertSameParticle(t, fetched, created)
}

func TestParticleRepo_FindByID_Absent(t *testing.T) {
	r := newTestRepo(t)

	p, err := r.FindByID(context.Background(), nil, 4242)
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil, got %+v", p)
	}
}

func TestParticleRepo_FindAll(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	empty, err := r.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("find all on empty table: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	names := []string{"up", "down", "charm", "strange", "top", "bottom"}
	for _, name := range names {
		if _, err := r.Create(ctx, nil, &model.ParticleInput{PartType: "quark", PartName: name, Spin: "1/2"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	all, err := r.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("expected %d particles, got %d", len(names), len(all))
	}

	seen := make(map[string]int)
	ids := make(map[int32]bool)
	for _, p := range all {
		seen[p.PartName]++
		ids[p.PartID] = true
	}
	for _, name := range names {
		if seen[name] != 1 {
			t.Fatalf("%s seen %d times", name, seen[name])
		}
	}
	if len(ids) != len(names) {
		t.Fatalf("duplicate ids: %v", ids)
	}
}

func TestParticleRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, nil, electron())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	updated, err := r.Update(ctx, nil, created.PartID, &model.ParticleInput{
		PartType: "lepton",
		PartName: "muon",
		Mass:     105660000,
		Charge:   "-1",
		Spin:     "1/2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.PartID != created.PartID {
		t.Fatalf("part_id changed: %d -> %d", created.PartID, updated.PartID)
	}
	if updated.PartName != "muon" || updated.Mass != 105660000 {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt.Time) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt.Time) {
		t.Fatalf("updated_at went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	fetched, err := r.FindByID(ctx, nil, created.PartID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	assertSameParticle(t, fetched, updated)
}

func TestParticleRepo_Update_ZeroValuesReplace(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, _ := r.Create(ctx, nil, electron())

	updated, err := r.Update(ctx, nil, created.PartID, &model.ParticleInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PartName != "" || updated.Mass != 0 || updated.Charge != "" {
		t.Fatalf("update must replace all five fields wholesale: %+v", updated)
	}
}

func TestParticleRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Update(context.Background(), nil, 999, electron())
	if !errors.Is(err, repository.ErrParticleNotFound) {
		t.Fatalf("expected ErrParticleNotFound, got %v", err)
	}
}

func TestParticleRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, _ := r.Create(ctx, nil, electron())

	n, err := r.Delete(ctx, nil, created.PartID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}

	p, err := r.FindByID(ctx, nil, created.PartID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if p != nil {
		t.Fatalf("expected absent after delete, got %+v", p)
	}

	n, err = r.Delete(ctx, nil, created.PartID)
	if err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows on missing id, got %d", n)
	}
}

func TestParticleRepo_CanceledContext(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.FindAll(ctx, nil); err == nil {
		t.Fatal("expected error on canceled context")
	}
}
