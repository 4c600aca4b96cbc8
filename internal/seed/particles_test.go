package seed_test

import (
	"context"
	"strings"
	"testing"

	"particleapi/internal/seed"
	"particleapi/internal/service"
	"particleapi/internal/testutil"
)

func TestRun(t *testing.T) {
	svc := service.NewParticleService(testutil.NewDB(t))
	ctx := context.Background()

	created, err := seed.Run(ctx, svc)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(created) != 17 {
		t.Fatalf("expected 17 particles, got %d", len(created))
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 17 {
		t.Fatalf("expected 17 stored particles, got %d", len(all))
	}

	byType := make(map[string]int)
	for _, p := range all {
		byType[p.PartType]++
	}
	if byType["quark"] != 6 || byType["lepton"] != 6 || byType["gaugeBoson"] != 4 || byType["scalarBoson"] != 1 {
		t.Fatalf("unexpected distribution: %v", byType)
	}

	top, err := svc.Get(ctx, created[2].PartID)
	if err != nil || top == nil || top.Mass != 173100000000 {
		t.Fatalf("top quark mass not preserved: %+v %v", top, err)
	}
}

func TestRun_StopsOnError(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.NewParticleService(db)

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	created, err := seed.Run(context.Background(), svc)
	if err == nil {
		t.Fatal("expected error on closed pool")
	}
	if len(created) != 0 || !strings.HasPrefix(err.Error(), "seed up: ") {
		t.Fatalf("unexpected result: %d created, err %v", len(created), err)
	}
}
