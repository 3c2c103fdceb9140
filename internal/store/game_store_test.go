package store

import (
	"context"
	"testing"

	"marketplace/internal/models"
	"marketplace/internal/money"
)

func testGame(name string) models.Game {
	return models.Game{
		ID:        name + "-id",
		Name:      name,
		Kind:      models.GameOnline,
		Price:     money.FromMajor(10),
		Platforms: map[models.Platform]bool{models.PlatformPC: true},
		Version:   "1.0.0",
		Items:     make(map[string]money.Money),
	}
}

func TestGameStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewGameStore()
	if err := s.Create(ctx, testGame("Poly_Raiders")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, testGame("Poly_Raiders")); err != ErrGameExists {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
	if _, err := s.Get(ctx, "missing"); err != ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewGameStore()
	if err := s.Create(ctx, testGame("Poly_Raiders")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Get(ctx, "Poly_Raiders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Items["Free_Loot"] = money.FromMajor(0)
	got.Platforms[models.PlatformMobile] = true

	fresh, err := s.Get(ctx, "Poly_Raiders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fresh.Items) != 0 || fresh.Platforms[models.PlatformMobile] {
		t.Fatalf("stored game mutated through a read copy: %v", fresh)
	}
}

func TestGameStoreSaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewGameStore()
	if err := s.Save(ctx, testGame("missing")); err != ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	for _, name := range []string{"Zephyr", "Aurora"} {
		if err := s.Create(ctx, testGame(name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	game, err := s.Get(ctx, "Aurora")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	game.Version = "2.0.0"
	if err := s.Save(ctx, game); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Aurora" || all[1].Name != "Zephyr" {
		t.Fatalf("unexpected order: %v", all)
	}
	if all[0].Version != "2.0.0" {
		t.Fatalf("save did not stick: %v", all[0])
	}
}
