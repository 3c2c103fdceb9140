package services

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/models"
)

func TestJoinRequiresOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.addAdult(t, "alex")
	env.addGame(t, models.Game{Name: "Poly_Raiders"})

	if _, err := env.matchSvc.Join(ctx, "alex", "Poly_Raiders"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned, got %v", err)
	}
	env.giveGame(t, "alex", "Poly_Raiders")
	size, err := env.matchSvc.Join(ctx, "alex", "Poly_Raiders")
	if err != nil || size != 1 {
		t.Fatalf("join = %d, err %v", size, err)
	}
	if _, err := env.matchSvc.Join(ctx, "alex", "Poly_Raiders"); !errors.Is(err, ErrAlreadyQueued) {
		t.Fatalf("expected ErrAlreadyQueued, got %v", err)
	}
}

func TestTryMatchFIFO(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.addGame(t, models.Game{Name: "Poly_Raiders"})
	for _, name := range []string{"alex", "robin", "casey"} {
		env.addAdult(t, name)
		env.giveGame(t, name, "Poly_Raiders")
	}

	if _, formed, err := env.matchSvc.TryMatch(ctx, "Poly_Raiders"); err != nil || formed {
		t.Fatalf("match on empty queue: formed=%v err=%v", formed, err)
	}
	for _, name := range []string{"alex", "robin", "casey"} {
		if _, err := env.matchSvc.Join(ctx, name, "Poly_Raiders"); err != nil {
			t.Fatalf("join %s: %v", name, err)
		}
	}

	match, formed, err := env.matchSvc.TryMatch(ctx, "Poly_Raiders")
	if err != nil || !formed {
		t.Fatalf("formed=%v err=%v", formed, err)
	}
	if match.Game != "Poly_Raiders" || len(match.Players) != 2 ||
		match.Players[0] != "alex" || match.Players[1] != "robin" {
		t.Fatalf("match = %+v, want first two joiners", match)
	}
	if got := env.matchSvc.Queued("Poly_Raiders"); got != 1 {
		t.Fatalf("queued after match = %d", got)
	}
	if _, formed, err := env.matchSvc.TryMatch(ctx, "Poly_Raiders"); err != nil || formed {
		t.Fatalf("match below size: formed=%v err=%v", formed, err)
	}
}

func TestMatchSizeFloor(t *testing.T) {
	env := newTestEnv()
	svc := NewMatchmakingService(env.accounts, env.games, 0)
	if got := svc.MatchSize(); got != 2 {
		t.Fatalf("match size = %d, want floor of 2", got)
	}
}
