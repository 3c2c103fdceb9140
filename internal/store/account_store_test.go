package store

import (
	"context"
	"testing"

	"marketplace/internal/models"
)

func testAccount(name, email string) models.Account {
	return models.Account{
		ID:       name + "-id",
		Name:     name,
		Email:    email,
		Password: "secret",
		Age:      30,
		Kind:     models.KindAdult,
		Library:  make(map[string]models.OwnedGame),
		Unlocked: make(map[string]map[string]bool),
	}
}

func TestAccountStoreCreateDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	if err := s.Create(ctx, testAccount("alex", "alex@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, testAccount("alex", "other@example.com")); err != ErrAccountExists {
		t.Fatalf("expected ErrAccountExists for name, got %v", err)
	}
	if err := s.Create(ctx, testAccount("other", "alex@example.com")); err != ErrAccountExists {
		t.Fatalf("expected ErrAccountExists for email, got %v", err)
	}
}

func TestAccountStoreFindByIdentifier(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	if err := s.Create(ctx, testAccount("alex", "alex@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byName, err := s.FindByIdentifier(ctx, "alex")
	if err != nil || byName.Email != "alex@example.com" {
		t.Fatalf("lookup by name failed: %v %v", byName, err)
	}
	byEmail, err := s.FindByIdentifier(ctx, "alex@example.com")
	if err != nil || byEmail.Name != "alex" {
		t.Fatalf("lookup by email failed: %v %v", byEmail, err)
	}
	if _, err := s.FindByIdentifier(ctx, "nobody"); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountStoreSaveRequiresExisting(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	if err := s.Save(ctx, testAccount("ghost", "ghost@example.com")); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	account := testAccount("alex", "alex@example.com")
	account.Inbox = []string{"hello"}
	if err := s.Create(ctx, account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "alex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Inbox[0] = "tampered"
	got.Library["Stolen_Game"] = models.OwnedGame{InstalledVersion: "1.0.0"}

	fresh, err := s.Get(ctx, "alex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.Inbox[0] != "hello" {
		t.Fatalf("stored inbox mutated through a read copy: %v", fresh.Inbox)
	}
	if len(fresh.Library) != 0 {
		t.Fatalf("stored library mutated through a read copy: %v", fresh.Library)
	}
}

func TestAccountStoreListSorted(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	for _, name := range []string{"zoe", "alex", "mira"} {
		if err := s.Create(ctx, testAccount(name, name+"@example.com")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].Name != "alex" || all[1].Name != "mira" || all[2].Name != "zoe" {
		t.Fatalf("unexpected order: %v", all)
	}
}
