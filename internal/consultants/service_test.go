package consultants

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndDisplayName(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		FirstName: "  Alice ",
		LastName:  "Martin",
		Email:     "alice.martin@example.com",
		Skills:    []string{"Go", "Terraform"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.FirstName != "Alice" {
		t.Fatalf("expected trimmed first name, got %q", created.FirstName)
	}

	name, err := svc.DisplayName(ctx, created.ID)
	if err != nil {
		t.Fatalf("display name: %v", err)
	}
	if name != "Alice Martin" {
		t.Fatalf("expected %q, got %q", "Alice Martin", name)
	}
}

func TestCreateRequiresNames(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Create(context.Background(), CreateInput{FirstName: "Alice"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDisplayNameUnknownConsultant(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.DisplayName(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{FirstName: "Alice", LastName: "Martin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	practiceID := "practice-1"
	updated, err := svc.Update(ctx, created.ID, CreateInput{
		FirstName:  "Alice",
		LastName:   "Durand",
		PracticeID: &practiceID,
		Languages:  []string{"fr", "en"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Durand" {
		t.Fatalf("expected updated last name, got %q", updated.LastName)
	}
	if updated.PracticeID == nil || *updated.PracticeID != "practice-1" {
		t.Fatalf("expected practice id to stick, got %v", updated.PracticeID)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("update must not touch creation time")
	}
}

func TestMemoryRepoClonesLists(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	consultant := Consultant{ID: "c1", FirstName: "Jean", LastName: "Dupont", Skills: []string{"Go"}}
	if err := repo.Create(ctx, consultant); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Skills[0] = "mutated"

	again, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Skills[0] != "Go" {
		t.Fatal("repo must not expose shared slices")
	}
}

func TestDeleteRemovesConsultant(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{FirstName: "Alice", LastName: "Martin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
