package forms

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestServiceCreateAssignsIDAndPublicLink(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo())

	fields := []FormField{
		{ID: "1", Type: FieldText, Label: "Full Name", Required: true, SemanticRole: RoleName},
	}
	form, err := svc.Create(ctx, "user-1", "Backend Engineer", "Apply here", fields, HRRequirements{Role: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if form.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if !strings.HasPrefix(form.PublicLink, "/form/") {
		t.Fatalf("public link shape: %q", form.PublicLink)
	}
	if len(form.PublicLink) != len("/form/")+publicSlugLen {
		t.Fatalf("public link slug length: %q", form.PublicLink)
	}

	slug := strings.TrimPrefix(form.PublicLink, "/form/")
	got, err := svc.GetPublic(ctx, slug)
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if got.ID != form.ID {
		t.Fatalf("public lookup returned %q, want %q", got.ID, form.ID)
	}
}

func TestServiceCreateRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo())

	_, err := svc.Create(ctx, "user-1", "", "", nil, HRRequirements{})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestServiceGetEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo())

	form, err := svc.Create(ctx, "user-1", "Role", "", []FormField{{ID: "1", Type: FieldText, Label: "Name"}}, HRRequirements{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, "user-1", form.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if _, err := svc.Get(ctx, "user-2", form.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
