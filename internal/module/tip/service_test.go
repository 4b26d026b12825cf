package tip

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
)

// Tip tests run the service against the real repository on in-memory
// SQLite; the duplicate guard depends on repository state either way.
func setupService(t *testing.T) (domain.TipService, domain.TipRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Tip{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := NewTipRepository(db)
	return NewTipService(repo), repo
}

func TestCreateTip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	tip, err := svc.CreateTip(ctx, "  Best time to visit  ", "Dry season.", "tag-season")
	if err != nil {
		t.Fatalf("CreateTip: %v", err)
	}
	if tip.Title != "Best time to visit" {
		t.Errorf("Title=%q; want trimmed", tip.Title)
	}
	if tip.ID == "" {
		t.Error("expected non-empty ID")
	}

	if _, err := svc.CreateTip(ctx, "   ", "x", "tag-season"); !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestCreateTip_DuplicateGuard(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateTip(ctx, "Best time to visit", "Dry season.", "tag-season"); err != nil {
		t.Fatalf("CreateTip: %v", err)
	}

	// Same title under the same tag is rejected.
	_, err := svc.CreateTip(ctx, "Best time to visit", "Other content.", "tag-season")
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected already exists, got %v", err)
	}

	// Same title under another tag is fine.
	if _, err := svc.CreateTip(ctx, "Best time to visit", "x", "tag-food"); err != nil {
		t.Errorf("CreateTip under different tag: %v", err)
	}
}

func TestCreateTip_DeletedTitleReusable(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	tip, err := svc.CreateTip(ctx, "Local buses", "Routes and fares.", "tag-transport")
	if err != nil {
		t.Fatalf("CreateTip: %v", err)
	}
	if err := svc.DeleteTip(ctx, tip.ID); err != nil {
		t.Fatalf("DeleteTip: %v", err)
	}

	// The guard only considers active tips.
	if _, err := svc.CreateTip(ctx, "Local buses", "New content.", "tag-transport"); err != nil {
		t.Errorf("expected deleted title to be reusable, got %v", err)
	}
}

func TestUpdateTip_DuplicateGuard(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	a, err := svc.CreateTip(ctx, "Tip A", "x", "tag-1")
	if err != nil {
		t.Fatalf("CreateTip: %v", err)
	}
	if _, err := svc.CreateTip(ctx, "Tip B", "x", "tag-1"); err != nil {
		t.Fatalf("CreateTip: %v", err)
	}

	// Renaming A onto B's title collides.
	a.Title = "Tip B"
	if err := svc.UpdateTip(ctx, a); !domain.IsAlreadyExists(err) {
		t.Errorf("expected already exists, got %v", err)
	}

	// Updating content without a title change passes the guard.
	a.Title = "Tip A"
	a.Content = "updated"
	if err := svc.UpdateTip(ctx, a); err != nil {
		t.Errorf("UpdateTip: %v", err)
	}
}

func TestUpdateTip_SparseStructKeepsLifecycle(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateTip(ctx, "Local buses", "Routes and fares.", "tag-transport")
	if err != nil {
		t.Fatalf("CreateTip: %v", err)
	}
	before, err := svc.GetTip(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTip: %v", err)
	}

	// Callers typically send only the id plus the changed fields.
	sparse := &domain.Tip{Title: "Local buses", Content: "Updated routes.", TagID: "tag-transport"}
	sparse.ID = created.ID
	if err := svc.UpdateTip(ctx, sparse); err != nil {
		t.Fatalf("UpdateTip: %v", err)
	}

	got, err := svc.GetTip(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected tip still active after update, got %v", err)
	}
	if got.Content != "Updated routes." {
		t.Errorf("Content=%q; want Updated routes.", got.Content)
	}
	if !got.Status {
		t.Error("update must not change the status flag")
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", before.CreatedAt, got.CreatedAt)
	}
}

func TestListTips_TagScope(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _ = svc.CreateTip(ctx, "Tip A", "x", "tag-1")
	_, _ = svc.CreateTip(ctx, "Tip B", "x", "tag-1")
	_, _ = svc.CreateTip(ctx, "Tip C", "x", "tag-2")

	all, err := svc.ListTips(ctx, domain.SpecParams{}, "")
	if err != nil {
		t.Fatalf("ListTips: %v", err)
	}
	if all.Count != 3 {
		t.Errorf("Count=%d; want 3", all.Count)
	}

	tagged, err := svc.ListTips(ctx, domain.SpecParams{}, "tag-1")
	if err != nil {
		t.Fatalf("ListTips: %v", err)
	}
	if tagged.Count != 2 {
		t.Errorf("Count=%d; want 2", tagged.Count)
	}
}

func TestTipDeleteRestore(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	tip, _ := svc.CreateTip(ctx, "Tip A", "x", "tag-1")

	if err := svc.DeleteTip(ctx, tip.ID); err != nil {
		t.Fatalf("DeleteTip: %v", err)
	}
	if err := svc.DeleteTip(ctx, tip.ID); !domain.IsNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}

	deleted, err := repo.ListDeleted(ctx, domain.SpecParams{})
	if err != nil {
		t.Fatalf("ListDeleted: %v", err)
	}
	if deleted.Count != 1 {
		t.Errorf("deleted Count=%d; want 1", deleted.Count)
	}

	if err := svc.RestoreTip(ctx, tip.ID); err != nil {
		t.Fatalf("RestoreTip: %v", err)
	}
	if _, err := svc.GetTip(ctx, tip.ID); err != nil {
		t.Errorf("expected tip retrievable after restore, got %v", err)
	}
}
