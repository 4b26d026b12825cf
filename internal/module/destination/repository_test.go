package destination

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.TouristDestination{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedDestinations(t *testing.T, repo domain.DestinationRepository, ds []domain.TouristDestination) {
	t.Helper()
	ctx := context.Background()
	for i := range ds {
		if err := repo.Create(ctx, &ds[i]); err != nil {
			t.Fatalf("Create %q: %v", ds[i].Name, err)
		}
	}
}

func TestList_SearchByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	seedDestinations(t, repo, []domain.TouristDestination{
		{Name: "Ao Ba Om"},
		{Name: "Hang Pagoda"},
		{Name: "Ba Dong Beach"},
	})

	result, err := repo.List(ctx, domain.SpecParams{Search: "ba"}, domain.DestinationFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("Count=%d; want 2 (Ao Ba Om, Ba Dong Beach)", result.Count)
	}
}

func TestList_FilterByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	seedDestinations(t, repo, []domain.TouristDestination{
		{Name: "Ao Ba Om", DestinationTypeID: "type-nature"},
		{Name: "Hang Pagoda", DestinationTypeID: "type-temple"},
		{Name: "Ba Dong Beach", DestinationTypeID: "type-nature"},
	})

	result, err := repo.List(ctx, domain.SpecParams{}, domain.DestinationFilter{TypeID: "type-nature"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("Count=%d; want 2", result.Count)
	}
	for _, d := range result.Data {
		if d.DestinationTypeID != "type-nature" {
			t.Errorf("got type %q; want type-nature", d.DestinationTypeID)
		}
	}

	// Search and type filter combine with AND.
	result, err = repo.List(ctx, domain.SpecParams{Search: "beach"}, domain.DestinationFilter{TypeID: "type-nature"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Count != 1 || result.Data[0].Name != "Ba Dong Beach" {
		t.Errorf("got %+v; want only Ba Dong Beach", result.Data)
	}
}

func TestList_SortKeys(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	seedDestinations(t, repo, []domain.TouristDestination{
		{Name: "Hang Pagoda", AvgRating: 4.8},
		{Name: "Ao Ba Om", AvgRating: 4.2},
		{Name: "Ba Dong Beach", AvgRating: 4.5},
	})

	tests := []struct {
		name      string
		sort      string
		wantFirst string
	}{
		{"default name asc", "", "Ao Ba Om"},
		{"name_desc", "name_desc", "Hang Pagoda"},
		{"rating_desc", "rating_desc", "Hang Pagoda"},
		{"unknown falls back", "bogus", "Ao Ba Om"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.List(ctx, domain.SpecParams{Sort: tt.sort}, domain.DestinationFilter{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(result.Data) == 0 || result.Data[0].Name != tt.wantFirst {
				t.Errorf("first=%+v; want %q", result.Data, tt.wantFirst)
			}
		})
	}
}

func TestAddImage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	d := &domain.TouristDestination{Name: "Ao Ba Om", Images: []string{"a.jpg"}}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	modified, err := repo.AddImage(ctx, d.ID, "b.jpg")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if !modified {
		t.Fatal("expected AddImage to report modified")
	}

	got, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Images) != 2 || got.Images[1] != "b.jpg" {
		t.Errorf("Images=%v; want [a.jpg b.jpg]", got.Images)
	}

	// Absent and soft-deleted destinations report unmodified.
	if modified, _ := repo.AddImage(ctx, "no-such-id", "c.jpg"); modified {
		t.Error("expected AddImage on absent record to report unmodified")
	}
	if _, err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if modified, _ := repo.AddImage(ctx, d.ID, "c.jpg"); modified {
		t.Error("expected AddImage on deleted record to report unmodified")
	}
}

func TestDeleteAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	d := &domain.TouristDestination{Name: "Ao Ba Om"}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	modified, err := repo.Delete(ctx, d.ID)
	if err != nil || !modified {
		t.Fatalf("Delete: modified=%v err=%v; want true, nil", modified, err)
	}

	deleted, err := repo.ListDeleted(ctx, domain.SpecParams{})
	if err != nil {
		t.Fatalf("ListDeleted: %v", err)
	}
	if deleted.Count != 1 {
		t.Errorf("deleted Count=%d; want 1", deleted.Count)
	}

	modified, err = repo.Restore(ctx, d.ID)
	if err != nil || !modified {
		t.Fatalf("Restore: modified=%v err=%v; want true, nil", modified, err)
	}

	active, err := repo.List(ctx, domain.SpecParams{}, domain.DestinationFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if active.Count != 1 {
		t.Errorf("active Count=%d; want 1 after restore", active.Count)
	}
}
