package visionkit

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/eringen/visionkit/content"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetGalleryIdea(t *testing.T) {
	s := setupTestStore(t)

	idea := content.GalleryIdea{
		Title:    "Dream Office",
		Category: "Career",
		Tags:     []string{"Career", "Goals"},
		Src:      "/public/ideas/career-dream-office.jpg",
		SyncedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := s.SaveGalleryIdea(idea); err != nil {
		t.Fatalf("SaveGalleryIdea failed: %v", err)
	}

	ideas, err := s.ListGalleryIdeas("")
	if err != nil {
		t.Fatalf("ListGalleryIdeas failed: %v", err)
	}
	if len(ideas) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(ideas))
	}
	got, err := s.GetGalleryIdea(ideas[0].ID)
	if err != nil {
		t.Fatalf("GetGalleryIdea failed: %v", err)
	}
	if got.Title != idea.Title {
		t.Errorf("Title = %q, want %q", got.Title, idea.Title)
	}
	if got.Category != idea.Category {
		t.Errorf("Category = %q, want %q", got.Category, idea.Category)
	}
	if got.Src != idea.Src {
		t.Errorf("Src = %q, want %q", got.Src, idea.Src)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "Career" || got.Tags[1] != "Goals" {
		t.Errorf("Tags = %v, want [Career Goals]", got.Tags)
	}
	if !got.SyncedAt.Equal(idea.SyncedAt) {
		t.Errorf("SyncedAt = %v, want %v", got.SyncedAt, idea.SyncedAt)
	}
}

func TestSaveGalleryIdeaUpsertsBySrc(t *testing.T) {
	s := setupTestStore(t)

	idea := content.GalleryIdea{Title: "Beach", Category: "Travel", Src: "/public/ideas/travel-beach.jpg"}
	if err := s.SaveGalleryIdea(idea); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	idea.Title = "Sunny Beach"
	if err := s.SaveGalleryIdea(idea); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	ideas, err := s.ListGalleryIdeas("")
	if err != nil {
		t.Fatalf("ListGalleryIdeas failed: %v", err)
	}
	if len(ideas) != 1 {
		t.Fatalf("expected upsert to keep 1 row, got %d", len(ideas))
	}
	if ideas[0].Title != "Sunny Beach" {
		t.Errorf("Title = %q, want updated title", ideas[0].Title)
	}
	if ideas[0].Tags != nil {
		t.Errorf("Tags = %v, want none", ideas[0].Tags)
	}
}

func TestListGalleryIdeasByCategory(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, idea := range []content.GalleryIdea{
		{Title: "Office", Category: "Career", Src: "/public/ideas/a.jpg"},
		{Title: "Savings", Category: "Money", Src: "/public/ideas/b.jpg"},
		{Title: "Promotion", Category: "Career", Src: "/public/ideas/c.jpg"},
	} {
		idea.SyncedAt = base.Add(time.Duration(i) * time.Hour)
		if err := s.SaveGalleryIdea(idea); err != nil {
			t.Fatalf("SaveGalleryIdea failed: %v", err)
		}
	}

	career, err := s.ListGalleryIdeas("Career")
	if err != nil {
		t.Fatalf("ListGalleryIdeas failed: %v", err)
	}
	if len(career) != 2 {
		t.Fatalf("expected 2 career ideas, got %d", len(career))
	}
	if career[0].Title != "Promotion" {
		t.Errorf("expected newest first, got %q", career[0].Title)
	}

	none, err := s.ListGalleryIdeas("Study")
	if err != nil {
		t.Fatalf("ListGalleryIdeas failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no study ideas, got %d", len(none))
	}
}

func TestDeleteGalleryIdea(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SaveGalleryIdea(content.GalleryIdea{Title: "Gym", Category: "Health", Src: "/public/ideas/gym.jpg"}); err != nil {
		t.Fatalf("SaveGalleryIdea failed: %v", err)
	}
	ideas, _ := s.ListGalleryIdeas("")
	if len(ideas) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(ideas))
	}
	if err := s.DeleteGalleryIdea(ideas[0].ID); err != nil {
		t.Fatalf("DeleteGalleryIdea failed: %v", err)
	}
	_, err := s.GetGalleryIdea(ideas[0].ID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestSaveSubscription(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.SaveSubscription("  Reader@Example.com ")
	if err != nil {
		t.Fatalf("SaveSubscription failed: %v", err)
	}
	if !created {
		t.Error("expected first signup to be created")
	}
	created, err = s.SaveSubscription("reader@example.com")
	if err != nil {
		t.Fatalf("SaveSubscription failed: %v", err)
	}
	if created {
		t.Error("expected repeat signup to be ignored")
	}

	subs, err := s.ListSubscriptions()
	if err != nil {
		t.Fatalf("ListSubscriptions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscription, got %d", len(subs))
	}
	if subs[0].Email != "reader@example.com" {
		t.Errorf("Email = %q, want normalized address", subs[0].Email)
	}
	if subs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{",Career,Goals,", []string{"Career", "Goals"}},
		{",General,", []string{"General"}},
		{",", nil},
		{"", nil},
		{", Travel , Fitness ,", []string{"Travel", "Fitness"}},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIdeaCacheInvalidate(t *testing.T) {
	s := setupTestStore(t)
	cache := NewIdeaCache(s, time.Hour)

	ideas, err := cache.ListIdeas("")
	if err != nil {
		t.Fatalf("ListIdeas failed: %v", err)
	}
	if len(ideas) != 0 {
		t.Fatalf("expected empty gallery, got %d", len(ideas))
	}

	if err := s.SaveGalleryIdea(content.GalleryIdea{Title: "Books", Category: "Study", Src: "/public/ideas/books.jpg"}); err != nil {
		t.Fatalf("SaveGalleryIdea failed: %v", err)
	}
	ideas, _ = cache.ListIdeas("")
	if len(ideas) != 0 {
		t.Fatalf("expected cached empty gallery before invalidation, got %d", len(ideas))
	}

	cache.Invalidate()
	ideas, _ = cache.ListIdeas("Study")
	if len(ideas) != 1 {
		t.Fatalf("expected 1 study idea after invalidation, got %d", len(ideas))
	}
	if _, err := cache.GetIdea(ideas[0].ID); err != nil {
		t.Errorf("GetIdea failed: %v", err)
	}
	if _, err := cache.GetIdea(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCleanTags(t *testing.T) {
	got := CleanTags([]string{" Goals ", "", "goals", "Travel", "a,b"})
	want := []string{"Goals", "Travel", "a b"}
	if len(got) != len(want) {
		t.Fatalf("CleanTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CleanTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if joinTags(nil) != "," {
		t.Errorf("joinTags(nil) = %q, want \",\"", joinTags(nil))
	}
}
