package ideasync

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/content"
)

type memSaver struct {
	mu    sync.Mutex
	ideas map[string]content.GalleryIdea
	saved chan string
}

func newMemSaver() *memSaver {
	return &memSaver{ideas: map[string]content.GalleryIdea{}, saved: make(chan string, 64)}
}

func (m *memSaver) SaveGalleryIdea(idea content.GalleryIdea) error {
	m.mu.Lock()
	m.ideas[idea.Src] = idea
	m.mu.Unlock()
	m.saved <- idea.Src
	return nil
}

func (m *memSaver) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ideas)
}

func TestNormalizeFilename(t *testing.T) {
	now := time.UnixMilli(42)
	cases := map[string]string{
		"My Dream_House!!.JPG":  "my-dream-house.jpg",
		"career -- goals.png":   "career-goals.png",
		"--travel__beach--.gif": "travel-beach.gif",
		"梦想 board.webp":         "梦想-board.webp",
		"!!!.jpeg":              "idea-42.jpeg",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeFilename(in, now), in)
	}
}

func TestCategoryTitleTags(t *testing.T) {
	assert.Equal(t, "Career", Category("career-dream-office.jpg"))
	assert.Equal(t, "Relationships", Category("relationship-family.png"))
	assert.Equal(t, "General", Category("sunset.png"))

	assert.Equal(t, "Dream Office", Title("career-dream-office.jpg"))
	assert.Equal(t, "Vision Board Idea", Title("career.jpg"))
	assert.Equal(t, "Sunset Beach", Title("sunset-beach.png"))

	assert.Equal(t, []string{"Career", "Goals"}, Tags("career-dream-office", "Career"))
	assert.Equal(t, []string{"General", "Fitness", "Travel"}, Tags("yoga-on-the-beach", "General"))
	assert.Equal(t, []string{"General"}, Tags("sunset", "General"))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("a.JPG"))
	assert.True(t, IsImage("a.webp"))
	assert.False(t, IsImage("notes.txt"))
	assert.False(t, IsImage("noext"))
}

func TestUniqueFilename(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "a.png", UniqueFilename(dir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-1.png"), []byte("x"), 0o644))
	assert.Equal(t, "a-2.png", UniqueFilename(dir, "a.png"))
}

func TestSyncCopiesThenSkips(t *testing.T) {
	root := t.TempDir()
	inbox, public := filepath.Join(root, "inbox"), filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(inbox, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "Career Dream Office.JPG"), []byte("jpeg-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "travel_beach.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "readme.txt"), []byte("ignored"), 0o644))

	store := newMemSaver()
	s := New(inbox, public, "/ideas", store, nil)

	rep, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Copied)
	assert.Zero(t, rep.Skipped)

	data, err := os.ReadFile(filepath.Join(public, "career-dream-office.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.NoFileExists(t, filepath.Join(public, "readme.txt"))

	idea := store.ideas["/ideas/career-dream-office.jpg"]
	assert.Equal(t, "Career", idea.Category)
	assert.Equal(t, "Dream Office", idea.Title)

	rep, err = s.Sync(context.Background())
	require.NoError(t, err)
	assert.Zero(t, rep.Copied)
	assert.Equal(t, 2, rep.Skipped)
	assert.Equal(t, 2, store.len(), "resync must not duplicate ideas")
	assert.NoFileExists(t, filepath.Join(public, "career-dream-office-1.jpg"))
}

func TestSyncChangedFileGetsUniqueName(t *testing.T) {
	root := t.TempDir()
	inbox, public := filepath.Join(root, "inbox"), filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(public, 0o755))
	require.NoError(t, os.MkdirAll(inbox, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "goal.png"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "goal.png"), []byte("a newer version"), 0o644))

	rep, err := New(inbox, public, "/ideas", nil, nil).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Copied)
	require.Len(t, rep.Ideas, 1)
	assert.Equal(t, "/ideas/goal-1.png", rep.Ideas[0].Src)
}

func TestWatchSyncsNewFiles(t *testing.T) {
	root := t.TempDir()
	inbox, public := filepath.Join(root, "inbox"), filepath.Join(root, "public")
	store := newMemSaver()
	s := New(inbox, public, "/ideas", store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, 20*time.Millisecond) }()

	// Wait for the initial pass to create the inbox.
	require.Eventually(t, func() bool {
		_, err := os.Stat(inbox)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(inbox, "health-yoga.jpg"), []byte("y"), 0o644))
	select {
	case src := <-store.saved:
		assert.Equal(t, "/ideas/health-yoga.jpg", src)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not sync the new file")
	}

	cancel()
	assert.NoError(t, <-done)
}
