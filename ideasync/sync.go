// Package ideasync copies images dropped into an inbox directory into the
// public ideas gallery and records their metadata.
package ideasync

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/content"
)

// Saver persists synced gallery ideas. Saving the same Src twice updates
// the existing row.
type Saver interface {
	SaveGalleryIdea(idea content.GalleryIdea) error
}

// Report summarizes one sync pass.
type Report struct {
	Copied  int
	Skipped int
	Failed  int
	Ideas   []content.GalleryIdea
}

// Syncer moves inbox images into the public directory.
type Syncer struct {
	Inbox     string
	Public    string
	URLPrefix string
	Store     Saver
	Logger    *zap.Logger

	now func() time.Time
}

// New returns a Syncer serving synced files below urlPrefix.
func New(inbox, public, urlPrefix string, store Saver, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{
		Inbox:     inbox,
		Public:    public,
		URLPrefix: urlPrefix,
		Store:     store,
		Logger:    logger,
		now:       time.Now,
	}
}

// Sync runs one pass over the inbox. Per-file failures are logged and
// counted; only directory and context errors abort the pass.
func (s *Syncer) Sync(ctx context.Context) (Report, error) {
	var rep Report
	for _, dir := range []string{s.Inbox, s.Public} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rep, fmt.Errorf("ideasync: create %s: %w", dir, err)
		}
	}
	entries, err := os.ReadDir(s.Inbox)
	if err != nil {
		return rep, fmt.Errorf("ideasync: read inbox: %w", err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		idea, copied, err := s.syncFile(e.Name())
		if err != nil {
			rep.Failed++
			s.Logger.Error("sync idea failed", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		if copied {
			rep.Copied++
		} else {
			rep.Skipped++
		}
		rep.Ideas = append(rep.Ideas, idea)
	}
	s.Logger.Info("ideas synced",
		zap.Int("copied", rep.Copied),
		zap.Int("skipped", rep.Skipped),
		zap.Int("failed", rep.Failed))
	return rep, nil
}

func (s *Syncer) syncFile(name string) (content.GalleryIdea, bool, error) {
	src := filepath.Join(s.Inbox, name)
	srcInfo, err := os.Stat(src)
	if err != nil {
		return content.GalleryIdea{}, false, err
	}

	target := NormalizeFilename(name, s.now())
	copied := true
	if upToDate(srcInfo, filepath.Join(s.Public, target)) {
		copied = false
	} else {
		target = UniqueFilename(s.Public, target)
		if err := copyFile(src, filepath.Join(s.Public, target)); err != nil {
			return content.GalleryIdea{}, false, err
		}
	}

	category := Category(target)
	idea := content.GalleryIdea{
		Title:    Title(target),
		Category: category,
		Tags:     Tags(target, category),
		Src:      path.Join(s.URLPrefix, target),
		SyncedAt: s.now().UTC(),
	}
	if s.Store != nil {
		if err := s.Store.SaveGalleryIdea(idea); err != nil {
			return content.GalleryIdea{}, false, fmt.Errorf("save idea: %w", err)
		}
	}
	return idea, copied, nil
}

// upToDate reports whether dest already holds src: same size and not older.
func upToDate(src os.FileInfo, dest string) bool {
	info, err := os.Stat(dest)
	if err != nil {
		return false
	}
	return info.Size() == src.Size() && !info.ModTime().Before(src.ModTime())
}

func copyFile(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := atomic.WriteFile(dest, f); err != nil {
		return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	return nil
}

// Watch runs Sync once, then again after every burst of inbox changes
// settles for debounce. It returns when ctx is done.
func (s *Syncer) Watch(ctx context.Context, debounce time.Duration) error {
	if _, err := s.Sync(ctx); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ideasync: watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(s.Inbox); err != nil {
		return fmt.Errorf("ideasync: watch %s: %w", s.Inbox, err)
	}
	s.Logger.Info("watching inbox", zap.String("dir", s.Inbox))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Rename) {
				if IsImage(ev.Name) {
					timer.Reset(debounce)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.Logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if _, err := s.Sync(ctx); err != nil {
				return err
			}
		}
	}
}
