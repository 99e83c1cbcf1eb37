package visionkit

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/export"
)

const (
	builderSessionName = "builder_session"
	boardIDKey         = "board_id"
)

// boardSession is one visitor's board. mu serializes every request that
// touches the board; exports capture a snapshot under mu and render
// without it.
type boardSession struct {
	mu       sync.Mutex
	board    *board.Board
	exporter *export.Exporter
	revision uint64
	lastSeen time.Time
	closed   bool
}

// BoardRegistry holds the in-memory boards of all builder sessions and
// tears down the ones left idle for longer than the TTL.
type BoardRegistry struct {
	mu     sync.Mutex
	boards map[string]*boardSession
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	exportOpts []export.Option
	onResize   func(n int)

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewBoardRegistry creates an empty registry. onResize, when non-nil, is
// called with the new board count after every create or teardown.
func NewBoardRegistry(ttl time.Duration, logger *zap.Logger, onResize func(int), exportOpts ...export.Option) *BoardRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardRegistry{
		boards:     make(map[string]*boardSession),
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
		exportOpts: exportOpts,
		onResize:   onResize,
		stop:       make(chan struct{}),
	}
}

// Create starts a fresh seeded board and returns its id.
func (r *BoardRegistry) Create() (string, *boardSession) {
	id := uuid.NewString()
	bs := &boardSession{
		board:    board.New(),
		exporter: export.NewExporter(r.exportOpts...),
		lastSeen: r.now(),
	}
	r.mu.Lock()
	r.boards[id] = bs
	n := len(r.boards)
	r.mu.Unlock()
	r.resized(n)
	return id, bs
}

// Get returns the board for id and marks it as used.
func (r *BoardRegistry) Get(id string) (*boardSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bs, ok := r.boards[id]
	if ok {
		bs.lastSeen = r.now()
	}
	return bs, ok
}

// Len returns the number of live boards.
func (r *BoardRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

// Sweep closes every board idle for longer than the TTL and returns how
// many were removed.
func (r *BoardRegistry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	var expired []*boardSession

	r.mu.Lock()
	for id, bs := range r.boards {
		if bs.lastSeen.Before(cutoff) {
			expired = append(expired, bs)
			delete(r.boards, id)
		}
	}
	n := len(r.boards)
	r.mu.Unlock()

	for _, bs := range expired {
		bs.teardown(r.logger)
	}
	if len(expired) > 0 {
		r.logger.Debug("swept idle boards", zap.Int("closed", len(expired)), zap.Int("live", n))
		r.resized(n)
	}
	return len(expired)
}

// Start sweeps idle boards every interval until Close.
func (r *BoardRegistry) Start(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Close stops the sweeper and tears down every remaining board.
func (r *BoardRegistry) Close() {
	r.once.Do(func() { close(r.stop) })
	r.wg.Wait()

	r.mu.Lock()
	all := make([]*boardSession, 0, len(r.boards))
	for id, bs := range r.boards {
		all = append(all, bs)
		delete(r.boards, id)
	}
	r.mu.Unlock()

	for _, bs := range all {
		bs.teardown(r.logger)
	}
	r.resized(0)
}

func (r *BoardRegistry) resized(n int) {
	if r.onResize != nil {
		r.onResize(n)
	}
}

func (bs *boardSession) teardown(logger *zap.Logger) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if bs.closed {
		return
	}
	bs.closed = true
	if err := bs.board.Close(); err != nil {
		logger.Warn("release board references", zap.Error(err))
	}
}

// boardSession returns the visitor's board, creating one (and storing its
// id in the builder cookie) when the visitor has none or it expired.
func (a *App) boardSession(c echo.Context) (*boardSession, error) {
	sess, err := session.Get(builderSessionName, c)
	if err != nil && sess == nil {
		return nil, err
	}
	if id, ok := sess.Values[boardIDKey].(string); ok {
		if bs, ok := a.Boards.Get(id); ok {
			return bs, nil
		}
	}
	id, bs := a.Boards.Create()
	sess.Values[boardIDKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, err
	}
	return bs, nil
}

// withBoard runs fn on the visitor's board under its lock. A board torn
// down between lookup and lock is replaced by a fresh one.
func (a *App) withBoard(c echo.Context, fn func(bs *boardSession) error) error {
	for {
		bs, err := a.boardSession(c)
		if err != nil {
			return err
		}
		bs.mu.Lock()
		if bs.closed {
			bs.mu.Unlock()
			clearBoardID(c)
			continue
		}
		err = fn(bs)
		bs.mu.Unlock()
		return err
	}
}

func clearBoardID(c echo.Context) {
	if sess, _ := session.Get(builderSessionName, c); sess != nil {
		delete(sess.Values, boardIDKey)
	}
}
