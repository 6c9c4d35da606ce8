package morpheme

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Service is a live handle on one morpheme data file. Reads against it
// are lock-free in spirit (a single `RWMutex.RLock` around a pointer
// read) and always observe one fully-formed table or another, never a
// partially-decoded one: a reload decodes the whole file before
// swapping the pointer under the write lock.
type Service struct {
	mu      sync.RWMutex
	t       *table
	path    string
	watcher *fsnotify.Watcher
	log     *zap.Logger
}

// Load reads the morpheme data file at path and returns a ready
// Service. It does not start file watching; call `Watch` separately
// for long-lived processes that want hot reload.
func Load(path string) (*Service, error) {
	t, err := loadTable(path)
	if err != nil {
		return nil, err
	}
	return &Service{t: t, path: path, log: zap.NewNop()}, nil
}

// SetLogger replaces this service's logger (a Service from `Load`
// logs nowhere, via a no-op logger). Reload failures and successes are
// reported at Warn and Info level respectively.
func (s *Service) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = l
}

// current answers the table currently in effect, safe for concurrent
// callers.
func (s *Service) current() *table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t
}

// Watch starts an fsnotify watch on this service's backing file and
// hot-swaps its table whenever the file is written. A reload that
// fails to parse is logged and discarded; the previously loaded table
// stays in effect. Callers should arrange to call `Close` (or cancel
// via the returned stop function) when the service is no longer
// needed, to release the underlying watcher.
func (s *Service) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("morpheme: creating watcher: %w", err)
	}
	if err := w.Add(s.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("morpheme: watching %q: %w", s.path, err)
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s.reload()
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				s.mu.RLock()
				l := s.log
				s.mu.RUnlock()
				l.Warn("morpheme: watcher error", zap.Error(werr))
			case <-done:
				return
			}
		}
	}()

	stop = func() {
		close(done)
		w.Close()
	}
	return stop, nil
}

// reload re-reads this service's backing file and, on success, swaps
// the in-effect table. A parse failure is logged and the existing
// table is kept, so a momentarily-truncated write (editors commonly
// write-then-rename) never leaves the service without any table at
// all.
func (s *Service) reload() {
	t, err := loadTable(s.path)
	s.mu.Lock()
	l := s.log
	if err != nil {
		s.mu.Unlock()
		l.Warn("morpheme: reload failed, keeping previous table", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.t = t
	s.mu.Unlock()
	l.Info("morpheme: reloaded table", zap.String("path", s.path))
}

// Close releases this service's file watcher, if one was started.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

var (
	defaultOnce sync.Once
	defaultSvc  *Service
	defaultErr  error
)

// DefaultPath is the conventional location of the morpheme data file
// relative to a process's working directory; `config` normally
// overrides this with an absolute path read from its own settings.
const DefaultPath = "testdata/morpheme/tables.yaml"

// Default lazily loads and returns the process-wide morpheme service,
// reading from `DefaultPath` the first time it is called. This is
// process-wide state, alongside the ring-analysis tunables that
// `config.Apply` sets in the `graph` and `ringname` packages, and it
// is read-mostly: nothing
// downstream of `Default` ever mutates the table it returns directly.
func Default() (*Service, error) {
	defaultOnce.Do(func() {
		defaultSvc, defaultErr = Load(DefaultPath)
	})
	return defaultSvc, defaultErr
}
