package browse

import (
	"context"
	"sync"

	"skim/pkg/types"
)

// DirLister reads one directory. *fs.Lister is the production
// implementation.
type DirLister interface {
	List(dir string, includeHidden bool) []types.Entry
}

// LoadResult is delivered once a directory read completes.
type LoadResult struct {
	Token   int
	Dir     string
	Entries []types.Entry
}

// Loader performs directory reads off the UI goroutine. Starting a load
// cancels the previous one, so a late read for a superseded directory is
// structurally prevented from delivering: its channel closes without a
// result instead of firing a stale callback.
type Loader struct {
	lister DirLister

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLoader creates a Loader reading through lister.
func NewLoader(lister DirLister) *Loader {
	return &Loader{lister: lister}
}

// Start begins reading dir. The returned channel yields exactly one result,
// or closes empty when a newer load supersedes this one.
func (l *Loader) Start(token int, dir string, includeHidden bool) <-chan LoadResult {
	ctx, cancel := context.WithCancel(context.Background())

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	l.mu.Unlock()

	ch := make(chan LoadResult, 1)
	go func() {
		defer close(ch)
		entries := l.lister.List(dir, includeHidden)

		select {
		case <-ctx.Done():
			return
		default:
		}

		ch <- LoadResult{Token: token, Dir: dir, Entries: entries}
	}()
	return ch
}

// Stop cancels any in-flight load.
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
}
