// Package handle issues and tracks the opaque references through which
// callers reach a writer instance.
package handle

import (
	"sync"

	"github.com/goleveldb/filewriter/file"
)

// ID is an opaque reference to a registered writer. The zero value Nil
// never resolves.
type ID uint64

// Nil is the null reference returned when no handle could be issued.
const Nil ID = 0

// Registry owns the binding between IDs and writer instances. IDs come
// from a monotonic counter and are never reused, so a stale ID keeps
// failing resolution instead of reaching a recycled instance.
type Registry struct {
	mu      sync.Mutex
	nextID  ID
	writers map[ID]file.Writer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{writers: make(map[ID]file.Writer)}
}

// Register binds w to a fresh ID and returns it.
func (r *Registry) Register(w file.Writer) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.writers[r.nextID] = w

	return r.nextID
}

// Resolve returns the writer bound to id. Every operation on a handle
// passes through here; Nil, unknown and invalidated IDs all fail alike.
func (r *Registry) Resolve(id ID) (file.Writer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.writers[id]

	return w, ok
}

// Invalidate removes the binding for id and hands the instance back to
// the caller exactly once. Repeating the call fails like Resolve does,
// so an instance can never be released twice.
func (r *Registry) Invalidate(id ID) (file.Writer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.writers[id]
	if ok {
		delete(r.writers, id)
	}

	return w, ok
}

// CloseAll invalidates every live handle, closes the writers behind them
// and returns how many were still open. Meant for process level cleanup
// when callers forgot individual closes, close errors are only surfaced
// through the writer's own logging.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	writers := r.writers
	r.writers = make(map[ID]file.Writer)
	r.mu.Unlock()

	for _, w := range writers {
		w.Close()
	}

	return len(writers)
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.writers)
}
