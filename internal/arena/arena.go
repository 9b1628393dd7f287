// Package arena provides the scoped scratch-allocation helper the
// tree-delta engine acquires once per invocation and releases on every
// exit path, the Go-idiomatic stand-in for the hierarchical pool allocator
// the source design threads through every layer (see Design Notes,
// "Arena-scoped allocation"). It holds no actual memory pool — Go's
// garbage collector already reclaims ordinary allocations — but it gives
// delta.Run a single place to register cleanup callbacks that must run
// regardless of how the walk exits. NodeSnapshot handles opened mid-walk
// are not registered here: the engine releases each one directly, before
// the matching Editor close call.
package arena

// Arena collects cleanup callbacks registered during a single tree-delta
// invocation and runs them, in reverse registration order, exactly once.
type Arena struct {
	cleanups []func()
	closed   bool
}

// New returns a fresh Arena. Callers must call Release on every exit path.
func New() *Arena {
	return &Arena{}
}

// Defer registers fn to run when the Arena is released. Cleanups run in
// reverse registration order, matching the LIFO discipline the rest of the
// tree-delta engine uses for Editor frames.
func (a *Arena) Defer(fn func()) {
	if a == nil || fn == nil {
		return
	}
	a.cleanups = append(a.cleanups, fn)
}

// Release runs every registered cleanup. It is idempotent: calling it more
// than once (e.g. once from a deferred release and once from an explicit
// early-exit path) only runs the cleanups the first time.
func (a *Arena) Release() {
	if a == nil || a.closed {
		return
	}
	a.closed = true
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}
