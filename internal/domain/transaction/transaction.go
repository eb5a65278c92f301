// Package transaction defines the unit of work boundary used by application services.
package transaction

import (
	"context"
	"sync"
)

// Transactor runs fn inside a single database transaction. Repositories
// called with the context passed to fn join that transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type hooksKey struct{}

type afterCommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

// WithAfterCommit returns a context that collects AfterCommit callbacks and
// a function that runs them in registration order. Transactors call it
// when they open the outermost transaction and run the callbacks once it
// has committed. Callbacks of a rolled back transaction are dropped.
func WithAfterCommit(ctx context.Context) (context.Context, func()) {
	hooks := &afterCommitHooks{}
	run := func() {
		hooks.mu.Lock()
		fns := hooks.fns
		hooks.fns = nil
		hooks.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
	}
	return context.WithValue(ctx, hooksKey{}, hooks), run
}

// AfterCommit defers fn until the transaction carried by ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*afterCommitHooks)
	if !ok {
		fn()
		return
	}
	hooks.mu.Lock()
	hooks.fns = append(hooks.fns, fn)
	hooks.mu.Unlock()
}
