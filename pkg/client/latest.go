package client

import (
	"context"
	"sync"
)

// Latest holds the result of the newest completed load of a view's data.
//
// Every Load gets a sequence number. A result is applied only if no newer
// load has been applied already and the load's context is still live, so an
// older fetch finishing late never overwrites fresher data, and a view that
// has been torn down (its context cancelled) is never updated.
type Latest[T any] struct {
	mu      sync.Mutex
	next    uint64
	applied uint64
	value   T
	err     error
	onApply func(T, error)
}

// NewLatest creates a guard. onApply, if non-nil, is called with every
// applied result while the guard's lock is held.
func NewLatest[T any](onApply func(T, error)) *Latest[T] {
	return &Latest[T]{onApply: onApply}
}

// Load runs fetch and applies its result if it is still the newest.
// It reports whether the result was applied.
func (l *Latest[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) bool {
	l.mu.Lock()
	l.next++
	seq := l.next
	l.mu.Unlock()

	value, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if ctx.Err() != nil || seq < l.applied {
		return false
	}
	l.applied = seq
	l.value = value
	l.err = err
	if l.onApply != nil {
		l.onApply(value, err)
	}
	return true
}

// Get returns the last applied value and error.
func (l *Latest[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.err
}
