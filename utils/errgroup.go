package utils

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrGroupWithResults runs functions with a bounded number of goroutines and
// collects every result. Results are returned in the order Go was called.
type ErrGroupWithResults[T any] struct {
	group   *errgroup.Group
	ctx     context.Context
	mu      sync.Mutex
	results []T
	next    int
}

func ErrGroup[T any](limit int) *ErrGroupWithResults[T] {
	return ErrGroupWithContext[T](context.Background(), limit)
}

func ErrGroupWithContext[T any](ctx context.Context, limit int) *ErrGroupWithResults[T] {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &ErrGroupWithResults[T]{
		group: g,
		ctx:   ctx,
	}
}

// Context is cancelled as soon as one function returns an error.
func (e *ErrGroupWithResults[T]) Context() context.Context {
	return e.ctx
}

func (e *ErrGroupWithResults[T]) Go(f func() (T, error)) {
	e.mu.Lock()
	idx := e.next
	e.next++
	var zero T
	e.results = append(e.results, zero)
	e.mu.Unlock()

	e.group.Go(func() error {
		res, err := f()
		if err != nil {
			return err
		}
		e.mu.Lock()
		e.results[idx] = res
		e.mu.Unlock()
		return nil
	})
}

func (e *ErrGroupWithResults[T]) WaitAndCollect() ([]T, error) {
	err := e.group.Wait()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results, err
}
