package repositories

import (
	"context"
)

// UnitOfWork executes a function within one atomic storage transaction.
// WithLock marks a context so that subsequent repository reads acquire
// row-level exclusive locks for the remainder of the unit of work.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	WithLock(ctx context.Context) context.Context
}
