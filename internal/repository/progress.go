package repository

import (
	"context"

	"github.com/dmartell/amorcito-api/internal/domain"
)

// MutateFunc transforms a Progress record. It receives a copy of the
// current record and mutates it in place; returning an error aborts
// the transaction and leaves the stored record untouched. The function
// must be pure apart from mutating its argument - it may be retried
// and must not cause side effects of its own.
type MutateFunc func(p *domain.Progress) error

// Progress defines the interface for the singleton progress store.
// Exactly one record exists per deployment; Load creates it with
// defaults on first access.
type Progress interface {
	// Load returns the current record, creating it with all-zero
	// defaults if absent. Load alone is a snapshot read and may run
	// concurrently with Mutate.
	Load(ctx context.Context) (*domain.Progress, error)

	// Mutate atomically applies fn to the current record and persists
	// the result, stamping UpdatedAt. The read-modify-write executes
	// as one atomic unit with respect to every other Mutate call.
	Mutate(ctx context.Context, fn MutateFunc) (*domain.Progress, error)

	// Reset replaces the record with all-zero defaults. Administrative
	// use only.
	Reset(ctx context.Context) (*domain.Progress, error)
}
