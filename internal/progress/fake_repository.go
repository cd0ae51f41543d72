package progress

import (
	"context"
	"sync"
	"time"

	"github.com/dmartell/amorcito-api/internal/domain"
	"github.com/dmartell/amorcito-api/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Progress for testing. It mirrors the postgres
// serialization guarantee with a mutex so concurrency tests behave
// like the real store.
type FakeRepository struct {
	mu       sync.Mutex
	progress *domain.Progress
	now      func() time.Time

	// LoadErr / MutateErr, when set, are returned by the respective
	// methods to simulate storage unavailability.
	LoadErr   error
	MutateErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{now: time.Now}
}

func (f *FakeRepository) Load(ctx context.Context) (*domain.Progress, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current().Clone(), nil
}

func (f *FakeRepository) Mutate(ctx context.Context, fn repository.MutateFunc) (*domain.Progress, error) {
	if f.MutateErr != nil {
		return nil, f.MutateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	updated := f.current().Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = f.now().UTC()
	f.progress = updated
	return updated.Clone(), nil
}

func (f *FakeRepository) Reset(ctx context.Context) (*domain.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = domain.NewProgress(f.now().UTC())
	return f.progress.Clone(), nil
}

// current lazily creates the record with defaults, like the real store.
// Callers hold the mutex.
func (f *FakeRepository) current() *domain.Progress {
	if f.progress == nil {
		f.progress = domain.NewProgress(f.now().UTC())
	}
	return f.progress
}
