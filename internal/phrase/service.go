package phrase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dmartell/amorcito-api/internal/domain"
)

// Catalog defines the read-only phrase access the service needs.
// Implemented by catalog.Provider.
type Catalog interface {
	Phrases() []domain.Phrase
	PhraseByID(id int) *domain.Phrase
}

// Service defines the interface for phrase operations. Phrases are
// pure static content; nothing here touches the progress record.
type Service interface {
	List(ctx context.Context, category string) ([]domain.Phrase, error)
	Random(ctx context.Context, category string) (*domain.Phrase, error)
	Get(ctx context.Context, phraseID int) (*domain.Phrase, error)
}

type service struct {
	catalog Catalog
	intn    func(n int) int // For rolling RNG
}

// NewService creates a new phrase service
func NewService(cat Catalog) Service {
	return &service{
		catalog: cat,
		intn:    rand.IntN,
	}
}

// List returns all phrases, optionally filtered by category. An empty
// category means no filter.
func (s *service) List(ctx context.Context, category string) ([]domain.Phrase, error) {
	return s.filtered(category), nil
}

// Random returns a uniformly random phrase from the filtered set.
func (s *service) Random(ctx context.Context, category string) (*domain.Phrase, error) {
	phrases := s.filtered(category)
	if len(phrases) == 0 {
		if category != "" {
			return nil, fmt.Errorf("%w: category %q", domain.ErrNoPhrasesAvailable, category)
		}
		return nil, domain.ErrNoPhrasesAvailable
	}
	picked := phrases[s.intn(len(phrases))]
	return &picked, nil
}

// Get returns a single phrase by id.
func (s *service) Get(ctx context.Context, phraseID int) (*domain.Phrase, error) {
	phrase := s.catalog.PhraseByID(phraseID)
	if phrase == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPhraseNotFound, phraseID)
	}
	return phrase, nil
}

func (s *service) filtered(category string) []domain.Phrase {
	all := s.catalog.Phrases()
	if category == "" {
		return all
	}
	filtered := []domain.Phrase{}
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
