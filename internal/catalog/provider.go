package catalog

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/dmartell/amorcito-api/internal/domain"
)

// Catalog file names expected under the data directory.
const (
	FileLetters = "cartas.json"
	FileReasons = "razones.json"
	FilePrizes  = "premios.json"
	FileSongs   = "canciones.json"
	FilePhrases = "frases.json"
)

// Provider is the read-only accessor over the static catalogs. Each
// catalog is loaded once from its JSON file and cached for the process
// lifetime; catalogs are immutable after deployment so no further
// synchronization is needed once loaded.
//
// A missing or malformed file degrades to an empty catalog with a
// logged warning. Lookups against an empty catalog report not-found,
// never a load failure.
type Provider struct {
	dir string

	once    sync.Once
	letters []domain.Letter
	reasons []domain.Reason
	prizes  []domain.Prize
	songs   []domain.Song
	phrases []domain.Phrase
}

// NewProvider creates a Provider reading catalog files from dir.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// Files lists every catalog file name the provider expects.
func Files() []string {
	return []string{FileLetters, FileReasons, FilePrizes, FileSongs, FilePhrases}
}

func (p *Provider) load() {
	p.once.Do(func() {
		p.letters = loadFile[domain.Letter](filepath.Join(p.dir, FileLetters))
		p.reasons = loadFile[domain.Reason](filepath.Join(p.dir, FileReasons))
		p.prizes = loadFile[domain.Prize](filepath.Join(p.dir, FilePrizes))
		p.songs = loadFile[domain.Song](filepath.Join(p.dir, FileSongs))
		p.phrases = loadFile[domain.Phrase](filepath.Join(p.dir, FilePhrases))

		slog.Info("Catalogs loaded",
			"dir", p.dir,
			"letters", len(p.letters),
			"reasons", len(p.reasons),
			"prizes", len(p.prizes),
			"songs", len(p.songs),
			"phrases", len(p.phrases))
	})
}

// Letters returns the full letter catalog.
func (p *Provider) Letters() []domain.Letter {
	p.load()
	return p.letters
}

// Reasons returns the full reason catalog.
func (p *Provider) Reasons() []domain.Reason {
	p.load()
	return p.reasons
}

// Prizes returns the full prize catalog.
func (p *Provider) Prizes() []domain.Prize {
	p.load()
	return p.prizes
}

// Songs returns the full song catalog.
func (p *Provider) Songs() []domain.Song {
	p.load()
	return p.songs
}

// Phrases returns the full phrase catalog.
func (p *Provider) Phrases() []domain.Phrase {
	p.load()
	return p.phrases
}

// LetterByID returns the letter with the given id, or nil if absent.
// Not-found is a normal outcome callers branch on, not an error.
func (p *Provider) LetterByID(id int) *domain.Letter {
	for _, l := range p.Letters() {
		if l.ID == id {
			return &l
		}
	}
	return nil
}

// ReasonByID returns the reason with the given id, or nil if absent.
func (p *Provider) ReasonByID(id int) *domain.Reason {
	for _, r := range p.Reasons() {
		if r.ID == id {
			return &r
		}
	}
	return nil
}

// PrizeByID returns the prize with the given id, or nil if absent.
func (p *Provider) PrizeByID(id int) *domain.Prize {
	for _, pr := range p.Prizes() {
		if pr.ID == id {
			return &pr
		}
	}
	return nil
}

// SongByID returns the song with the given id, or nil if absent.
func (p *Provider) SongByID(id int) *domain.Song {
	for _, s := range p.Songs() {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

// PhraseByID returns the phrase with the given id, or nil if absent.
func (p *Provider) PhraseByID(id int) *domain.Phrase {
	for _, ph := range p.Phrases() {
		if ph.ID == id {
			return &ph
		}
	}
	return nil
}
