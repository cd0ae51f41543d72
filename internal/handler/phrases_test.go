package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartell/amorcito-api/internal/domain"
	"github.com/dmartell/amorcito-api/internal/phrase"
)

// phraseTestCatalog implements phrase.Catalog with fixed data. No
// dato_curioso phrases, so that category is a valid-but-empty pool.
type phraseTestCatalog struct{}

func (phraseTestCatalog) Phrases() []domain.Phrase {
	return []domain.Phrase{
		{ID: 1, Text: "Eres mi lugar favorito", Category: domain.PhraseCategoryRomantic, Emoji: "💜"},
		{ID: 2, Text: "¿Qué le dijo un semáforo a otro? No me mires, me estoy cambiando", Category: domain.PhraseCategoryBadJoke, Emoji: "🚦"},
		{ID: 3, Text: "Contigo hasta los lunes son bonitos", Category: domain.PhraseCategoryRomantic, Emoji: "🌙"},
	}
}

func (c phraseTestCatalog) PhraseByID(id int) *domain.Phrase {
	for _, p := range c.Phrases() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func newPhraseTestRouter() chi.Router {
	svc := phrase.NewService(phraseTestCatalog{})

	r := chi.NewRouter()
	r.Route("/frases", func(r chi.Router) {
		r.Get("/", HandleListPhrases(svc))
		r.Get("/aleatoria", HandleRandomPhrase(svc))
		r.Get("/{id}", HandleGetPhrase(svc))
	})
	return r
}

func TestHandleListPhrases(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])
	assert.Len(t, data["frases"], 3)
}

func TestHandleListPhrases_CategoryFilter(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases?categoria=romantica", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	for _, raw := range data["frases"].([]interface{}) {
		f := raw.(map[string]interface{})
		assert.Equal(t, "romantica", f["categoria"])
	}
}

func TestHandleListPhrases_UnknownCategoryRejected(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases?categoria=dramatica", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := payload["fields"].(map[string]interface{})
	assert.Equal(t, "Invalid category", fields["category"])
}

func TestHandleRandomPhrase(t *testing.T) {
	router := newPhraseTestRouter()

	// A single-phrase category pins the pick down
	rec, payload := doRequest(t, router, http.MethodGet, "/frases/aleatoria?categoria=chiste_malo", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["id"])
	assert.Equal(t, "chiste_malo", data["categoria"])
}

func TestHandleRandomPhrase_EmptyPool(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases/aleatoria?categoria=dato_curioso", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, ErrMsgNoPhrasesAvailableErr, payload["error"])
}

func TestHandleRandomPhrase_UnknownCategoryRejected(t *testing.T) {
	router := newPhraseTestRouter()

	rec, _ := doRequest(t, router, http.MethodGet, "/frases/aleatoria?categoria=dramatica", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetPhrase(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases/3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["id"])
	assert.Equal(t, "Contigo hasta los lunes son bonitos", data["texto"])
}

func TestHandleGetPhrase_NotFound(t *testing.T) {
	router := newPhraseTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/frases/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrMsgPhraseNotFoundUser, payload["error"])
}
