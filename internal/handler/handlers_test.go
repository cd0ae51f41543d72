package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartell/amorcito-api/internal/domain"
	"github.com/dmartell/amorcito-api/internal/progress"
)

// testCatalog implements progress.Catalog with fixed data.
type testCatalog struct{}

func (testCatalog) Letters() []domain.Letter {
	return []domain.Letter{{ID: 1, Title: "Primera", Body: "Hola"}}
}

func (testCatalog) Reasons() []domain.Reason {
	return []domain.Reason{{ID: 1, Text: "Tu risa", PointsRequired: 1}}
}

func (testCatalog) Prizes() []domain.Prize {
	return []domain.Prize{
		{ID: 1, Name: "Masaje", Cost: 3, Available: true},
		{ID: 2, Name: "Cena", Cost: 8, Available: true},
	}
}

func (testCatalog) Songs() []domain.Song {
	return []domain.Song{{ID: 1, Name: "Eres Tú", Artist: "Carla Morrison"}}
}

func (c testCatalog) LetterByID(id int) *domain.Letter {
	for _, l := range c.Letters() {
		if l.ID == id {
			return &l
		}
	}
	return nil
}

func (c testCatalog) PrizeByID(id int) *domain.Prize {
	for _, p := range c.Prizes() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func (c testCatalog) SongByID(id int) *domain.Song {
	for _, s := range c.Songs() {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

func newTestRouter() (chi.Router, *progress.FakeRepository) {
	repo := progress.NewFakeRepository()
	svc := progress.NewService(repo, testCatalog{})

	r := chi.NewRouter()
	r.Get("/estado", HandleGetState(svc))
	r.Post("/dar-punto", HandleAwardPoint(svc))
	r.Get("/cartas", HandleListLetters(svc))
	r.Post("/leer-carta/{id}", HandleReadLetter(svc))
	r.Get("/razones", HandleListReasons(svc))
	r.Get("/premios", HandleListPrizes(svc))
	r.Post("/reclamar-premio", HandleClaimPrize(svc))
	r.Post("/completar-juego", HandleCompleteGame(svc))
	r.Get("/canciones", HandleListSongs(svc))
	r.Post("/escuchar-cancion", HandleListenToSong(svc))
	r.Post("/escuchar-cancion/{id}", HandleListenToSongByID(svc))
	return r, repo
}

func doRequest(t *testing.T, router chi.Router, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestHandleGetState(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/estado", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["puntos_consideracion"])
	assert.Equal(t, float64(0), data["estrellas"])
	// Empty history serializes as [], never null
	assert.NotNil(t, data["razones_desbloqueadas"])
	assert.NotNil(t, data["cartas_leidas"])
}

func TestHandleAwardPoint(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodPost, "/dar-punto", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["nuevo_total_puntos"])
	unlocked := data["razones_recien_desbloqueadas"].([]interface{})
	assert.Len(t, unlocked, 1)
}

func TestHandleReadLetter(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodPost, "/leer-carta/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["nuevas_estrellas"])
	assert.Equal(t, float64(1), data["carta_id"])
	assert.Equal(t, progress.MsgStarEarned, data["mensaje"])

	// Repeat keeps the star count, switches the message
	rec, payload = doRequest(t, router, http.MethodPost, "/leer-carta/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["nuevas_estrellas"])
	assert.Equal(t, progress.MsgLetterAlreadyRead, data["mensaje"])
}

func TestHandleReadLetter_BadRequests(t *testing.T) {
	router, _ := newTestRouter()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "unknown letter", path: "/leer-carta/99", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/leer-carta/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/leer-carta/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := doRequest(t, router, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, false, payload["success"])
		})
	}
}

func TestHandleListPrizes_SortedByCost(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/premios", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(3), first["costo"])
	assert.Equal(t, false, first["reclamado"])
}

func TestHandleClaimPrize(t *testing.T) {
	router, repo := newTestRouter()
	_, err := repo.Mutate(context.Background(), func(p *domain.Progress) error {
		p.AddStars(10)
		return nil
	})
	require.NoError(t, err)

	body := []byte(`{"premio_id": 1}`)
	rec, payload := doRequest(t, router, http.MethodPost, "/reclamar-premio", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["estrellas_restantes"])
	premio := data["premio"].(map[string]interface{})
	assert.Equal(t, "Masaje", premio["nombre"])
}

func TestHandleClaimPrize_Errors(t *testing.T) {
	router, repo := newTestRouter()
	_, err := repo.Mutate(context.Background(), func(p *domain.Progress) error {
		p.AddStars(3)
		p.ClaimPrize(1, p.CreatedAt)
		return nil
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "already claimed", body: `{"premio_id": 1}`, wantStatus: http.StatusBadRequest, wantError: ErrMsgPrizeAlreadyClaimedErr},
		{name: "insufficient stars", body: `{"premio_id": 2}`, wantStatus: http.StatusBadRequest, wantError: ErrMsgInsufficientStarsErr},
		{name: "unknown prize", body: `{"premio_id": 42}`, wantStatus: http.StatusNotFound, wantError: ErrMsgPrizeNotFoundUser},
		{name: "malformed body", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing prize id", body: `{}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := doRequest(t, router, http.MethodPost, "/reclamar-premio", []byte(tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, payload["error"])
			}
		})
	}
}

func TestHandleCompleteGame(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodPost, "/completar-juego", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(progress.GameBonusStars), data["nuevas_estrellas"])
	assert.Equal(t, progress.MsgGameBonusEarned, data["mensaje"])
}

func TestHandleListenToSong_AlwaysAwards(t *testing.T) {
	router, _ := newTestRouter()

	for i := 1; i <= 2; i++ {
		rec, payload := doRequest(t, router, http.MethodPost, "/escuchar-cancion", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, float64(i), data["nuevas_estrellas"])
	}
}

func TestHandleListenToSongByID_Idempotent(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodPost, "/escuchar-cancion/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["nuevas_estrellas"])

	rec, payload = doRequest(t, router, http.MethodPost, "/escuchar-cancion/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["nuevas_estrellas"])
	assert.Equal(t, progress.MsgSongAlreadyHeard, data["mensaje"])

	rec, _ = doRequest(t, router, http.MethodPost, "/escuchar-cancion/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListSongs(t *testing.T) {
	router, _ := newTestRouter()

	rec, payload := doRequest(t, router, http.MethodGet, "/canciones", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].([]interface{})
	require.Len(t, data, 1)
	song := data[0].(map[string]interface{})
	assert.Equal(t, "Carla Morrison", song["artista"])
}
