package handler

import (
	"fmt"
	"net/http"

	"github.com/dmartell/amorcito-api/internal/progress"
)

// HandleListSongs handles listing the playlist
// @Summary List songs
// @Description List every song in the playlist
// @Tags canciones
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/canciones [get]
func HandleListSongs(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songs, err := svc.ListSongs(r.Context())
		if err != nil {
			respondServiceError(w, r, "List songs", err)
			return
		}

		respondData(w, http.StatusOK, songs, fmt.Sprintf("Se encontraron %d canciones", len(songs)))
	}
}

// HandleGetSong handles fetching one song
// @Summary Get a song
// @Description Get a single song by id
// @Tags canciones
// @Param id path int true "Song ID"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/canciones/{id} [get]
func HandleGetSong(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songID, ok := GetURLParamInt(r, w, "id")
		if !ok {
			return
		}

		song, err := svc.GetSong(r.Context(), songID)
		if err != nil {
			respondServiceError(w, r, "Get song", err)
			return
		}

		respondData(w, http.StatusOK, song, "")
	}
}

// HandleListenToSong handles the unconditional listen reward
// @Summary Listen to a song
// @Description Award one star on every call; repeats always pay out
// @Tags canciones
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/escuchar-cancion [post]
func HandleListenToSong(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.ListenToSong(r.Context())
		if err != nil {
			respondServiceError(w, r, "Listen to song", err)
			return
		}

		respondData(w, http.StatusOK, result, "Estrella otorgada exitosamente")
	}
}

// HandleListenToSongByID handles the idempotent listen reward
// @Summary Listen to a specific song
// @Description Validate the song exists and award one star on the first listen only
// @Tags canciones
// @Param id path int true "Song ID"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/escuchar-cancion/{id} [post]
func HandleListenToSongByID(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songID, ok := GetURLParamInt(r, w, "id")
		if !ok {
			return
		}

		result, err := svc.ListenToSongByID(r.Context(), songID)
		if err != nil {
			respondServiceError(w, r, "Listen to song by id", err)
			return
		}

		respondData(w, http.StatusOK, result, "Canción procesada exitosamente")
	}
}
