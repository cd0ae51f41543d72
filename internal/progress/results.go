package progress

import "github.com/dmartell/amorcito-api/internal/domain"

// User-facing messages. The frontend displays these verbatim, so they
// stay in Spanish like the rest of the wire format.
const (
	MsgStarEarned        = "Ganaste 1 estrella"
	MsgGameBonusEarned   = "Ganaste 15 estrellas por jugar"
	MsgLetterAlreadyRead = "Esta carta ya fue leída anteriormente"
	MsgSongAlreadyHeard  = "Esta canción ya fue escuchada anteriormente"
	MsgPrizeClaimedFmt   = "¡Premio '%s' reclamado exitosamente!"
)

// State is the display snapshot of the progress record.
type State struct {
	Points          int                   `json:"puntos_consideracion"`
	Stars           int                   `json:"estrellas"`
	UnlockedReasons []int                 `json:"razones_desbloqueadas"`
	ReadLetters     []int                 `json:"cartas_leidas"`
	ClaimedPrizes   []domain.ClaimedPrize `json:"premios_reclamados"`
}

// AwardPointResult describes the outcome of awarding one point.
type AwardPointResult struct {
	NewPointsTotal       int             `json:"nuevo_total_puntos"`
	NewlyUnlockedReasons []domain.Reason `json:"razones_recien_desbloqueadas"`
}

// LetterStatus is a catalog letter annotated with progress flags.
type LetterStatus struct {
	ID        int    `json:"id"`
	Title     string `json:"titulo"`
	Body      string `json:"contenido"`
	Read      bool   `json:"leida"`
	Available bool   `json:"disponible"`
}

// ReadLetterResult describes the outcome of reading a letter.
// AlreadyRead distinguishes the no-op repeat path; it is not part of
// the wire format, which carries the distinction in Message.
type ReadLetterResult struct {
	Stars       int    `json:"nuevas_estrellas"`
	LetterID    int    `json:"carta_id"`
	Message     string `json:"mensaje"`
	AlreadyRead bool   `json:"-"`
}

// PrizeStatus is a catalog prize annotated with the claimed flag.
type PrizeStatus struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Cost      int    `json:"costo"`
	Emoji     string `json:"emoji"`
	Available bool   `json:"disponible"`
	Claimed   bool   `json:"reclamado"`
}

// PrizeSummary is the compact prize description in a claim result.
type PrizeSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Emoji string `json:"emoji"`
}

// ClaimPrizeResult describes a successful prize claim.
type ClaimPrizeResult struct {
	RemainingStars int          `json:"estrellas_restantes"`
	Prize          PrizeSummary `json:"premio"`
	Message        string       `json:"mensaje"`
}

// StarsResult is the outcome of operations that only adjust stars.
type StarsResult struct {
	Stars   int    `json:"nuevas_estrellas"`
	Message string `json:"mensaje"`
}

// ListenSongResult describes the outcome of the idempotent by-id
// listen path.
type ListenSongResult struct {
	Stars        int    `json:"nuevas_estrellas"`
	SongID       int    `json:"cancion_id"`
	Message      string `json:"mensaje"`
	AlreadyHeard bool   `json:"-"`
}
