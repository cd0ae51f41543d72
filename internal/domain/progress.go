package domain

import (
	"slices"
	"time"
)

// ClaimedPrize records a single prize redemption. The claim log is
// append-only and a prize id appears in it at most once.
type ClaimedPrize struct {
	PrizeID   int       `json:"premio_id"`
	ClaimedAt time.Time `json:"fecha_reclamado"`
}

// Progress is the single mutable record tracking accumulated
// consideration points, spendable stars and unlock/claim history.
// Exactly one Progress exists per deployment; it is created lazily
// with zero defaults on first access and owned by the progress store.
type Progress struct {
	Points          int            `json:"puntos_consideracion"`
	Stars           int            `json:"estrellas"`
	UnlockedReasons []int          `json:"razones_desbloqueadas"`
	ReadLetters     []int          `json:"cartas_leidas"`
	HeardSongs      []int          `json:"canciones_escuchadas"`
	ClaimedPrizes   []ClaimedPrize `json:"premios_reclamados"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewProgress returns a Progress with all-zero defaults. Slices are
// non-nil so JSON responses serialize as [] rather than null.
func NewProgress(now time.Time) *Progress {
	return &Progress{
		UnlockedReasons: []int{},
		ReadLetters:     []int{},
		HeardSongs:      []int{},
		ClaimedPrizes:   []ClaimedPrize{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Clone returns a deep copy. Mutations always operate on a copy so a
// failed transaction never leaves a half-modified record behind.
func (p *Progress) Clone() *Progress {
	cp := *p
	cp.UnlockedReasons = append([]int{}, p.UnlockedReasons...)
	cp.ReadLetters = append([]int{}, p.ReadLetters...)
	cp.HeardSongs = append([]int{}, p.HeardSongs...)
	cp.ClaimedPrizes = append([]ClaimedPrize{}, p.ClaimedPrizes...)
	return &cp
}

// AddStars adds the given amount to the star total.
func (p *Progress) AddStars(amount int) {
	p.Stars += amount
}

// SubtractStars removes stars, flooring at zero. Going below zero is
// not an error here; callers that need sufficiency (prize claims)
// validate before deducting.
func (p *Progress) SubtractStars(amount int) {
	p.Stars -= amount
	if p.Stars < 0 {
		p.Stars = 0
	}
}

// HasUnlockedReason reports whether the reason id is already unlocked.
func (p *Progress) HasUnlockedReason(id int) bool {
	return slices.Contains(p.UnlockedReasons, id)
}

// UnlockReason adds a reason id to the unlocked set if not present.
func (p *Progress) UnlockReason(id int) {
	if !p.HasUnlockedReason(id) {
		p.UnlockedReasons = append(p.UnlockedReasons, id)
	}
}

// HasReadLetter reports whether the letter id is already marked read.
func (p *Progress) HasReadLetter(id int) bool {
	return slices.Contains(p.ReadLetters, id)
}

// MarkLetterRead adds a letter id to the read set if not present.
func (p *Progress) MarkLetterRead(id int) {
	if !p.HasReadLetter(id) {
		p.ReadLetters = append(p.ReadLetters, id)
	}
}

// HasHeardSong reports whether the song id is already marked heard.
func (p *Progress) HasHeardSong(id int) bool {
	return slices.Contains(p.HeardSongs, id)
}

// MarkSongHeard adds a song id to the heard set if not present.
func (p *Progress) MarkSongHeard(id int) {
	if !p.HasHeardSong(id) {
		p.HeardSongs = append(p.HeardSongs, id)
	}
}

// HasClaimedPrize reports whether the prize id appears in the claim log.
func (p *Progress) HasClaimedPrize(id int) bool {
	for _, claim := range p.ClaimedPrizes {
		if claim.PrizeID == id {
			return true
		}
	}
	return false
}

// ClaimPrize appends a claim entry for the prize id with the given
// timestamp. Callers check HasClaimedPrize first.
func (p *Progress) ClaimPrize(id int, now time.Time) {
	p.ClaimedPrizes = append(p.ClaimedPrizes, ClaimedPrize{PrizeID: id, ClaimedAt: now})
}
