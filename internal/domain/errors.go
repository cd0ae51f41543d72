package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookup errors
	ErrMsgLetterNotFound = "letter not found"
	ErrMsgPrizeNotFound  = "prize not found"
	ErrMsgSongNotFound   = "song not found"
	ErrMsgPhraseNotFound = "phrase not found"

	// Prize claim errors
	ErrMsgPrizeAlreadyClaimed = "prize already claimed"
	ErrMsgInsufficientStars   = "insufficient stars"

	// Phrase errors
	ErrMsgNoPhrasesAvailable = "no phrases available"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog lookup errors: the referenced id does not exist in the
	// catalog. Distinct from "found but already claimed/read".
	ErrLetterNotFound = errors.New(ErrMsgLetterNotFound)
	ErrPrizeNotFound  = errors.New(ErrMsgPrizeNotFound)
	ErrSongNotFound   = errors.New(ErrMsgSongNotFound)
	ErrPhraseNotFound = errors.New(ErrMsgPhraseNotFound)

	// Prize claim errors
	ErrPrizeAlreadyClaimed = errors.New(ErrMsgPrizeAlreadyClaimed)
	ErrInsufficientStars   = errors.New(ErrMsgInsufficientStars)

	// Phrase errors
	ErrNoPhrasesAvailable = errors.New(ErrMsgNoPhrasesAvailable)
)
