package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmartell/amorcito-api/internal/domain"
	"github.com/dmartell/amorcito-api/internal/logger"
	"github.com/dmartell/amorcito-api/internal/metrics"
	"github.com/dmartell/amorcito-api/internal/repository"
)

// GameBonusStars is the flat star bonus for completing a game.
const GameBonusStars = 15

// Catalog defines the read-only catalog access the engine needs.
// Implemented by catalog.Provider.
type Catalog interface {
	Letters() []domain.Letter
	Reasons() []domain.Reason
	Prizes() []domain.Prize
	Songs() []domain.Song
	LetterByID(id int) *domain.Letter
	PrizeByID(id int) *domain.Prize
	SongByID(id int) *domain.Song
}

// Service defines the interface for progress operations. Every
// mutating operation executes as a single atomic unit against the
// progress store; no operation spans two mutations.
type Service interface {
	GetState(ctx context.Context) (*State, error)
	AwardPoint(ctx context.Context) (*AwardPointResult, error)
	UnlockNewReasons(ctx context.Context, thresholdPoints int) ([]domain.Reason, error)
	ListLetters(ctx context.Context) ([]LetterStatus, error)
	ReadLetter(ctx context.Context, letterID int) (*ReadLetterResult, error)
	ListUnlockedReasons(ctx context.Context) ([]domain.Reason, error)
	ListPrizes(ctx context.Context) ([]PrizeStatus, error)
	ClaimPrize(ctx context.Context, prizeID int) (*ClaimPrizeResult, error)
	CompleteGame(ctx context.Context) (*StarsResult, error)
	ListSongs(ctx context.Context) ([]domain.Song, error)
	GetSong(ctx context.Context, songID int) (*domain.Song, error)
	ListenToSong(ctx context.Context) (*StarsResult, error)
	ListenToSongByID(ctx context.Context, songID int) (*ListenSongResult, error)
}

type service struct {
	repo    repository.Progress
	catalog Catalog
	now     func() time.Time
}

// NewService creates a new progress service
func NewService(repo repository.Progress, cat Catalog) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		now:     time.Now,
	}
}

// GetState returns a snapshot of the progress record.
func (s *service) GetState(ctx context.Context) (*State, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	return &State{
		Points:          p.Points,
		Stars:           p.Stars,
		UnlockedReasons: p.UnlockedReasons,
		ReadLetters:     p.ReadLetters,
		ClaimedPrizes:   p.ClaimedPrizes,
	}, nil
}

// AwardPoint increments consideration points by one and unlocks every
// reason whose threshold the new total reaches. Both the increment and
// the unlock pass happen inside one mutation so a reason can never
// unlock twice.
func (s *service) AwardPoint(ctx context.Context) (*AwardPointResult, error) {
	log := logger.FromContext(ctx)

	var unlocked []domain.Reason
	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		p.Points++
		unlocked = unlockReasons(p, s.catalog.Reasons(), p.Points)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to award point: %w", err)
	}

	metrics.PointsAwarded.Inc()
	metrics.ReasonsUnlocked.Add(float64(len(unlocked)))
	log.Info("Consideration point awarded", "points", p.Points, "newly_unlocked", len(unlocked))

	return &AwardPointResult{
		NewPointsTotal:       p.Points,
		NewlyUnlockedReasons: unlocked,
	}, nil
}

// UnlockNewReasons unlocks every reason whose threshold is at or below
// thresholdPoints and returns only the reasons unlocked by this call.
func (s *service) UnlockNewReasons(ctx context.Context, thresholdPoints int) ([]domain.Reason, error) {
	var unlocked []domain.Reason
	_, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		unlocked = unlockReasons(p, s.catalog.Reasons(), thresholdPoints)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unlock reasons: %w", err)
	}

	metrics.ReasonsUnlocked.Add(float64(len(unlocked)))
	return unlocked, nil
}

// unlockReasons adds every reason with PointsRequired <= threshold not
// yet unlocked and returns them sorted by threshold ascending.
func unlockReasons(p *domain.Progress, reasons []domain.Reason, threshold int) []domain.Reason {
	newlyUnlocked := []domain.Reason{}
	for _, reason := range reasons {
		if reason.PointsRequired <= threshold && !p.HasUnlockedReason(reason.ID) {
			p.UnlockReason(reason.ID)
			newlyUnlocked = append(newlyUnlocked, reason)
		}
	}
	sort.SliceStable(newlyUnlocked, func(i, j int) bool {
		return newlyUnlocked[i].PointsRequired < newlyUnlocked[j].PointsRequired
	})
	return newlyUnlocked
}

// ListLetters returns every catalog letter with its read flag.
func (s *service) ListLetters(ctx context.Context) ([]LetterStatus, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	letters := s.catalog.Letters()
	statuses := make([]LetterStatus, 0, len(letters))
	for _, letter := range letters {
		statuses = append(statuses, LetterStatus{
			ID:    letter.ID,
			Title: letter.Title,
			Body:  letter.Body,
			Read:  p.HasReadLetter(letter.ID),
			// No date gating: every letter is always available
			Available: true,
		})
	}
	return statuses, nil
}

// ReadLetter marks a letter read and awards one star the first time.
// Re-reading is not an error: the repeat path returns the current star
// total with an "already read" message and changes nothing.
func (s *service) ReadLetter(ctx context.Context, letterID int) (*ReadLetterResult, error) {
	log := logger.FromContext(ctx)

	if s.catalog.LetterByID(letterID) == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrLetterNotFound, letterID)
	}

	alreadyRead := false
	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		if p.HasReadLetter(letterID) {
			alreadyRead = true
			return nil
		}
		p.MarkLetterRead(letterID)
		p.AddStars(1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read letter: %w", err)
	}

	result := &ReadLetterResult{
		Stars:       p.Stars,
		LetterID:    letterID,
		AlreadyRead: alreadyRead,
		Message:     MsgStarEarned,
	}
	if alreadyRead {
		result.Message = MsgLetterAlreadyRead
	} else {
		metrics.LettersRead.Inc()
		metrics.StarsEarned.WithLabelValues(metrics.SourceLetter).Inc()
	}

	log.Info("Letter read", "letter_id", letterID, "already_read", alreadyRead, "stars", p.Stars)
	return result, nil
}

// ListUnlockedReasons returns only unlocked reasons, sorted by points
// threshold ascending regardless of unlock order.
func (s *service) ListUnlockedReasons(ctx context.Context) ([]domain.Reason, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	unlocked := []domain.Reason{}
	for _, reason := range s.catalog.Reasons() {
		if p.HasUnlockedReason(reason.ID) {
			unlocked = append(unlocked, reason)
		}
	}
	sort.SliceStable(unlocked, func(i, j int) bool {
		return unlocked[i].PointsRequired < unlocked[j].PointsRequired
	})
	return unlocked, nil
}

// ListPrizes returns every prize with its claimed flag, sorted by cost
// ascending.
func (s *service) ListPrizes(ctx context.Context) ([]PrizeStatus, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	prizes := s.catalog.Prizes()
	statuses := make([]PrizeStatus, 0, len(prizes))
	for _, prize := range prizes {
		statuses = append(statuses, PrizeStatus{
			ID:        prize.ID,
			Name:      prize.Name,
			Cost:      prize.Cost,
			Emoji:     prize.Emoji,
			Available: prize.Available,
			Claimed:   p.HasClaimedPrize(prize.ID),
		})
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Cost < statuses[j].Cost
	})
	return statuses, nil
}

// ClaimPrize redeems a prize for stars. All three checks - exists,
// not yet claimed, enough stars - and the deduction run inside one
// mutation so the cost can never be deducted twice. Sufficiency is
// validated before the deduction, which keeps the floor-to-zero of
// SubtractStars unreachable on this path.
func (s *service) ClaimPrize(ctx context.Context, prizeID int) (*ClaimPrizeResult, error) {
	log := logger.FromContext(ctx)

	prize := s.catalog.PrizeByID(prizeID)
	if prize == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPrizeNotFound, prizeID)
	}

	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		if p.HasClaimedPrize(prizeID) {
			return domain.ErrPrizeAlreadyClaimed
		}
		if p.Stars < prize.Cost {
			return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientStars, p.Stars, prize.Cost)
		}
		p.SubtractStars(prize.Cost)
		p.ClaimPrize(prizeID, s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PrizesClaimed.Inc()
	metrics.StarsSpent.Add(float64(prize.Cost))
	log.Info("Prize claimed", "prize_id", prizeID, "cost", prize.Cost, "remaining_stars", p.Stars)

	return &ClaimPrizeResult{
		RemainingStars: p.Stars,
		Prize: PrizeSummary{
			ID:    prize.ID,
			Name:  prize.Name,
			Emoji: prize.Emoji,
		},
		Message: fmt.Sprintf(MsgPrizeClaimedFmt, prize.Name),
	}, nil
}

// CompleteGame grants the flat game bonus. Intentionally repeatable:
// every completed game pays out.
func (s *service) CompleteGame(ctx context.Context) (*StarsResult, error) {
	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		p.AddStars(GameBonusStars)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to grant game bonus: %w", err)
	}

	metrics.StarsEarned.WithLabelValues(metrics.SourceGame).Add(GameBonusStars)
	return &StarsResult{Stars: p.Stars, Message: MsgGameBonusEarned}, nil
}

// ListSongs returns the full song catalog.
func (s *service) ListSongs(ctx context.Context) ([]domain.Song, error) {
	return s.catalog.Songs(), nil
}

// GetSong returns a single song by id.
func (s *service) GetSong(ctx context.Context, songID int) (*domain.Song, error) {
	song := s.catalog.SongByID(songID)
	if song == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrSongNotFound, songID)
	}
	return song, nil
}

// ListenToSong awards one star unconditionally - every call pays out,
// repeats included. That is the product rule for the play button; the
// by-id variant below is the idempotent one. Do not collapse the two.
func (s *service) ListenToSong(ctx context.Context) (*StarsResult, error) {
	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		p.AddStars(1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to award listen star: %w", err)
	}

	metrics.StarsEarned.WithLabelValues(metrics.SourceSong).Inc()
	return &StarsResult{Stars: p.Stars, Message: MsgStarEarned}, nil
}

// ListenToSongByID validates the song exists and awards one star the
// first time it is heard. Repeats are a no-op with an "already heard"
// message, mirroring ReadLetter.
func (s *service) ListenToSongByID(ctx context.Context, songID int) (*ListenSongResult, error) {
	log := logger.FromContext(ctx)

	if s.catalog.SongByID(songID) == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrSongNotFound, songID)
	}

	alreadyHeard := false
	p, err := s.repo.Mutate(ctx, func(p *domain.Progress) error {
		if p.HasHeardSong(songID) {
			alreadyHeard = true
			return nil
		}
		p.MarkSongHeard(songID)
		p.AddStars(1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to listen to song: %w", err)
	}

	result := &ListenSongResult{
		Stars:        p.Stars,
		SongID:       songID,
		AlreadyHeard: alreadyHeard,
		Message:      MsgStarEarned,
	}
	if alreadyHeard {
		result.Message = MsgSongAlreadyHeard
	} else {
		metrics.StarsEarned.WithLabelValues(metrics.SourceSong).Inc()
	}

	log.Info("Song listened", "song_id", songID, "already_heard", alreadyHeard, "stars", p.Stars)
	return result, nil
}
