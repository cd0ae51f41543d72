package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmartell/amorcito-api/internal/domain"
	"github.com/dmartell/amorcito-api/internal/repository"
)

// ProgressRepository implements the progress store for PostgreSQL.
// The whole deployment owns exactly one app_state row; Mutate
// serializes read-modify-write cycles with a row lock so two
// concurrent mutations can never interleave.
type ProgressRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db, now: time.Now}
}

const progressColumns = `puntos_consideracion, estrellas, razones_desbloqueadas,
	cartas_leidas, canciones_escuchadas, premios_reclamados, created_at, updated_at`

// Load returns the singleton progress record, creating it with
// defaults if absent. Plain Loads are snapshot reads and take no lock.
func (r *ProgressRepository) Load(ctx context.Context) (*domain.Progress, error) {
	query := fmt.Sprintf(`SELECT %s FROM app_state LIMIT 1`, progressColumns)

	progress, err := scanProgress(r.db.QueryRow(ctx, query))
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	return r.insertDefault(ctx)
}

// Mutate atomically applies fn to the current record and persists the
// result. The SELECT ... FOR UPDATE holds the row lock for the whole
// load-check-compute-store cycle.
func (r *ProgressRepository) Mutate(ctx context.Context, fn repository.MutateFunc) (*domain.Progress, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`SELECT %s FROM app_state LIMIT 1 FOR UPDATE`, progressColumns)
	progress, err := scanProgress(tx.QueryRow(ctx, query))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to load progress for update: %w", err)
		}
		// First mutation on a fresh deployment. FOR UPDATE locks
		// nothing on an empty table, so two callers can both land
		// here; the conflict-tolerant insert plus re-select means
		// the loser locks and reads the winner's row instead of
		// clobbering it.
		progress, err = seedAndLock(ctx, tx, r.now().UTC())
		if err != nil {
			return nil, err
		}
	}

	updated := progress.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = r.now().UTC()

	if err := updateProgress(ctx, tx, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit progress mutation: %w", err)
	}
	return updated, nil
}

// Reset replaces the record with all-zero defaults.
func (r *ProgressRepository) Reset(ctx context.Context) (*domain.Progress, error) {
	return r.Mutate(ctx, func(p *domain.Progress) error {
		fresh := domain.NewProgress(r.now().UTC())
		fresh.CreatedAt = p.CreatedAt
		*p = *fresh
		return nil
	})
}

func (r *ProgressRepository) insertDefault(ctx context.Context) (*domain.Progress, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	progress, err := seedAndLock(ctx, tx, r.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit default progress: %w", err)
	}
	return progress, nil
}

// seedAndLock inserts the zero-value row if it does not exist yet and
// returns the row that actually won, locked for the rest of the
// transaction. A lost insert race returns the concurrent writer's row
// rather than the unfetched default.
func seedAndLock(ctx context.Context, tx pgx.Tx, now time.Time) (*domain.Progress, error) {
	if err := insertProgress(ctx, tx, domain.NewProgress(now)); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM app_state WHERE id = 1 FOR UPDATE`, progressColumns)
	progress, err := scanProgress(tx.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("failed to load seeded progress: %w", err)
	}
	return progress, nil
}

func insertProgress(ctx context.Context, tx pgx.Tx, p *domain.Progress) error {
	reasons, letters, songs, prizes, err := marshalSets(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO app_state (id, puntos_consideracion, estrellas, razones_desbloqueadas,
			cartas_leidas, canciones_escuchadas, premios_reclamados, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = tx.Exec(ctx, query, p.Points, p.Stars, reasons, letters, songs, prizes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

func updateProgress(ctx context.Context, tx pgx.Tx, p *domain.Progress) error {
	reasons, letters, songs, prizes, err := marshalSets(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE app_state
		SET puntos_consideracion = $1,
			estrellas = $2,
			razones_desbloqueadas = $3,
			cartas_leidas = $4,
			canciones_escuchadas = $5,
			premios_reclamados = $6,
			updated_at = $7
		WHERE id = 1
	`
	_, err = tx.Exec(ctx, query, p.Points, p.Stars, reasons, letters, songs, prizes, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

func marshalSets(p *domain.Progress) (reasons, letters, songs, prizes []byte, err error) {
	if reasons, err = json.Marshal(p.UnlockedReasons); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal unlocked reasons: %w", err)
	}
	if letters, err = json.Marshal(p.ReadLetters); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal read letters: %w", err)
	}
	if songs, err = json.Marshal(p.HeardSongs); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal heard songs: %w", err)
	}
	if prizes, err = json.Marshal(p.ClaimedPrizes); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal claimed prizes: %w", err)
	}
	return reasons, letters, songs, prizes, nil
}

func scanProgress(row pgx.Row) (*domain.Progress, error) {
	var (
		p       domain.Progress
		reasons []byte
		letters []byte
		songs   []byte
		prizes  []byte
	)
	err := row.Scan(&p.Points, &p.Stars, &reasons, &letters, &songs, &prizes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(reasons, &p.UnlockedReasons); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unlocked reasons: %w", err)
	}
	if err := json.Unmarshal(letters, &p.ReadLetters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal read letters: %w", err)
	}
	if err := json.Unmarshal(songs, &p.HeardSongs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal heard songs: %w", err)
	}
	if err := json.Unmarshal(prizes, &p.ClaimedPrizes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claimed prizes: %w", err)
	}

	if p.UnlockedReasons == nil {
		p.UnlockedReasons = []int{}
	}
	if p.ReadLetters == nil {
		p.ReadLetters = []int{}
	}
	if p.HeardSongs == nil {
		p.HeardSongs = []int{}
	}
	if p.ClaimedPrizes == nil {
		p.ClaimedPrizes = []domain.ClaimedPrize{}
	}

	return &p, nil
}
