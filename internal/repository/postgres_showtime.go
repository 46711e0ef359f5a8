package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selimvural/popcorn-palace/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	query := `
		SELECT id, movie_title, theater, start_time, end_time, price
		FROM showtimes
		ORDER BY theater, start_time
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int64) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_title, theater, start_time, end_time, price
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieTitle,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovieAndTheater(
	ctx context.Context,
	movieTitle, theater string) ([]*domain.Showtime, error) {

	query := `
		SELECT id, movie_title, theater, start_time, end_time, price
		FROM showtimes
		WHERE movie_title = $1 AND theater = $2
		ORDER BY start_time
	`

	rows, err := p.db.Query(ctx, query, movieTitle, theater)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

// Create inserts the showtime after proving inside a serializable transaction
// that no showtime in the same theater overlaps it. The exclusion constraint
// on (theater, tstzrange(start_time, end_time)) is the authoritative backstop:
// even if the in-transaction check were bypassed, the insert could not commit
// an overlap. Both failure modes surface as ErrOverlappingShowtime.
func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	err := runInSerializableTx(ctx, p.db, func(tx pgx.Tx) error {
		overlaps, err := theaterHasOverlap(ctx, tx, showtime.Theater, showtime.StartTime, showtime.EndTime, 0)
		if err != nil {
			return err
		}
		if overlaps {
			return domain.ErrOverlappingShowtime
		}

		query := `
			INSERT INTO showtimes (movie_title, theater, start_time, end_time, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		return tx.QueryRow(
			ctx,
			query,
			showtime.MovieTitle,
			showtime.Theater,
			showtime.StartTime,
			showtime.EndTime,
			showtime.Price,
		).Scan(&showtime.ID)
	})

	return translateShowtimeError(err)
}

// Update rewrites the stored showtime, re-running the overlap check against
// all other showtimes in the same theater. On conflict the transaction rolls
// back and the stored record is left unchanged.
func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	err := runInSerializableTx(ctx, p.db, func(tx pgx.Tx) error {
		overlaps, err := theaterHasOverlap(ctx, tx, showtime.Theater, showtime.StartTime, showtime.EndTime, showtime.ID)
		if err != nil {
			return err
		}
		if overlaps {
			return domain.ErrOverlappingShowtime
		}

		query := `
			UPDATE showtimes
			SET movie_title = $1, theater = $2, start_time = $3, end_time = $4, price = $5
			WHERE id = $6
		`

		tag, err := tx.Exec(
			ctx,
			query,
			showtime.MovieTitle,
			showtime.Theater,
			showtime.StartTime,
			showtime.EndTime,
			showtime.Price,
			showtime.ID,
		)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})

	return translateShowtimeError(err)
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int64) error {
	// Bookings of the showtime are removed by the ON DELETE CASCADE on the
	// bookings foreign key.
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// theaterHasOverlap runs the half-open interval test: an existing showtime
// overlaps [start, end) iff existing.start < end AND existing.end > start.
// Touching endpoints are permitted. excludeId skips the record being updated.
func theaterHasOverlap(
	ctx context.Context,
	tx pgx.Tx,
	theater string,
	start, end time.Time,
	excludeId int64) (bool, error) {

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM showtimes
			WHERE theater = $1
			AND start_time < $2
			AND end_time > $3
			AND id <> $4
		)
	`

	var overlaps bool

	err := tx.QueryRow(ctx, query, theater, end, start, excludeId).Scan(&overlaps)
	if err != nil {
		return false, err
	}

	return overlaps, nil
}

// translateShowtimeError maps storage-level conflict signals onto the domain
// taxonomy. An exhausted serialization retry and a violated exclusion
// constraint both mean the overlap invariant could not be proven, which is
// reported as a scheduling conflict rather than an opaque failure.
func translateShowtimeError(err error) error {
	switch {
	case err == nil:
		return nil
	case isPgError(err, pgerrcode.ExclusionViolation),
		isPgError(err, pgerrcode.SerializationFailure):
		return domain.ErrOverlappingShowtime
	case isPgError(err, pgerrcode.CheckViolation):
		return domain.ErrInvalidInterval
	default:
		return err
	}
}

func scanShowtimes(rows pgx.Rows) ([]*domain.Showtime, error) {
	showtimes := make([]*domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieTitle,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
		)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
