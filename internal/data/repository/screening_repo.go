package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"screenix/internal/data/entity"
	"screenix/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ScreeningFilter narrows the screening listing; nil fields mean "any".
// Day selects the half-open range [Day, Day+24h).
type ScreeningFilter struct {
	Day     *time.Time
	MovieID *uuid.UUID
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindAll(ctx context.Context, filter ScreeningFilter) ([]*entity.Screening, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Screening, error)
	Update(ctx context.Context, screening *entity.Screening) error
	// SaveReservations conditionally replaces the embedded reservation list.
	// The write only lands if the stored version still equals
	// expectedVersion; the returned bool reports whether it did.
	SaveReservations(ctx context.Context, id uuid.UUID, reservations []entity.Reservation, expectedVersion int64) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

const screeningColumns = `id, date, advertisements_duration, movie_id, room_id,
	reservations, version, created_at, updated_at`

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	reservations, err := marshalReservations(screening.Reservations)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO screenings (` + screeningColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		screening.ID,
		screening.Date,
		screening.AdvertisementsDuration,
		screening.MovieID,
		screening.RoomID,
		reservations,
		screening.Version,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("room_id", screening.RoomID.String()),
			zap.Time("date", screening.Date),
		)
		return fmt.Errorf("create screening for movie %s room %s: %w",
			screening.MovieID.String(), screening.RoomID.String(), err)
	}

	return nil
}

func (r *screeningRepository) FindAll(ctx context.Context, filter ScreeningFilter) ([]*entity.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings`

	var conditions []string
	var args []any
	if filter.Day != nil {
		args = append(args, *filter.Day, filter.Day.Add(24*time.Hour))
		conditions = append(conditions, fmt.Sprintf("date >= $%d AND date < $%d", len(args)-1, len(args)))
	}
	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		conditions = append(conditions, fmt.Sprintf("movie_id = $%d", len(args)))
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find screenings", zap.Error(err))
		return nil, fmt.Errorf("find screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, screening)
	}

	return screenings, nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings WHERE id = $1`

	screening, err := scanScreening(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return screening, nil
}

func (r *screeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings WHERE room_id = $1`

	args := []any{roomID}
	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}
	query += ` ORDER BY date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find screenings by room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find screenings by room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, screening)
	}

	return screenings, nil
}

func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	query := `
		UPDATE screenings
		SET date = $2, advertisements_duration = $3, movie_id = $4, room_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.Date,
		screening.AdvertisementsDuration,
		screening.MovieID,
		screening.RoomID,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", screening.ID.String())
	}

	return nil
}

func (r *screeningRepository) SaveReservations(ctx context.Context, id uuid.UUID, reservations []entity.Reservation, expectedVersion int64) (bool, error) {
	payload, err := marshalReservations(reservations)
	if err != nil {
		return false, err
	}

	query := `
		UPDATE screenings
		SET reservations = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4
	`

	result, err := r.db.Exec(ctx, query, id, payload, time.Now(), expectedVersion)
	if err != nil {
		r.log.Error("Failed to save reservations",
			zap.Error(err),
			zap.String("screening_id", id.String()),
			zap.Int64("expected_version", expectedVersion),
		)
		return false, fmt.Errorf("save reservations for screening %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", id.String())
	}

	return nil
}

func marshalReservations(reservations []entity.Reservation) ([]byte, error) {
	if reservations == nil {
		reservations = []entity.Reservation{}
	}
	payload, err := json.Marshal(reservations)
	if err != nil {
		return nil, fmt.Errorf("marshal reservations: %w", err)
	}
	return payload, nil
}

func scanScreening(row pgx.Row) (*entity.Screening, error) {
	var screening entity.Screening
	var reservations []byte
	err := row.Scan(
		&screening.ID,
		&screening.Date,
		&screening.AdvertisementsDuration,
		&screening.MovieID,
		&screening.RoomID,
		&reservations,
		&screening.Version,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reservations, &screening.Reservations); err != nil {
		return nil, fmt.Errorf("unmarshal reservations: %w", err)
	}
	return &screening, nil
}
