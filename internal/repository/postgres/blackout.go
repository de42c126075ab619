package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
)

const blackoutColumns = `id, hub_id, item_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), COALESCE(reason, ''), is_deleted, deleted_at, created_at, updated_at`

type blackoutRepository struct {
	db *sql.DB
}

func NewBlackoutRepository(db *sql.DB) repository.BlackoutRepository {
	return &blackoutRepository{db: db}
}

func scanBlackout(row interface{ Scan(...any) error }) (*domain.RentalBlackout, error) {
	b := &domain.RentalBlackout{}
	err := row.Scan(&b.ID, &b.HubID, &b.ItemID, &b.StartDate, &b.EndDate, &b.Reason, &b.IsDeleted, &b.DeletedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blackoutRepository) Create(ctx context.Context, b *domain.RentalBlackout) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	query := `INSERT INTO rental_blackouts (id, hub_id, item_id, start_date, end_date, reason, is_deleted, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.HubID, b.ItemID, b.StartDate, b.EndDate, b.Reason, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *blackoutRepository) GetByID(ctx context.Context, hubID, itemID, id uuid.UUID) (*domain.RentalBlackout, error) {
	query := `SELECT ` + blackoutColumns + ` FROM rental_blackouts WHERE id = $1 AND item_id = $2 AND hub_id = $3 AND is_deleted = FALSE`
	b, err := scanBlackout(r.db.QueryRowContext(ctx, query, id, itemID, hubID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blackoutRepository) SoftDelete(ctx context.Context, hubID, itemID, id uuid.UUID) error {
	now := time.Now().UTC()
	query := `UPDATE rental_blackouts SET is_deleted=TRUE, deleted_at=$1, updated_at=$1 WHERE id=$2 AND item_id=$3 AND hub_id=$4 AND is_deleted=FALSE`
	res, err := r.db.ExecContext(ctx, query, now, id, itemID, hubID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blackoutRepository) ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error) {
	query := `SELECT ` + blackoutColumns + ` FROM rental_blackouts WHERE item_id = $1 AND hub_id = $2 AND is_deleted = FALSE ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query, itemID, hubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blackouts []domain.RentalBlackout
	for rows.Next() {
		b, err := scanBlackout(rows)
		if err != nil {
			return nil, err
		}
		blackouts = append(blackouts, *b)
	}
	return blackouts, rows.Err()
}
