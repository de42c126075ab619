package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Public sort keys mapped to column names. Anything outside this map sorts by
// the default column.
var rentalItemSortFields = map[string]string{
	"code":         "code",
	"name":         "name",
	"is_available": "is_available",
	"is_active":    "is_active",
	"daily_rate":   "daily_rate",
	"description":  "description",
	"created_at":   "created_at",
}

const rentalItemDefaultSort = "code"

const rentalItemColumns = `id, hub_id, name, COALESCE(code, ''), COALESCE(description, ''), daily_rate, is_available, is_active, COALESCE(category, ''), COALESCE(location, ''), quantity_total, is_deleted, deleted_at, created_at, updated_at`

type rentalItemRepository struct {
	db *sql.DB
}

func NewRentalItemRepository(db *sql.DB) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

func scanRentalItem(row interface{ Scan(...any) error }) (*domain.RentalItem, error) {
	it := &domain.RentalItem{}
	err := row.Scan(&it.ID, &it.HubID, &it.Name, &it.Code, &it.Description, &it.DailyRate, &it.IsAvailable, &it.IsActive, &it.Category, &it.Location, &it.QuantityTotal, &it.IsDeleted, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *rentalItemRepository) Create(ctx context.Context, it *domain.RentalItem) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	query := `INSERT INTO rental_items (id, hub_id, name, code, description, daily_rate, is_available, is_active, category, location, quantity_total, is_deleted, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, $12, $13)`
	_, err := r.db.ExecContext(ctx, query, it.ID, it.HubID, it.Name, it.Code, it.Description, it.DailyRate, it.IsAvailable, it.IsActive, it.Category, it.Location, it.QuantityTotal, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *rentalItemRepository) GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE id = $1 AND hub_id = $2 AND is_deleted = FALSE`
	it, err := scanRentalItem(r.db.QueryRowContext(ctx, query, id, hubID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *rentalItemRepository) Update(ctx context.Context, it *domain.RentalItem) error {
	it.UpdatedAt = time.Now().UTC()
	query := `UPDATE rental_items SET name=$1, code=$2, description=$3, daily_rate=$4, is_available=$5, is_active=$6, category=$7, location=$8, quantity_total=$9, updated_at=$10
	          WHERE id=$11 AND hub_id=$12 AND is_deleted=FALSE`
	res, err := r.db.ExecContext(ctx, query, it.Name, it.Code, it.Description, it.DailyRate, it.IsAvailable, it.IsActive, it.Category, it.Location, it.QuantityTotal, it.UpdatedAt, it.ID, it.HubID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalItemRepository) SoftDelete(ctx context.Context, hubID, id uuid.UUID) error {
	now := time.Now().UTC()
	query := `UPDATE rental_items SET is_deleted=TRUE, deleted_at=$1, updated_at=$1 WHERE id=$2 AND hub_id=$3 AND is_deleted=FALSE`
	res, err := r.db.ExecContext(ctx, query, now, id, hubID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func itemFilter(hubID uuid.UUID, search string) (string, []any) {
	where := `WHERE hub_id = $1 AND is_deleted = FALSE`
	args := []any{hubID}
	if search != "" {
		where += ` AND (name ILIKE $2 OR code ILIKE $2 OR description ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	return where, args
}

func (r *rentalItemRepository) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
	q.Normalize()
	where, args := itemFilter(hubID, q.Search)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_items `+where, args...).Scan(&count); err != nil {
		return nil, domain.PageMeta{}, err
	}
	meta := domain.NewPageMeta(q, count)

	query := fmt.Sprintf(`SELECT %s FROM rental_items %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		rentalItemColumns, where, orderClause(rentalItemSortFields, q.SortField, rentalItemDefaultSort, q.SortDir), len(args)+1, len(args)+2)
	args = append(args, meta.PerPage, (meta.Page-1)*meta.PerPage)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanRentalItem(rows)
		if err != nil {
			return nil, domain.PageMeta{}, err
		}
		items = append(items, *it)
	}
	return items, meta, rows.Err()
}

func (r *rentalItemRepository) ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, error) {
	q.Normalize()
	where, args := itemFilter(hubID, q.Search)
	query := fmt.Sprintf(`SELECT %s FROM rental_items %s ORDER BY %s`,
		rentalItemColumns, where, orderClause(rentalItemSortFields, q.SortField, rentalItemDefaultSort, q.SortDir))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanRentalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// ListAllRecords includes soft-deleted rows. Administrative recovery only.
func (r *rentalItemRepository) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE hub_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, hubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanRentalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *rentalItemRepository) ListActive(ctx context.Context, hubID uuid.UUID, isAvailable *bool, category string) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE hub_id = $1 AND is_deleted = FALSE AND is_active = TRUE`
	args := []any{hubID}
	if isAvailable != nil {
		query += fmt.Sprintf(` AND is_available = $%d`, len(args)+1)
		args = append(args, *isAvailable)
	}
	if category != "" {
		query += fmt.Sprintf(` AND category ILIKE $%d`, len(args)+1)
		args = append(args, "%"+category+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanRentalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *rentalItemRepository) BulkSetActive(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE rental_items SET is_active=$1, updated_at=$2 WHERE hub_id=$3 AND is_deleted=FALSE AND id = ANY($4)`
	_, err := r.db.ExecContext(ctx, query, active, time.Now().UTC(), hubID, pq.Array(ids))
	return err
}

func (r *rentalItemRepository) BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE rental_items SET is_deleted=TRUE, deleted_at=$1, updated_at=$1 WHERE hub_id=$2 AND is_deleted=FALSE AND id = ANY($3)`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), hubID, pq.Array(ids))
	return err
}

func (r *rentalItemRepository) Count(ctx context.Context, hubID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_items WHERE hub_id = $1 AND is_deleted = FALSE`, hubID).Scan(&count)
	return count, err
}
