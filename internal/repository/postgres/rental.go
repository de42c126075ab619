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

var rentalSortFields = map[string]string{
	"reference":     "r.reference",
	"item":          "r.item_id",
	"status":        "r.status",
	"total":         "r.total",
	"customer_name": "r.customer_name",
	"start_date":    "r.start_date",
	"created_at":    "r.created_at",
}

const rentalDefaultSort = "r.reference"

// Dates come back as YYYY-MM-DD text; the item name rides along on every read
// so lists and exports don't need a second query.
const rentalColumns = `r.id, r.hub_id, r.reference, r.item_id, COALESCE(i.name, ''), r.customer_name, r.customer_id, r.status, to_char(r.start_date, 'YYYY-MM-DD'), to_char(r.end_date, 'YYYY-MM-DD'), r.total, r.deposit_amount, r.deposit_paid, r.deposit_returned, COALESCE(r.condition_out, ''), COALESCE(r.condition_in, ''), COALESCE(r.notes, ''), r.is_deleted, r.deleted_at, r.created_at, r.updated_at`

const rentalFrom = `FROM rentals r LEFT JOIN rental_items i ON i.id = r.item_id`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var customerID uuid.NullUUID
	err := row.Scan(&rt.ID, &rt.HubID, &rt.Reference, &rt.ItemID, &rt.ItemName, &rt.CustomerName, &customerID, &rt.Status, &rt.StartDate, &rt.EndDate, &rt.Total, &rt.DepositAmount, &rt.DepositPaid, &rt.DepositReturned, &rt.ConditionOut, &rt.ConditionIn, &rt.Notes, &rt.IsDeleted, &rt.DeletedAt, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		rt.CustomerID = &customerID.UUID
	}
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	if rt.Status == "" {
		rt.Status = domain.RentalStatusReserved
	}
	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	var customerID uuid.NullUUID
	if rt.CustomerID != nil {
		customerID = uuid.NullUUID{UUID: *rt.CustomerID, Valid: true}
	}
	query := `INSERT INTO rentals (id, hub_id, reference, item_id, customer_name, customer_id, status, start_date, end_date, total, deposit_amount, deposit_paid, deposit_returned, condition_out, condition_in, notes, is_deleted, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, FALSE, $17, $18)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.HubID, rt.Reference, rt.ItemID, rt.CustomerName, customerID, rt.Status, rt.StartDate, rt.EndDate, rt.Total, rt.DepositAmount, rt.DepositPaid, rt.DepositReturned, rt.ConditionOut, rt.ConditionIn, rt.Notes, rt.CreatedAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` ` + rentalFrom + ` WHERE r.id = $1 AND r.hub_id = $2 AND r.is_deleted = FALSE`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id, hubID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	rt.UpdatedAt = time.Now().UTC()
	var customerID uuid.NullUUID
	if rt.CustomerID != nil {
		customerID = uuid.NullUUID{UUID: *rt.CustomerID, Valid: true}
	}
	query := `UPDATE rentals SET reference=$1, item_id=$2, customer_name=$3, customer_id=$4, status=$5, start_date=$6, end_date=$7, total=$8, deposit_amount=$9, deposit_paid=$10, deposit_returned=$11, condition_out=$12, condition_in=$13, notes=$14, updated_at=$15
	          WHERE id=$16 AND hub_id=$17 AND is_deleted=FALSE`
	res, err := r.db.ExecContext(ctx, query, rt.Reference, rt.ItemID, rt.CustomerName, customerID, rt.Status, rt.StartDate, rt.EndDate, rt.Total, rt.DepositAmount, rt.DepositPaid, rt.DepositReturned, rt.ConditionOut, rt.ConditionIn, rt.Notes, rt.UpdatedAt, rt.ID, rt.HubID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) SoftDelete(ctx context.Context, hubID, id uuid.UUID) error {
	now := time.Now().UTC()
	query := `UPDATE rentals SET is_deleted=TRUE, deleted_at=$1, updated_at=$1 WHERE id=$2 AND hub_id=$3 AND is_deleted=FALSE`
	res, err := r.db.ExecContext(ctx, query, now, id, hubID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func rentalFilter(hubID uuid.UUID, search string) (string, []any) {
	where := `WHERE r.hub_id = $1 AND r.is_deleted = FALSE`
	args := []any{hubID}
	if search != "" {
		where += ` AND (r.reference ILIKE $2 OR r.customer_name ILIKE $2 OR r.status ILIKE $2 OR r.notes ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	return where, args
}

func (r *rentalRepository) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error) {
	q.Normalize()
	where, args := rentalFilter(hubID, q.Search)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals r `+where, args...).Scan(&count); err != nil {
		return nil, domain.PageMeta{}, err
	}
	meta := domain.NewPageMeta(q, count)

	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		rentalColumns, rentalFrom, where, orderClause(rentalSortFields, q.SortField, rentalDefaultSort, q.SortDir), len(args)+1, len(args)+2)
	args = append(args, meta.PerPage, (meta.Page-1)*meta.PerPage)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, domain.PageMeta{}, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, meta, rows.Err()
}

func (r *rentalRepository) ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, error) {
	q.Normalize()
	where, args := rentalFilter(hubID, q.Search)
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY %s`,
		rentalColumns, rentalFrom, where, orderClause(rentalSortFields, q.SortField, rentalDefaultSort, q.SortDir))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

// ListAllRecords includes soft-deleted rows. Administrative recovery only.
func (r *rentalRepository) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` ` + rentalFrom + ` WHERE r.hub_id = $1 ORDER BY r.created_at`
	rows, err := r.db.QueryContext(ctx, query, hubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListRecent(ctx context.Context, hubID uuid.UUID, status domain.RentalStatus, limit int) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` ` + rentalFrom + ` WHERE r.hub_id = $1 AND r.is_deleted = FALSE`
	args := []any{hubID}
	if status != "" {
		query += fmt.Sprintf(` AND r.status = $%d`, len(args)+1)
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY r.start_date DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListCurrentForItem(ctx context.Context, hubID, itemID uuid.UUID, limit int) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` ` + rentalFrom + ` WHERE r.hub_id = $1 AND r.item_id = $2 AND r.is_deleted = FALSE AND r.status = ANY($3) ORDER BY r.start_date DESC LIMIT $4`
	rows, err := r.db.QueryContext(ctx, query, hubID, itemID, pq.Array([]string{string(domain.RentalStatusActive), string(domain.RentalStatusReserved)}), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE rentals SET is_deleted=TRUE, deleted_at=$1, updated_at=$1 WHERE hub_id=$2 AND is_deleted=FALSE AND id = ANY($3)`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), hubID, pq.Array(ids))
	return err
}

func (r *rentalRepository) Count(ctx context.Context, hubID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE hub_id = $1 AND is_deleted = FALSE`, hubID).Scan(&count)
	return count, err
}
