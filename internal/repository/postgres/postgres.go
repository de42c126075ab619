package postgres

import (
	"database/sql"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalItemRepository
	repository.RentalRepository
	repository.BlackoutRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		RentalItemRepository: NewRentalItemRepository(db),
		RentalRepository:     NewRentalRepository(db),
		BlackoutRepository:   NewBlackoutRepository(db),
	}
}

// orderClause resolves a public sort key through the entity's allow-list map.
// Unknown keys fall back to the entity's default column; the indirection keeps
// untrusted input out of the ORDER BY clause.
func orderClause(allowed map[string]string, field, fallback string, dir domain.SortDirection) string {
	col, ok := allowed[field]
	if !ok {
		col = fallback
	}
	if dir == domain.SortDesc {
		return col + " DESC"
	}
	return col + " ASC"
}
