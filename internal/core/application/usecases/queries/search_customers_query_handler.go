package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchCustomersQueryHandler resolves customer searches against the database.
// Matches name fragments case-insensitively and phone fragments literally.
type SearchCustomersQueryHandler struct {
	db *gorm.DB
}

// NewSearchCustomersQueryHandler creates a handler for customer searches.
// Requires a GORM database connection for query execution.
func NewSearchCustomersQueryHandler(db *gorm.DB) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{db: db}
}

// Handle executes the search. Results are sorted by name; an empty term
// returns the full customer list.
func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) ([]SearchCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	sqlQuery := `
		SELECT id, name, phone, address, tier, balance
		FROM customers
	`
	args := make([]any, 0, 2)
	if query.Term() != "" {
		sqlQuery += ` WHERE name ILIKE ? OR phone LIKE ?`
		pattern := "%" + query.Term() + "%"
		args = append(args, pattern, pattern)
	}
	sqlQuery += ` ORDER BY name ASC`

	rows, err := db.Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]SearchCustomersQueryResponse, 0)
	for rows.Next() {
		var resp SearchCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Address,
			&resp.Tier,
			&resp.Balance,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = customerID
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
