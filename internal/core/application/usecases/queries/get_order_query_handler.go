package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's detail view, joining the
// customer's contact data and loading all lines with their itemized garments.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its lines.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_id,
			c.name,
			c.phone,
			o.payment_method,
			o.payment_status,
			o.payment_proof_key,
			o.total,
			o.total_weight,
			o.status,
			o.estimated_completion,
			o.notes,
			o.created_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var customerName, customerPhone sql.NullString

	err := row.Scan(
		&id,
		&resp.Number,
		&customerID,
		&customerName,
		&customerPhone,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.PaymentProofKey,
		&resp.Total,
		&resp.TotalWeight,
		&resp.Status,
		&resp.EstimatedCompletion,
		&resp.Notes,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	respCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = respID
	resp.CustomerID = respCustomerID
	resp.CustomerName = customerName.String
	resp.CustomerPhone = customerPhone.String
	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context, orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			service_id,
			service_name,
			weight_based,
			quantity,
			weight,
			unit_price,
			subtotal,
			notes,
			custom_items
		FROM order_lines
		WHERE order_id = ?
		ORDER BY line_no ASC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		var serviceID uuid.UUID
		var rawItems []byte

		err = rows.Scan(
			&serviceID,
			&line.ServiceName,
			&line.WeightBased,
			&line.Quantity,
			&line.Weight,
			&line.UnitPrice,
			&line.Subtotal,
			&line.Notes,
			&rawItems,
		)
		if err != nil {
			return nil, err
		}

		lineServiceID, idErr := kernel.UUIDFromBytes(serviceID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ServiceID = lineServiceID

		line.CustomItems = make([]OrderCustomItemResponse, 0)
		if len(rawItems) > 0 {
			if err = json.Unmarshal(rawItems, &line.CustomItems); err != nil {
				return nil, err
			}
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
