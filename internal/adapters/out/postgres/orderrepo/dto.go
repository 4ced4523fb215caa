// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the
// active-order board and per-customer history queries.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number              string    `gorm:"uniqueIndex;not null"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	PaymentMethod       string
	PaymentStatus       string `gorm:"index"`
	PaymentProofKey     string
	Total               int64
	TotalWeight         float64
	Status              string `gorm:"index"`
	EstimatedCompletion time.Time
	Notes               string
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time

	Lines []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one billed service of an order. Lines are immutable
// after creation; their position is kept so reconstruction preserves the
// selection order.
type LineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo      int       `gorm:"primaryKey"`
	ServiceID   uuid.UUID `gorm:"type:uuid"`
	ServiceName string
	WeightBased bool
	Quantity    int
	Weight      float64
	UnitPrice   int64
	Subtotal    int64
	Notes       string
	CustomItems []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// customItemJSON is the jsonb shape of an itemized garment.
type customItemJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for i, line := range lines {
		items := line.CustomItems()
		itemJSON := make([]customItemJSON, 0, len(items))
		for _, item := range items {
			itemJSON = append(itemJSON, customItemJSON{
				ID:       item.ID(),
				Name:     item.Name(),
				Quantity: item.Quantity(),
			})
		}
		raw, err := json.Marshal(itemJSON)
		if err != nil {
			return OrderDTO{}, err
		}

		lineDTOs = append(lineDTOs, LineDTO{
			OrderID:     aggregate.ID().Bytes(),
			LineNo:      i,
			ServiceID:   line.ServiceID().Bytes(),
			ServiceName: line.ServiceName(),
			WeightBased: line.IsWeightBased(),
			Quantity:    line.Quantity(),
			Weight:      line.Weight(),
			UnitPrice:   line.UnitPrice().Amount(),
			Subtotal:    line.Subtotal().Amount(),
			Notes:       line.Notes(),
			CustomItems: raw,
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		PaymentProofKey:     aggregate.PaymentProofKey(),
		Total:               aggregate.Total().Amount(),
		TotalWeight:         aggregate.TotalWeight(),
		Status:              aggregate.Status().String(),
		EstimatedCompletion: aggregate.EstimatedCompletion(),
		Notes:               aggregate.Notes(),
		CreatedAt:           aggregate.CreatedAt(),
		Lines:               lineDTOs,
	}, nil
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, so stored orders skip creation-time checks such as the
// future-estimate rule.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		lines,
		method,
		paymentStatus,
		dto.PaymentProofKey,
		status,
		dto.EstimatedCompletion,
		dto.Notes,
		dto.CreatedAt,
	)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	var itemJSON []customItemJSON
	if len(dto.CustomItems) > 0 {
		if err = json.Unmarshal(dto.CustomItems, &itemJSON); err != nil {
			return order.Line{}, err
		}
	}

	items := make([]order.CustomItem, 0, len(itemJSON))
	for _, raw := range itemJSON {
		item, itemErr := order.NewCustomItem(raw.ID, raw.Name, raw.Quantity)
		if itemErr != nil {
			return order.Line{}, itemErr
		}
		items = append(items, item)
	}

	return order.NewLine(
		serviceID,
		dto.ServiceName,
		dto.WeightBased,
		dto.Quantity,
		dto.Weight,
		unitPrice,
		dto.Notes,
		items,
	)
}
