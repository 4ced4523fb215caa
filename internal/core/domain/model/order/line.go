package order

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// CustomItem is an ad hoc named line (e.g. "shirt") nested under an order
// line, used for itemized tracking. Custom items do not affect pricing; they
// only drive the order's item count.
type CustomItem struct {
	id       string
	name     string
	quantity int
}

// NewCustomItem creates a custom item. The id is caller-generated and must be
// non-empty; quantity must be at least 1. The name is freeform and may be
// empty.
func NewCustomItem(id, name string, quantity int) (CustomItem, error) {
	if id == "" {
		return CustomItem{}, errs.NewValueIsRequiredError("custom item id")
	}
	if quantity < 1 {
		return CustomItem{}, errs.NewValueIsInvalidErrorWithCause(
			"custom item quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	return CustomItem{id: id, name: name, quantity: quantity}, nil
}

// ID returns the custom item's identifier.
func (i CustomItem) ID() string {
	return i.id
}

// Name returns the freeform item name.
func (i CustomItem) Name() string {
	return i.name
}

// Quantity returns the item count, always at least 1.
func (i CustomItem) Quantity() int {
	return i.quantity
}

// Line is one service position on an order, carrying a snapshot of the unit
// price at creation time so later catalog changes do not affect the order.
//
// For weight-based services the subtotal is unit price times weight; for
// per-item services it is unit price times quantity.
type Line struct {
	serviceID   kernel.UUID
	serviceName string
	weightBased bool
	quantity    int
	weight      float64
	unitPrice   kernel.Money
	subtotal    kernel.Money
	notes       string
	customItems []CustomItem
}

// NewLine creates an order line and computes its subtotal.
//
// Quantity must be at least 1. Weight-based lines require a positive weight;
// for per-item lines the weight is ignored and stored as zero.
func NewLine(
	serviceID kernel.UUID,
	serviceName string,
	weightBased bool,
	quantity int,
	weight float64,
	unitPrice kernel.Money,
	notes string,
	customItems []CustomItem,
) (Line, error) {
	if err := serviceID.Validate(); err != nil {
		return Line{}, err
	}
	if serviceName == "" {
		return Line{}, errs.NewValueIsRequiredError("service name")
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"line quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	line := Line{
		serviceID:   serviceID,
		serviceName: serviceName,
		weightBased: weightBased,
		quantity:    quantity,
		unitPrice:   unitPrice,
		notes:       notes,
		customItems: append([]CustomItem(nil), customItems...),
	}

	if weightBased {
		if weight <= 0 {
			return Line{}, errs.NewValueIsInvalidErrorWithCause(
				"line weight is invalid",
				fmt.Errorf("%v is not positive for weight-based service %s", weight, serviceName),
			)
		}
		line.weight = weight
		line.subtotal = unitPrice.MulWeight(weight)
	} else {
		line.subtotal = unitPrice.MulQuantity(quantity)
	}

	return line, nil
}

// ServiceID returns the identifier of the service this line bills.
func (l Line) ServiceID() kernel.UUID {
	return l.serviceID
}

// ServiceName returns the service name snapshot taken at creation.
func (l Line) ServiceName() string {
	return l.serviceName
}

// IsWeightBased reports whether the line prices by weight.
func (l Line) IsWeightBased() bool {
	return l.weightBased
}

// Quantity returns the line's item quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Weight returns the line's weight in kilograms; zero for per-item lines.
func (l Line) Weight() float64 {
	return l.weight
}

// UnitPrice returns the unit price snapshot taken at creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns the line subtotal.
func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}

// Notes returns the freeform line notes.
func (l Line) Notes() string {
	return l.notes
}

// CustomItems returns a copy of the line's custom items.
func (l Line) CustomItems() []CustomItem {
	return append([]CustomItem(nil), l.customItems...)
}

// ItemCount returns the sum of custom item quantities on this line.
// A line without custom items counts as zero regardless of its own quantity.
func (l Line) ItemCount() int {
	count := 0
	for _, item := range l.customItems {
		count += item.quantity
	}
	return count
}
