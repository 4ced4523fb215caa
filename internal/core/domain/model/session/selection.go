package session

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Quantity bounds applied to every selected service.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

// Defaults applied when a service is first selected.
const (
	defaultQuantity = 1
	defaultWeight   = 1.0
)

// Selection holds the per-service attributes of one selected catalog entry.
// The catalog service itself is captured so pricing and clamping stay
// consistent with what the operator saw at selection time.
type Selection struct {
	service     *catalog.Service
	quantity    int
	weight      float64
	notes       string
	customItems []order.CustomItem
}

// Service returns the catalog entry this selection refers to.
func (sel Selection) Service() *catalog.Service {
	return sel.service
}

// Quantity returns the selected quantity, always within [MinQuantity, MaxQuantity].
func (sel Selection) Quantity() int {
	return sel.quantity
}

// Weight returns the selected weight in kilograms. For services that are not
// weight based the value is carried but does not affect pricing.
func (sel Selection) Weight() float64 {
	return sel.weight
}

// Notes returns the per-service note.
func (sel Selection) Notes() string {
	return sel.notes
}

// CustomItems returns a copy of the itemized garments for this selection.
func (sel Selection) CustomItems() []order.CustomItem {
	return append([]order.CustomItem(nil), sel.customItems...)
}

// Selections returns the current selections in the order the services were
// picked.
func (s Session) Selections() []Selection {
	out := make([]Selection, 0, len(s.selectionOrder))
	for _, id := range s.selectionOrder {
		out = append(out, s.selections[id])
	}
	return out
}

// IsSelected reports whether the given service is part of the order.
func (s Session) IsSelected(serviceID kernel.UUID) bool {
	_, ok := s.selections[serviceID]
	return ok
}

// ToggleService adds the service with default attributes when it is not yet
// selected and removes it together with all its attributes otherwise.
func (s Session) ToggleService(svc *catalog.Service) (Session, error) {
	if err := svc.Validate(); err != nil {
		return s, err
	}

	next := s.clone()
	next.errMsg = ""

	if _, ok := next.selections[svc.ID()]; ok {
		delete(next.selections, svc.ID())
		for i, id := range next.selectionOrder {
			if id.IsEqual(svc.ID()) {
				next.selectionOrder = append(next.selectionOrder[:i], next.selectionOrder[i+1:]...)
				break
			}
		}
		next.recalculate()
		return next, nil
	}

	sel := Selection{
		service:  svc,
		quantity: defaultQuantity,
	}
	if svc.IsWeightBased() {
		sel.weight = defaultWeight
	}
	next.selections[svc.ID()] = sel
	next.selectionOrder = append(next.selectionOrder, svc.ID())
	next.recalculate()
	return next, nil
}

// UpdateWeight sets the weight of a selected service. Weight-based services
// are clamped into their configured bounds; for other services the raw value
// is stored unchanged.
func (s Session) UpdateWeight(serviceID kernel.UUID, weight float64) (Session, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	next := s.clone()
	if sel.service.IsWeightBased() {
		sel.weight = sel.service.ClampWeight(weight)
	} else {
		sel.weight = weight
	}
	sel.customItems = append([]order.CustomItem(nil), sel.customItems...)
	next.selections[serviceID] = sel
	next.recalculate()
	return next, nil
}

// UpdateQuantity sets the quantity of a selected service, clamped into
// [MinQuantity, MaxQuantity].
func (s Session) UpdateQuantity(serviceID kernel.UUID, quantity int) (Session, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	next := s.clone()
	sel.quantity = quantity
	sel.customItems = append([]order.CustomItem(nil), sel.customItems...)
	next.selections[serviceID] = sel
	next.recalculate()
	return next, nil
}

// UpdateServiceNotes replaces the note of a selected service.
func (s Session) UpdateServiceNotes(serviceID kernel.UUID, notes string) (Session, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	next := s.clone()
	sel.notes = notes
	sel.customItems = append([]order.CustomItem(nil), sel.customItems...)
	next.selections[serviceID] = sel
	return next, nil
}

// AddCustomItem appends an empty itemized garment with quantity one to a
// selected service and returns the generated item identifier.
func (s Session) AddCustomItem(serviceID kernel.UUID) (Session, string, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, "", errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	id := newCustomItemID()
	item, err := order.NewCustomItem(id, "", 1)
	if err != nil {
		return s, "", err
	}

	next := s.clone()
	sel.customItems = append(append([]order.CustomItem(nil), sel.customItems...), item)
	next.selections[serviceID] = sel
	next.recalculate()
	return next, id, nil
}

// UpdateCustomItem renames an itemized garment or changes its quantity.
// Quantities below one are clamped to one.
func (s Session) UpdateCustomItem(
	serviceID kernel.UUID,
	itemID string,
	name string,
	quantity int,
) (Session, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	if quantity < 1 {
		quantity = 1
	}

	items := append([]order.CustomItem(nil), sel.customItems...)
	for i, item := range items {
		if item.ID() != itemID {
			continue
		}
		updated, err := order.NewCustomItem(itemID, name, quantity)
		if err != nil {
			return s, err
		}
		items[i] = updated

		next := s.clone()
		sel.customItems = items
		next.selections[serviceID] = sel
		next.recalculate()
		return next, nil
	}

	return s, errs.NewObjectNotFoundError("itemID", itemID)
}

// RemoveCustomItem deletes an itemized garment from a selected service.
func (s Session) RemoveCustomItem(serviceID kernel.UUID, itemID string) (Session, error) {
	sel, ok := s.selections[serviceID]
	if !ok {
		return s, errs.NewObjectNotFoundError("serviceID", serviceID)
	}

	items := make([]order.CustomItem, 0, len(sel.customItems))
	for _, item := range sel.customItems {
		if item.ID() != itemID {
			items = append(items, item)
		}
	}
	if len(items) == len(sel.customItems) {
		return s, errs.NewObjectNotFoundError("itemID", itemID)
	}

	next := s.clone()
	sel.customItems = items
	next.selections[serviceID] = sel
	next.recalculate()
	return next, nil
}

// newCustomItemID builds an identifier that is unique within a session from
// the clock and a random component.
func newCustomItemID() string {
	return fmt.Sprintf("%s-%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		strconv.FormatInt(rand.Int64N(1<<31), 36),
	)
}
