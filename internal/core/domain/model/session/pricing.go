package session

import (
	"math"

	"laundry/internal/core/domain/model/kernel"
)

// Totals are the derived figures of a session. They are recomputed from the
// selection set on every mutation and carry no state of their own.
type Totals struct {
	// Subtotal is the sum of all selection subtotals.
	Subtotal kernel.Money

	// Total is the amount the customer pays. Currently equal to Subtotal;
	// it exists as a separate figure so discounts and surcharges have a
	// place to land.
	Total kernel.Money

	// TotalWeight is the summed weight of weight-based selections in
	// kilograms, rounded to one decimal.
	TotalWeight float64

	// TotalItemCount is the number of itemized garments across all
	// selections.
	TotalItemCount int
}

// Totals returns the derived figures for the current selection set.
func (s Session) Totals() Totals {
	return s.totals
}

// SelectionSubtotal returns the price of a single selection given the
// session's current customer tier.
func (s Session) SelectionSubtotal(sel Selection) kernel.Money {
	unit := sel.service.EffectivePrice(s.isMember())
	if sel.service.IsWeightBased() {
		return unit.MulWeight(sel.weight)
	}
	return unit.MulQuantity(sel.quantity)
}

// recalculate rebuilds the derived totals from scratch. Called on the new
// snapshot by every mutation that can affect pricing.
func (s *Session) recalculate() {
	var totals Totals

	for _, id := range s.selectionOrder {
		sel := s.selections[id]
		totals.Subtotal = totals.Subtotal.Add(s.SelectionSubtotal(sel))
		if sel.service.IsWeightBased() {
			totals.TotalWeight += sel.weight
		}
		for _, item := range sel.customItems {
			totals.TotalItemCount += item.Quantity()
		}
	}

	totals.TotalWeight = math.Round(totals.TotalWeight*10) / 10
	totals.Total = totals.Subtotal
	s.totals = totals
}
