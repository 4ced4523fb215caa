package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service instance was not
	// created through NewService or RestoreService.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")
)

// Default weight bounds, applied when a weight-based service does not
// specify its own.
const (
	DefaultMinWeight = 0.1
	DefaultMaxWeight = 50.0
)

// Service is a sellable laundry service.
//
// Service follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and category
//   - Weight-based services carry weight bounds with 0 < min < max
//   - Member price, when defined, is never higher than the standard price
type Service struct {
	id       kernel.UUID
	name     string
	category string

	// price is the standard per-kg or per-item price
	price kernel.Money

	// memberPrice is the discounted price for members (nil if none defined)
	memberPrice *kernel.Money

	// weightBased services price by kilograms; others price by item count
	weightBased bool

	minWeight float64
	maxWeight float64

	// durationHours is the advertised turnaround time
	durationHours int

	isConstructed bool
}

// NewService creates a new catalog Service.
// For weight-based services, zero minWeight/maxWeight select the defaults
// (0.1kg and 50kg). Non-weight-based services ignore the weight bounds.
func NewService(
	id kernel.UUID,
	name, category string,
	price kernel.Money,
	memberPrice *kernel.Money,
	weightBased bool,
	minWeight, maxWeight float64,
	durationHours int,
) (*Service, error) {
	s := &Service{
		weightBased:   weightBased,
		durationHours: durationHours,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setCategory(category),
		s.setPrices(price, memberPrice),
		s.setWeightBounds(minWeight, maxWeight),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a Service from persistence.
func RestoreService(
	id kernel.UUID,
	name, category string,
	price kernel.Money,
	memberPrice *kernel.Money,
	weightBased bool,
	minWeight, maxWeight float64,
	durationHours int,
) (*Service, error) {
	return NewService(id, name, category, price, memberPrice, weightBased, minWeight, maxWeight, durationHours)
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two services by their unique identifiers.
func (s *Service) IsEqual(other *Service) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the service's display name.
func (s *Service) Name() string {
	return s.name
}

// Category returns the service's catalog category.
func (s *Service) Category() string {
	return s.category
}

// Price returns the standard price.
func (s *Service) Price() kernel.Money {
	return s.price
}

// MemberPrice returns the member price, or nil when none is defined.
func (s *Service) MemberPrice() *kernel.Money {
	if s.memberPrice == nil {
		return nil
	}
	p := *s.memberPrice
	return &p
}

// IsWeightBased reports whether the service prices by kilograms.
func (s *Service) IsWeightBased() bool {
	return s.weightBased
}

// MinWeight returns the lower weight bound in kilograms.
// Meaningful only for weight-based services.
func (s *Service) MinWeight() float64 {
	return s.minWeight
}

// MaxWeight returns the upper weight bound in kilograms.
// Meaningful only for weight-based services.
func (s *Service) MaxWeight() float64 {
	return s.maxWeight
}

// DurationHours returns the advertised turnaround time.
func (s *Service) DurationHours() int {
	return s.durationHours
}

// EffectivePrice returns the unit price a given customer tier pays:
// the member price when the customer is a member and the service defines one,
// the standard price otherwise.
func (s *Service) EffectivePrice(member bool) kernel.Money {
	if member && s.memberPrice != nil {
		return *s.memberPrice
	}
	return s.price
}

// ClampWeight forces a weight into the service's [MinWeight, MaxWeight]
// interval. For non-weight-based services the value is returned unchanged;
// it has no pricing effect there.
func (s *Service) ClampWeight(weight float64) float64 {
	if !s.weightBased {
		return weight
	}
	if weight < s.minWeight {
		return s.minWeight
	}
	if weight > s.maxWeight {
		return s.maxWeight
	}
	return weight
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	s.name = name
	return nil
}

func (s *Service) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("service category")
	}
	s.category = category
	return nil
}

func (s *Service) setPrices(price kernel.Money, memberPrice *kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("service price")
	}
	if memberPrice != nil && !price.GreaterOrEqual(*memberPrice) {
		return errs.NewValueIsInvalidErrorWithCause(
			"member price is invalid",
			fmt.Errorf("member price %s exceeds standard price %s", memberPrice, price),
		)
	}

	s.price = price
	if memberPrice != nil {
		p := *memberPrice
		s.memberPrice = &p
	}
	return nil
}

func (s *Service) setWeightBounds(minWeight, maxWeight float64) error {
	if !s.weightBased {
		return nil
	}

	if minWeight == 0 {
		minWeight = DefaultMinWeight
	}
	if maxWeight == 0 {
		maxWeight = DefaultMaxWeight
	}

	if minWeight < 0 || maxWeight <= minWeight {
		return errs.NewValueIsOutOfRangeError("service weight bounds", minWeight, 0, maxWeight)
	}

	s.minWeight = minWeight
	s.maxWeight = maxWeight
	return nil
}

// GroupByCategory builds the derived category view over a flat service list.
// Input order is preserved within each category. The returned map and slices
// are fresh copies; mutating them does not affect the catalog.
func GroupByCategory(services []*Service) map[string][]*Service {
	grouped := make(map[string][]*Service)
	for _, svc := range services {
		grouped[svc.Category()] = append(grouped[svc.Category()], svc)
	}
	return grouped
}
