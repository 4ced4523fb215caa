package customer

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Type is the customer tier. It determines pricing (members may get a
// discounted per-service price) and payment options (only members can pay
// from a deposit balance).
type Type int

const (
	// UnknownType represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Regular is a walk-in customer without a deposit balance.
	Regular

	// Member is a registered customer carrying a prepaid deposit balance
	// and eligible for member pricing.
	Member
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Regular:     "regular",
		Member:      "member",
	}
}

// Validate checks that the tier is one of the defined values.
func (t Type) Validate() error {
	if t != Regular && t != Member {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer type is invalid",
			fmt.Errorf("%d is not a valid customer type", t),
		)
	}
	return nil
}

// String returns the lowercase tier name used in persistence and the API.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TypeFromString parses a tier name as used in the API and persistence.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "regular":
		return Regular, nil
	case "member":
		return Member, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause(
			"customer type is invalid",
			fmt.Errorf("%q is not a valid customer type", s),
		)
	}
}
