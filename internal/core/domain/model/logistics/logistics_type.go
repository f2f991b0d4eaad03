package logistics

import (
	"fmt"

	"onboarding/internal/pkg/errs"
)

// LogisticsType is the delivery-capability category of a courier's vehicle.
type LogisticsType int

const (
	// UnknownType represents an invalid or undefined logistics type.
	UnknownType LogisticsType = iota

	// Bicycle covers pedal bicycles.
	Bicycle

	// Motorbike covers motorcycles and scooters.
	Motorbike

	// Tricycle covers cargo tricycles.
	Tricycle

	// Car covers cars and light vans.
	Car
)

func getTypeStrings() map[LogisticsType]string {
	return map[LogisticsType]string{
		UnknownType: "Unknown",
		Bicycle:     "Bicycle",
		Motorbike:   "Motorbike",
		Tricycle:    "Tricycle",
		Car:         "Car",
	}
}

func getValidTypeStrings() map[LogisticsType]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[LogisticsType]string{
		Bicycle:   "Bicycle",
		Motorbike: "Motorbike",
		Tricycle:  "Tricycle",
		Car:       "Car",
	}
}

// TypeFromString parses a logistics type from its string representation.
// Used when reconstructing profiles from persistence and when applying
// staged profile updates. Returns an error for unknown strings.
func TypeFromString(s string) (LogisticsType, error) {
	for lt, str := range getValidTypeStrings() {
		if str == s {
			return lt, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"logistics type", fmt.Errorf("%q is not a valid logistics type", s))
}

// Validate checks if the LogisticsType value is valid.
func (lt LogisticsType) Validate() error {
	if _, ok := getValidTypeStrings()[lt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"logistics type is invalid", fmt.Errorf("%d is not a valid logistics type", lt))
	}
	return nil
}

// String returns the human-readable name of the logistics type.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (lt LogisticsType) String() string {
	if str, ok := getTypeStrings()[lt]; ok {
		return str
	}
	return "Unknown"
}
