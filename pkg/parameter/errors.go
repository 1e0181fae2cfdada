package parameter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameterData is returned when a parameter is constructed
	// from absent source data.
	ErrInvalidParameterData = errors.New("parameter constructed from absent source data")

	// ErrUnsupportedAllowedValuesFormat is returned when a control-plane
	// allowed-values field is neither a comma-separated list nor a
	// hyphenated range.
	ErrUnsupportedAllowedValuesFormat = errors.New("unsupported allowed values format")
)

// UnsupportedUnitError reports a unit tag outside the closed set. A missing
// unit is not an error (it defaults to SCALAR); an unrecognized one means
// the unit vocabulary is incomplete and must surface loudly.
type UnsupportedUnitError struct {
	Parameter string
	Unit      string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit %s for parameter %s", e.Unit, e.Parameter)
}
