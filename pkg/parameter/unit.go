package parameter

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the closed set of units the control plane and the engine report
// parameter values in. Memory units normalize to a kilobyte magnitude and
// time units to milliseconds so values from both sources compare.
type Unit string

const (
	UnitScalar Unit = "SCALAR"
	UnitB      Unit = "B"
	UnitKB     Unit = "KB"
	Unit8KB    Unit = "8KB"
	UnitMB     Unit = "MB"
	Unit16MB   Unit = "16MB"
	UnitGB     Unit = "GB"
	UnitMS     Unit = "MS"
	UnitS      Unit = "S"
	UnitMin    Unit = "MIN"
	UnitUnset  Unit = "UNSET"
)

// ParseUnit maps a source-reported unit token to its tag. Unrecognized
// tokens are carried through upper-cased so NormalizeValue can reject them
// by name.
func ParseUnit(s string) Unit {
	return Unit(strings.ToUpper(s))
}

// NormalizeValue scales raw into the canonical magnitude for unit and
// returns it as a decimal string. A nil raw stays nil ("uses engine
// default"), the literal "-1" passes through unscaled ("explicitly
// unlimited"), and a templated value such as {DBInstanceClassMemory/4096}
// normalizes to nil because it is a formula, not a number.
func NormalizeValue(name string, raw *string, unit Unit) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	switch *raw {
	case "-1":
		return raw, nil
	case "off":
		return strPtr("0"), nil
	case "on":
		return strPtr("1"), nil
	}
	if strings.ContainsAny(*raw, "{}") {
		return nil, nil
	}

	switch unit {
	case UnitScalar, UnitKB, UnitMS, UnitB:
		return raw, nil
	case Unit8KB:
		return scale(name, *raw, 8)
	case UnitMB:
		return scale(name, *raw, 1024)
	case Unit16MB:
		return scale(name, *raw, 16*1024)
	case UnitGB:
		return scale(name, *raw, 1024*1024)
	case UnitS:
		return scale(name, *raw, 1000)
	case UnitMin:
		return scale(name, *raw, 60*1000)
	default:
		return nil, &UnsupportedUnitError{Parameter: name, Unit: string(unit)}
	}
}

func scale(name, raw string, factor int64) (*string, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: non-numeric value %q: %w", name, raw, err)
	}
	return strPtr(strconv.FormatInt(n*factor, 10)), nil
}

func strPtr(s string) *string {
	return &s
}
