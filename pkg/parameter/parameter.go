package parameter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// EngineDefault is the value a parameter group reports for an entry it does
// not set explicitly.
const EngineDefault = "Engine default"

// Unknown is the display placeholder for an undefined value.
const Unknown = "Unknown"

// maxSettingLen caps engine-reported values against unexpectedly long text
// settings.
const maxSettingLen = 50

// Parameter is one named configuration setting at a point in time.
// Implementations are immutable value objects; the name is the sole key
// used for cross-collection matching.
type Parameter interface {
	Name() string

	// Value returns the raw value as reported by the source, or nil when
	// the source carries none.
	Value() *string

	Unit() Unit

	IsModifiable() bool

	// AllowedValues returns the permitted values as either a discrete list
	// or a [min, max] pair, or nil when not applicable.
	AllowedValues() ([]string, error)

	// Normalize converts the raw value into the canonical magnitude for
	// this parameter's unit.
	Normalize() (*string, error)
}

// Equal reports whether two parameters carry the same name, unit and raw
// value. Modifiability and allowed values are not part of equality.
func Equal(a, b Parameter) bool {
	if a.Name() != b.Name() || a.Unit() != b.Unit() {
		return false
	}
	av, bv := a.Value(), b.Value()
	switch {
	case av == nil && bv == nil:
		return true
	case av == nil || bv == nil:
		return false
	default:
		return *av == *bv
	}
}

// Display renders a possibly-undefined value for output.
func Display(v *string) string {
	if v == nil {
		return Unknown
	}
	return *v
}

// unitToken matches the leading parenthesized unit of a control-plane
// description, e.g. "(8kB) Sets the number of disk-page buffers ...".
var unitToken = regexp.MustCompile(`^\(([^)]*)\)`)

// RDSParameter is a parameter entry read from a DB parameter group via the
// control plane.
type RDSParameter struct {
	data types.Parameter
}

func NewRDSParameter(data *types.Parameter) (*RDSParameter, error) {
	if data == nil || data.ParameterName == nil {
		return nil, ErrInvalidParameterData
	}
	return &RDSParameter{data: *data}, nil
}

func (p *RDSParameter) Name() string {
	return *p.data.ParameterName
}

// Value returns the configured value, or the EngineDefault literal when the
// group carries no explicit value for this entry.
func (p *RDSParameter) Value() *string {
	if p.data.ParameterValue == nil {
		return strPtr(EngineDefault)
	}
	return p.data.ParameterValue
}

// Unit extracts the unit the control plane encodes in the leading
// parenthesized token of the description field. No token means SCALAR.
func (p *RDSParameter) Unit() Unit {
	if p.data.Description == nil {
		return UnitScalar
	}
	m := unitToken.FindStringSubmatch(*p.data.Description)
	if m == nil {
		return UnitScalar
	}
	return ParseUnit(m[1])
}

func (p *RDSParameter) DataType() string {
	return aws.ToString(p.data.DataType)
}

func (p *RDSParameter) IsModifiable() bool {
	return aws.ToBool(p.data.IsModifiable)
}

// AllowedValues parses the control-plane allowed-values field: either a
// comma-separated discrete list or a min-max range. A range with a negative
// lower bound also contains a hyphen ("-1-262143"), so the leading sign is
// handled before splitting.
func (p *RDSParameter) AllowedValues() ([]string, error) {
	if !p.IsModifiable() {
		return nil, nil
	}
	av := aws.ToString(p.data.AllowedValues)
	switch {
	case strings.Contains(av, ","):
		return strings.Split(av, ","), nil
	case strings.Contains(av, "-"):
		body := av
		negative := strings.HasPrefix(av, "-")
		if negative {
			body = av[1:]
		}
		bounds := strings.Split(body, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedAllowedValuesFormat, av)
		}
		if negative {
			bounds[0] = "-" + bounds[0]
		}
		return bounds, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAllowedValuesFormat, av)
	}
}

// Normalize converts the configured value. An entry without an explicit
// value normalizes to nil ("uses engine default"); the EngineDefault
// literal is display-only and never reaches the converter.
func (p *RDSParameter) Normalize() (*string, error) {
	return NormalizeValue(p.Name(), p.data.ParameterValue, p.Unit())
}

// SettingRow is one row of a running engine's settings table. Unit and the
// bounds are nullable there.
type SettingRow struct {
	Name     string
	Setting  string
	Unit     *string
	MinValue *string
	MaxValue *string
}

// EngineParameter is a live setting read from a running engine's settings
// view. Engine introspection is read-only in this model, so it is never
// modifiable.
type EngineParameter struct {
	row SettingRow
}

func NewEngineParameter(row *SettingRow) (*EngineParameter, error) {
	if row == nil || row.Name == "" {
		return nil, ErrInvalidParameterData
	}
	return &EngineParameter{row: *row}, nil
}

func (p *EngineParameter) Name() string {
	return p.row.Name
}

// Value returns the current setting, capped at 50 characters.
func (p *EngineParameter) Value() *string {
	v := p.row.Setting
	if runes := []rune(v); len(runes) > maxSettingLen {
		v = string(runes[:maxSettingLen])
	}
	return &v
}

func (p *EngineParameter) Unit() Unit {
	if p.row.Unit == nil {
		return UnitScalar
	}
	return ParseUnit(*p.row.Unit)
}

func (p *EngineParameter) IsModifiable() bool {
	return false
}

// AllowedValues returns the engine-declared [min, max] bounds.
func (p *EngineParameter) AllowedValues() ([]string, error) {
	return []string{aws.ToString(p.row.MinValue), aws.ToString(p.row.MaxValue)}, nil
}

func (p *EngineParameter) Normalize() (*string, error) {
	return NormalizeValue(p.Name(), p.Value(), p.Unit())
}

// UnknownParameter stands in for a name with no match in a comparison
// collection. It carries the name and nothing else, and compares unequal
// to any parameter with a defined value.
type UnknownParameter struct {
	name string
}

func NewUnknownParameter(name string) *UnknownParameter {
	return &UnknownParameter{name: name}
}

func (p *UnknownParameter) Name() string {
	return p.name
}

func (p *UnknownParameter) Value() *string {
	return nil
}

func (p *UnknownParameter) Unit() Unit {
	return UnitUnset
}

func (p *UnknownParameter) IsModifiable() bool {
	return false
}

func (p *UnknownParameter) AllowedValues() ([]string, error) {
	return []string{}, nil
}

func (p *UnknownParameter) Normalize() (*string, error) {
	return nil, nil
}
