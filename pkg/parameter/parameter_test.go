package parameter

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/stretchr/testify/require"
)

func rdsEntry(t *testing.T, entry types.Parameter) *RDSParameter {
	t.Helper()
	p, err := NewRDSParameter(&entry)
	require.NoError(t, err)
	return p
}

func engineRow(t *testing.T, row SettingRow) *EngineParameter {
	t.Helper()
	p, err := NewEngineParameter(&row)
	require.NoError(t, err)
	return p
}

func TestNewRDSParameterInvalidData(t *testing.T) {
	_, err := NewRDSParameter(nil)
	require.ErrorIs(t, err, ErrInvalidParameterData)

	_, err = NewRDSParameter(&types.Parameter{})
	require.ErrorIs(t, err, ErrInvalidParameterData)
}

func TestNewEngineParameterInvalidData(t *testing.T) {
	_, err := NewEngineParameter(nil)
	require.ErrorIs(t, err, ErrInvalidParameterData)

	_, err = NewEngineParameter(&SettingRow{})
	require.ErrorIs(t, err, ErrInvalidParameterData)
}

func TestRDSParameterValueDefaultsToEngineDefault(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName: aws.String("autovacuum"),
	})
	require.Equal(t, EngineDefault, *p.Value())

	p = rdsEntry(t, types.Parameter{
		ParameterName:  aws.String("autovacuum"),
		ParameterValue: aws.String("1"),
	})
	require.Equal(t, "1", *p.Value())
}

func TestRDSParameterUnitFromDescription(t *testing.T) {
	cases := []struct {
		description string
		want        Unit
	}{
		{"(8kB) Sets the number of disk-page buffers in shared memory for WAL.", Unit8KB},
		{"(ms) Sets the maximum allowed duration of any statement.", UnitMS},
		{"(s) Sets the maximum allowed duration of any wait for a lock.", UnitS},
		{"Enables the planner's use of sequential-scan plans.", UnitScalar},
	}
	for _, tc := range cases {
		p := rdsEntry(t, types.Parameter{
			ParameterName: aws.String("some_param"),
			Description:   aws.String(tc.description),
		})
		require.Equal(t, tc.want, p.Unit(), tc.description)
	}

	// No description at all also means SCALAR.
	p := rdsEntry(t, types.Parameter{ParameterName: aws.String("some_param")})
	require.Equal(t, UnitScalar, p.Unit())
}

func TestRDSParameterAllowedValues(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName: aws.String("wal_buffers"),
		AllowedValues: aws.String("-1-262143"),
		IsModifiable:  aws.Bool(true),
	})
	values, err := p.AllowedValues()
	require.NoError(t, err)
	require.Equal(t, []string{"-1", "262143"}, values)

	p = rdsEntry(t, types.Parameter{
		ParameterName: aws.String("autovacuum"),
		AllowedValues: aws.String("0,1"),
		IsModifiable:  aws.Bool(true),
	})
	values, err = p.AllowedValues()
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, values)

	p = rdsEntry(t, types.Parameter{
		ParameterName: aws.String("shared_buffers"),
		AllowedValues: aws.String("16-1073741823"),
		IsModifiable:  aws.Bool(true),
	})
	values, err = p.AllowedValues()
	require.NoError(t, err)
	require.Equal(t, []string{"16", "1073741823"}, values)
}

func TestRDSParameterAllowedValuesNotModifiable(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName: aws.String("server_version"),
		AllowedValues: aws.String("0,1"),
		IsModifiable:  aws.Bool(false),
	})
	values, err := p.AllowedValues()
	require.NoError(t, err)
	require.Nil(t, values)
}

func TestRDSParameterAllowedValuesUnsupportedFormat(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName: aws.String("some_param"),
		AllowedValues: aws.String("anything goes"),
		IsModifiable:  aws.Bool(true),
	})
	_, err := p.AllowedValues()
	require.ErrorIs(t, err, ErrUnsupportedAllowedValuesFormat)
}

func TestRDSParameterNormalize(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName:  aws.String("wal_buffers"),
		ParameterValue: aws.String("3"),
		Description:    aws.String("(8kB) Sets the number of disk-page buffers in shared memory for WAL."),
	})
	v, err := p.Normalize()
	require.NoError(t, err)
	require.Equal(t, "24", *v)
}

func TestRDSParameterNormalizeEngineDefault(t *testing.T) {
	// An entry without an explicit value normalizes to nil ("uses engine
	// default"); the display literal must not reach the converter, even
	// under a scaling unit.
	p := rdsEntry(t, types.Parameter{
		ParameterName: aws.String("vacuum_cost_delay"),
		Description:   aws.String("(ms) Vacuum cost delay in milliseconds."),
	})
	v, err := p.Normalize()
	require.NoError(t, err)
	require.Nil(t, v)
	require.Equal(t, EngineDefault, *p.Value())

	p = rdsEntry(t, types.Parameter{
		ParameterName: aws.String("wal_buffers"),
		Description:   aws.String("(8kB) Sets the number of disk-page buffers in shared memory for WAL."),
	})
	v, err = p.Normalize()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRDSParameterNormalizeTemplate(t *testing.T) {
	p := rdsEntry(t, types.Parameter{
		ParameterName:  aws.String("shared_buffers"),
		ParameterValue: aws.String("{DBInstanceClassMemory/4096}"),
		Description:    aws.String("(8kB) Sets the number of shared memory buffers used by the server."),
	})
	v, err := p.Normalize()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestEngineParameterValueTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	p := engineRow(t, SettingRow{Name: "some_param", Setting: long})
	require.Len(t, *p.Value(), 50)

	p = engineRow(t, SettingRow{Name: "some_param", Setting: "100"})
	require.Equal(t, "100", *p.Value())

	// The cap counts characters, not bytes: a multi-byte setting must not
	// be split mid-rune.
	p = engineRow(t, SettingRow{Name: "some_param", Setting: strings.Repeat("ü", 60)})
	require.Equal(t, strings.Repeat("ü", 50), *p.Value())
}

func TestEngineParameterUnit(t *testing.T) {
	p := engineRow(t, SettingRow{Name: "statement_timeout", Setting: "0", Unit: aws.String("ms")})
	require.Equal(t, UnitMS, p.Unit())

	p = engineRow(t, SettingRow{Name: "autovacuum", Setting: "on"})
	require.Equal(t, UnitScalar, p.Unit())
}

func TestEngineParameterNeverModifiable(t *testing.T) {
	p := engineRow(t, SettingRow{Name: "some_param", Setting: "1"})
	require.False(t, p.IsModifiable())
}

func TestEngineParameterAllowedValues(t *testing.T) {
	p := engineRow(t, SettingRow{
		Name:     "wal_buffers",
		Setting:  "512",
		MinValue: aws.String("-1"),
		MaxValue: aws.String("262143"),
	})
	values, err := p.AllowedValues()
	require.NoError(t, err)
	require.Equal(t, []string{"-1", "262143"}, values)
}

func TestEngineParameterNormalizeBoolean(t *testing.T) {
	p := engineRow(t, SettingRow{Name: "autovacuum", Setting: "off"})
	v, err := p.Normalize()
	require.NoError(t, err)
	require.Equal(t, "0", *v)
}

func TestUnknownParameter(t *testing.T) {
	p := NewUnknownParameter("wal_buffers")
	require.Equal(t, "wal_buffers", p.Name())
	require.Nil(t, p.Value())
	require.Equal(t, UnitUnset, p.Unit())
	require.False(t, p.IsModifiable())

	values, err := p.AllowedValues()
	require.NoError(t, err)
	require.Empty(t, values)

	v, err := p.Normalize()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestEqualAcrossVariants(t *testing.T) {
	// Same name, unit and raw value compare equal even though the sources
	// disagree on modifiability and allowed values.
	a := rdsEntry(t, types.Parameter{
		ParameterName:  aws.String("statement_timeout"),
		ParameterValue: aws.String("5"),
		Description:    aws.String("(ms) Sets the maximum allowed duration of any statement."),
		IsModifiable:   aws.Bool(true),
		AllowedValues:  aws.String("0-2147483647"),
	})
	b := engineRow(t, SettingRow{
		Name:    "statement_timeout",
		Setting: "5",
		Unit:    aws.String("ms"),
	})
	require.True(t, Equal(a, b))
	require.True(t, Equal(b, a))
}

func TestEqualValueMismatch(t *testing.T) {
	a := engineRow(t, SettingRow{Name: "statement_timeout", Setting: "5", Unit: aws.String("ms")})
	b := engineRow(t, SettingRow{Name: "statement_timeout", Setting: "10", Unit: aws.String("ms")})
	require.False(t, Equal(a, b))
}

func TestEqualUnitMismatch(t *testing.T) {
	a := engineRow(t, SettingRow{Name: "statement_timeout", Setting: "5", Unit: aws.String("ms")})
	b := engineRow(t, SettingRow{Name: "statement_timeout", Setting: "5", Unit: aws.String("s")})
	require.False(t, Equal(a, b))
}

func TestEqualUnknownSentinel(t *testing.T) {
	defined := engineRow(t, SettingRow{Name: "wal_buffers", Setting: "512", Unit: aws.String("8kB")})
	unknown := NewUnknownParameter("wal_buffers")
	require.False(t, Equal(defined, unknown))
	require.False(t, Equal(unknown, defined))
}

func TestDisplay(t *testing.T) {
	require.Equal(t, Unknown, Display(nil))
	require.Equal(t, "512", Display(strPtr("512")))
}
