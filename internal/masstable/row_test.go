package masstable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawLine builds a table row from tokens, prefixed with a format control
// character the parser must strip.
func rawLine(tokens ...string) string {
	return "0" + strings.Join(tokens, " ")
}

func TestParseRow_AllQuantitiesPresent(t *testing.T) {
	line := rawLine(
		"1", "1", "0", "1", "n",
		"8071.3181", "0.0004",
		"0.0", "0.0",
		"B-", "782.347", "0.0004",
		"1", "008664.91582", "0.00049",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	remainder, margin := 8664.91582, 0.00049
	want := Entry{
		Neutrons:   1,
		Protons:    0,
		MassNumber: 1,
		Element:    "n",
		MassExcess: Measurement{
			Value:      8071.3181,
			Margin:     0.0004,
			Provenance: ProvenanceCalculated,
		},
		BindingEnergyPerNucleon: Measurement{
			Value:      0.0,
			Margin:     0.0,
			Provenance: ProvenanceCalculated,
		},
		BetaDecayEnergy: Measurement{
			Value:      782.347,
			Margin:     0.0004,
			Provenance: ProvenanceCalculated,
		},
		AtomicMass: Measurement{
			Value:      1 + remainder*1e-6,
			Margin:     margin * 1e-6,
			Provenance: ProvenanceCalculated,
		},
	}
	assert.Equal(t, want, got)
}

func TestParseRow_SkipsDecayModeAnnotation(t *testing.T) {
	tail := []string{
		"13135.72176", "0.00011",
		"1112.2831", "0.0002",
		"B-", "*",
		"2", "014101.77812", "0.00012",
	}
	plain := rawLine(append([]string{"0", "1", "1", "2", "H"}, tail...)...)
	annotated := rawLine(append([]string{"0", "1", "1", "2", "H", "x"}, tail...)...)

	wantEntry, err := ParseRow(plain)
	require.NoError(t, err)
	gotEntry, err := ParseRow(annotated)
	require.NoError(t, err)

	assert.Equal(t, wantEntry, gotEntry)
}

func TestParseRow_EstimatedValues(t *testing.T) {
	line := rawLine(
		"12", "17", "5", "22", "B", "x",
		"68100#", "500#",
		"4800#", "22#",
		"B-", "23400#", "640#",
		"22", "073100#", "540#",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	assert.Equal(t, 17, got.Neutrons)
	assert.Equal(t, 5, got.Protons)
	assert.Equal(t, 22, got.MassNumber)
	assert.Equal(t, "B", got.Element)

	remainder, margin := 73100.0, 540.0
	assert.Equal(t, Measurement{Value: 68100, Margin: 500, Provenance: ProvenanceEstimated}, got.MassExcess)
	assert.Equal(t, Measurement{Value: 4800, Margin: 22, Provenance: ProvenanceEstimated}, got.BindingEnergyPerNucleon)
	assert.Equal(t, Measurement{Value: 23400, Margin: 640, Provenance: ProvenanceEstimated}, got.BetaDecayEnergy)
	assert.Equal(t, Measurement{
		Value:      22 + remainder*1e-6,
		Margin:     margin * 1e-6,
		Provenance: ProvenanceEstimated,
	}, got.AtomicMass)
}

func TestParseRow_PrefixMarkedValue(t *testing.T) {
	// The estimate marker may sit anywhere in the token.
	line := rawLine(
		"1", "1", "0", "1", "n",
		"#1234.5", "12.3",
		"*",
		"B-", "*",
		"1", "008664.91582", "0.00049",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	assert.Equal(t, Measurement{
		Value:      1234.5,
		Margin:     12.3,
		Provenance: ProvenanceEstimated,
	}, got.MassExcess)
}

func TestParseRow_MarkerOnMarginAloneStaysCalculated(t *testing.T) {
	line := rawLine(
		"1", "1", "0", "1", "n",
		"8071.3181", "0.4#",
		"0.0", "0.0",
		"B-", "*",
		"1", "008664.91582", "0.00049",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	assert.Equal(t, Measurement{
		Value:      8071.3181,
		Margin:     0.4,
		Provenance: ProvenanceCalculated,
	}, got.MassExcess)
}

func TestParseRow_AbsentQuantities(t *testing.T) {
	// The first "*" sits right after the element symbol: it must be read as
	// the absent mass excess, not skipped as an annotation.
	line := rawLine(
		"1", "1", "0", "1", "n",
		"*",
		"*",
		"B-", "*",
		"1", "008664.91582", "0.00049",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	for name, m := range map[string]Measurement{
		"mass excess":       got.MassExcess,
		"binding energy":    got.BindingEnergyPerNucleon,
		"beta-decay energy": got.BetaDecayEnergy,
	} {
		assert.True(t, m.Absent(), name)
		assert.Zero(t, m.Value, name)
		assert.Zero(t, m.Margin, name)
	}
	assert.False(t, got.AtomicMass.Absent())
}

func TestParseRow_EstimatedValueAfterElementIsNotAnnotation(t *testing.T) {
	line := rawLine(
		"12", "17", "5", "22", "B",
		"68100#", "500",
		"*",
		"B-", "*",
		"22", "073100", "540",
	)

	got, err := ParseRow(line)
	require.NoError(t, err)

	assert.Equal(t, Measurement{
		Value:      68100,
		Margin:     500,
		Provenance: ProvenanceEstimated,
	}, got.MassExcess)
}

func TestParseRow_ControlColumnStripped(t *testing.T) {
	tokens := []string{
		"1", "1", "0", "1", "n",
		"*", "*", "B-", "*",
		"1", "008664.91582", "0.00049",
	}
	body := strings.Join(tokens, " ")

	zero, err := ParseRow("0" + body)
	require.NoError(t, err)
	blank, err := ParseRow(" " + body)
	require.NoError(t, err)

	assert.Equal(t, zero, blank)
}

func TestParseRow_Errors(t *testing.T) {
	valid := []string{
		"1", "1", "0", "1", "n",
		"8071.3181", "0.0004",
		"0.0", "0.0",
		"B-", "782.347", "0.0004",
		"1", "008664.91582", "0.00049",
	}

	tests := []struct {
		name     string
		line     string
		sentinel error
		contains string
	}{
		{
			name:     "empty line",
			line:     "",
			sentinel: ErrShortLine,
		},
		{
			name:     "control column only",
			line:     "0",
			sentinel: ErrShortLine,
		},
		{
			name:     "truncated after element",
			line:     rawLine(valid[:5]...),
			sentinel: ErrShortLine,
			contains: "mass excess",
		},
		{
			name:     "value without margin",
			line:     rawLine(append(append([]string{}, valid[:5]...), "8071.3181")...),
			sentinel: ErrShortLine,
			contains: "mass excess margin",
		},
		{
			name:     "non-integer neutron count",
			line:     rawLine("1", "x", "0", "1", "n", "*", "*", "B-", "*", "1", "0.0", "0.0"),
			contains: "neutron count",
		},
		{
			name:     "non-numeric mass excess",
			line:     rawLine("1", "1", "0", "1", "n", "xx", "yy", "*", "B-", "*", "1", "0.0", "0.0"),
			contains: "mass excess",
		},
		{
			name:     "absent atomic mass remainder",
			line:     rawLine("1", "1", "0", "1", "n", "*", "*", "B-", "*", "1", "*"),
			contains: "unexpected absence marker",
		},
		{
			name:     "non-numeric whole dalton column",
			line:     rawLine("1", "1", "0", "1", "n", "*", "*", "B-", "*", "zz", "0.0", "0.0"),
			contains: "atomic mass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRow(tt.line)
			require.Error(t, err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}
