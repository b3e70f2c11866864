// Package masstable ingests raw atomic mass evaluation tables into a uniform
// in-memory representation and serializes them to a normalized CSV layout.
package masstable

// Provenance records how a physical quantity in the source table was
// obtained. The zero value is ProvenanceAbsent.
type Provenance int

const (
	// ProvenanceAbsent marks a quantity missing from the source row.
	ProvenanceAbsent Provenance = iota
	// ProvenanceCalculated marks a directly measured or evaluated value.
	ProvenanceCalculated
	// ProvenanceEstimated marks a value that carried the estimate marker in
	// the source, i.e. derived from mass-surface trends rather than measured.
	ProvenanceEstimated
)

// String returns the literal used in the normalized CSV.
func (p Provenance) String() string {
	switch p {
	case ProvenanceCalculated:
		return "calculated"
	case ProvenanceEstimated:
		return "estimated"
	default:
		return "absent"
	}
}

// ParseProvenance maps a serialized provenance literal back to a Provenance.
// Unrecognized strings degrade to ProvenanceAbsent.
func ParseProvenance(s string) Provenance {
	switch s {
	case "calculated":
		return ProvenanceCalculated
	case "estimated":
		return ProvenanceEstimated
	default:
		return ProvenanceAbsent
	}
}

// Measurement is one physical quantity from the table: a value with its
// symmetric error margin and provenance. An absent measurement keeps zero
// value and margin.
type Measurement struct {
	Value      float64
	Margin     float64
	Provenance Provenance
}

// Absent reports whether the quantity is missing from the source data.
func (m Measurement) Absent() bool { return m.Provenance == ProvenanceAbsent }

// Entry is one nuclide row of the ingested table. The three energy
// quantities are in keV, the atomic mass in daltons. Any subset of the four
// may be absent. The mass number equals neutrons plus protons in well-formed
// sources; the parser trusts the source columns and does not re-derive it.
type Entry struct {
	Neutrons   int
	Protons    int
	MassNumber int
	Element    string

	MassExcess              Measurement
	BindingEnergyPerNucleon Measurement
	BetaDecayEnergy         Measurement
	AtomicMass              Measurement
}

// Table is an ordered sequence of entries. Order follows the source lines
// and duplicate nuclides are kept as-is.
type Table []Entry
