package masstable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// header is the column layout of the normalized table.
var header = []string{
	"N", "Z", "A", "Element",
	"Mass Excess (keV)", "ME Error Margin", "ME Calculated?",
	"Binding Energy Per Nucleon (keV)", "BEN Error Margin", "BEN Calculated?",
	"Beta Decay Energy (keV)", "BDE Error Margin", "BDE Calculated?",
	"Atomic Mass (u)", "AM Error Margin", "AM Calculated?",
}

// WriteCSV serializes the table: one header row, then one row per entry in
// table order. Absent quantities render as empty value and margin cells.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range t {
		if err := cw.Write(record(e)); err != nil {
			return fmt.Errorf("write entry Z=%d A=%d: %w", e.Protons, e.MassNumber, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile creates path and serializes the table into it.
func WriteCSVFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// record renders one entry as CSV fields in header order.
func record(e Entry) []string {
	row := make([]string, 0, len(header))
	row = append(row,
		strconv.Itoa(e.Neutrons),
		strconv.Itoa(e.Protons),
		strconv.Itoa(e.MassNumber),
		e.Element,
	)
	for _, m := range []Measurement{e.MassExcess, e.BindingEnergyPerNucleon, e.BetaDecayEnergy, e.AtomicMass} {
		row = append(row, measurementFields(m)...)
	}
	return row
}

// measurementFields renders the value, margin and provenance cells of one
// quantity.
func measurementFields(m Measurement) []string {
	if m.Absent() {
		return []string{"", "", ProvenanceAbsent.String()}
	}
	return []string{
		strconv.FormatFloat(m.Value, 'f', -1, 64),
		strconv.FormatFloat(m.Margin, 'f', -1, 64),
		m.Provenance.String(),
	}
}

// ReadCSV deserializes a table produced by WriteCSV. The header row is
// skipped without inspection; unrecognized provenance literals degrade to
// absent, and the value and margin cells of absent quantities are ignored.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var table Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entry, err := entryFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, entry)
	}
	return table, nil
}

// ReadCSVFile opens path and deserializes the table it holds.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// entryFromRecord rebuilds one entry from its CSV fields.
func entryFromRecord(rec []string) (Entry, error) {
	var (
		e   Entry
		err error
	)
	if e.Neutrons, err = strconv.Atoi(rec[0]); err != nil {
		return Entry{}, fmt.Errorf("neutron count: parse %q: %w", rec[0], err)
	}
	if e.Protons, err = strconv.Atoi(rec[1]); err != nil {
		return Entry{}, fmt.Errorf("proton count: parse %q: %w", rec[1], err)
	}
	if e.MassNumber, err = strconv.Atoi(rec[2]); err != nil {
		return Entry{}, fmt.Errorf("mass number: parse %q: %w", rec[2], err)
	}
	e.Element = rec[3]

	quantities := []struct {
		name string
		dst  *Measurement
	}{
		{"mass excess", &e.MassExcess},
		{"binding energy per nucleon", &e.BindingEnergyPerNucleon},
		{"beta-decay energy", &e.BetaDecayEnergy},
		{"atomic mass", &e.AtomicMass},
	}
	for i, q := range quantities {
		m, err := measurementFromFields(rec[4+3*i], rec[5+3*i], rec[6+3*i])
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", q.name, err)
		}
		*q.dst = m
	}
	return e, nil
}

// measurementFromFields rebuilds one quantity from its three cells. Absent
// provenance wins over whatever sits in the value and margin cells.
func measurementFromFields(value, margin, provenance string) (Measurement, error) {
	p := ParseProvenance(provenance)
	if p == ProvenanceAbsent {
		return Measurement{}, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("value: parse %q: %w", value, err)
	}
	mg, err := strconv.ParseFloat(margin, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("margin: parse %q: %w", margin, err)
	}
	return Measurement{Value: v, Margin: mg, Provenance: p}, nil
}
