package masstable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nucleonics/internal/textutil"
)

// Markers used by the raw mass-evaluation format.
const (
	absentMarker   = "*"
	estimateMarker = "#"
)

// atomicMassScale converts the micro-dalton remainder and margin columns
// into daltons.
const atomicMassScale = 1e-6

// ErrShortLine indicates a row with fewer columns than the format requires.
var ErrShortLine = errors.New("line has fewer columns than expected")

// cursor walks the whitespace-separated tokens of one raw table row.
type cursor struct {
	tokens []string
	pos    int
}

// next consumes and returns the next token.
func (c *cursor) next() (string, error) {
	if c.pos >= len(c.tokens) {
		return "", ErrShortLine
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// nextInt consumes the next token as a base-10 integer.
func (c *cursor) nextInt(field string) (int, error) {
	tok, err := c.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s: parse %q: %w", field, tok, err)
	}
	return v, nil
}

// skipAnnotation drops the next token when it cannot be quantity data. Data
// is either the absence marker or a number once the estimate marker is
// stripped; anything else is an annotation such as a decay-mode label.
func (c *cursor) skipAnnotation() {
	if c.pos >= len(c.tokens) {
		return
	}
	tok := c.tokens[c.pos]
	if tok == absentMarker || textutil.IsNumeric(strings.ReplaceAll(tok, estimateMarker, "")) {
		return
	}
	c.pos++
}

// quantity reads one physical quantity. The absence marker occupies a single
// token; otherwise the value and its margin are two adjacent tokens, either
// of which may carry the estimate marker. Only a marker on the value token
// flips provenance to estimated.
func (c *cursor) quantity(field string) (Measurement, error) {
	tok, err := c.next()
	if err != nil {
		return Measurement{}, fmt.Errorf("%s: %w", field, err)
	}
	if tok == absentMarker {
		return Measurement{}, nil
	}

	estimated := strings.Contains(tok, estimateMarker)
	value, err := parseNumber(tok)
	if err != nil {
		return Measurement{}, fmt.Errorf("%s value: %w", field, err)
	}

	marginTok, err := c.next()
	if err != nil {
		return Measurement{}, fmt.Errorf("%s margin: %w", field, err)
	}
	margin, err := parseNumber(marginTok)
	if err != nil {
		return Measurement{}, fmt.Errorf("%s margin: %w", field, err)
	}

	provenance := ProvenanceCalculated
	if estimated {
		provenance = ProvenanceEstimated
	}
	return Measurement{Value: value, Margin: margin, Provenance: provenance}, nil
}

// parseNumber strips the estimate marker and parses the rest as a float.
func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, estimateMarker, ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", tok, err)
	}
	return v, nil
}

// ParseRow converts one line of a raw atomic mass evaluation table into an
// Entry. The first character of the line is a format control column and is
// stripped before tokenizing.
func ParseRow(line string) (Entry, error) {
	if line == "" {
		return Entry{}, ErrShortLine
	}
	c := &cursor{tokens: strings.Fields(line[1:])}

	// The leading N-Z column repeats information carried by the next two.
	if _, err := c.next(); err != nil {
		return Entry{}, fmt.Errorf("N-Z column: %w", err)
	}

	var (
		entry Entry
		err   error
	)
	if entry.Neutrons, err = c.nextInt("neutron count"); err != nil {
		return Entry{}, err
	}
	if entry.Protons, err = c.nextInt("proton count"); err != nil {
		return Entry{}, err
	}
	if entry.MassNumber, err = c.nextInt("mass number"); err != nil {
		return Entry{}, err
	}
	if entry.Element, err = c.next(); err != nil {
		return Entry{}, fmt.Errorf("element symbol: %w", err)
	}

	// Some rows carry an origin or decay-mode annotation after the element
	// symbol. It is present on some rows only, so it is recognized by not
	// being data.
	c.skipAnnotation()

	if entry.MassExcess, err = c.quantity("mass excess"); err != nil {
		return Entry{}, err
	}
	if entry.BindingEnergyPerNucleon, err = c.quantity("binding energy per nucleon"); err != nil {
		return Entry{}, err
	}

	// Fixed decay-label column between binding energy and beta-decay energy.
	if _, err := c.next(); err != nil {
		return Entry{}, fmt.Errorf("beta label column: %w", err)
	}

	if entry.BetaDecayEnergy, err = c.quantity("beta-decay energy"); err != nil {
		return Entry{}, err
	}

	// Atomic mass is split into a whole-dalton token and a micro-dalton
	// remainder with its own margin.
	wholeTok, err := c.next()
	if err != nil {
		return Entry{}, fmt.Errorf("atomic mass: %w", err)
	}
	whole, err := strconv.ParseFloat(wholeTok, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("atomic mass: parse %q: %w", wholeTok, err)
	}
	remainder, err := c.quantity("atomic mass remainder")
	if err != nil {
		return Entry{}, err
	}
	if remainder.Absent() {
		return Entry{}, errors.New("atomic mass remainder: unexpected absence marker")
	}
	entry.AtomicMass = Measurement{
		Value:      whole + remainder.Value*atomicMassScale,
		Margin:     remainder.Margin * atomicMassScale,
		Provenance: remainder.Provenance,
	}

	return entry, nil
}
