// Package chart renders physics-model curves to image files.
package chart

import (
	"fmt"

	"nucleonics/internal/nuclide"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BindingEnergyCurve renders binding energy per nucleon (MeV) against mass
// number for the most stable isobar at each mass number in [minA, maxA],
// saved as an image whose format follows the path extension.
func BindingEnergyCurve(path string, minA, maxA int) error {
	pts, err := curvePoints(minA, maxA)
	if err != nil {
		return err
	}

	p := plot.New()
	p.X.Label.Text = "Atomic Number"
	p.Y.Label.Text = "Binding Energy Per Nucleon (MeV)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build curve: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// curvePoints sweeps the mass-number range, pairing each mass number with
// the binding energy per nucleon of its most stable isobar.
func curvePoints(minA, maxA int) (plotter.XYs, error) {
	if minA < 1 || maxA < minA {
		return nil, fmt.Errorf("invalid mass number range [%d, %d]", minA, maxA)
	}

	pts := make(plotter.XYs, 0, maxA-minA+1)
	for a := minA; a <= maxA; a++ {
		z, err := nuclide.MostStableProtons(a)
		if err != nil {
			return nil, err
		}
		n, err := nuclide.New(z, a)
		if err != nil {
			return nil, fmt.Errorf("mass number %d: %w", a, err)
		}
		pts = append(pts, plotter.XY{X: float64(a), Y: n.BindingEnergyPerNucleon()})
	}
	return pts, nil
}
