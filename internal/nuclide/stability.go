package nuclide

import (
	"fmt"
	"math"
)

// MostStableProtons returns the proton count that minimizes the liquid-drop
// mass at the given mass number, the valley-of-stability approximation
// obtained by solving d(mass)/dZ = 0 at fixed A. Ties in the final rounding
// go half away from zero.
//
// Sweeping mass numbers 1 through 256 and feeding each result back into
// BindingEnergyPerNucleon traces the stability-valley curve.
func MostStableProtons(massNumber int) (int, error) {
	if massNumber < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrMassNumber, massNumber)
	}
	a := float64(massNumber)
	numerator := 1 + (neutronMass-protonMass)*massEnergyEquivalence/(4*bindingFactorSymmetry)
	denominator := 1 + bindingFactorCharge*math.Pow(a, 2.0/3.0)/(4*bindingFactorSymmetry)
	return nearestInt(a / 2 * numerator / denominator), nil
}

// nearestInt rounds to the nearest integer, half away from zero.
func nearestInt(x float64) int {
	return int(math.Round(x))
}
