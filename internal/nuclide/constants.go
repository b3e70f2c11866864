package nuclide

// Liquid-drop binding-energy coefficients, in MeV.
const (
	bindingFactorVolume   = 15.835
	bindingFactorSurface  = 18.33
	bindingFactorCharge   = 0.714
	bindingFactorSymmetry = 23.20
	bindingFactorParity   = 11.20
)

// Particle rest masses in daltons and the mass-energy equivalence constant
// in MeV per dalton.
const (
	massEnergyEquivalence = 931.49410242
	protonMass            = 1.0072765
	neutronMass           = 1.0086649
	electronMass          = 0.00054858
)

// hydrogenIsotopeMasses holds the measured atomic masses (u) of H-1, H-2 and
// H-3, indexed by mass number minus one.
var hydrogenIsotopeMasses = [3]float64{
	1.00782503223,
	2.01410177812,
	3.01604927790,
}
