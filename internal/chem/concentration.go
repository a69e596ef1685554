package chem

import "math"

// Unit identifies which concentration representation an input value uses.
type Unit string

const (
	// UnitPercent is mass percent: grams of solute per 100 g of solution.
	UnitPercent Unit = "percent"

	// UnitMolar is molarity: moles of solute per liter of solution.
	UnitMolar Unit = "molar"

	// UnitNormal is normality. The converter treats it exactly like
	// molarity; equivalents-versus-moles is a labeling concern left to
	// the caller.
	UnitNormal Unit = "normal"
)

// WaterDensity is the assumed solution density (g/mL) when none is recorded.
const WaterDensity = 1.0

// Input describes one recorded concentration to convert.
type Input struct {
	// Value is the concentration in the representation named by Unit.
	// Must be finite and > 0.
	Value float64

	// Unit says which representation Value uses.
	Unit Unit

	// MolarMass is the solute's molar mass in g/mol. Must be finite
	// and > 0; the conversion is undefined without it.
	MolarMass float64

	// Density is the solution density in g/mL. Zero means "unknown" and
	// falls back to WaterDensity. Negative or non-finite is invalid.
	Density float64
}

// Result holds the three equivalent representations of one concentration.
// A nil field means that representation cannot be computed for this input
// (for example molality at 100 % mass, where no solvent remains). Nil is
// deliberately distinct from zero: callers should render a dash, not "0".
type Result struct {
	Percent  *float64
	Molarity *float64
	Molality *float64

	// DensityAssumed is true when the input carried no density and the
	// water default was used. The three units are mutually convertible
	// only through a density, so this approximation must be surfaced to
	// the user (e.g. annotate the unit label), not hidden.
	DensityAssumed bool
}

// Convert derives the two missing concentration representations from the
// one supplied. It returns nil when the input is invalid (value or molar
// mass non-finite or non-positive, or a negative density); it never panics
// and never returns a partial zero-filled result for invalid input.
func Convert(in Input) *Result {
	if !positiveFinite(in.Value) || !positiveFinite(in.MolarMass) {
		return nil
	}

	density := in.Density
	assumed := false
	if density == 0 {
		density = WaterDensity
		assumed = true
	}
	if !positiveFinite(density) {
		return nil
	}

	switch in.Unit {
	case UnitPercent:
		return fromPercent(in.Value, in.MolarMass, density, assumed)
	case UnitMolar, UnitNormal:
		return fromMolar(in.Value, in.MolarMass, density, assumed)
	default:
		return nil
	}
}

// fromPercent converts mass percent to molarity and molality.
// The basis is 100 g of solution.
func fromPercent(value, molarMass, density float64, assumed bool) *Result {
	res := &Result{DensityAssumed: assumed}
	res.Percent = ptr(value)

	moles := value / molarMass

	// 100 g of solution occupies (100/density) mL.
	solutionLiters := (100 / density) / 1000
	if solutionLiters > 0 {
		res.Molarity = ptr(moles / solutionLiters)
	}

	// Solvent is whatever mass is not solute. At or above 100 % there is
	// no solvent and molality is not computable.
	solventKg := (100 - value) / 1000
	if solventKg > 0 {
		res.Molality = ptr(moles / solventKg)
	}

	return res
}

// fromMolar converts molarity (or normality, treated identically) to mass
// percent and molality. The basis is exactly 1 L of solution.
func fromMolar(value, molarMass, density float64, assumed bool) *Result {
	res := &Result{DensityAssumed: assumed}
	res.Molarity = ptr(value)

	moles := value // moles in 1 L
	soluteMass := moles * molarMass
	solutionMass := 1000 * density

	if solutionMass > 0 {
		res.Percent = ptr(soluteMass / solutionMass * 100)
	}

	solventKg := (solutionMass - soluteMass) / 1000
	if solventKg > 0 {
		res.Molality = ptr(moles / solventKg)
	}

	return res
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func ptr(f float64) *float64 {
	return &f
}
