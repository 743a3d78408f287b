/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import "fmt"

// Lipid conversion factors from mg/dL to mmol/L.
const (
	cholesterolMmolFactor   = 0.0259
	triglycerideMmolFactor  = 0.0113
	friedewaldTGLimitMgDL   = 400
	friedewaldTGLimitMmolL  = 4.52
	friedewaldTGDivisorMgDL = 5
)

// LipidUnit is the unit a lipid panel is entered in.
type LipidUnit string

// LipidUnit values.
const (
	LipidMgDL  LipidUnit = "mg/dl"
	LipidMmolL LipidUnit = "mmol/l"
)

// LDLCategory is the NCEP risk band of an LDL value.
type LDLCategory string

// LDLCategory values, thresholds in mg/dL.
const (
	LDLOptimal        LDLCategory = "Optimal"
	LDLNearOptimal    LDLCategory = "Near Optimal"
	LDLBorderlineHigh LDLCategory = "Borderline High"
	LDLHigh           LDLCategory = "High"
	LDLVeryHigh       LDLCategory = "Very High"
)

// Advisory qualifies a successful result with a clinical caveat.
type Advisory struct {
	Code    string
	Message string
}

// AdvisoryFriedewaldUnreliable is attached when triglycerides exceed the range
// the Friedewald estimate is validated for.
var AdvisoryFriedewaldUnreliable = Advisory{
	Code:    "friedewald_unreliable",
	Message: "Triglycerides above 400 mg/dL (4.52 mmol/L): the Friedewald estimate is unreliable, use direct LDL measurement.",
}

// LipidInput is a lipid panel in a single unit.
type LipidInput struct {
	TotalCholesterol float64
	HDL              float64
	Triglycerides    float64
	Unit             LipidUnit
}

// LipidResult is the Friedewald estimate and the derived lipid ratios.
//
// TGHDLRatio and AtherogenicCoefficient are nil when HDL is zero.
type LipidResult struct {
	LDLMgDL                Quantity
	LDLMmolL               Quantity
	Category               LDLCategory
	NonHDLMgDL             Quantity
	TGHDLRatio             *Quantity
	AtherogenicCoefficient *Quantity
	Advisories             []Advisory
}

// Qualified reports whether the result carries any advisory.
func (r LipidResult) Qualified() bool {
	return len(r.Advisories) > 0
}

// ParseLipidUnit validates an externally supplied lipid unit.
func ParseLipidUnit(s string) (LipidUnit, error) {
	switch u := LipidUnit(s); u {
	case LipidMgDL, LipidMmolL:
		return u, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, s)
}

// LDL estimates LDL cholesterol with the Friedewald equation
// LDL = TC - HDL - TG/5, evaluated in mg/dL. Inputs in mmol/L are converted
// first. A high triglyceride value still yields a result, qualified with
// AdvisoryFriedewaldUnreliable. Subtraction results are not clamped.
func LDL(in LipidInput) (LipidResult, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"total cholesterol", in.TotalCholesterol},
		{"HDL", in.HDL},
		{"triglycerides", in.Triglycerides},
	} {
		if err := requireFinite(f.name, f.v); err != nil {
			return LipidResult{}, err
		}
	}

	tc, hdl, tg := in.TotalCholesterol, in.HDL, in.Triglycerides

	var tgLimit float64
	switch in.Unit {
	case LipidMgDL:
		tgLimit = friedewaldTGLimitMgDL
	case LipidMmolL:
		tgLimit = friedewaldTGLimitMmolL
		tc /= cholesterolMmolFactor
		hdl /= cholesterolMmolFactor
		tg /= triglycerideMmolFactor
	default:
		return LipidResult{}, fmt.Errorf("%w: lipid unit %q", errUnknownUnit, in.Unit)
	}

	ldl := tc - hdl - tg/friedewaldTGDivisorMgDL
	mgdl := newQuantity(ldl, UnitMgDL, 1)

	res := LipidResult{
		LDLMgDL:    mgdl,
		LDLMmolL:   newQuantity(ldl*cholesterolMmolFactor, UnitMmolL, 2),
		Category:   CategorizeLDL(mgdl.Value),
		NonHDLMgDL: newQuantity(tc-hdl, UnitMgDL, 1),
	}

	if hdl != 0 {
		ratio := newQuantity(tg/hdl, UnitRatio, 2)
		coefficient := newQuantity((tc-hdl)/hdl, UnitRatio, 2)
		res.TGHDLRatio = &ratio
		res.AtherogenicCoefficient = &coefficient
	}

	if in.Triglycerides > tgLimit {
		res.Advisories = append(res.Advisories, AdvisoryFriedewaldUnreliable)
	}

	return res, nil
}

// CategorizeLDL maps an LDL value in mg/dL onto its risk band.
func CategorizeLDL(mgdl float64) LDLCategory {
	switch {
	case mgdl < 100:
		return LDLOptimal
	case mgdl < 130:
		return LDLNearOptimal
	case mgdl < 160:
		return LDLBorderlineHigh
	case mgdl < 190:
		return LDLHigh
	default:
		return LDLVeryHigh
	}
}
