/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

import (
	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/linked"
)

// Gender represents biological sex for medical reference ranges
type Gender string

// Gender values represent supported biological-sex categories.
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex" // For ranges that don't vary by gender
)

// ParseGender maps form input onto a Gender, defaulting to unisex.
func ParseGender(s string) Gender {
	switch Gender(s) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	default:
		return GenderUnisex
	}
}

// Test names of the values the calculators produce.
const (
	TestGlucose                = "Glucose fasting FBS"
	TestTotalCholesterol       = "Total Cholesterol"
	TestHDL                    = "HDL Cholesterol"
	TestLDL                    = "LDL Cholesterol"
	TestTriglycerides          = "Triglycerides"
	TestNonHDL                 = "Non-HDL Cholesterol"
	TestTGHDLRatio             = "TG/HDL (Calc)"
	TestAtherogenicCoefficient = "Atherogenic Coefficient"
	TestCreatinine             = "Creatinine"
	TestUricAcid               = "Uric Acid"
	TestBilirubinTotal         = "Bilirubin Total"
	TestBilirubinIndirect      = "Bilirubin Indirect"
	TestHemoglobin             = "Hemoglobin"
	TestHematocrit             = "Hematocrit"
	TestRBC                    = "Red blood cells"
	TestMCV                    = "M.C.V"
	TestMCH                    = "M.C.H"
	TestMCHC                   = "M.C.H.C"
	TestBMI                    = "BMI"
)

// Range is the reference and optimal range of a test for one gender, in
// Unit. A nil bound is open.
type Range struct {
	TestName     string
	Gender       Gender
	Unit         formula.Unit
	ReferenceMin *float64
	ReferenceMax *float64
	OptimalMin   *float64
	OptimalMax   *float64
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// Definitions returns every adult reference range known to the calculators.
// This is the authoritative source; the database copy is synced from it.
func Definitions() []Range {
	return []Range{
		// ===== METABOLIC =====
		{
			TestName: TestGlucose, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(70.0), ReferenceMax: ptr(99.0),
			OptimalMin: ptr(75.0), OptimalMax: ptr(90.0), // Ideally <95
		},
		{
			TestName: TestCreatinine, Gender: GenderMale, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(0.74), ReferenceMax: ptr(1.35),
			OptimalMin: ptr(0.9), OptimalMax: ptr(1.2), // Good muscle mass
		},
		{
			TestName: TestCreatinine, Gender: GenderFemale, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(0.59), ReferenceMax: ptr(1.04),
			OptimalMin: ptr(0.7), OptimalMax: ptr(1.0),
		},
		{
			TestName: TestUricAcid, Gender: GenderMale, Unit: formula.UnitUmolL,
			ReferenceMin: ptr(200.0), ReferenceMax: ptr(420.0),
			OptimalMin: nil, OptimalMax: ptr(300.0), // <5.0 mg/dL
		},
		{
			TestName: TestUricAcid, Gender: GenderFemale, Unit: formula.UnitUmolL,
			ReferenceMin: ptr(140.0), ReferenceMax: ptr(360.0),
			OptimalMin: nil, OptimalMax: ptr(300.0),
		},

		// ===== LIPID PANEL (mg/dL) =====
		{
			TestName: TestTotalCholesterol, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: nil, ReferenceMax: ptr(200.0),
		},
		{
			TestName: TestHDL, Gender: GenderMale, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(40.0), ReferenceMax: nil,
			OptimalMin: ptr(50.0), OptimalMax: nil,
		},
		{
			TestName: TestHDL, Gender: GenderFemale, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(50.0), ReferenceMax: nil,
			OptimalMin: ptr(50.0), OptimalMax: nil,
		},
		{
			TestName: TestLDL, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: nil, ReferenceMax: ptr(100.0), // Low risk
			OptimalMin: nil, OptimalMax: ptr(70.0),
		},
		{
			TestName: TestTriglycerides, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: nil, ReferenceMax: ptr(150.0),
			OptimalMin: nil, OptimalMax: ptr(100.0), // Ideally <70
		},
		{
			TestName: TestNonHDL, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: nil, ReferenceMax: ptr(130.0),
			OptimalMin: nil, OptimalMax: ptr(90.0),
		},
		{
			TestName: TestTGHDLRatio, Gender: GenderUnisex, Unit: formula.UnitRatio,
			ReferenceMin: nil, ReferenceMax: ptr(3.0), // >3.0 = insulin resistant
			OptimalMin: nil, OptimalMax: ptr(1.0),
		},
		{
			TestName: TestAtherogenicCoefficient, Gender: GenderUnisex, Unit: formula.UnitRatio,
			ReferenceMin: nil, ReferenceMax: ptr(3.0),
			OptimalMin: nil, OptimalMax: ptr(2.0),
		},

		// ===== LIVER (mg/dL) =====
		{
			TestName: TestBilirubinTotal, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(0.3), ReferenceMax: ptr(1.2),
			OptimalMin: nil, OptimalMax: ptr(1.0), // Unless Gilbert's
		},
		{
			TestName: TestBilirubinIndirect, Gender: GenderUnisex, Unit: formula.UnitMgDL,
			ReferenceMin: ptr(0.2), ReferenceMax: ptr(0.8),
		},

		// ===== BLOOD COUNTS =====
		{
			TestName: TestHemoglobin, Gender: GenderMale, Unit: formula.UnitGramsDL,
			ReferenceMin: ptr(13.2), ReferenceMax: ptr(16.6),
			OptimalMin: ptr(14.0), OptimalMax: ptr(16.0),
		},
		{
			TestName: TestHemoglobin, Gender: GenderFemale, Unit: formula.UnitGramsDL,
			ReferenceMin: ptr(11.6), ReferenceMax: ptr(15.0),
			OptimalMin: ptr(12.5), OptimalMax: ptr(14.5),
		},
		{
			TestName: TestHematocrit, Gender: GenderMale, Unit: formula.UnitPercent,
			ReferenceMin: ptr(41.0), ReferenceMax: ptr(50.0),
			OptimalMin: ptr(42.0), OptimalMax: ptr(48.0), // Critical: avoid >50-52
		},
		{
			TestName: TestHematocrit, Gender: GenderFemale, Unit: formula.UnitPercent,
			ReferenceMin: ptr(36.0), ReferenceMax: ptr(44.0),
			OptimalMin: ptr(37.0), OptimalMax: ptr(44.0),
		},
		{
			TestName: TestRBC, Gender: GenderMale, Unit: formula.UnitRBCCount,
			ReferenceMin: ptr(4.35), ReferenceMax: ptr(5.65),
			OptimalMin: ptr(4.50), OptimalMax: ptr(5.50),
		},
		{
			TestName: TestRBC, Gender: GenderFemale, Unit: formula.UnitRBCCount,
			ReferenceMin: ptr(3.92), ReferenceMax: ptr(5.13),
			OptimalMin: ptr(4.00), OptimalMax: ptr(4.90),
		},
		{
			TestName: TestMCV, Gender: GenderUnisex, Unit: formula.UnitFemtoliter,
			ReferenceMin: ptr(80.0), ReferenceMax: ptr(96.0),
			OptimalMin: ptr(82.0), OptimalMax: ptr(92.0),
		},
		{
			TestName: TestMCH, Gender: GenderUnisex, Unit: formula.UnitPicogram,
			ReferenceMin: ptr(27.0), ReferenceMax: ptr(33.0),
			OptimalMin: ptr(28.0), OptimalMax: ptr(32.0),
		},
		{
			TestName: TestMCHC, Gender: GenderUnisex, Unit: formula.UnitGramsDL,
			ReferenceMin: ptr(33.0), ReferenceMax: ptr(36.0),
			OptimalMin: ptr(33.0), OptimalMax: ptr(35.0),
		},

		// ===== ANTHROPOMETRY =====
		{
			TestName: TestBMI, Gender: GenderUnisex, Unit: formula.UnitKgM2,
			ReferenceMin: ptr(18.5), ReferenceMax: ptr(25.0),
		},
	}
}

// AnalyteTest maps a lab converter analyte onto the test name its ranges
// are stored under. Analytes without ranges map to "".
func AnalyteTest(id formula.AnalyteID) string {
	switch id {
	case formula.Glucose:
		return TestGlucose
	case formula.Cholesterol:
		return TestTotalCholesterol
	case formula.Triglycerides:
		return TestTriglycerides
	case formula.Creatinine:
		return TestCreatinine
	case formula.UricAcid:
		return TestUricAcid
	case formula.Bilirubin:
		return TestBilirubinTotal
	default:
		return ""
	}
}

// ConverterTest names the test a field of a linked converter is classified
// under, or "" when the field has no reference range.
func ConverterTest(conv linked.Converter, field linked.FieldID) string {
	switch c := conv.(type) {
	case *linked.Lab:
		return AnalyteTest(c.Analyte().ID)
	case linked.PCV:
		if field == linked.FieldPercent {
			return TestHematocrit
		}
	}

	return ""
}
