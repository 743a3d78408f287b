/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// exactPrec is wide enough to hold any float64 times 10^20 without loss.
const exactPrec = 2048

var bigHalf = big.NewFloat(0.5)

// ToFixed formats x with exactly digits decimals, rounding the exact binary
// value half away from zero, the same way browsers render Number.toFixed.
// Non-finite values format as "NaN", "Infinity" or "-Infinity".
func ToFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	if digits < 0 {
		digits = 0
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scaled := new(big.Float).SetPrec(exactPrec).SetFloat64(x)
	pow := new(big.Float).SetPrec(exactPrec).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	scaled.Mul(scaled, pow)
	scaled.Add(scaled, bigHalf)

	n, _ := scaled.Int(nil)
	s := n.String()

	if digits == 0 {
		return sign + s
	}

	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}

	return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
}

// Round rounds x to digits decimals using ToFixed semantics.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	v, err := strconv.ParseFloat(ToFixed(x, digits), 64)
	if err != nil {
		return x
	}

	return v
}

// roundHalfUp rounds to the nearest integer with ties going towards +Inf.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}

	return r
}
