// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Calc_K_from_Enu returns the bulk modulus for given Young and Poisson constants
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus for given Young and Poisson constants
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_E_from_KG returns the Young modulus for given bulk and shear moduli
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// Calc_nu_from_KG returns the Poisson coefficient for given bulk and shear moduli
func Calc_nu_from_KG(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
}

// RotationNorm estimates the magnitude [rad] of the rotation carried by the
// deformation gradient f, from the skew-symmetric part of f. Exact for small
// rotations; an adequate measure for flagging large ones.
func RotationNorm(f [][]float64) float64 {
	ω1 := 0.5 * (f[2][1] - f[1][2])
	ω2 := 0.5 * (f[0][2] - f[2][0])
	ω3 := 0.5 * (f[1][0] - f[0][1])
	return math.Sqrt(ω1*ω1 + ω2*ω2 + ω3*ω3)
}
