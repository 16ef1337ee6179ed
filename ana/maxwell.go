// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// GenMaxwell implements the stress response of a generalized Maxwell solid:
// a spring (equilibrium fraction) in parallel with Maxwell branches given by
// a Prony series. All moduli are relative to the instantaneous one, so the
// relaxation function starts at 1 and decays to Ginf = 1 - Σ g[i].
type GenMaxwell struct {

	// input
	G   []float64 // relative modulus of each branch
	Tau []float64 // relaxation time of each branch

	// derived
	Ginf float64 // equilibrium relative modulus
}

// Init initialises this structure
func (o *GenMaxwell) Init(g, tau []float64) (err error) {
	if len(g) != len(tau) {
		return chk.Err("genmaxwell: %d moduli for %d relaxation times", len(g), len(tau))
	}
	sum := 0.0
	for i, τ := range tau {
		if τ <= 0 {
			return chk.Err("genmaxwell: relaxation time of branch %d must be positive; tau=%g", i+1, τ)
		}
		sum += g[i]
	}
	if sum > 1 {
		return chk.Err("genmaxwell: sum of relative moduli (%g) must not exceed one", sum)
	}
	o.G = g
	o.Tau = tau
	o.Ginf = 1.0 - sum
	return
}

// RelaxRatio returns the relaxation function at time t after a step strain,
// relative to the instantaneous response:
//  r(t) = Ginf + Σ g[i] exp(-t/tau[i])
func (o GenMaxwell) RelaxRatio(t float64) (r float64) {
	r = o.Ginf
	for i := range o.G {
		r += o.G[i] * math.Exp(-t/o.Tau[i])
	}
	return
}

// CalcCurve computes npts points of the relaxation function over [0, tmax]
func (o GenMaxwell) CalcCurve(tmax float64, npts int) (T, R []float64) {
	T = utl.LinSpace(0, tmax, npts)
	R = make([]float64, npts)
	for i, t := range T {
		R[i] = o.RelaxRatio(t)
	}
	return
}

// StressRelax computes the stress at time t after the strain producing the
// instantaneous stress σ0 was applied and held constant
func (o GenMaxwell) StressRelax(σ, σ0 []float64, t float64) {
	r := o.RelaxRatio(t)
	for j := range σ0 {
		σ[j] = r * σ0[j]
	}
}
