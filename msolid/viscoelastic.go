// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Viscoelastic implements a Prony series relaxation kernel to be combined
// with a base (instantaneous) stress model. Each Prony term is one Maxwell
// branch with a relative modulus G[i] and a relaxation time Tau[i]; the
// remaining fraction Ginf = 1 - Σ G[i] is the equilibrium (long-term) modulus.
//
// The parameters must pass Validate before the first call to Relax; after
// that the Prony table is treated as immutable.
type Viscoelastic struct {

	// parameters
	G    []float64 // relative modulus of each Maxwell branch [nprony]
	Tau  []float64 // relaxation time of each Maxwell branch [nprony]
	Gmax float64   // ceiling for the sum of relative moduli; 0 < Gmax ≤ 1

	// temperature shift (optional)
	Trs *TRS // time-temperature superposition model; nil => no shift

	// derived
	Ginf float64 // equilibrium relative modulus = 1 - Σ G[i]

	// constants
	RotMax float64 // incremental rotation [rad] above which a warning is issued

	// diagnostics
	Diag Diagnostics // message callbacks; NopDiagnostics if not set

	// auxiliary
	Δσ   []float64 // stress increment driving the recursion [nsig]
	σnew []float64 // candidate relaxed stress [nsig]
	φnew []float64 // candidate overstresses [nprony*nsig]
}

// Init initialises the Prony table from parameters named g1,tau1,g2,tau2,...
// plus the optional "gmax" and "rotmax". Unknown names are ignored so that
// the same list can carry elastic constants. Init runs Validate.
func (o *Viscoelastic) Init(prms fun.Prms) (err error) {

	// defaults
	o.Gmax = 1.0
	o.RotMax = 0.1
	if o.Diag == nil {
		o.Diag = NopDiagnostics{}
	}

	// parse parameters
	gs := map[int]float64{}
	taus := map[int]float64{}
	nmax := 0
	for _, p := range prms {
		switch {
		case p.N == "gmax":
			o.Gmax = p.V
		case p.N == "rotmax":
			o.RotMax = p.V
		case strings.HasPrefix(p.N, "tau"):
			idx, ok := termIndex(p.N[3:])
			if !ok {
				continue
			}
			taus[idx] = p.V
			if idx > nmax {
				nmax = idx
			}
		case strings.HasPrefix(p.N, "g"):
			idx, ok := termIndex(p.N[1:])
			if !ok {
				continue
			}
			gs[idx] = p.V
			if idx > nmax {
				nmax = idx
			}
		}
	}

	// build table; every term needs both values
	o.G = make([]float64, nmax)
	o.Tau = make([]float64, nmax)
	for i := 1; i <= nmax; i++ {
		g, okg := gs[i]
		τ, okt := taus[i]
		if !okg || !okt {
			msg := io.Sf("InvalidProperty: Prony term %d is incomplete (need both g%d and tau%d)", i, i, i)
			o.Diag.Error(msg)
			return chk.Err(msg)
		}
		o.G[i-1] = g
		o.Tau[i-1] = τ
	}
	return o.Validate()
}

// SetData sets the Prony table from the flat pair layout
// [g1, tau1, g2, tau2, ...]. SetData runs Validate.
func (o *Viscoelastic) SetData(data []float64) (err error) {
	if o.Diag == nil {
		o.Diag = NopDiagnostics{}
	}
	if o.Gmax <= 0 {
		o.Gmax = 1.0
	}
	if o.RotMax <= 0 {
		o.RotMax = 0.1
	}
	if len(data)%2 != 0 {
		msg := io.Sf("InvalidProperty: expected Prony series data in (g, tau) pairs; got %d values", len(data))
		o.Diag.Error(msg)
		return chk.Err(msg)
	}
	n := len(data) / 2
	o.G = make([]float64, n)
	o.Tau = make([]float64, n)
	for i := 0; i < n; i++ {
		o.G[i] = data[2*i]
		o.Tau[i] = data[2*i+1]
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
func (o Viscoelastic) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "g1", V: 0.35},
		&fun.Prm{N: "tau1", V: 0.5},
		&fun.Prm{N: "g2", V: 0.25},
		&fun.Prm{N: "tau2", V: 5.0},
		&fun.Prm{N: "gmax", V: 1.0},
	}
}

// Validate sanitises the Prony table in place:
//  tau[i] ≤ 0          -- fatal (InvalidProperty)
//  g[i] < 0            -- warning; clamped to zero
//  Σ g[i] > Gmax       -- warning; all terms rescaled so that Σ g[i] = Gmax
//  zero terms          -- valid; material is purely elastic and Relax is a passthrough
// Non-fatal corrections are reported through the warning callback only.
func (o *Viscoelastic) Validate() (err error) {
	if o.Diag == nil {
		o.Diag = NopDiagnostics{}
	}
	if o.Gmax <= 0 || o.Gmax > 1 {
		msg := io.Sf("InvalidProperty: ratio-sum ceiling must be within (0,1]; gmax=%g", o.Gmax)
		o.Diag.Error(msg)
		return chk.Err(msg)
	}
	if len(o.G) != len(o.Tau) {
		msg := io.Sf("InvalidProperty: %d relative moduli for %d relaxation times", len(o.G), len(o.Tau))
		o.Diag.Error(msg)
		return chk.Err(msg)
	}

	// purely elastic material
	if len(o.G) == 0 {
		o.Ginf = 1.0
		return
	}

	// per-term checks
	sum := 0.0
	for i, τ := range o.Tau {
		if τ <= 0 {
			msg := io.Sf("InvalidProperty: relaxation time of Prony term %d must be positive; tau=%g", i+1, τ)
			o.Diag.Error(msg)
			return chk.Err(msg)
		}
		if o.G[i] < 0 {
			o.Diag.Warn(io.Sf("relative modulus of Prony term %d is negative (g=%g); clamping to zero", i+1, o.G[i]))
			o.G[i] = 0
		}
		sum += o.G[i]
	}

	// rescale, preserving relative magnitudes between terms
	if sum > o.Gmax {
		o.Diag.Warn(io.Sf("sum of relative moduli (%g) exceeds ceiling (%g); rescaling all terms", sum, o.Gmax))
		for i := range o.G {
			o.G[i] *= o.Gmax / sum
		}
		sum = o.Gmax
	}

	o.Ginf = 1.0 - sum
	o.Diag.Info(io.Sf("viscoelastic: %d Prony terms; equilibrium modulus fraction = %g", len(o.G), o.Ginf))
	return
}

// Nprony returns the number of Prony terms
func (o Viscoelastic) Nprony() int {
	return len(o.G)
}

// Nevars returns the required size of the overstress buffer for nsig
// stress components
func (o Viscoelastic) Nevars(nsig int) int {
	return len(o.G) * nsig
}

// ResetIntVars zero-fills the overstress buffer φ after checking its size.
// All branches start at equilibrium; i.e. zero overstress. Idempotent:
// calling it again restarts the relaxation history at the same point.
func (o Viscoelastic) ResetIntVars(nsig int, φ []float64) (err error) {
	diag := o.Diag
	if diag == nil {
		diag = NopDiagnostics{}
	}
	if len(φ) != o.Nevars(nsig) {
		msg := io.Sf("StateSizeMismatch: overstress buffer has %d values; need nprony*nsig = %d", len(φ), o.Nevars(nsig))
		diag.Error(msg)
		return chk.Err(msg)
	}
	for i := range φ {
		φ[i] = 0
	}
	return
}

// termIndex parses the numeric suffix of a Prony parameter name
func termIndex(s string) (idx int, ok bool) {
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 {
		return 0, false
	}
	return idx, true
}
