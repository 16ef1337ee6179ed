// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// xsmall is the Δt/τ value below which (1-exp(-x))/x switches to its series
// expansion to avoid catastrophic cancellation
const xsmall = 1e-8

// Relax advances the overstress of every Maxwell branch over one time
// increment and relaxes the instantaneous stress (recursive Prony update).
//  Input:
//   σ     -- instantaneous (trial) stress at the end of the increment [nsig];
//            overwritten with the relaxed stress on success
//   σo    -- instantaneous stress at the beginning of the increment [nsig]
//   φ     -- overstress history [nprony*nsig]; updated in place on success
//   f     -- deformation gradient at the end of the increment [3][3]; may be
//            nil. Used only to warn about large incremental rotations; the
//            recursion itself is objective-rate based and proceeds regardless
//   time  -- absolute time; used in diagnostics only
//   dtime -- time increment; must be non-negative. Zero is a valid no-op:
//            σ := σo, φ untouched, neutral factors returned
//   tempold, dtemp -- temperature at the beginning of the increment and its
//            increment; used by the TRS model (if any) to shift τ
//  Output:
//   cfac  -- effective modulus ratio 1 - Σ g[i] (1 - s[i]); the caller
//            multiplies it into the elastic stiffness to obtain the
//            viscoelastic tangent
//   dtrat -- ratio of the (reduced) time increment to the smallest
//            relaxation time; values much greater than one flag a step too
//            large to resolve the fastest branch
// On failure the returned error is non-nil and neither σ nor φ is modified.
func (o *Viscoelastic) Relax(σ, σo, φ []float64, f [][]float64, time, dtime, tempold, dtemp float64) (cfac, dtrat float64, err error) {

	// check time increment
	if dtime < 0 {
		msg := io.Sf("InvalidTimeStep: negative time increment; dtime=%g, time=%g", dtime, time)
		o.Diag.Error(msg)
		return 0, 0, chk.Err(msg)
	}

	// purely elastic material: passthrough
	nsig := len(σ)
	n := o.Nprony()
	if n == 0 {
		return 1, 0, nil
	}

	// zero increment: no elapsed time, no relaxation
	if dtime == 0 {
		copy(σ, σo)
		return 1, 0, nil
	}

	// check state size
	if len(φ) != n*nsig {
		msg := io.Sf("StateSizeMismatch: overstress buffer has %d values; need nprony*nsig = %d", len(φ), n*nsig)
		o.Diag.Error(msg)
		return 0, 0, chk.Err(msg)
	}

	// reduced time increment via temperature shift
	Δtred := dtime
	if o.Trs != nil {
		Δtred = dtime / o.Trs.ShiftFactor(tempold+dtemp/2.0)
	}

	// large incremental rotations deserve sub-stepping by the caller
	if len(f) == 3 {
		if rot := RotationNorm(f); rot > o.RotMax {
			o.Diag.Warn(io.Sf("incremental rotation (%g rad) exceeds %g at time=%g; caller should sub-step", rot, o.RotMax, time))
		}
	}

	// scratch buffers
	if len(o.Δσ) != nsig {
		o.Δσ = make([]float64, nsig)
		o.σnew = make([]float64, nsig)
	}
	if len(o.φnew) != n*nsig {
		o.φnew = make([]float64, n*nsig)
	}

	// stress increment driving the recursion
	for j := 0; j < nsig; j++ {
		o.Δσ[j] = σ[j] - σo[j]
	}

	// recursive update of each Maxwell branch
	cfac = 1.0
	for i := 0; i < n; i++ {
		x := Δtred / o.Tau[i]
		e := math.Exp(-x)
		var s float64
		if x < xsmall {
			s = 1.0 - x/2.0 // series of (1-exp(-x))/x
		} else {
			s = (1.0 - e) / x
		}
		for j := 0; j < nsig; j++ {
			o.φnew[i*nsig+j] = e*φ[i*nsig+j] + o.G[i]*s*o.Δσ[j]
		}
		cfac -= o.G[i] * (1.0 - s)
		if x > dtrat {
			dtrat = x
		}
	}

	// relaxed stress: equilibrium share of the instantaneous stress
	// plus the remaining overstress of every branch
	for j := 0; j < nsig; j++ {
		o.σnew[j] = o.Ginf * σ[j]
		for i := 0; i < n; i++ {
			o.σnew[j] += o.φnew[i*nsig+j]
		}
	}

	// commit only finite results
	for j := 0; j < nsig; j++ {
		if math.IsNaN(o.σnew[j]) || math.IsInf(o.σnew[j], 0) {
			msg := io.Sf("NumericalDivergence: non-finite stress after relaxation; time=%g, dtime=%g", time, dtime)
			o.Diag.Error(msg)
			return 0, 0, chk.Err(msg)
		}
	}
	copy(φ, o.φnew)
	copy(σ, o.σnew)
	return
}
