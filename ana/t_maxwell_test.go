// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_genmaxwell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genmaxwell01")

	var sol GenMaxwell
	err := sol.Init([]float64{0.35, 0.25}, []float64{0.5, 5.0})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Ginf", 1e-15, sol.Ginf, 0.4)

	// instantaneous response
	chk.Scalar(tst, "r(0)", 1e-15, sol.RelaxRatio(0), 1.0)

	// one relaxation time
	r := 0.4 + 0.35*math.Exp(-1.0) + 0.25*math.Exp(-0.5/5.0)
	chk.Scalar(tst, "r(0.5)", 1e-15, sol.RelaxRatio(0.5), r)

	// long-time limit
	chk.Scalar(tst, "r(inf)", 1e-12, sol.RelaxRatio(1e6), 0.4)

	// the relaxation function is monotonically decreasing
	T, R := sol.CalcCurve(25.0, 101)
	chk.IntAssert(len(T), 101)
	for i := 1; i < len(R); i++ {
		if R[i] >= R[i-1] {
			tst.Errorf("relaxation function is not decreasing at t=%g\n", T[i])
			return
		}
	}

	// stress decays proportionally in every component
	σ0 := []float64{12, -3, 0, 1, 0, 0}
	σ := make([]float64, 6)
	sol.StressRelax(σ, σ0, 0.5)
	for j := range σ0 {
		chk.Scalar(tst, io.Sf("sig[%d]", j), 1e-14, σ[j], r*σ0[j])
	}
}

func Test_genmaxwell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genmaxwell02. invalid input")

	var sol GenMaxwell
	if err := sol.Init([]float64{0.5}, []float64{1, 2}); err == nil {
		tst.Errorf("Init should have failed with mismatched lengths\n")
		return
	}
	if err := sol.Init([]float64{0.5}, []float64{-1}); err == nil {
		tst.Errorf("Init should have failed with tau<=0\n")
		return
	}
	if err := sol.Init([]float64{0.7, 0.7}, []float64{1, 2}); err == nil {
		tst.Errorf("Init should have failed with sum(g)>1\n")
		return
	}
}
