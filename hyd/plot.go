// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// MoodyCurve computes the friction factor along np Reynolds numbers in [10^lgRe0, 10^lgRe1]
// for the relative roughness rr = e/di. Points outside the domain of FrictionFactor are skipped
func MoodyCurve(o *Calculator, rr, lgRe0, lgRe1 float64, np int) (Re, F []float64) {
	for _, x := range utl.LinSpace(lgRe0, lgRe1, np) {
		re := math.Pow(10, x)
		f, err := o.FrictionFactor(rr, 1, re)
		if err != nil {
			continue
		}
		Re = append(Re, re)
		F = append(F, f)
	}
	return
}

// PlotMoody plots friction factors versus Reynolds numbers (Moody chart)
//  Input:
//   rrs -- relative roughness values e/di; one curve each
//   np  -- number of points per curve
func PlotMoody(o *Calculator, dirout, fnkey string, rrs []float64, np int) {
	colors := []string{"k", "r", "b", "g", "m", "c"}
	for i, rr := range rrs {
		Re, F := MoodyCurve(o, rr, 3, 8, np)
		plt.Plot(Re, F, &plt.A{C: colors[i%len(colors)], Ls: "-", L: io.Sf("e/d=%g", rr)})
	}
	plt.SetXlog()
	plt.SetYlog()
	plt.Gll("$Re$", "$f$", nil)
	plt.Save(dirout, fnkey)
}

// TeeCurve computes the main and side coefficients of a tee along np flow ratios in [0,1]
// using the default tee angle and vr = 1. Points where either formula fails are skipped
func TeeCurve(o *Calculator, a float64, np int) (Q, Km, Ks []float64) {
	θ := o.TeeAngle()
	for _, q := range utl.LinSpace(0, 1, np) {
		km, err := o.TeeMainK(a, q, θ, 1)
		if err != nil {
			continue
		}
		ks, err := o.TeeSideK(a, q, θ)
		if err != nil {
			continue
		}
		Q = append(Q, q)
		Km = append(Km, km)
		Ks = append(Ks, ks)
	}
	return
}

// PlotTee plots the main and side coefficients of a tee versus the flow ratio q in [0,1]
func PlotTee(o *Calculator, dirout, fnkey string, a float64, np int) {
	Q, Km, Ks := TeeCurve(o, a, np)
	plt.Subplot(2, 1, 1)
	plt.Plot(Q, Km, &plt.A{C: "b", Ls: "-", L: "main"})
	plt.Gll("$q$", "$K_{main}$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(Q, Ks, &plt.A{C: "r", Ls: "-", L: "side"})
	plt.Gll("$q$", "$K_{side}$", nil)
	plt.Save(dirout, fnkey)
}
