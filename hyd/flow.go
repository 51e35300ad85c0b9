// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "math"

// Density computes the intrinsic density of a fluid
//   ρ = m / vol
func (o *Calculator) Density(mass, volume float64) (float64, error) {
	if !(volume > 0) {
		return 0, domainErr("Density", "volume must be positive; vol = %g", volume)
	}
	return finite("Density", mass/volume)
}

// Area computes the cross-sectional area of a circular pipe
//   A = (π/4)・di²
func (o *Calculator) Area(di float64) (float64, error) {
	if !(di > 0) {
		return 0, domainErr("Area", "diameter must be positive; di = %g", di)
	}
	return finite("Area", (math.Pi/4)*di*di)
}

// Velocity computes the mean flow velocity in a circular pipe
//   V = Q / ((π/4)・di²)
func (o *Calculator) Velocity(Q, di float64) (float64, error) {
	if !(di > 0) {
		return 0, domainErr("Velocity", "diameter must be positive; di = %g", di)
	}
	return finite("Velocity", Q/((math.Pi/4)*di*di))
}

// ReynoldsNumber computes Re = V・di / ν
//  Note: the sign of V is kept; the caller handles the flow direction
func (o *Calculator) ReynoldsNumber(V, di float64) (float64, error) {
	if !(di > 0) {
		return 0, domainErr("ReynoldsNumber", "diameter must be positive; di = %g", di)
	}
	return finite("ReynoldsNumber", V*di/o.cfg.Nu)
}

// FlowRatio computes the ratio between the branch flow and the main flow
//   q = Qs / Q
func (o *Calculator) FlowRatio(Qs, Q float64) (float64, error) {
	if Q == 0 {
		return 0, domainErr("FlowRatio", "main flow must be non-zero")
	}
	return finite("FlowRatio", Qs/Q)
}
