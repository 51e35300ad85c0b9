// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "math"

// TeeMainK computes the loss coefficient of the straight-through (main) line of a tee
//
//   Kst = 0.5     if a > 0.35
//   Kst = 0.8・q  otherwise
//   K   = 1 - (1-q)² - (1.4-q)・q²・sin(θ) - Kst・(2/vr)・cos(θ)
//
//  Input:
//   a     -- branch-to-main area ratio
//   q     -- branch-to-main flow ratio
//   theta -- junction angle [rad]; e.g. o.TeeAngle()
//   vr    -- ratio supplied by the network model; not the kinematic viscosity
func (o *Calculator) TeeMainK(a, q, theta, vr float64) (float64, error) {
	if vr == 0 {
		return 0, domainErr("TeeMainK", "ratio vr must be non-zero")
	}
	Kst := 0.8 * q
	if a > teeAreaLimit {
		Kst = 0.5
	}
	q2 := q * q
	K := (1 - (1-q)*(1-q) - (1.4-q)*q2*math.Sin(theta)) - (Kst * (2 / vr) * math.Cos(theta))
	return finite("TeeMainK", K)
}

// TeeSideK computes the loss coefficient of the side (branch) outlet of a tee
//
//   B = 0.55          if a > 0.35 and q > 0.4
//   B = 0.9・(1-q)    if a > 0.35 and q ≤ 0.4
//   B = 1             otherwise
//   K = B・(1 + (q/a)² - 2・(1-q)² - (2/a)・q²・cos(θ))
//
func (o *Calculator) TeeSideK(a, q, theta float64) (float64, error) {
	if a == 0 {
		return 0, domainErr("TeeSideK", "area ratio must be non-zero")
	}
	B := 1.0
	if a > teeAreaLimit {
		if q > teeFlowLimit {
			B = 0.55
		} else {
			B = 0.9 * (1 - q)
		}
	}
	q2 := q * q
	K := B * (1 + (q/a)*(q/a) - 2*(1-q)*(1-q) - (2/a)*q2*math.Cos(theta))
	return finite("TeeSideK", K)
}
