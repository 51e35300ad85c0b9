// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "math"

// FrictionFactor computes the Darcy friction factor with the explicit
// (single-pass) Swamee-Jain form
//
//   term = e/(3.7・di) + 5.74/Re^0.9
//   f    = 1 / (0.86・ln(term))²
//
//  Input:
//   e  -- wall roughness
//   di -- internal diameter
//   Re -- Reynolds number; must be positive
//  Note: term must be positive and different from 1
func (o *Calculator) FrictionFactor(e, di, Re float64) (float64, error) {
	if !(di > 0) {
		return 0, domainErr("FrictionFactor", "diameter must be positive; di = %g", di)
	}
	if !(Re > 0) {
		return 0, domainErr("FrictionFactor", "Reynolds number must be positive; Re = %g", Re)
	}
	term := e/(3.7*di) + 5.74/math.Pow(Re, 0.9)
	if !(term > 0) {
		return 0, domainErr("FrictionFactor", "logarithm argument must be positive; term = %g", term)
	}
	if term == 1 {
		return 0, domainErr("FrictionFactor", "logarithm argument must differ from 1")
	}
	den := 0.86 * math.Log(term)
	return finite("FrictionFactor", 1/(den*den))
}
