// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "math"

// default constants (SI units)
const (
	Grav       = 9.81         // [m/s²] gravity acceleration
	Nu         = 1e-6         // [m²/s] kinematic viscosity of water
	Kelbow45   = 0.20         // [-] loss coefficient of 45° elbows
	Kelbow90   = 2 * Kelbow45 // [-] loss coefficient of 90° elbows
	Koutlet    = 0.0          // [-] loss coefficient of outlets
	Kdischarge = 1.0          // [-] loss coefficient of free discharge
	TeeAngle   = math.Pi / 4  // [rad] angle between tee branch and main line
)

// bounds of the piecewise correlations
const (
	teeAreaLimit = 0.35 // area ratio above which tees use the large-branch coefficients
	teeFlowLimit = 0.4  // flow ratio above which large-branch side coefficient is constant
)
