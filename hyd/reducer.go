// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

// AreaRatio computes a = Ain / Aout
func (o *Calculator) AreaRatio(Ain, Aout float64) (float64, error) {
	if Aout == 0 {
		return 0, domainErr("AreaRatio", "outlet area must be non-zero")
	}
	return finite("AreaRatio", Ain/Aout)
}

// ReducerK computes the loss coefficient of a reducer (correlation fit)
//
//   K = -0.513・a + 0.51   if a < 1
//   K = (a - 1)²           if a ≥ 1
//
func (o *Calculator) ReducerK(a float64) (float64, error) {
	if a < 1 {
		return finite("ReducerK", -0.513*a+0.51)
	}
	return finite("ReducerK", (a-1)*(a-1))
}
