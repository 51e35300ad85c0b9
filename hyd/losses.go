// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

// PressureLoss computes the major (friction) loss along a straight pipe
//
//   ΔP = f・(L/di)・½・ρ・V²
//   ΔH = ΔP / (ρ・g)
//
//  Output:
//   dP -- pressure drop
//   dH -- head loss
func (o *Calculator) PressureLoss(di, L, rho, V, f float64) (dP, dH float64, err error) {
	if !(di > 0) {
		return 0, 0, domainErr("PressureLoss", "diameter must be positive; di = %g", di)
	}
	if !(rho > 0) {
		return 0, 0, domainErr("PressureLoss", "density must be positive; rho = %g", rho)
	}
	dP = f * (L / di) * 0.5 * rho * V * V
	dH = dP / (rho * o.cfg.Grav)
	return finite2("PressureLoss", dP, dH)
}

// MinorPressureLoss computes the loss through a fitting with coefficient K
//
//   ΔP = K・½・ρ・V²
//   ΔH = K・V² / (2・g)
//
func (o *Calculator) MinorPressureLoss(K, rho, V float64) (dP, dH float64, err error) {
	dP = K * 0.5 * rho * V * V
	dH = K * V * V / (2 * o.cfg.Grav)
	return finite2("MinorPressureLoss", dP, dH)
}

// Fitting defines fittings with a fixed loss coefficient
type Fitting int

const (
	Elbow45   Fitting = iota // 45° elbow
	Elbow90                  // 90° elbow
	Outlet                   // outlet into a vessel
	Discharge                // free discharge
)

// String returns the name of the fitting
func (o Fitting) String() string {
	switch o {
	case Elbow45:
		return "elbow45"
	case Elbow90:
		return "elbow90"
	case Outlet:
		return "outlet"
	case Discharge:
		return "discharge"
	}
	return "unknown"
}

// FittingK returns the configured loss coefficient of a fitting
func (o *Calculator) FittingK(kind Fitting) (float64, error) {
	switch kind {
	case Elbow45:
		return o.cfg.Kelbow45, nil
	case Elbow90:
		return o.cfg.Kelbow90, nil
	case Outlet:
		return o.cfg.Koutlet, nil
	case Discharge:
		return o.cfg.Kdischarge, nil
	}
	return 0, domainErr("FittingK", "fitting %d is not available", int(kind))
}

// FittingLoss computes the minor loss of a fitting with configured coefficient
func (o *Calculator) FittingLoss(kind Fitting, rho, V float64) (dP, dH float64, err error) {
	K, err := o.FittingK(kind)
	if err != nil {
		return
	}
	return o.MinorPressureLoss(K, rho, V)
}
