// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Segment holds the data of one straight pipe run and its fittings
type Segment struct {
	Di       float64   // internal diameter
	L        float64   // length
	E        float64   // wall roughness
	Rho      float64   // fluid density
	Q        float64   // flow rate
	Fittings []Fitting // fittings with configured coefficients
	Kextra   []float64 // other coefficients; e.g. from ReducerK, TeeMainK or TeeSideK
}

// SegmentResult holds the quantities computed for a Segment
type SegmentResult struct {
	V   float64 // velocity
	Re  float64 // Reynolds number
	F   float64 // friction factor
	K   float64 // sum of minor-loss coefficients
	DPf float64 // friction (major) pressure drop
	DHf float64 // friction (major) head loss
	DPm float64 // minor pressure drop
	DHm float64 // minor head loss
	DP  float64 // total pressure drop
	DH  float64 // total head loss
}

// String returns a summary of the results
func (o SegmentResult) String() string {
	return io.Sf("V=%g Re=%g f=%g K=%g ΔP=%g (%g+%g) ΔH=%g (%g+%g)",
		o.V, o.Re, o.F, o.K, o.DP, o.DPf, o.DPm, o.DH, o.DHf, o.DHm)
}

// CalcSegment computes the friction and minor losses of a single segment.
// Segments are independent: no flow balance is performed here
//  Note: negative Q (reverse flow) gives negative V and Re; the friction factor
//        uses |Re| and the losses are always computed with V²
func (o *Calculator) CalcSegment(seg Segment) (res SegmentResult, err error) {
	if !(seg.Rho > 0) {
		return res, domainErr("CalcSegment", "density must be positive; rho = %g", seg.Rho)
	}
	if !(seg.L >= 0) {
		return res, domainErr("CalcSegment", "length must be non-negative; L = %g", seg.L)
	}
	if res.V, err = o.Velocity(seg.Q, seg.Di); err != nil {
		return res, wrap("velocity", err)
	}
	if res.Re, err = o.ReynoldsNumber(res.V, seg.Di); err != nil {
		return res, wrap("Reynolds number", err)
	}
	if seg.L != 0 && res.V != 0 {
		if res.F, err = o.FrictionFactor(seg.E, seg.Di, math.Abs(res.Re)); err != nil {
			return res, wrap("friction factor", err)
		}
		if res.DPf, res.DHf, err = o.PressureLoss(seg.Di, seg.L, seg.Rho, res.V, res.F); err != nil {
			return res, wrap("friction loss", err)
		}
	}
	for _, kind := range seg.Fittings {
		K, e := o.FittingK(kind)
		if e != nil {
			return res, wrap("fitting coefficient", e)
		}
		res.K += K
	}
	for _, K := range seg.Kextra {
		res.K += K
	}
	if res.DPm, res.DHm, err = o.MinorPressureLoss(res.K, seg.Rho, res.V); err != nil {
		return res, wrap("minor loss", err)
	}
	res.DP = res.DPf + res.DPm
	res.DH = res.DHf + res.DHm
	return
}

// wrap adds the name of the failing quantity to a DomainError
func wrap(what string, err error) error {
	if e, ok := err.(*DomainError); ok {
		return &DomainError{Op: "CalcSegment", Msg: io.Sf("%s: %s", what, e.Error())}
	}
	return err
}
