// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkDomainErr checks that err is a DomainError raised by op
func checkDomainErr(tst *testing.T, msg, op string, err error) {
	var derr *DomainError
	if !errors.As(err, &derr) {
		tst.Errorf("%s: DomainError expected; got %v\n", msg, err)
		return
	}
	chk.String(tst, derr.Op, op)
}

func Test_flow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow01. density, area and velocity")

	o := Default()

	rho, err := o.Density(998.2, 1.0)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρ", 1e-15, rho, 998.2)

	A, err := o.Area(0.1)
	if err != nil {
		tst.Errorf("Area failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-17, A, math.Pi*0.01/4)

	V, err := o.Velocity(0.01, 0.1)
	if err != nil {
		tst.Errorf("Velocity failed: %v\n", err)
		return
	}
	io.Pforan("V = %v\n", V)
	chk.Float64(tst, "V", 1e-14, V, 4/math.Pi)

	q, err := o.FlowRatio(0.2, 0.8)
	if err != nil {
		tst.Errorf("FlowRatio failed: %v\n", err)
		return
	}
	chk.Float64(tst, "q", 1e-15, q, 0.25)
}

func Test_flow02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow02. Reynolds number and friction factor")

	o := Default()

	Re, err := o.ReynoldsNumber(2, 0.1)
	if err != nil {
		tst.Errorf("ReynoldsNumber failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Re", 1e-9, Re, 2e5)

	io.PfWhite("%12s%12s%12s%23s\n", "e", "di", "Re", "f")
	for _, c := range []struct{ e, di, Re, f float64 }{
		{1e-4, 0.1, 2e5, 0.02161701614950842},
		{0, 0.1, 1e5, 0.018221152673308753},
		{4.5e-5, 0.05, 5e4, 0.024366592616792526},
	} {
		f, err := o.FrictionFactor(c.e, c.di, c.Re)
		if err != nil {
			tst.Errorf("FrictionFactor failed: %v\n", err)
			return
		}
		io.Pf("%12g%12g%12g%23.15e\n", c.e, c.di, c.Re, f)
		chk.Float64(tst, "f", 1e-14, f, c.f)
	}

	// friction factor decreases with Re for a smooth pipe in the turbulent range
	fprev := math.MaxFloat64
	for _, x := range utl.LinSpace(4, 8, 21) {
		f, err := o.FrictionFactor(0, 0.1, math.Pow(10, x))
		if err != nil {
			tst.Errorf("FrictionFactor failed: %v\n", err)
			return
		}
		if f >= fprev {
			tst.Errorf("f = %g should be smaller than %g\n", f, fprev)
			return
		}
		fprev = f
	}
}

func Test_flow03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow03. domain errors")

	o := Default()

	_, err := o.Density(1, 0)
	checkDomainErr(tst, "zero volume", "Density", err)

	_, err = o.Density(1, -2)
	checkDomainErr(tst, "negative volume", "Density", err)

	_, err = o.Area(0)
	checkDomainErr(tst, "zero diameter", "Area", err)

	_, err = o.Velocity(1, 0)
	checkDomainErr(tst, "zero diameter", "Velocity", err)

	_, err = o.ReynoldsNumber(1, -0.1)
	checkDomainErr(tst, "negative diameter", "ReynoldsNumber", err)

	_, err = o.FlowRatio(1, 0)
	checkDomainErr(tst, "zero main flow", "FlowRatio", err)

	_, err = o.FrictionFactor(1e-4, 0.1, 0)
	checkDomainErr(tst, "zero Re", "FrictionFactor", err)

	_, err = o.FrictionFactor(1e-4, 0.1, -1e5)
	checkDomainErr(tst, "negative Re", "FrictionFactor", err)

	_, err = o.FrictionFactor(-1, 0.1, 1e5)
	checkDomainErr(tst, "negative log argument", "FrictionFactor", err)

	// term = e/(3.7・di) = 1 with a vanishing Reynolds contribution
	_, err = o.FrictionFactor(3.7, 1, math.Inf(1))
	checkDomainErr(tst, "log argument equal to one", "FrictionFactor", err)

	_, err = o.Velocity(math.NaN(), 0.1)
	checkDomainErr(tst, "NaN flow", "Velocity", err)

	_, err = o.Density(math.Inf(1), 1)
	checkDomainErr(tst, "infinite mass", "Density", err)
}
