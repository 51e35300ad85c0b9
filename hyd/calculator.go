// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hyd implements formulas for pipe-flow networks: velocity, Reynolds number,
// Darcy friction factor, major (friction) losses and minor (fitting) losses of
// elbows, outlets, discharges, reducers and tee junctions
//  Units:
//   SI throughout: kg/m³, m³/s, m, m/s, m²/s, Pa and m of fluid column
//  Errors:
//   all formulas check their preconditions and never return NaN or ±Inf;
//   violations are reported as *DomainError
package hyd

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Config holds the constants of a Calculator
type Config struct {
	Grav       float64 // gravity acceleration
	Nu         float64 // kinematic viscosity
	Kelbow45   float64 // loss coefficient of 45° elbows
	Kelbow90   float64 // loss coefficient of 90° elbows
	Koutlet    float64 // loss coefficient of outlets
	Kdischarge float64 // loss coefficient of free discharge
	TeeAngle   float64 // default tee angle [rad]
}

// DefaultConfig returns the default constants
func DefaultConfig() Config {
	return Config{
		Grav:       Grav,
		Nu:         Nu,
		Kelbow45:   Kelbow45,
		Kelbow90:   Kelbow90,
		Koutlet:    Koutlet,
		Kdischarge: Kdischarge,
		TeeAngle:   TeeAngle,
	}
}

// check validates the constants
func (o Config) check() error {
	if !(o.Grav > 0) || math.IsInf(o.Grav, 0) {
		return chk.Err("hyd: gravity acceleration g = %g is invalid", o.Grav)
	}
	if !(o.Nu > 0) || math.IsInf(o.Nu, 0) {
		return chk.Err("hyd: kinematic viscosity nu = %g is invalid", o.Nu)
	}
	for _, k := range []struct {
		name string
		val  float64
	}{
		{"kelb45", o.Kelbow45},
		{"kelb90", o.Kelbow90},
		{"kout", o.Koutlet},
		{"kdis", o.Kdischarge},
	} {
		if !(k.val >= 0) || math.IsInf(k.val, 0) {
			return chk.Err("hyd: loss coefficient %s = %g is invalid", k.name, k.val)
		}
	}
	if math.IsNaN(o.TeeAngle) || math.IsInf(o.TeeAngle, 0) {
		return chk.Err("hyd: tee angle theta = %g is invalid", o.TeeAngle)
	}
	return nil
}

// Calculator computes hydraulic quantities with a fixed set of constants.
//  Note: a Calculator is never modified after construction and can be shared
//        among goroutines
type Calculator struct {
	cfg Config
}

// NewCalculator returns a calculator with the given constants
func NewCalculator(cfg Config) (o *Calculator, err error) {
	if err = cfg.check(); err != nil {
		return
	}
	return &Calculator{cfg}, nil
}

// Default returns a calculator with the default constants
func Default() *Calculator {
	return &Calculator{DefaultConfig()}
}

// New returns a calculator initialised with parameters. Missing parameters take
// their default values; if "kelb45" is given without "kelb90", then kelb90 = 2・kelb45
//  Parameters:
//   g      -- gravity acceleration
//   nu     -- kinematic viscosity
//   kelb45 -- loss coefficient of 45° elbows
//   kelb90 -- loss coefficient of 90° elbows
//   kout   -- loss coefficient of outlets
//   kdis   -- loss coefficient of free discharge
//   theta  -- default tee angle [rad]
func New(prms dbf.Params) (o *Calculator, err error) {
	cfg := DefaultConfig()
	has90 := false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "g":
			cfg.Grav = p.V
		case "nu":
			cfg.Nu = p.V
		case "kelb45":
			cfg.Kelbow45 = p.V
		case "kelb90":
			cfg.Kelbow90 = p.V
			has90 = true
		case "kout":
			cfg.Koutlet = p.V
		case "kdis":
			cfg.Kdischarge = p.V
		case "theta":
			cfg.TeeAngle = p.V
		default:
			return nil, chk.Err("hyd: parameter named %q is incorrect", p.N)
		}
	}
	if !has90 {
		cfg.Kelbow90 = 2 * cfg.Kelbow45
	}
	return NewCalculator(cfg)
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns the default parameters; otherwise returns current parameters
func (o *Calculator) GetPrms(example bool) dbf.Params {
	cfg := o.cfg
	if example {
		cfg = DefaultConfig()
	}
	return dbf.Params{
		&dbf.P{N: "g", V: cfg.Grav},          // [m/s²]
		&dbf.P{N: "nu", V: cfg.Nu},           // [m²/s]
		&dbf.P{N: "kelb45", V: cfg.Kelbow45}, // [-]
		&dbf.P{N: "kelb90", V: cfg.Kelbow90}, // [-]
		&dbf.P{N: "kout", V: cfg.Koutlet},    // [-]
		&dbf.P{N: "kdis", V: cfg.Kdischarge}, // [-]
		&dbf.P{N: "theta", V: cfg.TeeAngle},  // [rad]
	}
}

// Config returns a copy of the constants
func (o *Calculator) Config() Config {
	return o.cfg
}

// TeeAngle returns the default tee angle
func (o *Calculator) TeeAngle() float64 {
	return o.cfg.TeeAngle
}
