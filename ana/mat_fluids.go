// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds reference properties of fluids in SI units
package ana

import "github.com/cpmech/gosl/chk"

// Water handles the properties of water at atmospheric pressure
type Water struct {
	Θ   float64 // reference temperature [°C]
	Rho float64 // intrinsic density @ reference temperature [kg/m³]
	Mu  float64 // dynamic viscosity @ reference temperature [Pa・s]
	Nu  float64 // kinematic viscosity @ reference temperature [m²/s]
}

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature [°C]
	R    float64 // specific ideal gas constant [J/(kg・K)]
	Patm float64 // absolute atmospheric pressure [Pa]
	Rho  float64 // intrinsic density @ reference temperature [kg/m³]
	Mu   float64 // dynamic viscosity @ reference temperature [Pa・s]
	Nu   float64 // kinematic viscosity @ reference temperature [m²/s]
}

// tabulated {ρ, μ} of water
var waterTable = map[float64][2]float64{
	20: {998.2, 1.002e-3},
	25: {997.05, 0.890e-3},
}

// tabulated μ of dry air
var airTable = map[float64]float64{
	20: 1.813e-5,
	25: 1.849e-5,
}

// Init initialises data
//  Input:
//   tempC -- temperature in °C; 20 or 25
func (o *Water) Init(tempC float64) (err error) {
	row, ok := waterTable[tempC]
	if !ok {
		return chk.Err("water: properties at %g °C are not available", tempC)
	}
	o.Θ = tempC
	o.Rho = row[0]
	o.Mu = row[1]
	o.Nu = o.Mu / o.Rho
	return
}

// Init initialises data
//  Input:
//   tempC -- temperature in °C; 20 or 25
func (o *DryAir) Init(tempC float64) (err error) {
	mu, ok := airTable[tempC]
	if !ok {
		return chk.Err("dry air: properties at %g °C are not available", tempC)
	}
	o.Θ = tempC
	o.R = 287.058                           // [J/(kg・K)]
	o.Patm = 101325                         // [Pa]
	o.Rho = o.Patm / (o.R * (o.Θ + 273.15)) // [kg/m³]
	o.Mu = mu
	o.Nu = o.Mu / o.Rho
	return
}
