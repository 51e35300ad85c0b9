// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// DomainError reports inputs outside the domain of a formula, e.g. zero
// denominators, non-positive logarithm arguments, or non-finite results
type DomainError struct {
	Op  string // name of the operation; e.g. "FrictionFactor"
	Msg string // description of the violated condition
}

// Error implements the error interface
func (o *DomainError) Error() string {
	return io.Sf("hyd.%s: %s", o.Op, o.Msg)
}

// domainErr returns a new DomainError
func domainErr(op, msg string, args ...interface{}) error {
	return &DomainError{Op: op, Msg: io.Sf(msg, args...)}
}

// finite returns x or a DomainError if x is NaN or ±Inf
func finite(op string, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, domainErr(op, "result is not finite (%g)", x)
	}
	return x, nil
}

// finite2 is the two-valued version of finite
func finite2(op string, x, y float64) (float64, float64, error) {
	if _, err := finite(op, x); err != nil {
		return 0, 0, err
	}
	if _, err := finite(op, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
