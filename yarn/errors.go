// SPDX-License-Identifier: MIT
// Package: tartan/yarn
//
// errors.go - sentinel errors for the yarn package.
//
// Every failure is detected before any arithmetic runs; a Calculation is
// never partially filled or NaN.

package yarn

import (
	"errors"
	"fmt"
)

// ErrArithmetic is the parent of the divide-by-zero style preconditions.
var ErrArithmetic = errors.New("yarn: arithmetic precondition")

var (
	// ErrZeroGauge: no positive gauge was given or derivable.
	ErrZeroGauge = fmt.Errorf("%w: gauge must be positive", ErrArithmetic)
	// ErrEmptySett: the sett has no threads to apportion.
	ErrEmptySett = fmt.Errorf("%w: sett has no threads", ErrArithmetic)
	// ErrBadDimension: a product width or length is not positive.
	ErrBadDimension = fmt.Errorf("%w: product dimensions must be positive", ErrArithmetic)
)

var (
	// ErrUnknownProduct: the product key is not built in or registered.
	ErrUnknownProduct = errors.New("yarn: unknown product")
	// ErrUnknownProfile: the yarn profile key is not built in or registered.
	ErrUnknownProfile = errors.New("yarn: unknown yarn profile")
	// ErrBadWaste: waste multiplier below 1.
	ErrBadWaste = errors.New("yarn: waste multiplier must be at least 1")
)
