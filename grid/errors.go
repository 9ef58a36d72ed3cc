// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrGridTooLarge is returned when a grid exceeds the policy bounds.
	ErrGridTooLarge = errors.New("grid: grid exceeds size policy")

	// ErrEmptyGrid is returned for a grid without rows or columns.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrRaggedGrid is returned when rows have different lengths.
	ErrRaggedGrid = errors.New("grid: rows differ in length")

	// ErrInvalidPolicy is returned by Policy.Check for non-positive bounds.
	ErrInvalidPolicy = errors.New("grid: invalid policy")
)

func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
