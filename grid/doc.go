// SPDX-License-Identifier: MIT

// Package grid turns per-cell text into matrices under a size policy.
//
// Cells accept an integer ("3"), a decimal ("-0.25") or a fraction ("5/6").
// ParseCell maps malformed text to 0; ParseCellStrict reports the error.
// Policy bounds grids to at most MaxRows×MaxCols (10×10 by default), the
// range for which the cofactor-based determinant and inverse stay cheap.
package grid
