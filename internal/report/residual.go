// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import "strconv"

// Residuals are tiny and only meaningful in scientific notation, so they
// bypass locale formatting.
func formatResidual(r float64) string {
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'e', 3, 64)
}
