// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

const none = "-"

// newTable returns the writer used by every tabular command.
// Callers must Flush it.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatCost prints a distance or weight; +Inf is "inf".
func formatCost(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}
