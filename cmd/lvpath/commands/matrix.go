// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix of edge weights",
		Long: `Prints one row per node. A cell holds the weight of the edge from the
row node to the column node, or "-" when there is none (or it has no
weight). Unoriented graphs print a symmetric matrix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.matrix(cmd.OutOrStdout())
		},
	}
}

func (a *app) matrix(w io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	adj := g.Adjacency()

	tw := newTable(w)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(adj.Order, "\t"))
	cells := make([]string, len(adj.Order))
	for _, from := range adj.Order {
		for j, c := range adj.Rows[from] {
			cells[j] = none
			if c.Valid {
				cells[j] = formatCost(c.Value.Weight())
			}
		}
		fmt.Fprintf(tw, "%s\t%s\n", from, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
