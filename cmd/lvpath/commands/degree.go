// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newDegreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "degree",
		Short: "Print node degrees and the maximum degree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.degree(cmd.OutOrStdout())
		},
	}
}

func (a *app) degree(w io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	tw := newTable(w)
	if g.Oriented() {
		fmt.Fprintln(tw, "NODE\tIN\tOUT\tDEGREE")
	} else {
		fmt.Fprintln(tw, "NODE\tDEGREE")
	}
	for _, n := range g.Nodes() {
		name, _ := g.Value(n)
		if !g.Oriented() {
			fmt.Fprintf(tw, "%s\t%d\n", name, g.Degree(n))
			continue
		}
		in, _ := g.DegreeIn(n)
		out, _ := g.DegreeOut(n)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, in, out, g.Degree(n))
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "max degree: %d\n", g.MaxDegree())

	return err
}
