// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LugolBis/Data-Toolkit/bfs"
	"github.com/LugolBis/Data-Toolkit/core"
)

func newHopsCmd(a *app) *cobra.Command {
	var (
		from     string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "hops",
		Short: "Fewest-edge distances from a node, ignoring weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.hops(cmd, from, maxDepth)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) hops(cmd *cobra.Command, from string, maxDepth int) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	start, err := g.Node(from)
	if err != nil {
		return fmt.Errorf("lvpath: start %q: %w", from, err)
	}
	res, err := bfs.BFS(g, start, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return err
	}
	a.logger.Info("hops computed", zap.String("from", from), zap.Int("reached", len(res.Order)))

	return writeHops(cmd.OutOrStdout(), g, res)
}

// writeHops prints reached nodes in visit order.
func writeHops(w io.Writer, g *core.Graph[string, core.Cost], res *bfs.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NODE\tHOPS\tVIA")
	for _, n := range res.Order {
		name, _ := g.Value(n)
		via := none
		if p, ok := res.Parent[n]; ok {
			via, _ = g.Value(p)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, res.Depth[n], via)
	}

	return tw.Flush()
}
