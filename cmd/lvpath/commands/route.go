// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LugolBis/Data-Toolkit/core"
	"github.com/LugolBis/Data-Toolkit/dijkstra"
)

// ErrSourceAvoided is returned when --from is also listed in --avoid.
var ErrSourceAvoided = errors.New("lvpath: source node is excluded by --avoid")

type routeOptions struct {
	from  string
	to    string
	avoid []string
}

func newRouteCmd(a *app) *cobra.Command {
	var opts routeOptions

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest distances from a node, or the path to one target",
		Long: `Runs Dijkstra from --from.

Without --to, prints every node with its distance and predecessor.
With --to, prints the path and its cost. --avoid removes nodes (and
their edges) before the search.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.route(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "source node")
	f.StringVar(&opts.to, "to", "", "target node")
	f.StringSliceVar(&opts.avoid, "avoid", nil, "nodes to exclude")
	f.String("strategy", dijkstra.StrategyScan.String(), "node selection: scan or heap")
	_ = cmd.MarkFlagRequired("from")
	_ = a.v.BindPFlag("strategy", f.Lookup("strategy"))

	return cmd
}

func (a *app) route(w io.Writer, opts routeOptions) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	if len(opts.avoid) > 0 {
		skip := make(map[string]bool, len(opts.avoid))
		for _, name := range opts.avoid {
			skip[strings.TrimSpace(name)] = true
		}
		if skip[opts.from] {
			return fmt.Errorf("%w: %q", ErrSourceAvoided, opts.from)
		}
		g = core.InducedSubgraph(g, func(name string) bool { return !skip[name] })
	}

	src, err := g.Node(opts.from)
	if err != nil {
		return fmt.Errorf("lvpath: source %q: %w", opts.from, err)
	}
	strategy, err := dijkstra.ParseStrategy(a.v.GetString("strategy"))
	if err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(strategy))
	if err != nil {
		a.logger.Error("dijkstra", zap.String("from", opts.from), zap.Error(err))
		return err
	}
	a.logger.Info("route computed",
		zap.String("from", opts.from),
		zap.Stringer("strategy", strategy),
		zap.Int("reached", len(res.Prev)+1),
		zap.Int("nodes", len(res.Dist)),
	)

	if opts.to == "" {
		return writeDistances(w, g, res)
	}

	dst, err := g.Node(opts.to)
	if err != nil {
		return fmt.Errorf("lvpath: target %q: %w", opts.to, err)
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return fmt.Errorf("lvpath: %s -> %s: %w", opts.from, opts.to, err)
	}

	names := make([]string, len(path))
	for i, n := range path {
		names[i], _ = g.Value(n)
	}
	_, err = fmt.Fprintf(w, "path: %s\ncost: %s\n", strings.Join(names, " -> "), formatCost(res.Distance(dst)))

	return err
}

// writeDistances prints NODE / DISTANCE / VIA in node insertion order.
func writeDistances(w io.Writer, g *core.Graph[string, core.Cost], res *dijkstra.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tVIA")
	for _, n := range g.Nodes() {
		name, _ := g.Value(n)
		via := none
		if p, ok := res.Prev[n]; ok {
			via, _ = g.Value(p)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, formatCost(res.Distance(n)), via)
	}

	return tw.Flush()
}
