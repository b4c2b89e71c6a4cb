package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrbd/availability"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/topology"
)

type exprFlags struct {
	topology  string
	algorithm string
	src       int
	dst       int
}

func newExprCmd() *cobra.Command {
	flags := &exprFlags{}
	cmd := &cobra.Command{
		Use:   "expr",
		Short: "Print the disjoint Boolean expression behind an availability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExpr(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.topology, "topology", "t", "", "Topology YAML file (required)")
	f.StringVarP(&flags.algorithm, "algorithm", "a", availability.SumOfDisjointProducts.Short(),
		"Algorithm: mcs, pathset or sdp")
	f.IntVar(&flags.src, "src", 0, "Source node id (required)")
	f.IntVar(&flags.dst, "dst", 0, "Destination node id (required)")

	_ = cmd.MarkFlagRequired("topology")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}

func runExpr(cmd *cobra.Command, flags *exprFlags) error {
	topo, err := topology.Load(flags.topology)
	if err != nil {
		return err
	}
	alg, err := availability.ParseAlgorithm(flags.algorithm)
	if err != nil {
		return err
	}
	cfg := availability.DefaultConfig()
	cfg.Algorithm = alg
	ev, err := availability.New(cfg)
	if err != nil {
		return err
	}

	expr, err := ev.Expression(topo.Graph, core.NodeID(flags.src), core.NodeID(flags.dst))
	if err != nil {
		return err
	}

	return writeLine(cmd.OutOrStdout(), expr)
}
