package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/topology"
)

type pathsFlags struct {
	topology string
	src      int
	dst      int
	simple   bool
}

func newPathsCmd(root *rootFlags) *cobra.Command {
	flags := &pathsFlags{}
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the minimal paths between two nodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPaths(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.topology, "topology", "t", "", "Topology YAML file (required)")
	f.IntVar(&flags.src, "src", 0, "Source node id (required)")
	f.IntVar(&flags.dst, "dst", 0, "Destination node id (required)")
	f.BoolVar(&flags.simple, "simple", false, "List every simple path, chorded ones included")

	_ = cmd.MarkFlagRequired("topology")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}

func runPaths(cmd *cobra.Command, root *rootFlags, flags *pathsFlags) error {
	topo, err := topology.Load(flags.topology)
	if err != nil {
		return err
	}
	enumerate := pathset.MinimalPaths
	if flags.simple {
		enumerate = pathset.SimplePaths
	}

	src, dst := core.NodeID(flags.src), core.NodeID(flags.dst)
	paths, err := enumerate(topo.Graph, src, dst)
	if err != nil {
		return err
	}

	w, render, err := newTable(root.format, fmt.Sprintf("paths %s → %s", topo.Label(src), topo.Label(dst)))
	if err != nil {
		return err
	}
	w.AppendHeader([]any{"#", "hops", "nodes"})
	for i, p := range paths {
		w.AppendRow([]any{i + 1, len(p) - 1, nodeList(topo, p)})
	}
	alignRight(w, 1, 2)

	return writeLine(cmd.OutOrStdout(), render())
}
