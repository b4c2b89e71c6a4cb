package main

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrbd/availability"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/metrics"
	"github.com/katalvlaran/lvrbd/topology"
)

type evalFlags struct {
	topology    string
	algorithm   string
	mode        string
	src         int
	dst         int
	order       int
	workers     int
	metricsFile string
}

func newEvalCmd(root *rootFlags) *cobra.Command {
	flags := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute availability for one pair or for every pair",
		Long: "Without --src/--dst every unordered pair of the topology is evaluated.\n" +
			"Parallel mode fans pairs out over goroutines; for a single pair it is\n" +
			"only available with the sum-of-disjoint-products algorithm.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.topology, "topology", "t", "", "Topology YAML file (required)")
	f.StringVarP(&flags.algorithm, "algorithm", "a", availability.SumOfDisjointProducts.Short(),
		"Algorithm: mcs, pathset, sdp, pyrbd (or the long names)")
	f.StringVarP(&flags.mode, "mode", "m", availability.Sequential.String(), "Mode: sequential or parallel")
	f.IntVar(&flags.src, "src", 0, "Source node id")
	f.IntVar(&flags.dst, "dst", 0, "Destination node id")
	f.IntVar(&flags.order, "order", 0, "Cut size ceiling (0 = every interior node, exact)")
	f.IntVar(&flags.workers, "workers", 0, "Goroutines in parallel mode (0 = GOMAXPROCS)")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path")

	_ = cmd.MarkFlagRequired("topology")

	return cmd
}

func runEval(cmd *cobra.Command, root *rootFlags, flags *evalFlags) error {
	topo, err := topology.Load(flags.topology)
	if err != nil {
		return err
	}
	cfg, err := flags.config()
	if err != nil {
		return err
	}
	if flags.metricsFile != "" {
		cfg.Metrics = metrics.NewRegistry()
	}
	ev, err := availability.New(cfg)
	if err != nil {
		return err
	}

	var src, dst *core.NodeID
	if cmd.Flags().Changed("src") {
		id := core.NodeID(flags.src)
		src = &id
	}
	if cmd.Flags().Changed("dst") {
		id := core.NodeID(flags.dst)
		dst = &id
	}

	results, err := ev.Evaluate(cmd.Context(), topo.Graph, topo.Availability, src, dst)
	if err != nil {
		return err
	}

	w, render, err := newTable(root.format, fmt.Sprintf("%s (%s, %s)", topo.Name, cfg.Algorithm, cfg.Mode))
	if err != nil {
		return err
	}
	w.AppendHeader([]any{"src", "dst", "availability"})
	for _, r := range results {
		w.AppendRow([]any{topo.Label(r.Src), topo.Label(r.Dst), strconv.FormatFloat(r.Availability, 'f', 6, 64)})
	}
	alignRight(w, 3)
	if err := writeLine(cmd.OutOrStdout(), render()); err != nil {
		return err
	}

	if cfg.Metrics != nil {
		if err := prometheus.WriteToTextfile(flags.metricsFile, cfg.Metrics.Prometheus()); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func (f *evalFlags) config() (availability.Config, error) {
	cfg := availability.DefaultConfig()
	alg, err := availability.ParseAlgorithm(f.algorithm)
	if err != nil {
		return cfg, err
	}
	mode, err := availability.ParseMode(f.mode)
	if err != nil {
		return cfg, err
	}
	cfg.Algorithm = alg
	cfg.Mode = mode
	cfg.Order = f.order
	cfg.Workers = f.workers

	return cfg, nil
}
