package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrbd/builder"
	"github.com/katalvlaran/lvrbd/topology"
)

type generateFlags struct {
	kind         string
	n            int
	m            int
	p            float64
	seed         int64
	availability float64
	name         string
	output       string
}

// generators maps --kind to a constructor of n (and m or p where the shape
// has a second parameter).
var generators = map[string]func(f *generateFlags) builder.Constructor{
	"path":      func(f *generateFlags) builder.Constructor { return builder.Path(f.n) },
	"cycle":     func(f *generateFlags) builder.Constructor { return builder.Cycle(f.n) },
	"star":      func(f *generateFlags) builder.Constructor { return builder.Star(f.n) },
	"wheel":     func(f *generateFlags) builder.Constructor { return builder.Wheel(f.n) },
	"complete":  func(f *generateFlags) builder.Constructor { return builder.Complete(f.n) },
	"bipartite": func(f *generateFlags) builder.Constructor { return builder.CompleteBipartite(f.n, f.m) },
	"grid":      func(f *generateFlags) builder.Constructor { return builder.Grid(f.n, f.m) },
	"ladder":    func(f *generateFlags) builder.Constructor { return builder.Ladder(f.n) },
	"random":    func(f *generateFlags) builder.Constructor { return builder.RandomSparse(f.n, f.p) },
}

func generatorKinds() string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return strings.Join(kinds, ", ")
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic topology as YAML",
		Long: "generate builds a standard graph shape and writes it as a topology file\n" +
			"with one availability for every node. Kinds: " + generatorKinds() + ".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.kind, "kind", "k", "ladder", "Graph shape")
	f.IntVar(&flags.n, "n", 4, "Node count, rung count for ladder, rows for grid, left side for bipartite")
	f.IntVar(&flags.m, "m", 2, "Columns for grid, right side for bipartite")
	f.Float64Var(&flags.p, "p", 0.5, "Edge probability for random")
	f.Int64Var(&flags.seed, "seed", 1, "Random seed for random")
	f.Float64Var(&flags.availability, "availability", 0.9, "Availability of every node")
	f.StringVar(&flags.name, "name", "", "Topology name (default: the kind)")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	mk, ok := generators[strings.ToLower(flags.kind)]
	if !ok {
		return fmt.Errorf("unknown kind %q (want one of %s)", flags.kind, generatorKinds())
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(flags.seed)}, mk(flags))
	if err != nil {
		return err
	}

	name := flags.name
	if name == "" {
		name = strings.ToLower(flags.kind)
	}
	data, err := topology.FromGraph(name, g, flags.availability, nil).Marshal()
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return err
	}
	if err := os.WriteFile(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	return nil
}
