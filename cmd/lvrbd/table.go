package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/topology"
)

// newTable returns a writer for the --format flag value. The title is only
// shown in the boxed terminal layout.
func newTable(format, title string) (table.Writer, func() string, error) {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	switch strings.ToLower(format) {
	case "", "table":
		w.SetTitle(title)

		return w, w.Render, nil
	case "markdown", "md":
		return w, w.RenderMarkdown, nil
	case "csv":
		return w, w.RenderCSV, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}
}

// alignRight right-aligns the given 1-based columns.
func alignRight(w table.Writer, cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	w.SetColumnConfigs(cfgs)
}

// nodeList renders ids with their topology names: "a 2 b".
func nodeList(t *topology.Topology, ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = t.Label(id)
	}

	return strings.Join(parts, " ")
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)

	return err
}
