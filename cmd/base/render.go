package base

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// RenderTable writes rows under the given column names.
func RenderTable(w io.Writer, header []string, rows [][]any) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(toRow(header))
	for _, r := range rows {
		t.AppendRow(r)
	}
	t.Render()
}

func RenderLine(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

func toRow(header []string) table.Row {
	return lo.Map(header, func(h string, _ int) any { return h })
}
