package report

import (
	"bytes"
	"envtidy/internal/compare"
	"envtidy/internal/constants"
	"envtidy/internal/envfile"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable lists every key that is unique to one side or differs,
// sorted by key, with the value found in each file.
func renderTable(buf *bytes.Buffer, first, second *envfile.File, r compare.Result, opts Options) {
	s := opts.styles()

	tbl := table.NewWriter()
	tbl.SetOutputMirror(buf)
	tbl.SetStyle(table.StyleLight)
	// paths are shown as given, not upper-cased
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	if opts.MaxWidth > 0 {
		tbl.SetAllowedRowLength(opts.MaxWidth)
	}

	header := table.Row{"Key", first.Path, second.Path}
	if opts.InlineDiff {
		header = append(header, "Diff")
	}
	tbl.AppendHeader(header)

	type row struct {
		key           string
		first, second string
		diff          string
	}
	missing := s.Missing.Render(constants.MissingValue)

	var rows []row
	for _, key := range r.OnlyInFirst {
		rows = append(rows, row{key: key, first: first.Value(key), second: missing})
	}
	for _, key := range r.OnlyInSecond {
		rows = append(rows, row{key: key, first: missing, second: second.Value(key)})
	}
	for _, d := range r.Differing {
		rows = append(rows, row{key: d.Key, first: d.First, second: d.Second, diff: InlineDiff(d, opts.Color)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].key < rows[j].key })

	for _, rw := range rows {
		cells := table.Row{s.Key.Render(rw.key), rw.first, rw.second}
		if opts.InlineDiff {
			cells = append(cells, rw.diff)
		}
		tbl.AppendRow(cells)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d keys", len(rows))})
	tbl.Render()
}
