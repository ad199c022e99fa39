// Package report prints the result of comparing two environment files.
//
// Three styles are available:
//
//   - text:  the sectioned listing (unique keys per file, then differing values)
//   - table: one row per key that differs in any way
//   - yaml:  a machine-readable document with the same content
//
// Output is rendered in full before anything is written, so a failed
// render never leaves a partial report behind.
package report

import (
	"bytes"
	"envtidy/internal/compare"
	"envtidy/internal/console"
	"envtidy/internal/constants"
	"envtidy/internal/envfile"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Options controls how a comparison is rendered.
type Options struct {
	Style      string
	InlineDiff bool
	Color      bool
	MaxWidth   int // table rows wider than this are cut; 0 means unlimited
}

func (o Options) styles() console.Styles {
	if o.Color {
		return console.ColorStyles()
	}
	return console.PlainStyles()
}

// Write renders r, the comparison of first against second, to w.
// File paths are used as the labels of each side.
func Write(w io.Writer, first, second *envfile.File, r compare.Result, opts Options) error {
	var buf bytes.Buffer
	var err error

	switch opts.Style {
	case constants.StyleText, "":
		renderText(&buf, first.Path, second.Path, r, opts)
	case constants.StyleTable:
		renderTable(&buf, first, second, r, opts)
	case constants.StyleYAML:
		err = renderYAML(&buf, first.Path, second.Path, r, opts)
	default:
		err = fmt.Errorf("unknown report style %q", opts.Style)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func renderText(buf *bytes.Buffer, first, second string, r compare.Result, opts Options) {
	s := opts.styles()

	fmt.Fprintln(buf, s.Header.Render(fmt.Sprintf(constants.UniqueHeaderFormat, first)))
	for _, key := range r.OnlyInFirst {
		fmt.Fprintln(buf, s.Key.Render(key))
	}

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, s.Header.Render(fmt.Sprintf(constants.UniqueHeaderFormat, second)))
	for _, key := range r.OnlyInSecond {
		fmt.Fprintln(buf, s.Key.Render(key))
	}

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, s.Header.Render(constants.DifferentValuesHeader))
	for _, d := range r.Differing {
		fmt.Fprintf(buf, "%s:\n", s.Key.Render(d.Key))
		fmt.Fprintf(buf, "  %s: %s\n", s.File.Render(first), d.First)
		fmt.Fprintf(buf, "  %s: %s\n", s.File.Render(second), d.Second)
		if opts.InlineDiff {
			fmt.Fprintf(buf, "  diff: %s\n", InlineDiff(d, opts.Color))
		}
	}
}

// InlineDiff renders the character edits between the two values of d.
// Without color, deletions are wrapped in [-...-] and insertions in {+...+}.
//
// Example:
//
//	db.local -> db.prod  =>  db.[-local-]{+prod+}
func InlineDiff(d compare.Difference, color bool) string {
	s := console.PlainStyles()
	if color {
		s = console.ColorStyles()
	}

	var sb strings.Builder
	for _, edit := range d.Edits() {
		switch edit.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(edit.Text)
		case diffmatchpatch.DiffDelete:
			if color {
				sb.WriteString(s.Deleted.Render(edit.Text))
			} else {
				sb.WriteString("[-" + edit.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if color {
				sb.WriteString(s.Inserted.Render(edit.Text))
			} else {
				sb.WriteString("{+" + edit.Text + "+}")
			}
		}
	}
	return sb.String()
}
