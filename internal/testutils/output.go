package testutils

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// Check builds a TestCase, marking it passed when actual equals expected.
func Check(name, input, expected, actual string) TestCase {
	return TestCase{
		Name:     name,
		Input:    input,
		Expected: expected,
		Actual:   actual,
		Pass:     expected == actual,
	}
}

// PrintTestTable logs a table of input, expected and returned values.
// Failing rows are marked with > <. It fails the test if any case has Pass=false.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"", "Name", "Input", "Expected Value", "Returned Value", ""})

	anyFailed := false
	for _, tc := range cases {
		leftPtr, rightPtr := "", ""
		if !tc.Pass {
			anyFailed = true
			leftPtr, rightPtr = ">", "<"
		}
		tbl.AppendRow(table.Row{leftPtr, tc.Name, visible(tc.Input), visible(tc.Expected), visible(tc.Actual), rightPtr})
	}

	t.Log("\n" + tbl.Render())

	if anyFailed {
		t.Fail()
	}
}

// visible makes line breaks readable inside a single table cell.
func visible(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
