package cmd

import (
	"envtidy/internal/version"
	"fmt"
	"io"
	"strings"
)

// PrintHelp writes usage information to w.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(w io.Writer, target string) {
	fmt.Fprint(w, GetUsage(target))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: %s [<Flags>] <Command>", appCmd))
		printStr("")
		printStr(fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version))
		printStr("Compares or normalizes .env files (KEY=value lines with optional comment blocks).")
		printStr("Exactly one command must be given. Results go to standard output; files are")
		printStr("never modified.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	// Accept both short and long spellings of the target
	if f := lookupFlag(target); f != nil {
		target = "--" + f.Name
	}
	match := func(opt string) bool {
		return showAll || opt == target
	}

	if match("--verbose") {
		printStr("-v --verbose")
		printStr("	Verbose")
	}
	if match("--debug") {
		printStr("-x --debug")
		printStr("	Debug")
	}
	if match("--inline-diff") {
		printStr("-d --inline-diff")
		printStr("	Add a character-level diff line under each differing value")
	}
	if match("--output") {
		printStr("-o --output < text | table | yaml >")
		printStr("	Style of the compare report (default from config, else 'text')")
	}
	if match("--color") {
		printStr("--color < auto | always | never >")
		printStr("	Color headers and keys when writing to a terminal")
	}

	if showAll {
		printStr("")
		printStr("Commands:")
		printStr("")
	}

	if match(CmdCompare) {
		printStr("-c --compare <file1> <file2>")
		printStr("	List keys unique to each file and keys whose values differ")
	}
	if match(CmdFormat) {
		printStr("-f --format <file>")
		printStr("	Print the file sorted by key, grouped by the text before the first '_'")
	}
	if match(CmdConfigShow) {
		printStr("--config-show")
		printStr("	Show the effective configuration")
	}
	if match(CmdHelp) {
		printStr("-h --help")
		printStr("	Show this usage information")
		printStr("-h --help <option>")
		printStr("	Show the usage of the specified option")
	}
	if match(CmdVersion) {
		printStr("-V --version")
		printStr("	Show version information")
	}

	return sb.String()
}
