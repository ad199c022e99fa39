package cmd

import (
	"envtidy/internal/version"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

var (
	flagsOnce sync.Once
	flagSet   *pflag.FlagSet
)

// Flags returns the flag set used for option lookup and help text.
func Flags() *pflag.FlagSet {
	flagsOnce.Do(func() {
		fs := pflag.NewFlagSet(version.CommandName, pflag.ContinueOnError)

		// Modifiers
		fs.BoolP("verbose", "v", false, "Verbose output")
		fs.BoolP("debug", "x", false, "Debug output")
		fs.BoolP("inline-diff", "d", false, "Show a character diff for differing values")
		fs.StringP("output", "o", "", "Compare report style (text, table, yaml)")
		fs.String("color", "", "Color output (auto, always, never)")

		// Commands
		fs.StringP("compare", "c", "", "Compare two .env files")
		fs.StringP("format", "f", "", "Format a .env file")
		fs.BoolP("help", "h", false, "Show help")
		fs.BoolP("version", "V", false, "Show version")
		fs.Bool("config-show", false, "Show configuration")

		flagSet = fs
	})
	return flagSet
}

// lookupFlag resolves "-c", "--compare" or "--compare=x" to its flag.
func lookupFlag(arg string) *pflag.Flag {
	name, _, _ := strings.Cut(arg, "=")
	fs := Flags()
	switch {
	case strings.HasPrefix(name, "--"):
		return fs.Lookup(strings.TrimPrefix(name, "--"))
	case len(name) == 2 && name[0] == '-':
		return fs.ShorthandLookup(name[1:])
	}
	return nil
}
