package cmd

import (
	"envtidy/internal/constants"
	"envtidy/internal/version"
	"fmt"
	"slices"
	"strings"
)

// Command names, in their long form.
const (
	CmdCompare    = "--compare"
	CmdFormat     = "--format"
	CmdHelp       = "--help"
	CmdVersion    = "--version"
	CmdConfigShow = "--config-show"
)

// ParseError wraps argument parsing errors with enough context to point at
// the failing argument.
type ParseError struct {
	Args           []string // The expanded argument list
	Index          int      // The index where the error occurred
	Message        string   // %c expands to the command, %o to the failing option
	FailingCommand string   // The command being processed (e.g. "--compare")
}

func (e *ParseError) Error() string {
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", "'"+e.FailingCommand+"'",
		"%o", "'"+failingOpt+"'",
	)
	return replacer.Replace(e.Message)
}

// Detail shows the command line with a caret under the failing argument,
// followed by the usage of the command involved.
func (e *ParseError) Detail() string {
	indent := "   "

	cmdLineParts := []string{version.CommandName}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		cmdLineParts = append(cmdLineParts, e.Args[i])
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// indent + "'" + command + " " + previous args
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "^"

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n%s\n", indent, cmdLineStr, pointerLine)

	if e.FailingCommand != "" {
		fmt.Fprintf(&sb, "\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			fmt.Fprintf(&sb, "%s%s\n", indent, line)
		}
	} else {
		fmt.Fprintf(&sb, "\n%sRun '%s --help' for usage.\n", indent, version.CommandName)
	}
	return sb.String()
}

// Invocation is a parsed command line: exactly one command plus modifiers.
type Invocation struct {
	Command    string
	Args       []string
	Flags      []string
	HelpTarget string

	Verbose    bool
	Debug      bool
	InlineDiff bool
	Output     string // empty means use the configured style
	Color      string // empty means use the configured mode
}

var (
	outputStyles = []string{constants.StyleText, constants.StyleTable, constants.StyleYAML}
	colorModes   = []string{constants.ColorAuto, constants.ColorAlways, constants.ColorNever}
)

// expandShortFlags splits combined short flags (-vx -> -v -x) when every
// letter is a known shorthand.
func expandShortFlags(args []string) []string {
	var expanded []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 && !strings.Contains(arg, "=") {
			known := true
			for _, c := range arg[1:] {
				if Flags().ShorthandLookup(string(c)) == nil {
					known = false
					break
				}
			}
			if known {
				for _, c := range arg[1:] {
					expanded = append(expanded, "-"+string(c))
				}
				continue
			}
		}
		expanded = append(expanded, arg)
	}
	return expanded
}

// Parse parses the raw command line arguments. Compare, format, help,
// version and config-show are mutually exclusive and one of them is required.
func Parse(args []string) (Invocation, error) {
	var inv Invocation
	expandedArgs := expandShortFlags(args)
	lastCommand := ""

	// takeValues consumes up to n non-flag arguments starting at i.
	takeValues := func(i, n int) []string {
		var values []string
		for i < len(expandedArgs) && len(values) < n && !strings.HasPrefix(expandedArgs[i], "-") {
			values = append(values, expandedArgs[i])
			i++
		}
		return values
	}

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return inv, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		flag := lookupFlag(arg)
		if flag == nil {
			return inv, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}
		name := "--" + flag.Name
		inlineValue, hasInline := "", false
		if _, v, ok := strings.Cut(arg, "="); ok {
			inlineValue, hasInline = v, true
		}
		argIndex := i
		i++

		switch name {
		// Modifiers
		case "--verbose", "--debug", "--inline-diff":
			if hasInline {
				return inv, &ParseError{Args: expandedArgs, Index: argIndex, Message: "Option %o does not take a value."}
			}
			inv.Flags = append(inv.Flags, arg)
			switch name {
			case "--verbose":
				inv.Verbose = true
			case "--debug":
				inv.Debug = true
			case "--inline-diff":
				inv.InlineDiff = true
			}

		case "--output", "--color":
			value := inlineValue
			if !hasInline {
				values := takeValues(i, 1)
				if len(values) == 0 {
					return inv, &ParseError{Args: expandedArgs, Index: argIndex, Message: "Option %o requires an argument."}
				}
				value = values[0]
				i++
			}
			allowed := outputStyles
			if name == "--color" {
				allowed = colorModes
			}
			if !slices.Contains(allowed, value) {
				return inv, &ParseError{
					Args:    expandedArgs,
					Index:   argIndex,
					Message: fmt.Sprintf("Invalid value '%s' for %%o, expected one of: %s", value, strings.Join(allowed, ", ")),
				}
			}
			inv.Flags = append(inv.Flags, arg)
			if name == "--output" {
				inv.Output = value
			} else {
				inv.Color = value
			}

		// Commands
		default:
			if inv.Command != "" {
				return inv, &ParseError{
					Args:           expandedArgs,
					Index:          argIndex,
					Message:        "Option %o cannot be used with %c",
					FailingCommand: inv.Command,
				}
			}
			inv.Command = name
			lastCommand = name

			switch name {
			case CmdCompare, CmdFormat:
				want := 2
				if name == CmdFormat {
					want = 1
				}
				var values []string
				if hasInline {
					values = append(values, inlineValue)
				}
				taken := takeValues(i, want-len(values))
				i += len(taken)
				values = append(values, taken...)
				if len(values) < want {
					msg := "Command %c requires a file argument."
					if name == CmdCompare {
						msg = "Command %c requires two file arguments."
					}
					return inv, &ParseError{Args: expandedArgs, Index: argIndex, Message: msg, FailingCommand: name}
				}
				inv.Args = values

			case CmdHelp:
				// Help allows an optional target, which is itself an option
				if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
					if target := lookupFlag(expandedArgs[i]); target != nil {
						inv.HelpTarget = "--" + target.Name
						i++
					}
				}

			default:
				if hasInline {
					return inv, &ParseError{Args: expandedArgs, Index: argIndex, Message: "Option %o does not take a value."}
				}
			}
		}
	}

	if inv.Command == "" {
		return inv, &ParseError{
			Args:    expandedArgs,
			Index:   len(expandedArgs),
			Message: "One of the commands '-c --compare' or '-f --format' is required.",
		}
	}

	return inv, nil
}
