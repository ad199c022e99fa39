package cmd

import (
	"context"
	"envtidy/internal/compare"
	"envtidy/internal/config"
	"envtidy/internal/console"
	"envtidy/internal/constants"
	"envtidy/internal/envfile"
	"envtidy/internal/format"
	"envtidy/internal/logger"
	"envtidy/internal/report"
	"envtidy/internal/version"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MissingFileError reports a named input that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("File %s does not exist", e.Path)
}

// PrintError writes err to w prefixed with "Error: ". Parse errors are
// followed by the failing command line and usage.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", constants.ErrorPrefix, err)
	var pe *ParseError
	if errors.As(err, &pe) {
		fmt.Fprint(w, "\n"+pe.Detail())
	}
}

// Execute runs the parsed invocation and returns the process exit code.
func Execute(ctx context.Context, inv Invocation, stdout, stderr io.Writer) int {
	conf := loadConfig(ctx, inv, stderr)

	cmdStr := strings.TrimSpace(version.CommandName + " " + inv.Command + " " + strings.Join(inv.Args, " "))
	logger.Info(ctx, "%s command: '%s'", version.ApplicationName, cmdStr)
	logger.Debug(ctx, "Execution Args -> Flags: %v, Output: %s, Color: %s, InlineDiff: %v",
		inv.Flags, conf.Output.Style, conf.Output.Color, conf.Output.InlineDiff)

	var err error
	switch inv.Command {
	case CmdHelp:
		PrintHelp(stdout, inv.HelpTarget)
	case CmdVersion:
		handleVersion(stdout)
	case CmdConfigShow:
		err = handleConfigShow(stdout, conf)
	case CmdCompare:
		err = handleCompare(ctx, inv, conf, stdout)
	case CmdFormat:
		err = handleFormat(ctx, inv, stdout)
	default:
		err = fmt.Errorf("unknown command %q", inv.Command)
	}

	if err != nil {
		logger.Debug(ctx, "%s failed: %v", inv.Command, err)
		PrintError(stderr, err)
		return 1
	}
	return 0
}

// loadConfig reads the config file, applies command-line overrides and
// reconfigures logging and color output to match.
func loadConfig(ctx context.Context, inv Invocation, stderr io.Writer) config.AppConfig {
	conf, confErr := config.LoadAppConfig()

	if inv.Output != "" {
		conf.Output.Style = inv.Output
	}
	if inv.Color != "" {
		conf.Output.Color = inv.Color
	}
	if inv.InlineDiff {
		conf.Output.InlineDiff = true
	}

	level, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		level = logger.LevelWarn
	}
	switch {
	case inv.Debug:
		level = logger.LevelDebug
	case inv.Verbose && level > logger.LevelInfo:
		level = logger.LevelInfo
	}

	l, logErr := logger.NewLogger(logger.Options{Writer: stderr, Level: level, File: conf.LogFile})
	slog.SetDefault(l)

	if confErr != nil {
		logger.Warn(ctx, "Using default settings: %v", confErr)
	}
	if logErr != nil {
		logger.Warn(ctx, "Logging to console only: %v", logErr)
	}

	console.SetColorMode(conf.Output.Color)
	return conf
}

// checkExists fails with a MissingFileError when path does not exist.
// Other stat failures are left for the read to report.
func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil && errors.Is(err, fs.ErrNotExist) {
		return &MissingFileError{Path: path}
	}
	return nil
}

func handleCompare(ctx context.Context, inv Invocation, conf config.AppConfig, stdout io.Writer) error {
	firstPath, secondPath := filepath.Clean(inv.Args[0]), filepath.Clean(inv.Args[1])
	for _, path := range []string{firstPath, secondPath} {
		if err := checkExists(path); err != nil {
			return err
		}
	}

	first, err := envfile.Read(firstPath)
	if err != nil {
		return err
	}
	second, err := envfile.Read(secondPath)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Read %d keys from '%s' and %d keys from '%s'", first.Len(), firstPath, second.Len(), secondPath)

	result := compare.Files(first, second)
	logger.Debug(ctx, "Compare -> unique to first: %d, unique to second: %d, different: %d",
		len(result.OnlyInFirst), len(result.OnlyInSecond), len(result.Differing))
	if result.Identical() {
		logger.Info(ctx, "'%s' and '%s' hold the same keys and values", firstPath, secondPath)
	}

	opts := report.Options{
		Style:      conf.Output.Style,
		InlineDiff: conf.Output.InlineDiff,
		Color:      console.ColorEnabled(),
	}
	if f, ok := stdout.(*os.File); ok && console.IsTerminal(f) {
		if width, _, err := console.GetTerminalSize(); err == nil {
			opts.MaxWidth = width
		}
	}
	return report.Write(stdout, first, second, result, opts)
}

func handleFormat(ctx context.Context, inv Invocation, stdout io.Writer) error {
	path := filepath.Clean(inv.Args[0])
	if err := checkExists(path); err != nil {
		return err
	}

	f, err := envfile.Read(path)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Read %d keys from '%s'", f.Len(), path)

	_, err = fmt.Fprintln(stdout, format.File(f))
	return err
}

func handleVersion(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s [%s]\n", version.ApplicationName, version.Version)
	fmt.Fprintf(stdout, "Commit: %s\n", version.Commit)
	fmt.Fprintf(stdout, "Built:  %s\n", version.BuildDate)
}

func handleConfigShow(stdout io.Writer, conf config.AppConfig) error {
	data, err := config.Marshal(conf)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "# Configuration file: %s\n", conf.Path)
	if conf.LogFile != "" {
		fmt.Fprintf(stdout, "# Log file: %s\n", conf.LogFile)
	}
	_, err = stdout.Write(data)
	return err
}
