package main

import (
	"context"
	"log/slog"
	"os"

	"envtidy/cmd"
	"envtidy/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	l, _ := logger.NewLogger(logger.Options{Level: logger.LevelWarn})
	slog.SetDefault(l)
	ctx := context.Background()

	// Defer cleanup to ensure it runs even if we return early or panic
	defer logger.Cleanup()

	// Any panic is reported like every other failure and exits with 1
	defer logger.Recover(ctx, os.Stderr, &exitCode)

	inv, err := cmd.Parse(os.Args[1:])
	if err != nil {
		cmd.PrintError(os.Stderr, err)
		return 1
	}

	return cmd.Execute(ctx, inv, os.Stdout, os.Stderr)
}
