package logger

import (
	"context"
	"envtidy/internal/constants"
	"fmt"
	"io"
	"runtime/debug"
)

// Recover traps a panic, logs its stack at debug level, reports it on w in
// the same "Error: " form as any other failure and sets *exitCode to 1.
// Usage: defer logger.Recover(ctx, os.Stderr, &exitCode)
func Recover(ctx context.Context, w io.Writer, exitCode *int) {
	r := recover()
	if r == nil {
		return
	}

	Debug(ctx, "panic stack:\n%s", debug.Stack())
	fmt.Fprintf(w, "%s%v\n", constants.ErrorPrefix, r)
	if exitCode != nil {
		*exitCode = 1
	}
}
