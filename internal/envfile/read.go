package envfile

import (
	"bufio"
	"envtidy/internal/constants"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// FileError records a failure to open or read an environment file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Read opens and parses the environment file at path.
// The returned error is a *FileError; errors.Is(err, fs.ErrNotExist)
// reports a missing file.
func Read(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer file.Close()

	f, err := parse(path, file)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return f, nil
}

// Parse reads environment lines from r. name is recorded as the File's Path.
func Parse(name string, r io.Reader) (*File, error) {
	return parse(name, r)
}

func parse(name string, r io.Reader) (*File, error) {
	f := newFile(name)
	var comments []string

	reader := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("line %d: invalid UTF-8", lineNum)
		}

		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			comments = nil
		case strings.HasPrefix(line, constants.CommentPrefix):
			comments = append(comments, line)
		case strings.Contains(line, constants.KeyValueSep):
			key, value, _ := strings.Cut(line, constants.KeyValueSep)
			f.set(Entry{
				Key:      strings.TrimSpace(key),
				Value:    strings.TrimSpace(value),
				Comments: append([]string(nil), comments...),
			})
			comments = nil
		}

		if err == io.EOF {
			break
		}
	}

	return f, nil
}

// unwrapPathError drops the *os.PathError layer so FileError does not
// repeat the operation and path in its message.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
