package calverhook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// Replace rewrites the first occurrence of pattern in the file at path
// with replacement, leaving every other byte (including line-ending
// bytes) untouched. The file is opened for simultaneous read and write,
// rewritten from the start, and truncated to the new length so a shorter
// replacement leaves no trailing garbage.
//
// Filesystem errors are non-fatal: they are reported to stderr with the
// file's base name and Replace returns false, so a failed version update
// never blocks the commit. A file with no matching token is rewritten
// unchanged and counts as success.
func Replace(path string, pattern *regexp.Regexp, replacement string) bool {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		reportFileError(path, err)
		return false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		reportFileError(path, err)
		return false
	}

	updated := content
	if loc := pattern.FindIndex(content); loc != nil {
		updated = make([]byte, 0, len(content)-(loc[1]-loc[0])+len(replacement))
		updated = append(updated, content[:loc[0]]...)
		updated = append(updated, replacement...)
		updated = append(updated, content[loc[1]:]...)
	}

	if _, err := f.WriteAt(updated, 0); err != nil {
		reportFileError(path, err)
		return false
	}
	if err := f.Truncate(int64(len(updated))); err != nil {
		reportFileError(path, err)
		return false
	}
	return true
}

// reportFileError prints the file's base name and the underlying error
// text to stderr. PathError wrappers are unwrapped so the path is not
// repeated in the message.
func reportFileError(path string, err error) {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(path), err)
}
