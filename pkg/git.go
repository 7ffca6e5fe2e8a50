package calverhook

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// CommandError describes a git invocation that exited with a nonzero
// status. The captured stderr and exit code are carried so the caller
// can forward them verbatim and terminate with the same code.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   []byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s exited with code %d: %s",
		strings.Join(e.Args, " "), e.ExitCode, bytes.TrimSpace(e.Stderr))
}

// checkGit verifies that git is available on the system.
func checkGit() error {
	cmd := exec.Command("git", "--version")
	if err := cmd.Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// runGit runs a git command in dir (the process working directory when
// dir is empty), capturing both output streams so nothing leaks onto the
// hook's own streams. A nonzero exit yields a *CommandError.
func runGit(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return nil, &CommandError{Args: args, ExitCode: code, Stderr: stderr.Bytes()}
	}
	return stdout.Bytes(), nil
}

// GitAdd stages the given pathspec in the repository at dir. The
// pathspec is split into argument tokens shell-style, so paths with
// embedded whitespace must be pre-quoted by the caller (see
// QuotePathspec).
func GitAdd(dir, pathspec string) error {
	tokens, err := shlex.Split(pathspec)
	if err != nil {
		return fmt.Errorf("tokenizing pathspec %q: %w", pathspec, err)
	}
	_, err = runGit(dir, append([]string{"add"}, tokens...)...)
	return err
}

// CommitCount returns the number of commits reachable from ref with a
// timestamp at or after the since cutoff, using git's own date-since
// parsing (relative forms like "midnight" work as git defines them).
func CommitCount(dir, ref, since string) (int, error) {
	out, err := runGit(dir, "rev-list", "--count", "--since="+since, ref)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("parsing rev-list count output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return n, nil
}

// QuotePathspec quotes a path so it survives the shell-style
// tokenization in GitAdd as a single token. Paths without whitespace or
// quoting metacharacters pass through unchanged; anything else is
// wrapped in double quotes with embedded backslashes and double quotes
// escaped.
func QuotePathspec(path string) string {
	if !strings.ContainsAny(path, " \t\"\\") {
		return path
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(path)
	return `"` + escaped + `"`
}
