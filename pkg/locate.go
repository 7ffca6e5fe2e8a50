package calverhook

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DefaultInitFile is the file expected to hold the version string inside
// the repository's module directory.
const DefaultInitFile = "__init__.py"

// RepoRoot derives the repository root from the hook's own installation
// path. The hook is assumed to live one directory below the root (for
// example <root>/scripts/calverhook), so the root is the second-level
// parent of the executable.
func RepoRoot(exePath string) string {
	return filepath.Dir(filepath.Dir(exePath))
}

// VersionFilePath returns the conventional location of the version file:
// a module directory named after the repository root, containing the
// init file.
func VersionFilePath(root, initFile string) string {
	if initFile == "" {
		initFile = DefaultInitFile
	}
	return filepath.Join(root, filepath.Base(root), initFile)
}

// LocateVersionFile resolves the version file for the repository rooted
// at root. It prefers the conventional <root>/<root-name>/<init-file>
// layout. When that file does not exist and the root holds a parseable
// go.mod with a module directive, the repository is treated as a Go
// module and <root>/version.go is targeted instead.
func LocateVersionFile(root, initFile string) string {
	path := VersionFilePath(root, initFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}

	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return path
	}
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil || f.Module == nil {
		return path
	}
	return filepath.Join(root, "version.go")
}
