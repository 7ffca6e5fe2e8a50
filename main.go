// Package main implements the calverhook pre-commit hook CLI, which
// rewrites a CalVer string in the repository's version file to the
// current date and stages it with git.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	calverhook "github.com/tobiaswn/calverhook/pkg"
)

func usage() {
	msg := `Usage:
  calverhook [options]

Rewrites the first CalVer token (YYYY.M.D, optionally .micro) in the repository's
version file to today's date and stages the file with git. Intended to run as a
pre-commit hook with no arguments; the repository root is derived from the hook's
own installation path unless --root is given.

With --micro, the number of commits already made today against the reference
branch is appended as a micro version (omitted when the count is zero).

Examples:
  calverhook
  calverhook --micro
  calverhook --install --micro
  calverhook --dry --root . --ref origin/main

Options:
`
	fmt.Fprint(os.Stderr, msg)
	pflag.PrintDefaults()
}

func main() {
	micro := pflag.Bool("micro", false, "Append the same-day commit count as a micro version")
	root := pflag.String("root", "", "Repository root (default: derived from the hook's install path)")
	versionFile := pflag.String("version-file", "", "Path to the file containing the CalVer string")
	ref := pflag.String("ref", "", `Remote-tracking reference for commit counting (default "origin/master")`)
	since := pflag.String("since", "", `Cutoff passed to git --since when counting commits (default "midnight")`)
	dryRun := pflag.Bool("dry", false, "Compute and print the version without modifying anything")
	install := pflag.Bool("install", false, "Install calverhook as this repository's pre-commit hook and exit")
	showVersion := pflag.Bool("version", false, "Show CLI version and exit")
	help := pflag.Bool("help", false, "Show help message and exit")

	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("calverhook version", calverhook.Version)
		os.Exit(0)
	}
	if pflag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Error: calverhook takes no positional arguments")
		usage()
		os.Exit(1)
	}

	if *install {
		installHook(*root, *micro)
		os.Exit(0)
	}

	res, err := calverhook.Run(calverhook.Options{
		Root:        *root,
		VersionFile: *versionFile,
		Micro:       *micro,
		Ref:         *ref,
		Since:       *since,
		DryRun:      *dryRun,
	})
	if err != nil {
		exitOnError(err)
	}

	if *dryRun {
		fmt.Fprintf(os.Stderr, "Would set version %s in %s\n", res.Version, res.VersionFile)
	}
}

// installHook writes the pre-commit hook script and reports where it
// went. The root defaults to the current directory since --install is
// run by hand, not from an installed hook.
func installHook(root string, micro bool) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		root = wd
	}
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	hookPath, err := calverhook.InstallHook(root, exe, micro)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println("Installed pre-commit hook at", hookPath)
}

// exitOnError reproduces the hook's exit-code contract: git failures
// forward git's captured stderr and terminate with git's own exit code;
// anything else is reported and exits 1.
func exitOnError(err error) {
	var cmdErr *calverhook.CommandError
	if errors.As(err, &cmdErr) {
		os.Stderr.Write(cmdErr.Stderr)
		os.Exit(cmdErr.ExitCode)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
