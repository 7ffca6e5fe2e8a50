// Package main implements calverhook-micro, the counted variant of the
// calverhook pre-commit hook: identical to calverhook --micro, kept as
// its own binary so a hook script can invoke either variant by name.
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
  calverhook-micro [options]

Rewrites the first CalVer token in the repository's version file to today's
date, appending the number of commits already made today against the reference
branch as a micro version (omitted when the count is zero), then stages the
file with git.

Options:
`
	fmt.Fprint(os.Stderr, msg)
	pflag.PrintDefaults()
}

func main() {
	root := pflag.String("root", "", "Repository root (default: derived from the hook's install path)")
	versionFile := pflag.String("version-file", "", "Path to the file containing the CalVer string")
	ref := pflag.String("ref", "", `Remote-tracking reference for commit counting (default "origin/master")`)
	since := pflag.String("since", "", `Cutoff passed to git --since when counting commits (default "midnight")`)
	dryRun := pflag.Bool("dry", false, "Compute and print the version without modifying anything")
	showVersion := pflag.Bool("version", false, "Show CLI version and exit")
	help := pflag.Bool("help", false, "Show help message and exit")

	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("calverhook-micro version", calverhook.Version)
		os.Exit(0)
	}

	res, err := calverhook.Run(calverhook.Options{
		Root:        *root,
		VersionFile: *versionFile,
		Micro:       true,
		Ref:         *ref,
		Since:       *since,
		DryRun:      *dryRun,
	})
	if err != nil {
		var cmdErr *calverhook.CommandError
		if errors.As(err, &cmdErr) {
			os.Stderr.Write(cmdErr.Stderr)
			os.Exit(cmdErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Fprintf(os.Stderr, "Would set version %s in %s\n", res.Version, res.VersionFile)
	}
}
