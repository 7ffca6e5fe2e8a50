// Package main implements the calverhook CLI tool.
//
// calverhook is a pre-commit hook that keeps a repository's embedded
// CalVer string current. On each commit it rewrites the first
// YYYY.M.D-shaped token in the repository's version file to today's
// date (no zero padding) and stages the file. With --micro, the number
// of commits already made today against a remote-tracking reference is
// appended as a micro version, so several commits on the same day get
// distinct versions (2024.3.7, 2024.3.7.1, 2024.3.7.2, ...).
//
// Command Usage:
//
//	calverhook [flags]
//
// Flags:
//
//	--micro:        Append the same-day commit count as a micro version.
//	                The suffix is omitted when the count is zero.
//	--root:         Repository root. Defaults to the second-level parent
//	                of the hook's own installation path.
//	--version-file: Explicit path to the file holding the CalVer string,
//	                overriding the derived conventional location.
//	--ref:          Remote-tracking reference used for commit counting.
//	                (Defaults to "origin/master")
//	--since:        Cutoff passed to git --since when counting commits.
//	                (Defaults to "midnight")
//	--dry:          Compute and print the version without modifying the
//	                file or the git index.
//	--install:      Write a pre-commit hook script into .git/hooks that
//	                invokes this binary, then exit.
//	--version:      Display the calverhook version and exit.
//
// The version file is located by convention: a module directory named
// after the repository root, containing __init__.py. A .calverhook.yml
// at the repository root may override the reference branch, the since
// cutoff, and the version file path. Repositories with a go.mod fall
// back to version.go at the root.
//
// Exit codes follow the hook contract: 0 on success and on a skipped
// file update (a missing or unreadable version file is reported to
// stderr but never blocks the commit); a failing git command terminates
// the process with git's own exit code after forwarding its stderr.
//
// Examples:
//
//	# Plain variant: set the version to today's date
//	calverhook
//
//	# Counted variant: append the same-day commit count
//	calverhook --micro
//
//	# Install as the repository's pre-commit hook
//	calverhook --install --micro
//
//	# Preview without touching anything
//	calverhook --dry --root .
package main
