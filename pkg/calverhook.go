package calverhook

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Options configures a single hook run. The zero value gives the stock
// pre-commit behavior: root derived from the executable's location,
// conventional version file, plain calendar version.
type Options struct {
	// Root is the repository root. When empty it is derived from the
	// executable's installation path (see RepoRoot).
	Root string
	// VersionFile is an explicit version file path, overriding both the
	// configuration file and the derived conventional location.
	VersionFile string
	// Micro enables the counted variant: the same-day commit count is
	// appended as a micro version when it is nonzero.
	Micro bool
	// Ref overrides the remote-tracking reference for commit counting.
	Ref string
	// Since overrides the git --since cutoff for commit counting.
	Since string
	// Now overrides the clock; the zero value means time.Now().
	Now time.Time
	// DryRun computes the version without touching the file or git.
	DryRun bool
}

// Result describes what a run computed and did.
type Result struct {
	// Version is the computed calendar version string.
	Version string
	// VersionFile is the resolved path of the target file.
	VersionFile string
	// CommitCount is the same-day commit count (micro variant only).
	CommitCount int
	// Updated reports whether the file was rewritten and staged. It is
	// false after a dry run or a non-fatal file I/O skip.
	Updated bool
}

// Run executes the whole pipeline once: locate the version file, compute
// the replacement version, patch the file in place, and stage it.
//
// File I/O failures are non-fatal: the skip is reported to stderr,
// staging is not attempted, and Run returns a nil error so the commit
// proceeds. Git failures surface as *CommandError so the caller can
// forward git's stderr and exit with git's own code.
func Run(opts Options) (Result, error) {
	var res Result

	if err := checkGit(); err != nil {
		return res, err
	}

	root := opts.Root
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return res, fmt.Errorf("locating executable: %w", err)
		}
		root = RepoRoot(exe)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return res, err
	}
	if opts.Ref != "" {
		cfg.Ref = opts.Ref
	}
	if opts.Since != "" {
		cfg.Since = opts.Since
	}

	versionFile := opts.VersionFile
	if versionFile == "" && cfg.VersionFile != "" {
		versionFile = filepath.Join(root, cfg.VersionFile)
	}
	if versionFile == "" {
		versionFile = LocateVersionFile(root, cfg.InitFile)
	}
	res.VersionFile = versionFile

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	pattern := CalVerPattern
	res.Version = FormatDate(now)
	if opts.Micro {
		count, err := CommitCount(root, cfg.Ref, cfg.Since)
		if err != nil {
			return res, err
		}
		res.CommitCount = count
		res.Version = MicroVersion(now, count)
		pattern = MicroCalVerPattern
	}

	if opts.DryRun {
		return res, nil
	}

	if !Replace(versionFile, pattern, res.Version) {
		// A failed version update never blocks the commit.
		return res, nil
	}
	res.Updated = true

	if err := GitAdd(root, QuotePathspec(versionFile)); err != nil {
		return res, err
	}
	return res, nil
}
