// Package calverhook provides the pipeline behind the calverhook
// pre-commit hook: rewriting a CalVer (YYYY.M.D[.micro]) token embedded
// in a repository's version file to the current date and staging the
// result.
//
// It provides functionalities for:
//   - Locating the version file from the repository layout (a module
//     directory named after the repository root, holding an init file),
//     with a go.mod-based fallback for Go repositories.
//   - Formatting the current date as a calendar version with no zero
//     padding, optionally suffixed with the count of commits already
//     made today against a remote-tracking reference.
//   - Patching the first CalVer-shaped token in the file in place,
//     preserving every other byte including line endings.
//   - Staging the patched file with git, forwarding git's stderr and
//     exit code verbatim on failure.
//
// The pipeline runs once per process with no retained state. File I/O
// failures are reported and skipped so a broken version file never
// blocks a commit; git failures are fatal and carry git's exit code.
//
// Usage Example:
//
//	import (
//	    "log"
//	    calverhook "github.com/tobiaswn/calverhook/pkg"
//	)
//
//	func main() {
//	    res, err := calverhook.Run(calverhook.Options{Root: ".", Micro: true})
//	    if err != nil {
//	        log.Fatalf("version update failed: %v", err)
//	    }
//	    log.Printf("version is now %s", res.Version)
//	}
package calverhook
