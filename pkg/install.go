package calverhook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrHookExists is returned by InstallHook when the repository already
// has a pre-commit hook; calverhook never overwrites one.
var ErrHookExists = errors.New("pre-commit hook already exists")

// InstallHook writes an executable pre-commit hook into the repository's
// .git/hooks directory that invokes exePath against root, with the micro
// variant enabled when micro is set. It returns the path of the
// installed hook.
func InstallHook(root, exePath string, micro bool) (string, error) {
	gitDir := filepath.Join(root, ".git")
	if _, err := os.Stat(gitDir); err != nil {
		return "", fmt.Errorf("%s is not a git repository: %w", root, err)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", err
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(hookPath); err == nil {
		return "", ErrHookExists
	}

	args := fmt.Sprintf("--root %q", root)
	if micro {
		args += " --micro"
	}
	script := fmt.Sprintf("#!/bin/sh\nexec %q %s\n", exePath, args)
	if err := os.WriteFile(hookPath, []byte(script), 0o755); err != nil {
		return "", err
	}
	return hookPath, nil
}
