package calverhook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultRef, cfg.Ref)
	assert.Equal(t, DefaultSince, cfg.Since)
	assert.Equal(t, DefaultInitFile, cfg.InitFile)
	assert.Empty(t, cfg.VersionFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	root := t.TempDir()
	yml := `ref: origin/main
since: "6am"
version_file: VERSION
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(yml), 0o644))

	cfg, err := LoadConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "origin/main", cfg.Ref)
	assert.Equal(t, "6am", cfg.Since)
	assert.Equal(t, "VERSION", cfg.VersionFile)
	assert.Equal(t, DefaultInitFile, cfg.InitFile)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("ref: origin/main\n"), 0o644))

	cfg, err := LoadConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "origin/main", cfg.Ref)
	assert.Equal(t, DefaultSince, cfg.Since)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("ref: [unclosed\n"), 0o644))

	_, err := LoadConfig(root)
	assert.Error(t, err)
}
