package calverhook

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// what was written, so the non-fatal reporting path can be asserted on.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReplaceSpecExample(t *testing.T) {
	path := writeTemp(t, "__init__.py", []byte("old 2023.1.5 text"))
	d := time.Date(2024, time.March, 7, 9, 0, 0, 0, time.Local)

	ok := Replace(path, CalVerPattern, FormatDate(d))
	require.True(t, ok)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old 2024.3.7 text", string(got))
}

func TestReplaceFirstMatchOnly(t *testing.T) {
	content := "__version__ = \"2023.1.5\"\n# released 2022.12.31\n"
	path := writeTemp(t, "__init__.py", []byte(content))

	require.True(t, Replace(path, CalVerPattern, "2024.3.7"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"2024.3.7\"\n# released 2022.12.31\n", string(got))
}

func TestReplacePreservesCRLF(t *testing.T) {
	content := []byte("__version__ = \"2023.1.5\"\r\nname = \"demo\"\r\n")
	path := writeTemp(t, "__init__.py", content)

	require.True(t, Replace(path, CalVerPattern, "2024.3.7"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("__version__ = \"2024.3.7\"\r\nname = \"demo\"\r\n"), got)
}

func TestReplaceShorterReplacementTruncates(t *testing.T) {
	// The new token is shorter than the old one; leftover bytes from
	// the longer original must not survive at the end of the file.
	path := writeTemp(t, "__init__.py", []byte("v 2023.12.31.123 end"))

	require.True(t, Replace(path, MicroCalVerPattern, "2024.3.7"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v 2024.3.7 end", string(got))
}

func TestReplaceMicroPatternSwallowsOldSuffix(t *testing.T) {
	path := writeTemp(t, "__init__.py", []byte("__version__ = \"2023.1.5.9\"\n"))

	require.True(t, Replace(path, MicroCalVerPattern, "2024.3.7.2"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"2024.3.7.2\"\n", string(got))
}

func TestReplaceNoMatchLeavesFileIntact(t *testing.T) {
	content := "no version token here\n"
	path := writeTemp(t, "__init__.py", []byte(content))

	assert.True(t, Replace(path, CalVerPattern, "2024.3.7"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestReplaceMissingFileIsNonFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj", "__init__.py")

	var ok bool
	stderr := captureStderr(t, func() {
		ok = Replace(path, CalVerPattern, "2024.3.7")
	})

	assert.False(t, ok)
	assert.Contains(t, stderr, "__init__.py")
}
