package fixtures

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadGolden loads a golden output file and returns its raw bytes.
func LoadGolden(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join(fixturesDir(), "golden", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load golden fixture: %s", filename)
	return data
}
