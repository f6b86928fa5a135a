// Package testutil holds helpers shared by kicks tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/kicks/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output. Line endings are normalised before comparison.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap == nil {
		f := filepath.Join("testdata", golden+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g.Assert(t, golden, bytes.ReplaceAll(snap, []byte("\r\n"), []byte("\n")))
}

// WriteFixture copies the fixture at src to dst.
func WriteFixture(t *testing.T, src, dst string) {
	t.Helper()

	b, err := os.ReadFile(src)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(dst), osutil.DirPermission))
	require.NoError(t, os.WriteFile(dst, b, osutil.FilePermission))
}

// IsolatePaths points the XDG config and data directories at dir and sets
// KICKS_ENV so that kicks never touches the user's real files. It is meant
// for TestMain, before any path is resolved.
func IsolatePaths(dir string) error {
	env := map[string]string{
		"XDG_CONFIG_HOME": filepath.Join(dir, "config"),
		"XDG_DATA_HOME":   filepath.Join(dir, "data"),
		"KICKS_ENV":       "test",
	}

	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	xdg.Reload()

	return nil
}
