package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates each file in dir with its own name as content,
// prefixed by tag so same-named files from different directories differ.
func writeFiles(t *testing.T, dir, tag string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		content := tag + ":" + name
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestDiscover_ExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "z.cpp", "y.c", "x.hpp", "w.h", "v.cc", "u.hh")

	files, err := Discover(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "w.h"),
		filepath.Join(dir, "u.hh"),
		filepath.Join(dir, "x.hpp"),
		filepath.Join(dir, "y.c"),
		filepath.Join(dir, "v.cc"),
		filepath.Join(dir, "z.cpp"),
	}
	assert.Equal(t, want, files)
}

func TestDiscover_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "main.go", "notes.txt", "lib.hxx", "Makefile", ".hidden.h", "kept.h")
	writeFiles(t, filepath.Join(dir, "sub"), "a", "deep.h")

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "kept.h")}, files)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollect_CopiesAllMatches(t *testing.T) {
	root := t.TempDir()
	srcA := filepath.Join(root, "src", "a")
	srcB := filepath.Join(root, "src", "b")
	out := filepath.Join(root, "out", "nested")
	writeFiles(t, srcA, "a", "alpha.h", "alpha.cc")
	writeFiles(t, srcB, "b", "beta.hpp", "beta.cpp", "README.md")

	require.NoError(t, NewCollector().Collect(out, []string{srcA, srcB}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"alpha.h", "alpha.cc", "beta.hpp", "beta.cpp"}, names)

	assert.Equal(t, readFile(t, filepath.Join(srcA, "alpha.cc")), readFile(t, filepath.Join(out, "alpha.cc")))
	assert.Equal(t, readFile(t, filepath.Join(srcB, "beta.cpp")), readFile(t, filepath.Join(out, "beta.cpp")))
}

// TestCollect_LastDirectoryWins verifies that a base name present in
// several input directories ends up with the content of the last one.
func TestCollect_LastDirectoryWins(t *testing.T) {
	root := t.TempDir()
	srcA := filepath.Join(root, "src", "a")
	srcB := filepath.Join(root, "src", "b")
	out := filepath.Join(root, "out")
	writeFiles(t, srcA, "a", "foo.h")
	writeFiles(t, srcB, "b", "foo.h")

	require.NoError(t, NewCollector().Collect(out, []string{srcA, srcB}))
	assert.Equal(t, "b:foo.h", readFile(t, filepath.Join(out, "foo.h")))

	require.NoError(t, NewCollector().Collect(out, []string{srcB, srcA}))
	assert.Equal(t, "a:foo.h", readFile(t, filepath.Join(out, "foo.h")))
}

// TestCollect_Idempotent runs twice over a non-empty output directory and
// checks unrelated files survive.
func TestCollect_Idempotent(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	out := filepath.Join(root, "out")
	writeFiles(t, src, "s", "lib.c")
	writeFiles(t, out, "o", "unrelated.txt", "stale.h")

	c := NewCollector()
	require.NoError(t, c.Collect(out, []string{src}))
	require.NoError(t, c.Collect(out, []string{src}))

	assert.Equal(t, "o:unrelated.txt", readFile(t, filepath.Join(out, "unrelated.txt")))
	assert.Equal(t, "o:stale.h", readFile(t, filepath.Join(out, "stale.h")))
	assert.Equal(t, "s:lib.c", readFile(t, filepath.Join(out, "lib.c")))
}

func TestCollect_OverwritesLongerFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	out := filepath.Join(root, "out")
	writeFiles(t, src, "s", "x.h")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "x.h"), []byte("a much longer previous content"), 0o644))

	require.NoError(t, NewCollector().Collect(out, []string{src}))
	assert.Equal(t, "s:x.h", readFile(t, filepath.Join(out, "x.h")))
}

func TestCollect_NoMatches(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	out := filepath.Join(root, "out")
	writeFiles(t, src, "s", "main.go")

	require.NoError(t, NewCollector().Collect(out, []string{src, filepath.Join(root, "missing")}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCollect_SameDirectoryIsError(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "s", "self.h")

	err := NewCollector().Collect(dir, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same file")
	assert.Equal(t, "s:self.h", readFile(t, filepath.Join(dir, "self.h")), "source must not be truncated")
}

// TestCollect_AbortsOnFirstFailure uses a directory named like a header
// to force a copy failure after earlier files were copied.
func TestCollect_AbortsOnFirstFailure(t *testing.T) {
	root := t.TempDir()
	srcA := filepath.Join(root, "a")
	srcB := filepath.Join(root, "b")
	out := filepath.Join(root, "out")
	writeFiles(t, srcA, "a", "ok.h")
	require.NoError(t, os.MkdirAll(filepath.Join(srcB, "broken.h"), 0o755))
	writeFiles(t, srcB, "b", "later.c")

	err := NewCollector().Collect(out, []string{srcA, srcB})
	require.Error(t, err)

	assert.FileExists(t, filepath.Join(out, "ok.h"))
	assert.NoFileExists(t, filepath.Join(out, "later.c"))
}

func TestCollect_Logs(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFiles(t, src, "s", "a.h", "b.c")

	var count int
	c := &Collector{Logf: func(string, ...interface{}) { count++ }}
	require.NoError(t, c.Collect(filepath.Join(root, "out"), []string{src}))
	assert.Equal(t, 2, count)
}
