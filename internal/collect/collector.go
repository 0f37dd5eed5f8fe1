package collect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the collected file extensions in copy order.
var Extensions = []string{"h", "hh", "hpp", "c", "cc", "cpp"}

// Collector copies matching files from input directories into one
// output directory.
type Collector struct {
	// Logf receives a line per copied file. It may be nil.
	Logf func(format string, args ...interface{})
}

// NewCollector returns a Collector with no trace output.
func NewCollector() *Collector {
	return &Collector{}
}

// Discover lists the files in inputDir carrying one of Extensions,
// grouped by extension in Extensions order.
//
// As with a shell glob, names starting with "." are skipped. A missing
// directory, or one whose path is not a valid glob pattern, yields no
// files and no error.
func Discover(inputDir string) ([]string, error) {
	var files []string
	for _, ext := range Extensions {
		matches, err := filepath.Glob(filepath.Join(inputDir, "*."+ext))
		if err != nil {
			if errors.Is(err, filepath.ErrBadPattern) {
				return nil, nil
			}
			return nil, err
		}
		for _, m := range matches {
			if strings.HasPrefix(filepath.Base(m), ".") {
				continue
			}
			files = append(files, m)
		}
	}
	return files, nil
}

// Collect creates outputDir if needed and copies every matching file of
// each input directory into it, flattening the directory structure.
//
// The first failed copy aborts the run. Files copied before the failure
// are left in place.
func (c *Collector) Collect(outputDir string, inputDirs []string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	for _, dir := range inputDirs {
		files, err := Discover(dir)
		if err != nil {
			return fmt.Errorf("failed to list sources in %s: %w", dir, err)
		}

		for _, src := range files {
			dst := filepath.Join(outputDir, filepath.Base(src))
			if err := CopyFile(src, dst); err != nil {
				return err
			}
			c.logf("Copied %s -> %s", src, dst)
		}
	}
	return nil
}

// CopyFile copies the contents of src to dst, creating or truncating dst.
// Copying a file onto itself is refused, since truncating dst would
// destroy src.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("failed to copy %s: is a directory", src)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("failed to copy %s: source and destination are the same file", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

func (c *Collector) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
