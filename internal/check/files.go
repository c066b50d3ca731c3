package check

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

var payloadExts = []string{".json", ".jsonl", ".ndjson"}

// CollectFiles expands directories into the payload files they contain.
// Plain file arguments are kept whatever their extension.
func CollectFiles(paths []string, excludeDirs []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && slices.Contains(excludeDirs, d.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if slices.Contains(payloadExts, filepath.Ext(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}
	return files, nil
}

// CheckFiles checks files in parallel, at most jobs at a time. Results keep
// the order of files.
func (c *Checker) CheckFiles(ctx context.Context, files []string, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	perFile := make([][]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			results, err := c.Check(path, f)
			if err != nil {
				return err
			}
			perFile[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(perFile...), nil
}
