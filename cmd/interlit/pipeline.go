package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interlit/internal/driver"
	"interlit/internal/project"
	"interlit/internal/source"
)

// runPipeline dispatches to the single-file or directory driver and returns
// uniform per-file results either way.
func runPipeline(cmd *cobra.Command, path string, cfg project.Config, jobs int, cache *driver.DiskCache) (*source.FileSet, []driver.DirResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return driver.LowerDir(cmd.Context(), path, driver.Options{
			MaxDiagnostics: cfg.Limits.MaxDiagnostics,
			Jobs:           jobs,
			Cache:          cache,
		})
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	res := driver.LowerFile(fileSet, fileID, cfg.Limits.MaxDiagnostics)
	return fileSet, []driver.DirResult{{FileResult: res}}, nil
}

// openCache honors the cache config, returning nil when disabled.
func openCache(cfg project.Config, force bool) (*driver.DiskCache, error) {
	if !cfg.Cache.Enabled && !force {
		return nil, nil
	}
	return driver.OpenDiskCache("interlit", cfg.Cache.Dir)
}
