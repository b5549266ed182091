package catalog

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jonathan/pathway-tracker/internal/schemas"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds how many registry files are decoded at once
const maxConcurrentLoads = 4

// Load reads every *.yaml, *.yml and *.json registry file in dir, validates each
// against the pathway registry schema and builds a catalog. Files are combined in
// lexical filename order so numeric prefixes control catalog iteration order.
func Load(ctx context.Context, fsys fs.FS, dir string) (*Catalog, error) {
	files, err := registryFiles(fsys, dir)
	if err != nil {
		return nil, err
	}

	registries := make([]CountryRegistry, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := schemas.DecodeFile(fsys, file, schemas.PathwayRegistry, &registries[i]); err != nil {
				return &LoadError{Path: file, Message: "invalid pathway registry", Cause: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Build(registries...)
}

func registryFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "failed to list registry directory", Cause: err}
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, &LoadError{Path: dir, Message: "no registry files found"}
	}
	sort.Strings(files)
	return files, nil
}
