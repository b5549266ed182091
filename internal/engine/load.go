package engine

import (
	"context"
	"io/fs"

	"github.com/jonathan/pathway-tracker/internal/catalog"
	"github.com/jonathan/pathway-tracker/internal/catalogdata"
	"github.com/jonathan/pathway-tracker/internal/milestones"
	"github.com/jonathan/pathway-tracker/internal/specialty"
	"golang.org/x/sync/errgroup"
)

// Data is the immutable reference data the engine runs against.
type Data struct {
	Catalog     *catalog.Catalog
	Specialties *specialty.Index
	Milestones  *milestones.Aggregator
}

// LoadFS loads catalog data laid out as pathways/*.yaml, specialties.yaml and
// milestones.yaml at the root of fsys. The three documents load concurrently.
func LoadFS(ctx context.Context, fsys fs.FS) (*Data, error) {
	var data Data
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := catalog.Load(gCtx, fsys, catalogdata.PathwaysDir)
		if err != nil {
			return err
		}
		data.Catalog = c
		return nil
	})
	g.Go(func() error {
		idx, err := specialty.Load(fsys, catalogdata.SpecialtiesFile)
		if err != nil {
			return err
		}
		data.Specialties = idx
		return nil
	})
	g.Go(func() error {
		agg, err := milestones.Load(fsys, catalogdata.MilestonesFile)
		if err != nil {
			return err
		}
		data.Milestones = agg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// LoadDefault loads the catalog data embedded in the binary.
func LoadDefault(ctx context.Context) (*Data, error) {
	return LoadFS(ctx, catalogdata.FS())
}
