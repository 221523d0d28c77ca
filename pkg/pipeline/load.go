package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/result"
	"github.com/askiada/go-postpipeline/pkg/units"
)

// Load replaces the data of the pipeline with the export of res. A result without
// mesh is ignored.
func (p *Pipeline) Load(ctx context.Context, res *result.Result) error {
	if res == nil || res.Mesh == nil {
		p.logger.InfoContext(ctx, "result has no mesh, nothing to load", "pipeline", p.name)

		return nil
	}

	leaf, err := p.export(res)
	if err != nil {
		return err
	}

	return p.SetDataset(leaf)
}

// LoadSteps replaces the data of the pipeline with one block per result, results[i]
// being computed at values[i]. The data is left untouched when any result cannot be
// exported.
func (p *Pipeline) LoadSteps(
	ctx context.Context,
	results []*result.Result,
	values []float64,
	unit units.Unit,
	stepType string,
) error {
	if len(results) != len(values) {
		p.logger.ErrorContext(ctx, "result values and step values have different length",
			"pipeline", p.name, "results", len(results), "values", len(values))

		return errors.Wrapf(ErrLengthMismatch, "%d results, %d values", len(results), len(values))
	}

	blocks := make([]*dataset.Leaf, len(results))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.loadConcurrency)

	for i, res := range results {
		i, res := i, res

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if res == nil || res.Mesh == nil {
				return errors.Wrapf(ErrEmptyMesh, "step %d", i)
			}

			leaf, err := p.export(res)
			if err != nil {
				return errors.Wrapf(err, "step %d", i)
			}

			leaf.FieldData().AddArray(dataset.NewFloatArray(dataset.TimeValueName, 1, values[i]))
			blocks[i] = leaf

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return errors.Wrap(err, "unable to load steps")
	}

	collection := dataset.NewCollection(blocks...)
	collection.FieldData().AddArray(dataset.NewStringArray(dataset.TimeInfoName, stepType, unit.String()))

	return p.SetDataset(collection)
}

func (p *Pipeline) export(res *result.Result) (*dataset.Leaf, error) {
	leaf, err := p.exporter.ExportMesh(res.Mesh)
	if err != nil {
		return nil, errors.Wrap(err, "unable to export mesh")
	}

	err = p.exporter.ExportResultFields(res, leaf)
	if err != nil {
		return nil, errors.Wrap(err, "unable to export result fields")
	}

	return leaf, nil
}
