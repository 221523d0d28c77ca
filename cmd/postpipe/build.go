package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/filter"
	"github.com/askiada/go-postpipeline/pkg/pipeline"
	"github.com/askiada/go-postpipeline/pkg/pipeline/drawer"
	"github.com/askiada/go-postpipeline/pkg/pipeline/measure"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/result"
	"github.com/askiada/go-postpipeline/pkg/units"
)

var errInvalidFilter = errors.New("invalid filter, expected warp:<field>:<factor> or extract:<field>")

// session is a pipeline built from the configuration and the command flags.
type session struct {
	pipe    *pipeline.Pipeline
	measure *measure.DefaultMeasure
	logger  *slog.Logger
}

func (a *app) newSession(stderr io.Writer, filters []string) (*session, error) {
	members, err := parseFilters(filters)
	if err != nil {
		return nil, err
	}

	logger := newLogger(a.cfg.Log.Level, a.cfg.Log.Format, stderr)
	msr := measure.NewDefaultMeasure()

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithMode(a.cfg.PipelineMode()),
		pipeline.WithLoadConcurrency(a.cfg.Load.Concurrency),
		pipeline.WithHooks(measure.PipelineMeasure(msr)),
	}

	if a.cfg.Drawer.Output != "" {
		opts = append(opts, pipeline.WithHooks(drawer.PipelineDrawer(drawer.NewDOTDrawer(a.cfg.Drawer.Output), msr)))
	}

	pipe, err := pipeline.New("postpipe", opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	err = pipe.SetMembers(members...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add filters")
	}

	return &session{pipe: pipe, measure: msr, logger: logger}, nil
}

// load replaces the pipeline data with the result set stored at path.
func (s *session) load(ctx context.Context, path string) error {
	set, err := result.ReadSetFile(path)
	if err != nil {
		return err
	}

	results, values, err := set.Results()
	if err != nil {
		return errors.Wrapf(err, "invalid result set %s", path)
	}

	unit := units.TimeSpan
	if set.Unit != "" {
		unit, err = units.Parse(set.Unit)
		if err != nil {
			return errors.Wrapf(err, "invalid result set %s", path)
		}
	}

	stepType := set.StepType
	if stepType == "" {
		stepType = "time"
	}

	return s.pipe.LoadSteps(ctx, results, values, unit, stepType)
}

func parseFilters(defs []string) ([]model.Node, error) {
	members := make([]model.Node, 0, len(defs))

	for i, def := range defs {
		parts := strings.Split(def, ":")

		var stage filter.Stage

		switch {
		case parts[0] == "warp" && len(parts) == 3:
			factor, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, errors.Wrapf(errInvalidFilter, "%s: %v", def, err)
			}

			stage = filter.WarpVector(parts[1], factor)
		case parts[0] == "extract" && len(parts) == 2:
			stage = filter.Extract(parts[1])
		default:
			return nil, errors.Wrapf(errInvalidFilter, "%s", def)
		}

		f, err := filter.New(strconv.Itoa(i)+"-"+parts[0], filter.WithBranch(parts[0], stage))
		if err != nil {
			return nil, err
		}

		members = append(members, f)
	}

	return members, nil
}
