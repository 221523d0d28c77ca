package pipeline

import (
	"log/slog"
	"strings"

	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/property"
	"github.com/askiada/go-postpipeline/pkg/result"
)

// Option configures a pipeline.
type Option func(p *Pipeline)

// WithLogger sets the logger. Pipelines log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMode sets the initial mode.
func WithMode(mode model.Mode) Option {
	return func(p *Pipeline) {
		p.initialMode = mode
	}
}

// WithExporter replaces the exporter used to load results.
func WithExporter(exporter result.Exporter) Option {
	return func(p *Pipeline) {
		if exporter != nil {
			p.exporter = exporter
		}
	}
}

// WithReader registers r for the files with extension ext.
func WithReader(ext string, r Reader) Option {
	return func(p *Pipeline) {
		p.readers[normalizeExt(ext)] = r
	}
}

// WithLoadConcurrency sets how many steps are exported at the same time by LoadSteps.
func WithLoadConcurrency(concurrent int) Option {
	return func(p *Pipeline) {
		if concurrent > 0 {
			p.loadConcurrency = concurrent
		}
	}
}

// WithHooks registers pipeline options such as drawers and measures.
func WithHooks(hooks ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.hooks = append(p.hooks, hooks...)
	}
}

// WithSignal emits the property changes of the pipeline on changed.
func WithSignal(changed *property.Signal[property.Change]) Option {
	return func(p *Pipeline) {
		p.changed = changed
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
