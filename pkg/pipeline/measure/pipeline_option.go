package measure

import (
	"time"

	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	return nil
}

func (pm *pipelineMeasure) BeginRewire(source *model.NodeInfo) error {
	pm.AddMetric(source.Name)

	return nil
}

// PrepareFilter keeps the metric of a filter across rewires.
func (pm *pipelineMeasure) PrepareFilter(_, filter *model.NodeInfo) error {
	pm.AddMetric(filter.Name)

	return nil
}

func (pm *pipelineMeasure) OnStep(float64) error {
	pm.AddStep()

	return nil
}

func (pm *pipelineMeasure) OnFilterOutput(upstream, filter *model.NodeInfo, pullDuration, computeDuration time.Duration) error {
	mt := pm.AddMetric(filter.Name)
	mt.AddDuration(computeDuration)
	mt.AddTransportDuration(upstream.Name, pullDuration)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure returns a pipeline option recording the recomputations of every
// pipeline member into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
