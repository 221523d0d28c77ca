package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/pipeline/measure"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m measure.Measure
}

func (pd *pipelineDrawer) New() error {
	return nil
}

// BeginRewire starts a new drawing: the members are about to be connected again.
func (pd *pipelineDrawer) BeginRewire(source *model.NodeInfo) error {
	err := pd.Reset()
	if err != nil {
		return errors.Wrap(err, "unable to reset drawer")
	}

	err = pd.AddNode(source.Name, true)
	if err != nil {
		return errors.Wrap(err, "unable to add source to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareFilter(upstream, filter *model.NodeInfo) error {
	err := pd.AddNode(filter.Name, false)
	if err != nil {
		return err
	}

	err = pd.AddLink(upstream.Name, filter.Name)
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) OnStep(float64) error {
	return nil
}

func (pd *pipelineDrawer) OnFilterOutput(_, _ *model.NodeInfo, _, _ time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer returns a pipeline option drawing the live wiring of the pipeline
// when it is closed. measure may be nil.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure}
}
