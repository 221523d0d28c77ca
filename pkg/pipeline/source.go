package pipeline

import (
	"math"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
)

// Source is the head of a pipeline. It wraps a single dataset and materializes the
// leaf matching the requested step time.
type Source struct {
	name    string
	data    dataset.Dataset
	time    float64
	hasTime bool
	output  *dataset.Leaf
}

// NewSource creates a source without data.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// Name returns the source name.
func (s *Source) Name() string { return s.name }

// SetDataset replaces the backing dataset and materializes the output again.
// Calling it twice with the same dataset is not short-circuited.
func (s *Source) SetDataset(d dataset.Dataset) {
	s.data = d
	s.update()
}

// Input returns the backing dataset.
func (s *Source) Input() dataset.Dataset { return s.data }

// UpdateTimeStep requests the data of time t.
func (s *Source) UpdateTimeStep(t float64) {
	s.time = t
	s.hasTime = true
	s.update()
}

// StepValues returns the time value of every block, in block order. It returns an
// empty list for leaves, and for collections where any block lacks a readable time
// value.
func (s *Source) StepValues() []float64 {
	collection, ok := s.data.(*dataset.Collection)
	if !ok {
		return nil
	}

	steps := make([]float64, collection.NumberOfBlocks())
	for i := range steps {
		value, ok := collection.BlockTime(i)
		if !ok {
			// not every block has time data
			return nil
		}

		steps[i] = value
	}

	return steps
}

// DataForTime returns the data to show at time t. A leaf is returned as is; for a
// collection, a shallow copy of the block nearest to t, the lowest index winning ties.
func (s *Source) DataForTime(t float64) *dataset.Leaf {
	switch data := s.data.(type) {
	case *dataset.Leaf:
		return data
	case *dataset.Collection:
		if data.NumberOfBlocks() == 0 {
			return nil
		}

		return shallowCopy(data.Block(nearestStep(s.StepValues(), t)))
	}

	return nil
}

// Dataset returns the materialized output, or nil when nothing was computed.
func (s *Source) Dataset() *dataset.Leaf { return s.output }

// Data returns the materialized output. It implements model.OutputPort.
func (s *Source) Data() (*dataset.Leaf, error) {
	if s.output == nil {
		return nil, ErrNoData
	}

	return s.output, nil
}

func (s *Source) update() {
	collection, ok := s.data.(*dataset.Collection)
	if ok && !s.hasTime {
		if collection.NumberOfBlocks() == 0 {
			s.output = nil

			return
		}

		s.output = shallowCopy(collection.Block(0))

		return
	}

	s.output = s.DataForTime(s.time)
}

// nearestStep returns the index of the step closest to t. Float values carry rounding
// errors, so the smallest distance wins rather than an exact match.
func nearestStep(steps []float64, t float64) int {
	idx := 0
	best := math.Inf(1)

	for i, step := range steps {
		if d := math.Abs(step - t); d < best {
			idx, best = i, d
		}
	}

	return idx
}

func shallowCopy(leaf *dataset.Leaf) *dataset.Leaf {
	if leaf == nil {
		return nil
	}

	return leaf.ShallowCopy()
}

var _ model.OutputPort = (*Source)(nil)
