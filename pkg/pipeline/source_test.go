package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline"
)

func TestSourceLeaf(t *testing.T) {
	t.Parallel()

	leaf := dataset.NewLeaf([]dataset.Point{{1, 0, 0}}, nil)
	s := pipeline.NewSource("source")
	s.SetDataset(leaf)

	assert.Empty(t, s.StepValues())

	for _, time := range []float64{-1, 0, 42} {
		assert.Same(t, leaf, s.DataForTime(time))
	}

	got, err := s.Data()
	require.NoError(t, err)
	assert.Same(t, leaf, got)
}

func TestSourceStepValues(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		blocks []*dataset.Leaf
		want   []float64
	}{
		"all timed": {
			blocks: []*dataset.Leaf{timedLeaf(0, 0), timedLeaf(1, 5), timedLeaf(2, 10)},
			want:   []float64{0, 5, 10},
		},
		"one block without time": {
			blocks: []*dataset.Leaf{timedLeaf(0, 0), dataset.NewLeaf(nil, nil), timedLeaf(2, 10)},
		},
		"string time value": {
			blocks: []*dataset.Leaf{timedLeaf(0, 0), func() *dataset.Leaf {
				leaf := dataset.NewLeaf(nil, nil)
				leaf.FieldData().AddArray(dataset.NewStringArray(dataset.TimeValueName, "1"))

				return leaf
			}()},
		},
		"empty collection": {},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := pipeline.NewSource("source")
			s.SetDataset(dataset.NewCollection(tc.blocks...))

			got := s.StepValues()
			if tc.want == nil {
				assert.Empty(t, got)

				return
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSourceNearestStep(t *testing.T) {
	t.Parallel()

	s := pipeline.NewSource("source")
	s.SetDataset(dataset.NewCollection(timedLeaf(0, 0), timedLeaf(1, 5), timedLeaf(2, 10)))

	tcs := map[string]struct {
		time float64
		want float64
	}{
		"exact":            {time: 5, want: 1},
		"tie picks lowest": {time: 2.5, want: 0},
		"second tie":       {time: 7.5, want: 1},
		"rounding error":   {time: 9.999999, want: 2},
		"before first":     {time: -3, want: 0},
		"after last":       {time: 100, want: 2},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := s.DataForTime(tc.time)
			require.NotNil(t, got)
			assert.Equal(t, []dataset.Point{{tc.want, 0, 0}}, got.Points())
		})
	}
}

func TestSourceMaterializesFirstBlockWithoutTime(t *testing.T) {
	t.Parallel()

	first := timedLeaf(0, 3)
	s := pipeline.NewSource("source")
	s.SetDataset(dataset.NewCollection(first, timedLeaf(1, 4)))

	got := s.Dataset()
	require.NotNil(t, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, first.Points(), got.Points())

	s.UpdateTimeStep(4)
	assert.Equal(t, []dataset.Point{{1, 0, 0}}, s.Dataset().Points())
}

func TestSourceWithoutData(t *testing.T) {
	t.Parallel()

	s := pipeline.NewSource("source")
	assert.Nil(t, s.Dataset())
	assert.Nil(t, s.DataForTime(0))

	_, err := s.Data()
	require.ErrorIs(t, err, pipeline.ErrNoData)

	s.SetDataset(dataset.NewCollection())
	assert.Nil(t, s.Dataset())
}
