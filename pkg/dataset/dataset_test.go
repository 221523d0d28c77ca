package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

func timedLeaf(t *testing.T, arr dataset.Array) *dataset.Leaf {
	t.Helper()

	leaf := dataset.NewLeaf([]dataset.Point{{0, 0, 0}, {1, 0, 0}}, []dataset.Cell{{0, 1}})
	if arr != nil {
		leaf.FieldData().AddArray(arr)
	}

	return leaf
}

func TestFieldDataKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	var fd dataset.FieldData

	fd.AddArray(dataset.NewFloatArray("b", 1, 1))
	fd.AddArray(dataset.NewFloatArray("a", 1, 2))
	fd.AddArray(dataset.NewFloatArray("b", 1, 3))

	assert.Equal(t, []string{"b", "a"}, fd.Names())
	assert.Equal(t, 2, fd.Len())

	arr, ok := fd.Array("b")
	require.True(t, ok)
	assert.Equal(t, []float64{3}, arr.(*dataset.FloatArray).Values())
	assert.False(t, fd.HasArray("c"))
}

func TestFloatArrayTuples(t *testing.T) {
	t.Parallel()

	arr := dataset.NewFloatArray("displacement", 3, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, []float64{4, 5, 6}, arr.Tuple(1))

	zero := dataset.NewFloatArray("x", 0)
	assert.Equal(t, 1, zero.Components())
	assert.Equal(t, 0, zero.Len())
}

func TestTimedBlockPerArrayKind(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		arr      dataset.TimedBlock
		expected float64
		ok       bool
	}{
		"float":       {arr: dataset.NewFloatArray(dataset.TimeValueName, 1, 2.5), expected: 2.5, ok: true},
		"empty float": {arr: dataset.NewFloatArray(dataset.TimeValueName, 1)},
		"string":      {arr: dataset.NewStringArray(dataset.TimeValueName, "2.5")},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.arr.TimeValue()
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.expected, got, 0)
		})
	}
}

func TestCollectionResolvesBlockTimes(t *testing.T) {
	t.Parallel()

	c := dataset.NewCollection(
		timedLeaf(t, dataset.NewFloatArray(dataset.TimeValueName, 1, 0.5)),
		timedLeaf(t, dataset.NewStringArray(dataset.TimeValueName, "1")),
		timedLeaf(t, nil),
		nil,
	)

	require.Equal(t, 4, c.NumberOfBlocks())

	v, ok := c.BlockTime(0)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 0)

	for i := 1; i < 4; i++ {
		_, ok := c.BlockTime(i)
		assert.False(t, ok, "block %d", i)
	}
}

func TestCollectionTimeInfo(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		arr          dataset.Array
		expectedType string
		expectedUnit string
		ok           bool
	}{
		"missing":     {},
		"float array": {arr: dataset.NewFloatArray(dataset.TimeInfoName, 1, 1, 2)},
		"too short":   {arr: dataset.NewStringArray(dataset.TimeInfoName, "time")},
		"valid":       {arr: dataset.NewStringArray(dataset.TimeInfoName, "time", "s"), expectedType: "time", expectedUnit: "s", ok: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := dataset.NewCollection()
			if tc.arr != nil {
				c.FieldData().AddArray(tc.arr)
			}

			stepType, unit, ok := c.TimeInfo()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expectedType, stepType)
			assert.Equal(t, tc.expectedUnit, unit)
		})
	}
}

func TestLeafShallowCopy(t *testing.T) {
	t.Parallel()

	leaf := timedLeaf(t, dataset.NewFloatArray(dataset.TimeValueName, 1, 1))
	leaf.PointData().AddArray(dataset.NewFloatArray("T", 1, 10, 20))

	cp := leaf.ShallowCopy()
	assert.Equal(t, leaf, cp)
	assert.NotSame(t, leaf, cp)

	cp.PointData().AddArray(dataset.NewFloatArray("U", 1, 1, 2))
	assert.False(t, leaf.PointData().HasArray("U"))
	assert.True(t, cp.PointData().HasArray("T"))
}

func TestScale(t *testing.T) {
	t.Parallel()

	leaf := timedLeaf(t, dataset.NewFloatArray(dataset.TimeValueName, 1, 4))
	scaled := leaf.Scale(2)

	assert.Equal(t, []dataset.Point{{0, 0, 0}, {2, 0, 0}}, scaled.Points())
	assert.Equal(t, []dataset.Point{{0, 0, 0}, {1, 0, 0}}, leaf.Points())

	c := dataset.NewCollection(leaf)
	c.FieldData().AddArray(dataset.NewStringArray(dataset.TimeInfoName, "time", "s"))

	scaledCollection := c.Scale(3)
	require.Equal(t, 1, scaledCollection.NumberOfBlocks())
	assert.Equal(t, []dataset.Point{{0, 0, 0}, {3, 0, 0}}, scaledCollection.Block(0).Points())

	v, ok := scaledCollection.BlockTime(0)
	assert.True(t, ok)
	assert.InDelta(t, 4, v, 0)

	_, unit, ok := scaledCollection.TimeInfo()
	assert.True(t, ok)
	assert.Equal(t, "s", unit)
}
