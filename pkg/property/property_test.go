package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/property"
)

func TestSignalDeliversInOrder(t *testing.T) {
	t.Parallel()

	var (
		sig property.Signal[int]
		got []string
	)

	sig.Connect(func(v int) error {
		got = append(got, "first")
		return nil
	})
	disconnect := sig.Connect(func(v int) error {
		got = append(got, "second")
		return nil
	})
	sig.Connect(func(v int) error {
		got = append(got, "third")
		return nil
	})

	require.NoError(t, sig.Emit(1))
	assert.Equal(t, []string{"first", "second", "third"}, got)

	disconnect()
	got = nil

	require.NoError(t, sig.Emit(2))
	assert.Equal(t, []string{"first", "third"}, got)
	assert.Equal(t, 2, sig.Len())
}

func TestSignalStopsOnError(t *testing.T) {
	t.Parallel()

	var (
		sig    property.Signal[int]
		called bool
	)

	sig.Connect(func(int) error { return assert.AnError })
	sig.Connect(func(int) error {
		called = true
		return nil
	})

	require.ErrorIs(t, sig.Emit(1), assert.AnError)
	assert.False(t, called)
}

func TestValueNotifiesContainer(t *testing.T) {
	t.Parallel()

	sig := &property.Signal[property.Change]{}
	c := property.NewContainer("pipeline", sig)
	v := property.NewValue(c, "Mode", 0)

	var changes []property.Change

	sig.Connect(func(ch property.Change) error {
		changes = append(changes, ch)
		return nil
	})

	require.NoError(t, v.Set(1))
	assert.Equal(t, 1, v.Get())
	assert.True(t, v.IsTouched())
	assert.True(t, c.IsTouched())
	require.Len(t, changes, 1)
	assert.Same(t, c, changes[0].Container)
	assert.Equal(t, property.Property(v), changes[0].Property)

	c.PurgeTouched()
	assert.False(t, v.IsTouched())

	p, ok := c.Property("Mode")
	require.True(t, ok)
	assert.Equal(t, property.Property(v), p)
}

func TestSetterReturnsListenerError(t *testing.T) {
	t.Parallel()

	c := property.NewContainer("pipeline", nil)
	v := property.NewValue(c, "Mode", 0)
	c.Changed().Connect(func(property.Change) error { return assert.AnError })

	err := v.Set(3)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 3, v.Get())
}

func TestEnumeration(t *testing.T) {
	t.Parallel()

	c := property.NewContainer("pipeline", nil)
	e := property.NewEnumeration(c, "Step", nil, 0)

	assert.False(t, e.HasEnums())
	assert.Equal(t, property.NoSelection, e.Index())
	assert.Equal(t, "", e.ValueAsString())

	require.NoError(t, e.SetEnums([]string{"0.0 s", "1.0 s"}, 1))
	assert.Equal(t, "1.0 s", e.ValueAsString())

	require.NoError(t, e.SetValueString("0.0 s"))
	assert.Equal(t, 0, e.Index())

	require.ErrorIs(t, e.SetValueString("2.0 s"), property.ErrUnknownValue)
	require.ErrorIs(t, e.SetIndex(2), property.ErrOutOfRange)
	require.ErrorIs(t, e.SetEnums([]string{"a"}, 1), property.ErrOutOfRange)

	require.NoError(t, e.SetEnums([]string{"a"}, property.NoSelection))
	assert.Equal(t, "", e.ValueAsString())
}

func TestList(t *testing.T) {
	t.Parallel()

	c := property.NewContainer("pipeline", nil)
	l := property.NewList[string](c, "Group")

	notified := 0

	c.Changed().Connect(func(property.Change) error {
		notified++
		return nil
	})

	_, ok := l.Last()
	assert.False(t, ok)

	require.NoError(t, l.Append("a"))
	require.NoError(t, l.SetValues([]string{"a", "b", "c"}))

	removed, err := l.Remove("b")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = l.Remove("x")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, []string{"a", "c"}, l.Values())
	assert.True(t, l.Contains("c"))

	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, "c", last)
	assert.Equal(t, 3, notified)
}
