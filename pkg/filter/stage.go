package filter

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

// Stage transforms the data of a branch.
type Stage interface {
	Name() string
	Apply(in *dataset.Leaf) (*dataset.Leaf, error)
}

type stageFunc struct {
	name string
	fn   func(in *dataset.Leaf) (*dataset.Leaf, error)
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Apply(in *dataset.Leaf) (*dataset.Leaf, error) { return s.fn(in) }

// NewStage wraps fn into a stage called name.
func NewStage(name string, fn func(in *dataset.Leaf) (*dataset.Leaf, error)) Stage {
	return stageFunc{name: name, fn: fn}
}

// Passthrough forwards its input.
func Passthrough() Stage {
	return NewStage("passthrough", func(in *dataset.Leaf) (*dataset.Leaf, error) {
		return in, nil
	})
}

// WarpVector moves every point along the vector point field called field, scaled by
// factor.
func WarpVector(field string, factor float64) Stage {
	return NewStage("warp "+field, func(in *dataset.Leaf) (*dataset.Leaf, error) {
		vectors, err := vectorField(in, field)
		if err != nil {
			return nil, err
		}

		points := make([]dataset.Point, in.NumberOfPoints())
		for i, p := range in.Points() {
			v := vectors.Tuple(i)
			points[i] = dataset.Point{p[0] + factor*v[0], p[1] + factor*v[1], p[2] + factor*v[2]}
		}

		return in.WithPoints(points), nil
	})
}

// Extract keeps field as the only point field.
func Extract(field string) Stage {
	return NewStage("extract "+field, func(in *dataset.Leaf) (*dataset.Leaf, error) {
		arr, ok := in.PointData().Array(field)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownField, "%s", field)
		}

		out := dataset.NewLeaf(in.Points(), in.Cells())
		out.PointData().AddArray(arr)

		for _, name := range in.FieldData().Names() {
			fieldArr, _ := in.FieldData().Array(name)
			out.FieldData().AddArray(fieldArr)
		}

		return out, nil
	})
}

func vectorField(in *dataset.Leaf, field string) (*dataset.FloatArray, error) {
	arr, ok := in.PointData().Array(field)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%s", field)
	}

	vectors, ok := arr.(*dataset.FloatArray)
	if !ok || vectors.Components() != 3 || vectors.Len() != in.NumberOfPoints() {
		return nil, errors.Wrapf(ErrNotVector, "%s", field)
	}

	return vectors, nil
}
