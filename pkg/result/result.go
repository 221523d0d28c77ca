package result

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

// Mesh is the geometry a result is computed on.
type Mesh struct {
	Points []dataset.Point
	Cells  []dataset.Cell
}

// Field is a point field: one tuple of Components values per mesh point.
type Field struct {
	Name       string
	Components int
	Values     []float64
}

// Result is the outcome of one analysis step.
type Result struct {
	Name   string
	Mesh   *Mesh
	Fields []Field
}

// Exporter converts results into datasets.
type Exporter interface {
	// ExportMesh creates a leaf holding the geometry of m.
	ExportMesh(m *Mesh) (*dataset.Leaf, error)
	// ExportResultFields attaches the fields of r to leaf as point data.
	ExportResultFields(r *Result, leaf *dataset.Leaf) error
}

// DefaultExporter copies meshes and fields as they are.
type DefaultExporter struct{}

// ExportMesh implements Exporter.
func (DefaultExporter) ExportMesh(m *Mesh) (*dataset.Leaf, error) {
	if m == nil || len(m.Points) == 0 {
		return nil, ErrEmptyMesh
	}

	for i, cell := range m.Cells {
		for _, idx := range cell {
			if idx < 0 || idx >= len(m.Points) {
				return nil, errors.Wrapf(ErrInvalidCell, "cell %d: point %d", i, idx)
			}
		}
	}

	points := make([]dataset.Point, len(m.Points))
	copy(points, m.Points)

	cells := make([]dataset.Cell, len(m.Cells))
	for i, cell := range m.Cells {
		cells[i] = append(dataset.Cell(nil), cell...)
	}

	return dataset.NewLeaf(points, cells), nil
}

// ExportResultFields implements Exporter.
func (DefaultExporter) ExportResultFields(r *Result, leaf *dataset.Leaf) error {
	for _, field := range r.Fields {
		components := field.Components
		if components < 1 {
			components = 1
		}

		if len(field.Values) != components*leaf.NumberOfPoints() {
			return errors.Wrapf(ErrFieldSize, "%s: %d values for %d points of %d components",
				field.Name, len(field.Values), leaf.NumberOfPoints(), components)
		}

		values := append([]float64(nil), field.Values...)
		leaf.PointData().AddArray(dataset.NewFloatArray(field.Name, components, values...))
	}

	return nil
}

var _ Exporter = DefaultExporter{}
