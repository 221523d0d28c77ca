package dataset

// Dataset is either a *Leaf or a *Collection.
type Dataset interface {
	// FieldData returns the dataset level arrays.
	FieldData() *FieldData

	isDataset()
}

// Point is a position in 3D space.
type Point [3]float64

// Cell lists the indices of the points forming one element.
type Cell []int

// Leaf is a dataset without time subdivision.
type Leaf struct {
	points    []Point
	cells     []Cell
	pointData FieldData
	fieldData FieldData
}

// NewLeaf creates a leaf dataset from a mesh.
func NewLeaf(points []Point, cells []Cell) *Leaf {
	return &Leaf{
		points: points,
		cells:  cells,
	}
}

// Points returns the mesh points. Callers must not modify them.
func (l *Leaf) Points() []Point { return l.points }

// Cells returns the mesh cells. Callers must not modify them.
func (l *Leaf) Cells() []Cell { return l.cells }

// NumberOfPoints returns the number of mesh points.
func (l *Leaf) NumberOfPoints() int { return len(l.points) }

// PointData returns the per point arrays.
func (l *Leaf) PointData() *FieldData { return &l.pointData }

// FieldData returns the dataset level arrays.
func (l *Leaf) FieldData() *FieldData { return &l.fieldData }

// ShallowCopy returns a new leaf sharing mesh and array storage with l.
// Arrays added to the copy are not visible from l.
func (l *Leaf) ShallowCopy() *Leaf {
	return &Leaf{
		points:    l.points,
		cells:     l.cells,
		pointData: l.pointData.clone(),
		fieldData: l.fieldData.clone(),
	}
}

// WithPoints returns a shallow copy of l using points as mesh points.
func (l *Leaf) WithPoints(points []Point) *Leaf {
	cp := l.ShallowCopy()
	cp.points = points

	return cp
}

// Scale returns a shallow copy of l with every point multiplied by s.
func (l *Leaf) Scale(s float64) *Leaf {
	points := make([]Point, len(l.points))
	for i, p := range l.points {
		points[i] = Point{p[0] * s, p[1] * s, p[2] * s}
	}

	return l.WithPoints(points)
}

// timeValue resolves the "TimeValue" field of the leaf.
func (l *Leaf) timeValue() (float64, bool) {
	arr, ok := l.fieldData.Array(TimeValueName)
	if !ok {
		return 0, false
	}

	timed, ok := arr.(TimedBlock)
	if !ok {
		return 0, false
	}

	return timed.TimeValue()
}

func (*Leaf) isDataset() {}

var _ Dataset = (*Leaf)(nil)
