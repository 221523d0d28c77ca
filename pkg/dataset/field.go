package dataset

// Field array names carrying time step information.
const (
	// TimeValueName is the block level array holding the step value.
	TimeValueName = "TimeValue"
	// TimeInfoName is the collection level array holding the step type and unit.
	TimeInfoName = "TimeInfo"
)

// Array is a named field array. The set of implementations is closed:
// *FloatArray and *StringArray.
type Array interface {
	// Name returns the array name.
	Name() string
	// Len returns the number of tuples.
	Len() int

	isArray()
}

// TimedBlock is implemented by every array kind. It reports the time value
// a block carries when the array is used as its "TimeValue" field.
type TimedBlock interface {
	TimeValue() (float64, bool)
}

// FloatArray stores tuples of float64 values.
type FloatArray struct {
	name       string
	components int
	values     []float64
}

// NewFloatArray creates a float array. Values are laid out tuple after tuple.
func NewFloatArray(name string, components int, values ...float64) *FloatArray {
	if components < 1 {
		components = 1
	}

	return &FloatArray{
		name:       name,
		components: components,
		values:     values,
	}
}

// Name returns the array name.
func (a *FloatArray) Name() string { return a.name }

// Components returns the number of components per tuple.
func (a *FloatArray) Components() int { return a.components }

// Len returns the number of tuples.
func (a *FloatArray) Len() int { return len(a.values) / a.components }

// Values returns the underlying storage. Callers must not modify it.
func (a *FloatArray) Values() []float64 { return a.values }

// Tuple returns the components of tuple i.
func (a *FloatArray) Tuple(i int) []float64 {
	return a.values[i*a.components : (i+1)*a.components]
}

// TimeValue returns the first value of the array.
func (a *FloatArray) TimeValue() (float64, bool) {
	if len(a.values) == 0 {
		return 0, false
	}

	return a.values[0], true
}

func (*FloatArray) isArray() {}

// StringArray stores string values.
type StringArray struct {
	name   string
	values []string
}

// NewStringArray creates a string array.
func NewStringArray(name string, values ...string) *StringArray {
	return &StringArray{name: name, values: values}
}

// Name returns the array name.
func (a *StringArray) Name() string { return a.name }

// Len returns the number of values.
func (a *StringArray) Len() int { return len(a.values) }

// Value returns value i.
func (a *StringArray) Value(i int) string { return a.values[i] }

// Values returns the underlying storage. Callers must not modify it.
func (a *StringArray) Values() []string { return a.values }

// TimeValue always fails: strings never carry a step value.
func (a *StringArray) TimeValue() (float64, bool) { return 0, false }

func (*StringArray) isArray() {}

// FieldData is an ordered set of arrays indexed by name. The zero value is ready to use.
type FieldData struct {
	order  []string
	arrays map[string]Array
}

// AddArray adds arr, replacing an array with the same name in place.
func (f *FieldData) AddArray(arr Array) {
	if f.arrays == nil {
		f.arrays = make(map[string]Array)
	}

	if _, ok := f.arrays[arr.Name()]; !ok {
		f.order = append(f.order, arr.Name())
	}

	f.arrays[arr.Name()] = arr
}

// HasArray reports whether an array called name exists.
func (f *FieldData) HasArray(name string) bool {
	_, ok := f.arrays[name]
	return ok
}

// Array returns the array called name.
func (f *FieldData) Array(name string) (Array, bool) {
	arr, ok := f.arrays[name]
	return arr, ok
}

// Names returns the array names in insertion order.
func (f *FieldData) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)

	return names
}

// Len returns the number of arrays.
func (f *FieldData) Len() int { return len(f.order) }

// clone returns a new FieldData sharing the arrays of f.
func (f *FieldData) clone() FieldData {
	if f.arrays == nil {
		return FieldData{}
	}

	cloned := FieldData{
		order:  make([]string, len(f.order)),
		arrays: make(map[string]Array, len(f.arrays)),
	}
	copy(cloned.order, f.order)

	for name, arr := range f.arrays {
		cloned.arrays[name] = arr
	}

	return cloned
}
