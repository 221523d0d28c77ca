package result

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

// Set is a series of results, one per step value.
type Set struct {
	StepType string `yaml:"step_type"`
	Unit     string `yaml:"unit"`
	Steps    []Step `yaml:"steps"`
}

// Step is one entry of a result set file.
type Step struct {
	Value  float64     `yaml:"value"`
	Mesh   *stepMesh   `yaml:"mesh,omitempty"`
	Fields []stepField `yaml:"fields,omitempty"`
}

type stepMesh struct {
	Points [][]float64 `yaml:"points"`
	Cells  [][]int     `yaml:"cells,omitempty"`
}

type stepField struct {
	Name       string    `yaml:"name"`
	Components int       `yaml:"components,omitempty"`
	Values     []float64 `yaml:"values"`
}

// ReadSet decodes a result set. Unknown keys are rejected.
func ReadSet(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	set := &Set{}

	err := dec.Decode(set)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode result set")
	}

	if len(set.Steps) == 0 {
		return nil, ErrNoSteps
	}

	return set, nil
}

// ReadSetFile decodes the result set stored at path.
func ReadSetFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	return ReadSet(f)
}

// WriteSet encodes set to w.
func WriteSet(w io.Writer, set *Set) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(set)
	if err != nil {
		return errors.Wrap(err, "unable to encode result set")
	}

	return errors.Wrap(enc.Close(), "unable to flush result set")
}

// AddStep appends the result r computed at value.
func (s *Set) AddStep(value float64, r *Result) {
	step := Step{Value: value}

	if r.Mesh != nil {
		step.Mesh = &stepMesh{
			Points: make([][]float64, len(r.Mesh.Points)),
			Cells:  make([][]int, len(r.Mesh.Cells)),
		}

		for i, p := range r.Mesh.Points {
			step.Mesh.Points[i] = []float64{p[0], p[1], p[2]}
		}

		for i, c := range r.Mesh.Cells {
			step.Mesh.Cells[i] = append([]int(nil), c...)
		}
	}

	for _, f := range r.Fields {
		step.Fields = append(step.Fields, stepField{Name: f.Name, Components: f.Components, Values: f.Values})
	}

	s.Steps = append(s.Steps, step)
}

// Results returns the results of the set and their step values, in file order.
// A step without mesh gives a result without mesh.
func (s *Set) Results() ([]*Result, []float64, error) {
	results := make([]*Result, len(s.Steps))
	values := make([]float64, len(s.Steps))

	for i, step := range s.Steps {
		res := &Result{}

		if step.Mesh != nil {
			mesh, err := step.Mesh.toMesh()
			if err != nil {
				return nil, nil, errors.Wrapf(err, "step %d", i)
			}

			res.Mesh = mesh
		}

		for _, f := range step.Fields {
			res.Fields = append(res.Fields, Field{Name: f.Name, Components: f.Components, Values: f.Values})
		}

		results[i] = res
		values[i] = step.Value
	}

	return results, values, nil
}

func (m *stepMesh) toMesh() (*Mesh, error) {
	mesh := &Mesh{
		Points: make([]dataset.Point, len(m.Points)),
		Cells:  make([]dataset.Cell, len(m.Cells)),
	}

	for i, p := range m.Points {
		if len(p) == 0 || len(p) > 3 {
			return nil, errors.Errorf("point %d has %d coordinates", i, len(p))
		}

		copy(mesh.Points[i][:], p)
	}

	for i, c := range m.Cells {
		mesh.Cells[i] = append(dataset.Cell(nil), c...)
	}

	return mesh, nil
}
