package pipeline

import (
	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/property"
	"github.com/askiada/go-postpipeline/pkg/units"
)

// NoStepsLabel is the only step label of a dataset without steps.
const NoStepsLabel = "No steps available"

// Step types reported when the dataset does not declare one.
const (
	NoStepsType     = "no steps"
	UnknownStepType = "unknown"
)

// Catalog turns a step list into the labels offered for step selection.
type Catalog struct {
	labels []string
}

// Rebuild computes one label per step, or NoStepsLabel when there is no step.
func (c *Catalog) Rebuild(steps []float64, unit units.Unit) []string {
	if len(steps) == 0 {
		c.labels = []string{NoStepsLabel}

		return c.Labels()
	}

	c.labels = make([]string, len(steps))
	for i, step := range steps {
		c.labels[i] = units.Quantity{Value: step, Unit: unit}.UserString()
	}

	return c.Labels()
}

// Labels returns a copy of the labels computed by the last Rebuild.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Reselect returns the index of previous among the current labels. It returns
// property.NoSelection when previous is empty or no longer offered.
func (c *Catalog) Reselect(previous string) int {
	if previous == "" {
		return property.NoSelection
	}

	for i, label := range c.labels {
		if label == previous {
			return i
		}
	}

	return property.NoSelection
}

// stepTypeOf returns the step type declared by the "TimeInfo" array of d.
func stepTypeOf(d dataset.Dataset) string {
	collection, ok := d.(*dataset.Collection)
	if !ok {
		return NoStepsType
	}

	stepType, _, ok := collection.TimeInfo()
	if !ok {
		return UnknownStepType
	}

	return stepType
}

// stepUnitOf returns the unit declared by the "TimeInfo" array of d. An empty symbol is
// dimensionless. Without a readable declaration it falls back to a time span.
func stepUnitOf(d dataset.Dataset) units.Unit {
	collection, ok := d.(*dataset.Collection)
	if !ok {
		return units.TimeSpan
	}

	_, symbol, ok := collection.TimeInfo()
	if !ok {
		return units.TimeSpan
	}

	if symbol == "" {
		return units.Dimensionless
	}

	unit, err := units.Parse(symbol)
	if err != nil {
		return units.TimeSpan
	}

	return unit
}
