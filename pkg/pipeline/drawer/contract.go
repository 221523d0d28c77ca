package drawer

import (
	"github.com/askiada/go-postpipeline/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// Reset forgets every node and link.
	Reset() error
	// AddNode adds a node to the drawing. Adding a known node again is a no-op.
	AddNode(name string, source bool) error
	// AddLink adds a link from upstream to downstream.
	AddLink(upstream, downstream string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
	// AddMeasure annotates the drawing with the metrics of measure.
	AddMeasure(measure measure.Measure) error
}
