// Package dataset provides the in-memory data routed through a post-processing pipeline.
//
// Two shapes exist. A Leaf holds a mesh (points and cells) together with point data and
// field data arrays. A Collection holds one Leaf per time step, each block annotated with
// a "TimeValue" field, and carries a collection level "TimeInfo" pair describing the step
// type and unit.
//
// Datasets are treated as immutable once handed to a pipeline: new results replace the
// dataset wholesale instead of mutating it in place.
package dataset
