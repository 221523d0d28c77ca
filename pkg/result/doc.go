// Package result describes simulation results and converts them into datasets.
//
// A Result holds a mesh and the fields computed on its points. An Exporter turns the
// mesh into a dataset.Leaf and attaches the fields as point data. Result sets, one
// result per step, are stored as YAML files.
package result
