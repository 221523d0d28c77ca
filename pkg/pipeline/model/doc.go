// Package model provides the data structures shared by the pipeline package and its options.
// It defines the pipeline topology modes, the ports and nodes a pipeline wires together,
// the events nodes report to their pipeline, and the hooks pipeline options implement.
package model
