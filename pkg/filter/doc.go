// Package filter provides a pipeline member made of named branches of stages.
//
// Only one branch is active at a time. Switching branch changes the active ports of
// the filter, which is reported to the pipeline so it can rewire its members.
// Outputs are computed lazily, when pulled, and cached until the filter is touched.
package filter
