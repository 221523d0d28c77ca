// Package pipeline provides a post-processing pipeline for time-stepped simulation data.
//
// A pipeline owns a Source holding the loaded dataset. For a multi-block dataset, every
// block is one step and carries its step value in a "TimeValue" field; the source
// materializes the block nearest to the selected step value. The members of the
// pipeline are wired to the source either in Serial mode, each member reading the
// active output of the previous one, or in Parallel mode, every member reading the
// source.
//
// Every setting of the pipeline is an observable property. Changing the data, the
// selected step, the mode or the members is handled synchronously, on the caller's
// goroutine: the step labels are rebuilt, the new step is pushed to the source and to
// every member, and the members are wired again from scratch. Errors met while
// reacting to a change are returned by the setter.
//
// Members report their own changes through events, so the pipeline can invalidate the
// members depending on them or rewire when their active ports change. Pipeline
// options, such as the drawer and measure packages, are notified of every rewire,
// step change and recomputation.
package pipeline
