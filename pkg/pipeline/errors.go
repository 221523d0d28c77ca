package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/result"
)

var (
	ErrNodeMustBeSet   = errors.New("node must be set")
	ErrDuplicateMember = errors.New("member already part of the pipeline")
	ErrLengthMismatch  = errors.New("result values and step values have different length")
	ErrNoData          = errors.New("no data available")
	ErrStepNotFound    = errors.New("step not found")
	ErrFileAccess      = errors.New("file to load not existing or not readable")
	ErrUnknownFormat   = errors.New("unknown extension")

	// ErrUnknownMode is a configuration fault: the pipeline mode is corrupt.
	ErrUnknownMode = model.ErrUnknownMode
	// ErrEmptyMesh reports a result without mesh.
	ErrEmptyMesh = result.ErrEmptyMesh
)

// FileError is returned when a file cannot be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
