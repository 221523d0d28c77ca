package result

import "github.com/pkg/errors"

var (
	ErrEmptyMesh   = errors.New("result has no mesh")
	ErrInvalidCell = errors.New("cell references an unknown point")
	ErrFieldSize   = errors.New("field size does not match the mesh")
	ErrNoSteps     = errors.New("result set has no step")
)
