package filter

import "github.com/pkg/errors"

var (
	ErrNilConnection   = errors.New("upstream must be set")
	ErrSelfConnection  = errors.New("filter cannot be connected to itself")
	ErrNotConnected    = errors.New("filter input is not connected")
	ErrUnknownBranch   = errors.New("unknown branch")
	ErrDuplicateBranch = errors.New("branch already defined")
	ErrUnknownField    = errors.New("unknown point field")
	ErrNotVector       = errors.New("point field is not a vector field")
)
