package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownMode reports a mode other than Serial or Parallel.
var ErrUnknownMode = errors.New("unknown mode set for pipeline")

// Mode selects how a pipeline feeds its members.
type Mode int

const (
	// Serial feeds every member with the active output of the previous one,
	// the first member with the pipeline source.
	Serial Mode = iota
	// Parallel feeds every member with the pipeline source.
	Parallel
)

// ModeEnums lists the mode labels, indexed by Mode.
var ModeEnums = []string{"Serial", "Parallel"}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Serial || m == Parallel
}

func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}

	return ModeEnums[m]
}

// ParseMode returns the mode labelled s, ignoring case.
func ParseMode(s string) (Mode, error) {
	for i, label := range ModeEnums {
		if strings.EqualFold(strings.TrimSpace(s), label) {
			return Mode(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}
