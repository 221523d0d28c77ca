// Package units formats step values as unit-aware quantities.
package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyUnit   = errors.New("unit must be set")
	ErrInvalidUnit = errors.New("invalid unit")
)

// Unit is a physical unit identified by its symbol.
type Unit struct {
	symbol string
}

var (
	// Dimensionless has no symbol.
	Dimensionless = Unit{}
	// TimeSpan is the unit used when a dataset does not declare one.
	TimeSpan = Unit{symbol: "s"}
	// Frequency is used by modal results.
	Frequency = Unit{symbol: "Hz"}
)

var aliases = map[string]string{
	"sec":     "s",
	"second":  "s",
	"seconds": "s",
	"hz":      "Hz",
	"hertz":   "Hz",
	"minute":  "min",
	"minutes": "min",
	"hour":    "h",
	"hours":   "h",
}

// Parse returns the unit named s. Common spellings are normalised to their symbol,
// other symbols are accepted as long as they only use letters, digits and the
// characters "/^*.-".
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, ErrEmptyUnit
	}

	if symbol, ok := aliases[strings.ToLower(s)]; ok {
		return Unit{symbol: symbol}, nil
	}

	for _, r := range s {
		if !validSymbolRune(r) {
			return Unit{}, errors.Wrapf(ErrInvalidUnit, "%q", s)
		}
	}

	return Unit{symbol: s}, nil
}

func validSymbolRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("/^*.-µ°", r):
		return true
	}

	return false
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// String returns the unit symbol.
func (u Unit) String() string { return u.symbol }

// IsDimensionless reports whether the unit has no symbol.
func (u Unit) IsDimensionless() bool { return u.symbol == "" }

// Quantity is a value expressed in a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// UserString formats the quantity for display, e.g. "5.0 s" or "2.5 Hz".
// The value keeps at least one fractional digit so labels of integral steps stay
// recognisable as numbers of the same kind.
func (q Quantity) UserString() string {
	value := q.Value
	if value == 0 {
		// normalises negative zero
		value = 0
	}

	var num string

	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		num = strconv.FormatFloat(value, 'g', -1, 64)
	default:
		// shortest decimal reading back as value
		num = strconv.FormatFloat(value, 'f', -1, 64)
		if !strings.ContainsRune(num, '.') {
			num += ".0"
		}
	}

	if q.Unit.IsDimensionless() {
		return num
	}

	return num + " " + q.Unit.String()
}

func (q Quantity) String() string { return q.UserString() }
