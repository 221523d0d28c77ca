package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/pkg/units"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected units.Unit
		err      error
	}{
		"symbol":   {input: "s", expected: units.TimeSpan},
		"alias":    {input: " Seconds ", expected: units.TimeSpan},
		"hertz":    {input: "hz", expected: units.Frequency},
		"compound": {input: "mm/s^2", expected: units.MustParse("mm/s^2")},
		"empty":    {input: "  ", err: units.ErrEmptyUnit},
		"invalid":  {input: "s;rm", err: units.ErrInvalidUnit},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := units.Parse(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestQuantityUserString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		quantity units.Quantity
		expected string
	}{
		"integral":      {quantity: units.Quantity{Value: 5, Unit: units.TimeSpan}, expected: "5.0 s"},
		"fraction":      {quantity: units.Quantity{Value: 2.5, Unit: units.TimeSpan}, expected: "2.5 s"},
		"zero":          {quantity: units.Quantity{Value: 0, Unit: units.TimeSpan}, expected: "0.0 s"},
		"negative zero": {quantity: units.Quantity{Value: math.Copysign(0, -1), Unit: units.TimeSpan}, expected: "0.0 s"},
		"negative":      {quantity: units.Quantity{Value: -1.25, Unit: units.Frequency}, expected: "-1.25 Hz"},
		"dimensionless": {quantity: units.Quantity{Value: 3}, expected: "3.0"},
		"nan":           {quantity: units.Quantity{Value: math.NaN(), Unit: units.TimeSpan}, expected: "NaN s"},
		"sub-micro":     {quantity: units.Quantity{Value: 0.0000002, Unit: units.TimeSpan}, expected: "0.0000002 s"},
		"many digits":   {quantity: units.Quantity{Value: 1.0000001, Unit: units.TimeSpan}, expected: "1.0000001 s"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.quantity.UserString())
		})
	}
}
