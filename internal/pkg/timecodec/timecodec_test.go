package timecodec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annur-digital/rekap-absensi-go/internal/pkg/spreadsheet"
)

func str(s string) spreadsheet.Cell {
	return spreadsheet.Cell{Kind: spreadsheet.CellString, Text: s}
}

func num(v float64) spreadsheet.Cell {
	return spreadsheet.Cell{Kind: spreadsheet.CellNumber, Number: v}
}

func TestFormatClockTime(t *testing.T) {
	cases := []struct {
		name string
		cell spreadsheet.Cell
		want string
	}{
		{"empty cell", spreadsheet.Cell{}, "-"},
		{"dash", str("-"), "-"},
		{"colon string", str("7:5"), "07:05"},
		{"already padded", str("06:45"), "06:45"},
		{"string without colon passes through", str("OFF"), "OFF"},
		{"fraction half day", num(0.5), "12:00"},
		{"fraction seven am", num(7.0 / 24.0), "07:00"},
		{"fraction full day", num(1.0), "24:00"},
		{"negative number invalid", num(-0.25), "-"},
		{"number above one invalid", num(1.5), "-"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatClockTime(c.cell))
		})
	}
}

func TestFormatScheduleTime(t *testing.T) {
	cases := []struct {
		name string
		cell spreadsheet.Cell
		want string
	}{
		{"empty cell", spreadsheet.Cell{}, ""},
		{"off marker", str("OFF"), "OFF"},
		{"libur marker", str("L"), "L"},
		{"dash sentinel", str("-"), "-"},
		{"colon string kept as-is", str("7:00"), "7:00"},
		{"fraction below one", num(0.3125), "07:30"},
		// Numeric values >= 1 pass through stringified; a quirk of the
		// source sheets that is preserved, not fixed.
		{"number above one stringified", num(7), "7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatScheduleTime(c.cell))
		})
	}
}

func TestToMinutes(t *testing.T) {
	for _, token := range []string{"", "-", "OFF", "L", "pagi"} {
		assert.Nil(t, ToMinutes(token), "token %q must be incomparable", token)
	}

	m := ToMinutes("07:05")
	require.NotNil(t, m)
	assert.Equal(t, 7*60+5, *m)

	midnight := ToMinutes("00:00")
	require.NotNil(t, midnight, "midnight is a real time, not an absence")
	assert.Equal(t, 0, *midnight)

	assert.Nil(t, ToMinutes("ab:cd"))
}

// Fractional-day values round-trip through decode + ToMinutes to the
// nearest minute.
func TestFormatClockTime_FractionRoundTrip(t *testing.T) {
	for i := 0; i <= 96; i++ {
		f := float64(i) / 96.0
		decoded := FormatClockTime(num(f))
		m := ToMinutes(decoded)
		require.NotNil(t, m, "fraction %v decoded to %q", f, decoded)
		assert.Equal(t, int(math.Round(f*1440)), *m, fmt.Sprintf("fraction %v", f))
	}
}
