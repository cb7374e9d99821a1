package daterange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_InclusiveRange(t *testing.T) {
	dates, err := Expand("2025-11-28", "2025-12-02")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-11-28", "2025-11-29", "2025-11-30", "2025-12-01", "2025-12-02",
	}, dates)
}

func TestExpand_SingleDay(t *testing.T) {
	dates, err := Expand("2025-11-20", "2025-11-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-11-20"}, dates)
}

func TestExpand_ReversedRangeIsEmpty(t *testing.T) {
	dates, err := Expand("2025-12-05", "2025-11-20")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpand_InvalidDate(t *testing.T) {
	_, err := Expand("2025-13-01", "2025-12-05")
	assert.Error(t, err)

	_, err = Expand("2025-11-20", "not-a-date")
	assert.Error(t, err)
}

func TestDayName(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-11-21", "jumat"},
		{"2025-11-22", "sabtu"},
		{"2025-11-23", "minggu"},
		{"2025-11-24", "senin"},
		{"2025-11-25", "selasa"},
		{"2025-11-26", "rabu"},
		{"2025-11-27", "kamis"},
	}
	for _, c := range cases {
		got, err := DayName(c.date)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.date)
	}

	_, err := DayName("bukan-tanggal")
	assert.Error(t, err)
}
