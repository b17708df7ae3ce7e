package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParse_RoundTrip(t *testing.T) {
	d := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	s := Format(d)
	assert.Equal(t, "2026-08-31", s)

	back, err := Parse(s)
	require.NoError(t, err)
	assert.True(t, back.Equal(d))
}

func TestParse_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2026-13-01", "31-08-2026"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestAddDays(t *testing.T) {
	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-31", Format(AddDays(d, -1)))
	assert.Equal(t, "2026-09-08", Format(AddDays(d, 7)))
}
