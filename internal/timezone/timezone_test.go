package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Costa_Rica"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("America/San_Jose_CR"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("no-existe").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-11", DefaultTimezone)
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 11, d.Day())
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, DefaultTimezone, d.Location().String())

	_, err = ParseDate("11/06/2025", DefaultTimezone)
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40", DefaultTimezone)
	assert.Error(t, err)
}
