package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, Local, parsed.Location())

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", FormatDate(parsed))
}

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock("17:30:00")
	require.NoError(t, err)
	assert.Equal(t, 17, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = ParseClock("5:30 pm")
	assert.Error(t, err)
}
