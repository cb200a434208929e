package hours

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "unpadded", raw: "9:5", want: "09:05", ok: true},
		{name: "already canonical", raw: "23:59", want: "23:59", ok: true},
		{name: "midnight", raw: "0:0", want: "00:00", ok: true},
		{name: "hour out of range", raw: "24:00"},
		{name: "minute out of range", raw: "9:60"},
		{name: "no separator", raw: "abc"},
		{name: "empty", raw: ""},
		{name: "empty hour", raw: ":30"},
		{name: "empty minute", raw: "9:"},
		{name: "too many parts", raw: "09:00:00"},
		{name: "signed hour", raw: "+9:00"},
		{name: "negative minute", raw: "9:-1"},
		{name: "non numeric minute", raw: "9:3a"},
		{name: "invalid minute from ui", raw: "9:99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeTime(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeTimeShapeAndIdempotence(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			raw := fmt.Sprintf("%d:%d", h, m)

			got, ok := NormalizeTime(raw)
			require.True(t, ok, raw)
			assert.Len(t, got, 5)
			assert.Equal(t, 1, strings.Count(got, ":"))

			again, ok := NormalizeTime(got)
			require.True(t, ok)
			assert.Equal(t, got, again)
		}
	}
}

func TestClockFromTimestamp(t *testing.T) {
	clock, anchor, err := clockFromTimestamp("2025-01-01T09:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "09:30", clock)
	assert.Equal(t, defaultAnchor, anchor)

	// 带时区偏移的时间以 UTC 为准
	clock, anchor, err = clockFromTimestamp("2024-06-10T10:00:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, "07:00", clock)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), anchor)

	_, _, err = clockFromTimestamp("09:00")
	assert.Error(t, err)
}

func TestTimestampFromClock(t *testing.T) {
	assert.Equal(t, "2025-01-01T09:00:00.000Z", timestampFromClock(defaultAnchor, "09:00"))
	assert.Equal(t, "2024-06-10T23:30:00.000Z", timestampFromClock(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), "23:30"))
}
