package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayCodec(t *testing.T) {
	t.Run("day to number and back", func(t *testing.T) {
		for _, d := range WeekDays() {
			got, err := NumberToDay(DayToNumber(d))
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	})

	t.Run("number to day and back", func(t *testing.T) {
		for n := 0; n <= 6; n++ {
			d, err := NumberToDay(n)
			require.NoError(t, err)
			assert.Equal(t, n, DayToNumber(d))
		}
	})

	t.Run("sunday is zero", func(t *testing.T) {
		assert.Equal(t, 0, DayToNumber(Sunday))
		assert.Equal(t, 1, DayToNumber(Monday))
		assert.Equal(t, 6, DayToNumber(Saturday))
	})

	t.Run("out of range codes", func(t *testing.T) {
		for _, n := range []int{-1, 7, 42} {
			_, err := NumberToDay(n)
			assert.ErrorIs(t, err, ErrInvalidWeekdayCode)
		}
	})

	t.Run("invalid weekday panics", func(t *testing.T) {
		assert.Panics(t, func() { DayToNumber(WeekDay("funday")) })
	})

	t.Run("canonical order", func(t *testing.T) {
		assert.Equal(t, []WeekDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}, WeekDays())
	})
}

func TestParseWeekDay(t *testing.T) {
	d, err := ParseWeekDay(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)

	_, err = ParseWeekDay("mon")
	assert.Error(t, err)
	assert.False(t, WeekDay("mon").Valid())
	assert.True(t, Friday.Valid())
}
