package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fwidmann/ringlog/internal/utils"
)

func TestWeekStreak(t *testing.T) {
	// A Wednesday, so backing off one week at a time stays mid-week.
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.Local)

	testCases := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{
			name:  "no workouts",
			times: nil,
			want:  0,
		},
		{
			name:  "only this week",
			times: []time.Time{now.AddDate(0, 0, -1)},
			want:  1,
		},
		{
			name: "three consecutive weeks",
			times: []time.Time{
				now,
				now.AddDate(0, 0, -7),
				now.AddDate(0, 0, -14),
			},
			want: 3,
		},
		{
			name: "gap breaks the streak",
			times: []time.Time{
				now,
				now.AddDate(0, 0, -14),
			},
			want: 1,
		},
		{
			name:  "old workouts only",
			times: []time.Time{now.AddDate(0, 0, -21)},
			want:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.WeekStreak(tc.times, now))
		})
	}
}

func TestFormatLocal(t *testing.T) {
	ts := time.Date(2025, 2, 5, 7, 9, 0, 0, time.Local)
	assert.Equal(t, "2025/02/05 - 07:09", utils.FormatLocal(ts))
}
