package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 02:30 UTC on June 11 is still the evening of June 10 in Chicago.
	utc := time.Date(2026, time.June, 11, 2, 30, 0, 0, time.UTC)

	day := DayOf(utc, chicago)

	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, chicago), day)
}

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestConsecutiveRun(t *testing.T) {
	tests := []struct {
		name      string
		held      []int
		candidate int
		want      int
	}{
		{"no other days", nil, 10, 1},
		{"extends run forward", []int{8, 9}, 10, 3},
		{"extends run backward", []int{11, 12}, 10, 3},
		{"fills a hole", []int{9, 11}, 10, 3},
		{"gap breaks the run", []int{7, 8}, 10, 1},
		{"duplicate dates ignored", []int{9, 9, 9}, 10, 2},
		{"candidate already held", []int{9, 10}, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := make([]time.Time, 0, len(tt.held))
			for _, d := range tt.held {
				held = append(held, day(d))
			}
			assert.Equal(t, tt.want, ConsecutiveRun(held, day(tt.candidate)))
		})
	}
}
