package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Navigation(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		prev Period
		next Period
	}{
		{"mid year", Period{2024, 6}, Period{2024, 5}, Period{2024, 7}},
		{"january rolls back", Period{2024, 1}, Period{2023, 12}, Period{2024, 2}},
		{"december rolls forward", Period{2024, 12}, Period{2024, 11}, Period{2025, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prev, tt.in.Prev())
			assert.Equal(t, tt.next, tt.in.Next())
			assert.Equal(t, tt.in, tt.in.Prev().Next())
		})
	}
}

func TestPeriod_Bounds(t *testing.T) {
	lower, upper := Period{Year: 2024, Month: 2}.Bounds()
	assert.Equal(t, "2024-02-01", lower)
	assert.Equal(t, "2024-02-31", upper)
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, Period{2024, 1}.Valid())
	assert.True(t, Period{2024, 12}.Valid())
	assert.False(t, Period{2024, 0}.Valid())
	assert.False(t, Period{2024, 13}.Valid())
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, Period{Year: 2026, Month: 10}, CurrentPeriod(now))
	assert.Equal(t, "2026-10", CurrentPeriod(now).String())
}
