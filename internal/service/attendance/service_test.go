package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		month    int
		year     int
		wantFrom string
		wantTo   string
	}{
		{
			name:     "thirty one day month",
			month:    7,
			year:     2025,
			wantFrom: "2025-07-01",
			wantTo:   "2025-07-31",
		},
		{
			name:     "february common year",
			month:    2,
			year:     2025,
			wantFrom: "2025-02-01",
			wantTo:   "2025-02-28",
		},
		{
			name:     "february leap year",
			month:    2,
			year:     2024,
			wantFrom: "2024-02-01",
			wantTo:   "2024-02-29",
		},
		{
			name:     "december stays within its year",
			month:    12,
			year:     2025,
			wantFrom: "2025-12-01",
			wantTo:   "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, to := MonthRange(tt.month, tt.year)

			assert.Equal(t, tt.wantFrom, from.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, to.Format("2006-01-02"))
			assert.Equal(t, time.UTC, from.Location())
		})
	}
}
