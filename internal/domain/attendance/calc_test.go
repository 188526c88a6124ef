package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		records     []Record
		wantShifts  int
		wantAbsents int
	}{
		{
			name:        "empty month",
			records:     nil,
			wantShifts:  0,
			wantAbsents: 0,
		},
		{
			name: "present without shift count defaults to one",
			records: []Record{
				{Status: StatusPresent},
			},
			wantShifts:  1,
			wantAbsents: 0,
		},
		{
			name: "double shift counts as two",
			records: []Record{
				{Status: StatusPresent, ShiftCount: intPtr(2)},
				{Status: StatusPresent, ShiftCount: intPtr(1)},
			},
			wantShifts:  3,
			wantAbsents: 0,
		},
		{
			name: "absent days counted separately",
			records: []Record{
				{Status: StatusPresent},
				{Status: StatusAbsent},
				{Status: StatusAbsent},
			},
			wantShifts:  1,
			wantAbsents: 2,
		},
		{
			name: "shift count on absent row never counts",
			records: []Record{
				{Status: StatusAbsent, ShiftCount: intPtr(2)},
			},
			wantShifts:  0,
			wantAbsents: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			assert.Equal(t, tt.wantShifts, got.TotalShifts)
			assert.Equal(t, tt.wantAbsents, got.AbsentDays)
		})
	}
}
