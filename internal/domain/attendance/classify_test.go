package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyToday(t *testing.T) {
	entry := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	record := &Attendance{Status: StatusLate}

	tests := []struct {
		name   string
		record *Attendance
		now    time.Time
		want   Status
	}{
		{"existing record wins", record, entry.Add(3 * time.Hour), StatusLate},
		{"before entry", nil, entry.Add(-time.Hour), StatusPending},
		{"just inside window", nil, entry.Add(59 * time.Minute), StatusPending},
		{"exactly at window end", nil, entry.Add(time.Hour), StatusAbsent},
		{"well past window", nil, entry.Add(5 * time.Hour), StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyToday(entry, tt.record, tt.now))
		})
	}
}
