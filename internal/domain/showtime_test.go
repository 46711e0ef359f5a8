package domain

import (
	"testing"
	"time"
)

func TestShowtimeOverlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 1, hour, min, 0, 0, time.UTC)
	}

	base := &Showtime{Theater: "Theater 1", StartTime: at(18, 0), EndTime: at(20, 30)}

	tests := []struct {
		name  string
		other *Showtime
		want  bool
	}{
		{
			name:  "contained interval overlaps",
			other: &Showtime{StartTime: at(19, 0), EndTime: at(20, 0)},
			want:  true,
		},
		{
			name:  "partial overlap at the end",
			other: &Showtime{StartTime: at(19, 0), EndTime: at(21, 0)},
			want:  true,
		},
		{
			name:  "partial overlap at the start",
			other: &Showtime{StartTime: at(17, 0), EndTime: at(18, 30)},
			want:  true,
		},
		{
			name:  "surrounding interval overlaps",
			other: &Showtime{StartTime: at(17, 0), EndTime: at(21, 0)},
			want:  true,
		},
		{
			name:  "back-to-back after does not overlap",
			other: &Showtime{StartTime: at(20, 30), EndTime: at(22, 0)},
			want:  false,
		},
		{
			name:  "back-to-back before does not overlap",
			other: &Showtime{StartTime: at(16, 0), EndTime: at(18, 0)},
			want:  false,
		},
		{
			name:  "disjoint interval does not overlap",
			other: &Showtime{StartTime: at(21, 0), EndTime: at(22, 0)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// The predicate is symmetric.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
