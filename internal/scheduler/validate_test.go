package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateShiftWindow(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   string
	}{
		{name: "regular day shift", startTime: "08:00:00", endTime: "17:00:00"},
		{name: "one hour minimum", startTime: "09:00:00", endTime: "10:00:00"},
		{name: "sixteen hour maximum", startTime: "06:00:00", endTime: "22:00:00"},
		{name: "overnight evening to morning", startTime: "22:00:00", endTime: "06:00:00"},
		{name: "overnight ending exactly at noon", startTime: "20:00:00", endTime: "12:00:00"},
		{name: "overnight starting exactly at five pm", startTime: "17:00:00", endTime: "01:00:00"},
		{
			name:      "equal times",
			startTime: "08:00:00",
			endTime:   "08:00:00",
			wantErr:   "must not be equal",
		},
		{
			name:      "too short",
			startTime: "08:00:00",
			endTime:   "08:30:00",
			wantErr:   "at least 1 hour",
		},
		{
			name:      "too long",
			startTime: "05:00:00",
			endTime:   "23:00:00",
			wantErr:   "more than 16 hours",
		},
		{
			name:      "wrap without evening start",
			startTime: "10:00:00",
			endTime:   "08:00:00",
			wantErr:   "must start in the evening",
		},
		{
			name:      "wrap ending after noon",
			startTime: "22:00:00",
			endTime:   "13:00:00",
			wantErr:   "must end in the morning",
		},
		{
			name:      "wrap ending just after noon",
			startTime: "22:00:00",
			endTime:   "12:00:01",
			wantErr:   "must end in the morning",
		},
		{
			name:      "overnight too short",
			startTime: "23:30:00",
			endTime:   "00:00:30",
			wantErr:   "at least 1 hour",
		},
		{
			name:      "bad start format",
			startTime: "8am",
			endTime:   "17:00:00",
			wantErr:   "not a valid HH:mm:ss time",
		},
		{
			name:      "bad end format",
			startTime: "08:00:00",
			endTime:   "25:00:00",
			wantErr:   "not a valid HH:mm:ss time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShiftWindow(tt.startTime, tt.endTime)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
