package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndDate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name      string
		startDate string
		endDate   *string
		today     string
		want      string
		wantErr   string
	}{
		{
			name:      "open-ended assignment ends today",
			startDate: "2025-01-01",
			today:     "2025-06-15",
			want:      "2025-06-15",
		},
		{
			name:      "future end date is shortened to today",
			startDate: "2025-01-01",
			endDate:   strPtr("2025-12-31"),
			today:     "2025-06-15",
			want:      "2025-06-15",
		},
		{
			name:      "assignment not yet started ends on its start date",
			startDate: "2025-09-01",
			today:     "2025-06-15",
			want:      "2025-09-01",
		},
		{
			name:      "already ended in the past",
			startDate: "2025-01-01",
			endDate:   strPtr("2025-03-31"),
			today:     "2025-06-15",
			wantErr:   "already ended",
		},
		{
			name:      "ended today counts as ended",
			startDate: "2025-01-01",
			endDate:   strPtr("2025-06-15"),
			today:     "2025-06-15",
			wantErr:   "already ended",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveEndDate(tt.startDate, tt.endDate, tt.today)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEndDateTwice(t *testing.T) {
	// the first logical delete sets the end date, the second fails
	endDate, err := resolveEndDate("2025-01-01", nil, "2025-06-15")
	require.NoError(t, err)

	_, err = resolveEndDate("2025-01-01", &endDate, "2025-06-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already ended")
}
