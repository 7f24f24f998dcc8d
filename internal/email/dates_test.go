package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name            string
		startDate       string
		endDate         string
		currentlyActive bool
		want            string
	}{
		{
			name: "BothEmpty",
			want: "N/A - N/A",
		},
		{
			name:      "FullDates",
			startDate: "2021-03-01",
			endDate:   "2022-11-15",
			want:      "Mar 2021 - Nov 2022",
		},
		{
			name:      "MonthPrecision",
			startDate: "2019-01",
			endDate:   "2020-06",
			want:      "Jan 2019 - Jun 2020",
		},
		{
			name:      "YearOnly",
			startDate: "2018",
			endDate:   "2019",
			want:      "Jan 2018 - Jan 2019",
		},
		{
			name:            "CurrentOverridesEndDate",
			startDate:       "2021-03-01",
			endDate:         "2022-11-15",
			currentlyActive: true,
			want:            "Mar 2021 - Present",
		},
		{
			name:            "CurrentWithEmptyDates",
			currentlyActive: true,
			want:            "N/A - Present",
		},
		{
			name:      "GarbageDegradesToNA",
			startDate: "not-a-date",
			endDate:   "13/45/999",
			want:      "N/A - N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDateRange(tt.startDate, tt.endDate, tt.currentlyActive)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateRange_CurrentAlwaysEndsInPresent(t *testing.T) {
	for _, end := range []string{"", "2022-01-01", "garbage"} {
		got := formatDateRange("2020-01-01", end, true)
		assert.True(t, strings.HasSuffix(got, "Present"), "got %q", got)
	}
}
