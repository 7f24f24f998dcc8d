package email

import "time"

// Layouts accepted for the date strings stored in resume documents. The forms
// the wizard produces come first; RFC 3339 covers documents written by older
// clients.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339,
}

// formatMonthYear renders a stored date string as "Jan 2006". Unparsable or
// empty input degrades to "N/A" instead of failing; the generator must never
// error on user data.
func formatMonthYear(value string) string {
	if value == "" {
		return "N/A"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return "N/A"
}

// formatDateRange renders the period of a work, education or project entry.
// currentlyActive forces a "Present" end regardless of endDate content.
func formatDateRange(startDate, endDate string, currentlyActive bool) string {
	start := formatMonthYear(startDate)
	end := "Present"
	if !currentlyActive {
		end = formatMonthYear(endDate)
	}
	return start + " - " + end
}
