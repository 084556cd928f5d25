package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a calendar date as e.g. "Mon, Jan 15, 2024".
func FormatDate(d time.Time) string {
	return d.Format("Mon, Jan 2, 2006")
}

// FormatTime converts a 24-hour "HH:MM" value into 12-hour clock notation
// ("14:30" -> "2:30 PM", "00:30" -> "12:30 AM"). Minutes pass through as
// given. An empty input yields an empty string; anything that does not
// parse is returned unchanged.
func FormatTime(hhmm string) string {
	if hhmm == "" {
		return ""
	}

	hourPart, minutePart, found := strings.Cut(hhmm, ":")
	if !found {
		return hhmm
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return hhmm
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%s %s", displayHour, minutePart, meridiem)
}

// FormatDuration renders a duration in minutes as "45 min", "1h 30m" or
// "2h". A nil duration yields an empty string; zero is a legitimate
// duration and renders "0 min".
func FormatDuration(minutes *int) string {
	if minutes == nil {
		return ""
	}

	m := *minutes
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}

	hours := m / 60
	remainder := m % 60
	if remainder > 0 {
		return fmt.Sprintf("%dh %dm", hours, remainder)
	}

	return fmt.Sprintf("%dh", hours)
}
