// Package timezone is the single boundary between wire-format date and
// time strings and time.Time values. All persisted instants are UTC;
// calendar dates and times of day are interpreted in the platform's
// local timezone (Asia/Ho_Chi_Minh).
package timezone

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

var Local = loadLocal()

func loadLocal() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		// Vietnam has no DST, so a fixed offset is equivalent when the
		// host has no tzdata.
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// ParseDate parses a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Local)
}

// FormatDate renders an instant as the local calendar date.
func FormatDate(t time.Time) string {
	return t.In(Local).Format(DateLayout)
}

// ParseClock parses an HH:mm:ss time of day.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}

// Today is the current local calendar date.
func Today() string {
	return FormatDate(time.Now())
}
