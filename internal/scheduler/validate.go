package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

const (
	minShiftDuration = time.Hour
	maxShiftDuration = 16 * time.Hour
)

// overnight shifts must start at or after 17:00:00 and end at or before
// 12:00:00 the next day
const (
	earliestOvernightStart = 17
	latestOvernightEndHour = 12
)

// ValidateShiftWindow checks a shift's start and end times of day. An
// end earlier than the start means the shift wraps past midnight, which
// is only allowed for evening-to-morning shifts.
func ValidateShiftWindow(startTime, endTime string) error {
	start, err := timezone.ParseClock(startTime)
	if err != nil {
		return fmt.Errorf("start time %q is not a valid HH:mm:ss time", startTime)
	}
	end, err := timezone.ParseClock(endTime)
	if err != nil {
		return fmt.Errorf("end time %q is not a valid HH:mm:ss time", endTime)
	}

	if start.Equal(end) {
		return errors.New("start time and end time must not be equal")
	}

	var duration time.Duration
	if end.After(start) {
		duration = end.Sub(start)
	} else {
		if start.Hour() < earliestOvernightStart {
			return errors.New("an overnight shift must start in the evening (17:00:00 or later)")
		}
		if end.Hour() > latestOvernightEndHour || (end.Hour() == latestOvernightEndHour && (end.Minute() > 0 || end.Second() > 0)) {
			return errors.New("an overnight shift must end in the morning (12:00:00 or earlier)")
		}
		duration = 24*time.Hour - start.Sub(end)
	}

	if duration < minShiftDuration {
		return errors.New("shift must last at least 1 hour")
	}
	if duration > maxShiftDuration {
		return errors.New("shift must not last more than 16 hours")
	}

	return nil
}
