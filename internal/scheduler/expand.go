package scheduler

import (
	"errors"
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

// 0=Sunday..6=Saturday, matching time.Weekday
var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// ExpandDates sweeps every calendar day from startDate to endDate
// inclusive and returns, in order, the dates whose weekday appears in
// repeatDays.
func ExpandDates(startDate, endDate string, repeatDays []int) ([]string, error) {
	start, err := timezone.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q is not a valid YYYY-MM-DD date", startDate)
	}
	end, err := timezone.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q is not a valid YYYY-MM-DD date", endDate)
	}
	if end.Before(start) {
		return nil, errors.New("end date must not be before start date")
	}
	if len(repeatDays) == 0 {
		return nil, errors.New("repeat days must not be empty")
	}

	weekdays := make([]rrule.Weekday, 0, len(repeatDays))
	for _, day := range repeatDays {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("repeat day %d is out of range (0=Sunday..6=Saturday)", day)
		}
		weekdays = append(weekdays, rruleWeekdays[day])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: weekdays,
		Dtstart:   start,
		Until:     end,
	})
	if err != nil {
		return nil, err
	}

	instances := rule.All()
	dates := make([]string, 0, len(instances))
	for _, instance := range instances {
		dates = append(dates, timezone.FormatDate(instance))
	}

	return dates, nil
}
