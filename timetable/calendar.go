// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package timetable

import (
	"fmt"
	"time"
)

type Country int

const (
	England Country = iota
	NorthernIreland
	Scotland
	Wales
)

func (c Country) String() string {
	switch c {
	case England:
		return "England"
	case NorthernIreland:
		return "Northern Ireland"
	case Scotland:
		return "Scotland"
	case Wales:
		return "Wales"
	}
	return fmt.Sprintf("Country(%d)", int(c))
}

// UnknownNationError is returned when the electoral services nation isn't
// one of the four recognized values.
type UnknownNationError struct {
	Nation string
}

func (e *UnknownNationError) Error() string {
	return fmt.Sprintf("unknown nation %q", e.Nation)
}

// CountryFromNation maps the nation string used by the elections API to a
// timetable country.
func CountryFromNation(nation string) (Country, error) {
	switch nation {
	case "England":
		return England, nil
	case "Northern Ireland":
		return NorthernIreland, nil
	case "Scotland":
		return Scotland, nil
	case "Wales":
		return Wales, nil
	}
	return England, &UnknownNationError{Nation: nation}
}

// observed shifts a weekend bank holiday to the following Monday.
func observed(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

func nthMonday(year int, month time.Month, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 7*(n-1))
}

func lastMonday(year int, month time.Month) time.Time {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// bankHolidays returns the fixed-rule bank holidays for a year. The
// movable Easter holidays are not modelled; no statutory deadline window
// we compute has yet straddled them, and the upstream data uses the same
// fixed rules.
func bankHolidays(year int, c Country) []time.Time {
	days := []time.Time{
		observed(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)),
		nthMonday(year, time.May, 1),
		lastMonday(year, time.May),
		observed(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)),
		observed(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)),
	}
	switch c {
	case Scotland:
		days = append(days,
			observed(time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC)),
			nthMonday(year, time.August, 1),
			observed(time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC)),
		)
	case NorthernIreland:
		days = append(days,
			observed(time.Date(year, time.March, 17, 0, 0, 0, 0, time.UTC)),
			observed(time.Date(year, time.July, 12, 0, 0, 0, 0, time.UTC)),
			lastMonday(year, time.August),
		)
	default:
		days = append(days, lastMonday(year, time.August))
	}
	return days
}

func isWorkingDay(d time.Time, c Country) bool {
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	for _, bh := range bankHolidays(d.Year(), c) {
		if sameDay(bh, d) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// workingDaysBefore walks back n working days from d, not counting d
// itself. This matches how the statutory timetables are expressed: the
// registration deadline is "the twelfth working day before the poll".
func workingDaysBefore(d time.Time, n int, c Country) time.Time {
	for n > 0 {
		d = d.AddDate(0, 0, -1)
		if isWorkingDay(d, c) {
			n--
		}
	}
	return d
}
