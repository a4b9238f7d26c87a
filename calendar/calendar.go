// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the arithmetic of the proleptic Gregorian
// calendar needed to count days: leap years, month lengths and the
// number of days that precede a given year or month. Year 1 is the first
// year of the calendar; none of the functions here are defined for
// years <= 0.
package calendar

import (
	"fmt"
	"time"
)

// InvalidMonthDays is returned by DaysInMonth for a month outside 1-12.
const InvalidMonthDays = -1

const daysInCommonYear = 365

// daysInMonth is indexed by month-1 for a common year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBeforeMonth is indexed by month-1, with a 13th entry for the whole
// year, and counts the days of a common year before the start of that month.
var daysBeforeMonth = func() (before [13]int) {
	for i, n := range daysInMonth {
		before[i+1] = before[i] + n
	}
	return
}()

// Month as an int, January is 1.
type Month time.Month

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// IsLeap returns true if the given year is a leap year, that is,
// it is divisible by 4 and either not divisible by 100 or divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return daysInCommonYear + 1
	}
	return daysInCommonYear
}

// DaysInMonth returns the number of days in the given month for the given
// year. InvalidMonthDays is returned if month is not in the range 1-12.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return InvalidMonthDays
	}
	if month == 2 {
		return DaysInFeb(year)
	}
	return daysInMonth[month-1]
}

// LeapYearsBefore returns the number of leap years in the range
// 1 to year-1 inclusive.
func LeapYearsBefore(year int) int {
	y := year - 1
	return y/4 - y/100 + y/400
}

// DaysBeforeYear returns the number of days from the start of year 1
// to the start of the given year, so DaysBeforeYear(1) is 0.
func DaysBeforeYear(year int) int {
	return (year-1)*daysInCommonYear + LeapYearsBefore(year)
}

// DaysBeforeMonth returns the number of days in year that precede the
// first day of month, so DaysBeforeMonth(y, 1) is 0. A month less than 1
// is treated as January and one greater than 12 as the end of the year.
func DaysBeforeMonth(year int, month Month) int {
	switch {
	case month < 1:
		month = 1
	case month > 12:
		month = 13
	}
	days := daysBeforeMonth[month-1]
	if month > 2 && IsLeap(year) {
		days++
	}
	return days
}
