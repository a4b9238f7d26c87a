// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package date provides a validated calendar date, parsed from the
// 'YYYY-MM-DD' format, and the number of days between two such dates
// in the proleptic Gregorian calendar. Day counts are relative to
// 0001-01-01 which is ordinal day 1.
package date

import (
	"fmt"

	"cloudeng.io/datediff/calendar"
)

// Date is an immutable year, month and day that is guaranteed to be
// valid when returned without error by Parse or New. The zero value
// is not a valid date.
type Date struct {
	year  int
	month calendar.Month
	day   int
}

// Layout is the only format accepted by Parse.
const Layout = "YYYY-MM-DD"

// Parse parses a date in exactly the format 'YYYY-MM-DD': a four digit
// year, a two digit month and a two digit day separated by hyphens,
// with nothing before or after. The year must be at least 0001 and the
// month and day must be valid for that year. Any failure is
// reported as an *Error.
func Parse(val string) (Date, error) {
	year, month, day, ok := scan(val)
	if !ok {
		return Date{}, &Error{Kind: FormatError, Input: val}
	}
	d, err := validate(year, calendar.Month(month), day)
	if err != nil {
		err.Input = val
		return Date{}, err
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

// New returns the Date for the specified year, month and day, applying
// the same validation as Parse.
func New(year int, month calendar.Month, day int) (Date, error) {
	d, err := validate(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return d, nil
}

func scan(val string) (year, month, day int, ok bool) {
	if len(val) != len(Layout) || val[4] != '-' || val[7] != '-' {
		return
	}
	if year, ok = digits(val[0:4]); !ok {
		return
	}
	if month, ok = digits(val[5:7]); !ok {
		return
	}
	day, ok = digits(val[8:10])
	return
}

func digits(val string) (int, bool) {
	n := 0
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// validate checks the year, then the month and finally the day so
// that DaysInMonth is only ever called with a valid month.
func validate(year int, month calendar.Month, day int) (Date, *Error) {
	if year <= 0 {
		return Date{}, &Error{Kind: InvalidYear, Year: year, Month: month, Day: day}
	}
	if !month.Valid() {
		return Date{}, &Error{Kind: InvalidMonth, Year: year, Month: month, Day: day}
	}
	maxDay := calendar.DaysInMonth(year, month)
	if day < 1 || day > maxDay {
		return Date{}, &Error{
			Kind:   InvalidDay,
			Reason: dayReason(year, month, day),
			Year:   year,
			Month:  month,
			Day:    day,
			MaxDay: maxDay,
		}
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year, 1 or greater.
func (d Date) Year() int { return d.year }

// Month returns the month, 1-12.
func (d Date) Month() calendar.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeap returns true if the date falls in a leap year.
func (d Date) IsLeap() bool {
	return calendar.IsLeap(d.year)
}

// YearDay returns the day of the year, 1-365 for non-leap years
// and 1-366 for leap years.
func (d Date) YearDay() int {
	return calendar.DaysBeforeMonth(d.year, d.month) + d.day
}

// Ordinal returns the number of the day counting 0001-01-01 as day 1.
func (d Date) Ordinal() int {
	return calendar.DaysBeforeYear(d.year) + d.YearDay()
}

// Between returns the number of whole days strictly between a and b,
// excluding both a and b themselves. Consequently consecutive days are
// zero days apart and a date is -1 days from itself. The result is the
// same regardless of the order of a and b.
func Between(a, b Date) int {
	diff := a.Ordinal() - b.Ordinal()
	if diff < 0 {
		diff = -diff
	}
	return diff - 1
}

// DaysBetween is equivalent to Between(d, other).
func (d Date) DaysBetween(other Date) int {
	return Between(d, other)
}

// Compare returns -1 if a is before b, 0 if they are the same date
// and +1 if a is after b.
func Compare(a, b Date) int {
	oa, ob := a.Ordinal(), b.Ordinal()
	switch {
	case oa < ob:
		return -1
	case oa > ob:
		return 1
	}
	return 0
}

// String returns the date as year-month-day with the month and day
// zero padded to two digits. The year is not padded and hence years
// before 1000 are printed with fewer than four digits.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText implements encoding.TextMarshaler. Unlike String the year
// is always four digits so that the result can be parsed by Parse.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("cannot marshal the zero Date")
	}
	return fmt.Appendf(nil, "%04d-%02d-%02d", d.year, int(d.month), d.day), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
