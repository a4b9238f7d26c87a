// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"errors"
	"fmt"
	"strconv"

	"cloudeng.io/datediff/calendar"
)

// Kind identifies the validation step that rejected a date.
type Kind int

// The kinds of error, one per validation step, in the order checked.
const (
	FormatError Kind = iota + 1
	InvalidYear
	InvalidMonth
	InvalidDay
)

func (k Kind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case InvalidYear:
		return "invalid year"
	case InvalidMonth:
		return "invalid month"
	case InvalidDay:
		return "invalid day"
	}
	return fmt.Sprintf("unknown kind: %d", int(k))
}

// DayReason refines an InvalidDay error.
type DayReason int

const (
	// DayOutOfRange is used for any day outside of 1 and the number
	// of days in its month other than the two February cases below.
	DayOutOfRange DayReason = iota + 1
	// DayExceedsLeapFebruary is used for February of a leap year
	// with a day greater than 29.
	DayExceedsLeapFebruary
	// DayNotLeapYear is used for February 29th or 30th of a year
	// that is not a leap year.
	DayNotLeapYear
)

// Sentinels matched by errors.Is for each Kind of *Error.
var (
	ErrFormat = errors.New("invalid date format")
	ErrYear   = errors.New("invalid year")
	ErrMonth  = errors.New("invalid month")
	ErrDay    = errors.New("invalid day")
)

// Error is returned by Parse and New for any date that fails validation.
// Year, Month and Day are set to whatever was parsed before the failure.
type Error struct {
	Kind   Kind
	Reason DayReason // Only set for InvalidDay.
	Input  string    // The original text, if any.
	Year   int
	Month  calendar.Month
	Day    int
	// MaxDay is the number of days in the month for InvalidDay.
	MaxDay int
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case FormatError:
		return ErrFormat
	case InvalidYear:
		return ErrYear
	case InvalidMonth:
		return ErrMonth
	case InvalidDay:
		return ErrDay
	}
	return nil
}

// Is supports errors.Is for ErrFormat, ErrYear, ErrMonth and ErrDay.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.sentinel()
}

// Error implements error.
func (e *Error) Error() string {
	switch e.Kind {
	case FormatError:
		return fmt.Sprintf("%v: %q, expected 'YYYY-MM-DD'", ErrFormat, e.Input)
	case InvalidYear:
		return fmt.Sprintf("%v: '%s', must be greater than 0000", ErrYear, e.year())
	case InvalidMonth:
		return fmt.Sprintf("%v: '%d', must be in the range 1 <= month <= 12", ErrMonth, int(e.Month))
	case InvalidDay:
		return e.dayMessage()
	}
	return fmt.Sprintf("invalid date: %q", e.Input)
}

// year returns the year as it appeared in Input, or in decimal
// for dates created by New.
func (e *Error) year() string {
	if len(e.Input) == len(Layout) {
		return e.Input[:4]
	}
	return strconv.Itoa(e.Year)
}

func (e *Error) dayMessage() string {
	msg := fmt.Sprintf("%v: '%d' for month: '%d', the maximum is '%d'", ErrDay, e.Day, int(e.Month), e.MaxDay)
	switch e.Reason {
	case DayExceedsLeapFebruary:
		return fmt.Sprintf("%s: '%d' is a leap year, therefore %v can have at most %d days", msg, e.Year, e.Month, e.MaxDay)
	case DayNotLeapYear:
		return fmt.Sprintf("%s: the year '%d' is not a leap year", msg, e.Year)
	}
	return msg
}

func dayReason(year int, month calendar.Month, day int) DayReason {
	if month != 2 {
		return DayOutOfRange
	}
	leap := calendar.IsLeap(year)
	switch {
	case leap && day > 29:
		return DayExceedsLeapFebruary
	case !leap && (day == 29 || day == 30):
		return DayNotLeapYear
	}
	return DayOutOfRange
}
