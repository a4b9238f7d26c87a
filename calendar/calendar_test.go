// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"
	"testing"
	"time"

	"cloudeng.io/datediff/calendar"
)

func TestIsLeap(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1, false},
		{4, true},
		{100, false},
		{400, true},
		{1600, true},
		{1700, false},
		{1900, false},
		{2000, true},
		{2001, false},
		{2004, true},
		{2012, true},
		{2013, false},
		{2100, false},
		{9996, true},
	} {
		if got, want := calendar.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	common := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := calendar.Month(1); m <= 12; m++ {
		if got, want := calendar.DaysInMonth(2013, m), common[m-1]; got != want {
			t.Errorf("2013 %v: got %v, want %v", m, got, want)
		}
		want := common[m-1]
		if m == 2 {
			want = 29
		}
		if got := calendar.DaysInMonth(2012, m); got != want {
			t.Errorf("2012 %v: got %v, want %v", m, got, want)
		}
	}

	for _, year := range []int{4, 400, 2000, 2004, 2024} {
		if got, want := calendar.DaysInMonth(year, 2), 29; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := calendar.DaysInFeb(year), 29; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
	for _, year := range []int{1, 100, 1900, 2001, 2100} {
		if got, want := calendar.DaysInMonth(year, 2), 28; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := calendar.DaysInFeb(year), 28; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}

	for _, m := range []calendar.Month{-1, 0, 13, 100} {
		if got, want := calendar.DaysInMonth(2012, m), calendar.InvalidMonthDays; got != want {
			t.Errorf("%v: got %v, want %v", int(m), got, want)
		}
	}
}

func TestLeapYearsBefore(t *testing.T) {
	count := 0
	for year := 1; year <= 2401; year++ {
		if got, want := calendar.LeapYearsBefore(year), count; got != want {
			t.Fatalf("%v: got %v, want %v", year, got, want)
		}
		if calendar.IsLeap(year) {
			count++
		}
	}
}

func TestDaysBeforeYear(t *testing.T) {
	days := 0
	for year := 1; year <= 2401; year++ {
		if got, want := calendar.DaysBeforeYear(year), days; got != want {
			t.Fatalf("%v: got %v, want %v", year, got, want)
		}
		days += calendar.DaysInYear(year)
	}
	// time.Time's internal epoch is also the start of year 1.
	epoch := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, year := range []int{1, 2, 1601, 1970, 2000, 9999} {
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		want := int((start.Unix() - epoch.Unix()) / (24 * 60 * 60))
		if got := calendar.DaysBeforeYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestDaysBeforeMonth(t *testing.T) {
	for _, year := range []int{2012, 2013} {
		sum := 0
		for m := calendar.Month(1); m <= 12; m++ {
			if got, want := calendar.DaysBeforeMonth(year, m), sum; got != want {
				t.Errorf("%v %v: got %v, want %v", year, m, got, want)
			}
			sum += calendar.DaysInMonth(year, m)
		}
		if got, want := calendar.DaysBeforeMonth(year, 13), calendar.DaysInYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := calendar.DaysBeforeMonth(year, 0), 0; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
	if got, want := calendar.DaysBeforeMonth(2012, 3), 31+29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.DaysBeforeMonth(2013, 3), 31+28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysBeforeMonthAllYears(t *testing.T) {
	for year := 1; year <= 2400; year++ {
		sum := 0
		for m := calendar.Month(1); m <= 13; m++ {
			if got, want := calendar.DaysBeforeMonth(year, m), sum; got != want {
				t.Fatalf("%v %v: got %v, want %v", year, int(m), got, want)
			}
			if m <= 12 {
				sum += calendar.DaysInMonth(year, m)
			}
		}
		if got, want := sum, calendar.DaysInYear(year); got != want {
			t.Fatalf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestMonth(t *testing.T) {
	if got, want := calendar.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Month(13).String(), "%!Month(13)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for m, valid := range map[calendar.Month]bool{0: false, 1: true, 12: true, 13: false} {
		if got, want := m.Valid(), valid; got != want {
			t.Errorf("%d: got %v, want %v", int(m), got, want)
		}
	}
}

func ExampleDaysBeforeYear() {
	fmt.Println(calendar.DaysBeforeYear(1))
	fmt.Println(calendar.DaysBeforeYear(2))
	fmt.Println(calendar.DaysBeforeYear(5) - calendar.DaysBeforeYear(4))
	// Output:
	// 0
	// 365
	// 366
}
