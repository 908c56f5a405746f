// Package date provides a day-granularity Date used for ledger postings,
// due dates and academic year labels.
package date

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// LongFormat is the human readable format used for due dates ("January 2, 2006").
const LongFormat = "January 2, 2006"

// Date represents a date with day-level granularity.
//
// The zero value is "no date": it prints and persists as an empty string.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// TestingTodayEnv names the environment variable that, when set to a
// "2006-01-02" date, replaces the current date. Documentation tests use it.
const TestingTodayEnv = "STUDENT_PORTAL_TESTING_TODAY"

// testingToday returns the date set in TestingTodayEnv, if any.
func testingToday() (d Date, ok bool, err error) {
	v := os.Getenv(TestingTodayEnv)
	if v == "" {
		return Date{}, false, nil
	}
	d, err = Parse(v)
	if err != nil {
		return Date{}, false, fmt.Errorf("invalid %s: %w", TestingTodayEnv, err)
	}
	return d, true, nil
}

// CheckTestingToday reports a TestingTodayEnv value that Today ignores.
func CheckTestingToday() error {
	_, _, err := testingToday()
	return err
}

// Today returns the current date, or the date set in TestingTodayEnv when it
// is valid.
func Today() Date {
	if d, ok, _ := testingToday(); ok {
		return d
	}
	return New(time.Now().Date())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Long formats the date for display, e.g. "November 14, 2026".
func (d Date) Long() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(LongFormat)
}

// Parse parses a Date from a string. It is lenient and accepts formats like
// "2025-7-1", and timestamps like "2025-08-13T00:00:00.000Z" reduced to the
// day they are written in.
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, str)
		if tsErr != nil {
			return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
		}
		on = ts
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// AcademicYear returns the "YYYY-YYYY" label of the school year starting in year.
func AcademicYear(year int) string { return fmt.Sprintf("%d-%d", year, year+1) }

// UnmarshalJSON reads a date from a json string, an empty string being the zero Date.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	on, err := Parse(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
