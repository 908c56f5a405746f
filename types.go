package portal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ledger entry statuses.
const (
	StatusPaid        = "Paid"
	StatusOutstanding = "Outstanding Balance"
)

// Document statuses.
const (
	DocumentCompleted  = "Completed"
	DocumentIncomplete = "Incomplete"
)

// Semesters of a school year, in order.
const (
	SemesterFirst  = "First"
	SemesterSecond = "Second"
	SemesterThird  = "Third"
)

// DefaultUnits is the units of a grade whose subject is not on the schedule.
const DefaultUnits Units = 3

// Units is the credit load of a subject. Zero means missing.
type Units int

// IsMissing reports whether u holds no usable value.
func (u Units) IsMissing() bool { return u <= 0 }

func (u Units) String() string {
	if u.IsMissing() {
		return "-"
	}
	return strconv.Itoa(int(u))
}

// UnmarshalJSON accepts a number, a numeric string, null or the "undefined"
// sentinel older records carry. Anything non numeric decodes as missing.
func (u *Units) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = 0
	switch x := v.(type) {
	case float64:
		*u = Units(x)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			*u = Units(n)
		}
	}
	return nil
}

// YearLevel is the declared year of a student, "1st Year" to "4th Year".
type YearLevel string

const (
	FirstYear  YearLevel = "1st Year"
	SecondYear YearLevel = "2nd Year"
	ThirdYear  YearLevel = "3rd Year"
	FourthYear YearLevel = "4th Year"
)

// YearLevels lists the valid year levels in order.
var YearLevels = []YearLevel{FirstYear, SecondYear, ThirdYear, FourthYear}

// ordinals maps a year level to the ordinal labels of every year elapsed so far.
var ordinals = map[YearLevel][]string{
	FirstYear:  {"1st"},
	SecondYear: {"1st", "2nd"},
	ThirdYear:  {"1st", "2nd", "3rd"},
	FourthYear: {"1st", "2nd", "3rd", "4th"},
}

// Ordinals returns the ordinal labels of the years elapsed up to y. Unknown
// year levels count as a first year.
func (y YearLevel) Ordinals() []string {
	o, ok := ordinals[y]
	if !ok {
		return []string{"1st"}
	}
	return o
}

// Valid reports whether y is one of YearLevels.
func (y YearLevel) Valid() bool {
	_, ok := ordinals[y]
	return ok
}

// ParseYearLevel accepts "2nd Year", "2nd" or "2".
func ParseYearLevel(s string) (YearLevel, error) {
	s = strings.TrimSpace(s)
	for i, y := range YearLevels {
		if strings.EqualFold(s, string(y)) || strings.EqualFold(s, y.Ordinals()[i]) || s == strconv.Itoa(i+1) {
			return y, nil
		}
	}
	return "", fmt.Errorf("unknown year level %q", s)
}

// Theme is the display theme tag persisted across sessions.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeBlue  Theme = "blue"
	ThemeGreen Theme = "green"
)

// DefaultTheme applies when no preference was ever saved.
const DefaultTheme = ThemeLight

// Themes lists the available themes in display order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeBlue, ThemeGreen}

// ParseTheme parses a theme tag.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Next returns the theme after t, cycling.
func (t Theme) Next() Theme {
	for i, x := range Themes {
		if x == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}

// Dark reports whether the theme has a dark background.
func (t Theme) Dark() bool { return t == ThemeDark }
