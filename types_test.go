package portal

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestUnits_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		json string
		want Units
	}{
		{`{"units":3}`, 3},
		{`{"units":"4"}`, 4},
		{`{"units":" 2 "}`, 2},
		{`{"units":"undefined"}`, 0},
		{`{"units":null}`, 0},
		{`{}`, 0},
		{`{"units":{"a":1}}`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.json, func(t *testing.T) {
			var g GradeEntry
			if err := json.Unmarshal([]byte(tc.json), &g); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if g.Units != tc.want {
				t.Errorf("Units = %d, want %d", g.Units, tc.want)
			}
		})
	}
}

func TestYearLevel_Ordinals(t *testing.T) {
	testCases := []struct {
		year YearLevel
		want []string
	}{
		{FirstYear, []string{"1st"}},
		{ThirdYear, []string{"1st", "2nd", "3rd"}},
		{FourthYear, []string{"1st", "2nd", "3rd", "4th"}},
		{"5th Year", []string{"1st"}},
		{"", []string{"1st"}},
	}
	for _, tc := range testCases {
		if got := tc.year.Ordinals(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q.Ordinals() = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestParseYearLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    YearLevel
		wantErr bool
	}{
		{in: "2nd Year", want: SecondYear},
		{in: "3rd", want: ThirdYear},
		{in: "4", want: FourthYear},
		{in: "1ST YEAR", want: FirstYear},
		{in: "senior", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseYearLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseYearLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseYearLevel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTheme(t *testing.T) {
	if got, err := ParseTheme("Dark"); err != nil || got != ThemeDark {
		t.Errorf("ParseTheme(Dark) = %q, %v", got, err)
	}
	if _, err := ParseTheme("neon"); err == nil {
		t.Error("ParseTheme(neon) error = nil, want an error")
	}
	// Next cycles through every theme.
	th := DefaultTheme
	for range Themes {
		th = th.Next()
	}
	if th != DefaultTheme {
		t.Errorf("cycling through themes ends on %q, want %q", th, DefaultTheme)
	}
}
