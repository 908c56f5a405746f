package portal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGenerator_Schedule(t *testing.T) {
	testCases := []struct {
		course string
		want   []string
	}{
		{"BS Information Technology", []string{"IT Fundamentals", "Web Development", "Database Management", "Research Methods", "Professional Ethics"}},
		{"BS Nursing", []string{"Nursing Fundamentals", "Anatomy and Physiology", "Medical Ethics", "Research Methods", "Professional Ethics"}},
		{"BS Architecture", []string{"BS Architecture Fundamentals", "BS Architecture Advanced Topics", "BS Architecture Applications", "Research Methods", "Professional Ethics"}},
	}
	g := testGenerator()
	for _, tc := range testCases {
		t.Run(tc.course, func(t *testing.T) {
			schedule := g.Schedule(tc.course)
			if len(schedule) != len(tc.want) {
				t.Fatalf("Schedule(%q) has %d entries, want %d", tc.course, len(schedule), len(tc.want))
			}
			for i, s := range schedule {
				if s.Subject != tc.want[i] {
					t.Errorf("Schedule(%q)[%d].Subject = %q, want %q", tc.course, i, s.Subject, tc.want[i])
				}
				if s.Units != 3 {
					t.Errorf("Schedule(%q)[%d].Units = %d, want 3", tc.course, i, s.Units)
				}
			}
			if schedule[2].Day != "Friday" || schedule[3].Room != "Library Room 202" {
				t.Errorf("Schedule(%q) slots are wrong: %+v", tc.course, schedule)
			}
		})
	}
}

func TestGenerator_Grades(t *testing.T) {
	g := testGenerator()
	schedule := g.Schedule("BS Education")
	schedule[0].Units = 5
	grades := g.Grades(schedule)
	if len(grades) != len(schedule) {
		t.Fatalf("Grades() has %d entries, want %d", len(grades), len(schedule))
	}
	low, high := decimal.NewFromFloat(1.0), decimal.NewFromFloat(2.5)
	for i, gr := range grades {
		if gr.Subject != schedule[i].Subject || gr.Units != schedule[i].Units {
			t.Errorf("grade %d = %q/%d, want %q/%d", i, gr.Subject, gr.Units, schedule[i].Subject, schedule[i].Units)
		}
		var sum decimal.Decimal
		for _, s := range []string{gr.Prelim, gr.Midterm, gr.Final} {
			v, err := decimal.NewFromString(s)
			if err != nil {
				t.Fatalf("grade %d: %q is not a number", i, s)
			}
			if v.LessThan(low) || v.GreaterThan(high) {
				t.Errorf("grade %d: %s out of [1.00, 2.50]", i, s)
			}
			if len(s) != 4 {
				t.Errorf("grade %d: %q does not have two decimals", i, s)
			}
			sum = sum.Add(v)
		}
		if want := sum.Div(decimal.NewFromInt(3)).StringFixed(2); gr.FinalGrade != want {
			t.Errorf("grade %d: FinalGrade = %s, want %s", i, gr.FinalGrade, want)
		}
	}
}

func TestGenerator_Ledger(t *testing.T) {
	ledger := testGenerator().Ledger()
	if len(ledger) != InstallmentCount {
		t.Fatalf("Ledger() has %d entries, want %d", len(ledger), InstallmentCount)
	}
	paid := 0
	for _, e := range ledger {
		if e.Amount != "P5,000.00" {
			t.Errorf("%s amount = %q, want P5,000.00", e.Description, e.Amount)
		}
		if e.IsPaid() {
			paid++
		}
	}
	if paid != 4 || ledger[4].Status != StatusOutstanding {
		t.Errorf("Ledger() has %d paid entries and last status %q", paid, ledger[4].Status)
	}
	if got := ledger[0].Date.String(); got != "2025-08-13" {
		t.Errorf("first entry date = %s", got)
	}
}

func TestGenerator_AcademicRecord(t *testing.T) {
	g := testGenerator() // today is 2026-10-15
	record := g.AcademicRecord(ThirdYear)
	if len(record) != 9 {
		t.Fatalf("AcademicRecord(3rd Year) has %d rows, want 9", len(record))
	}
	wantYears := []string{"2023-2024", "2024-2025", "2025-2026"}
	wantOrdinals := []string{"1st", "2nd", "3rd"}
	wantSemesters := []string{SemesterFirst, SemesterSecond, SemesterThird}
	wantUnits := []Units{18, 18, 15}
	for i, r := range record {
		y, s := i/3, i%3
		if r.AcademicYear != wantYears[y] || r.Year != wantOrdinals[y] {
			t.Errorf("row %d = %s %s, want %s %s", i, r.AcademicYear, r.Year, wantYears[y], wantOrdinals[y])
		}
		if r.Semester != wantSemesters[s] || r.Units != wantUnits[s] {
			t.Errorf("row %d = %s/%d, want %s/%d", i, r.Semester, r.Units, wantSemesters[s], wantUnits[s])
		}
		if r.Status != "Regular" {
			t.Errorf("row %d status = %q", i, r.Status)
		}
		if _, err := decimal.NewFromString(r.GWA); err != nil {
			t.Errorf("row %d GWA %q is not a number", i, r.GWA)
		}
	}

	if got := g.AcademicRecord("Graduate"); len(got) != 3 || got[0].AcademicYear != "2025-2026" {
		t.Errorf("AcademicRecord(unknown) = %+v, want a single 2025-2026 year", got)
	}
}

func TestGenerator_Documents(t *testing.T) {
	docs := testGenerator().Documents()
	if len(docs) != 8 {
		t.Fatalf("Documents() has %d entries, want 8", len(docs))
	}
	completed := 0
	for _, d := range docs {
		if d.Completed() {
			completed++
		}
	}
	if completed != 6 {
		t.Errorf("Documents() has %d completed, want 6", completed)
	}
}

func TestGenerator_PopulateIsConsistent(t *testing.T) {
	a := newTestAccount("Ana", "2024-0001", "pw")
	// A freshly generated account is already canonical.
	if Repair(a) {
		t.Errorf("Repair() of a generated account changed it")
	}
	if len(a.AcademicRecord) != 6 {
		t.Errorf("2nd Year account has %d academic rows, want 6", len(a.AcademicRecord))
	}
}
