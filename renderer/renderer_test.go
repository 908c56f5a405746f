package renderer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/etnz/portal"
	"github.com/etnz/portal/date"
)

var today = date.MustParse("2026-10-15")

func testView(t *testing.T) *View {
	t.Helper()
	a := &portal.Account{
		Name:          "Ana Cruz",
		StudentNumber: "2024-0001",
		Course:        "BS Nursing",
		Year:          portal.SecondYear,
		Email:         "ana@example.com",
		Password:      "pw",
	}
	g := &portal.Generator{
		Rand:  rand.New(rand.NewPCG(1, 2)),
		Today: func() date.Date { return today },
	}
	g.Populate(a)
	return NewView(a, today)
}

func TestRender(t *testing.T) {
	testCases := []struct {
		section string
		want    []string
	}{
		{SectionDashboard, []string{
			"# Welcome, Ana Cruz",
			"| Ana Cruz | 2024-0001 | BS Nursing | 2nd Year | ana@example.com |",
			"| P5,000.00 | November 14, 2026 |",
		}},
		{SectionRecord, []string{
			"# Student Record",
			"| 2024-2025 | 1st | First | Regular | 18 |",
			"| 2025-2026 | 2nd | Third | Regular | 15 |",
			"- ✅ Form 137 (Completed)",
			"- ❌ Prospectus (Incomplete)",
		}},
		{SectionSchedule, []string{
			"| Nursing Fundamentals | 3 | Monday, Wednesday |",
			"| Professional Ethics | 3 |",
		}},
		{SectionGrades, []string{
			"| Medical Ethics | 3 |",
			"**General Weighted Average:** ",
		}},
		{SectionLedger, []string{
			"| 2025-08-13 | Tuition Fee - Down Payment | P5,000.00 | ✅ Paid |",
			"⚠️ Outstanding Balance |",
			"| P25,000.00 | P20,000.00 | P5,000.00 |",
		}},
		{SectionDocuments, []string{
			"# Documents",
			"- ❌ Good Moral Certificate (Incomplete)",
		}},
	}
	v := testView(t)
	for _, tc := range testCases {
		t.Run(tc.section, func(t *testing.T) {
			got, err := Render(tc.section, v)
			if err != nil {
				t.Fatalf("Render(%q) error = %v", tc.section, err)
			}
			if strings.Contains(got, "error ") {
				t.Fatalf("Render(%q) failed:\n%s", tc.section, got)
			}
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) lacks %q:\n%s", tc.section, want, got)
				}
			}
		})
	}
}

func TestRender_UnknownSection(t *testing.T) {
	if _, err := Render("settings", testView(t)); err == nil {
		t.Error("Render(settings) error = nil, want an error")
	}
}

func TestRender_Fallbacks(t *testing.T) {
	v := testView(t)
	v.Dashboard = portal.Dashboard{}
	got, _ := Render(SectionLedger, v)
	if !strings.Contains(got, "| P25,000.00 | P15,000.00 | P10,000.00 |") {
		t.Errorf("ledger summary without totals does not use the fallbacks:\n%s", got)
	}
}

func TestRender_EmptyAccount(t *testing.T) {
	v := NewView(&portal.Account{Name: "Dee", StudentNumber: "4"}, today)
	for _, section := range Sections {
		got, err := Render(section, v)
		if err != nil || strings.Contains(got, "error ") {
			t.Errorf("Render(%q) of an empty account = %q, %v", section, got, err)
		}
	}
	got, _ := Render(SectionSchedule, v)
	if !strings.Contains(got, "_No classes scheduled._") {
		t.Errorf("empty schedule renders:\n%s", got)
	}
}

func TestRender_EscapesCells(t *testing.T) {
	v := testView(t)
	v.Account.Schedule[0].Room = "Hall A|B"
	got, _ := Render(SectionSchedule, v)
	if !strings.Contains(got, `Hall A\|B`) {
		t.Errorf("pipe in a cell is not escaped:\n%s", got)
	}
}

func TestHTML(t *testing.T) {
	md, _ := Render(SectionLedger, testView(t))
	var b strings.Builder
	if err := HTML(&b, md); err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Student Ledger</h1>", "<table>", ">Tuition Fee - Down Payment</td>"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("HTML() lacks %q:\n%s", want, b.String())
		}
	}
}
