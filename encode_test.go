package portal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/portal/date"
)

// legacyAccounts is a store as an older portal version wrote it.
const legacyAccounts = `[
  {
    "name": "Ana Cruz",
    "studentNumber": 20240001,
    "course": "BS Nursing",
    "year": "2nd Year",
    "email": "ana@example.com",
    "password": "pw",
    "schedule": [
      {"subject": "Nursing Fundamentals", "units": 3, "day": "Monday, Wednesday", "time": "9:00 AM - 10:30 AM", "room": "Main Hall 101", "professor": "Dr. Smith"},
      "not an entry"
    ],
    "grades": [
      {"subject": "Nursing Fundamentals", "units": "undefined", "prelim": 1.5, "midterm": "1.75", "final": "2.00", "finalGrade": "1.75"},
      {"subject": "Medical Ethics", "prelim": "1.00", "midterm": "1.00", "final": "1.00", "finalGrade": "1.00"}
    ],
    "ledger": [
      {"date": "2025-08-13", "description": "Tuition Fee - Down Payment", "amount": 5000, "status": "Paid"},
      {"date": "13/08/2025", "description": "Tuition Fee - 1st Installment", "amount": "¥5000", "status": "Paid"}
    ],
    "academicRecord": [
      {"academicYear": "2024-2025", "year": "1st", "semester": "First", "status": "Regular", "units": 18, "gwa": "1.50"}
    ],
    "documents": [
      {"name": "Form 137", "icon": "fa-file-alt", "status": "Completed"}
    ]
  },
  42,
  {"course": "BS Education"},
  {"name": "Ben", "studentNumber": "2", "password": "x"}
]`

func TestDecodeAccounts_Legacy(t *testing.T) {
	accounts, err := DecodeAccounts(strings.NewReader(legacyAccounts))
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("DecodeAccounts() returned %d accounts, want 2 (non accounts are dropped)", len(accounts))
	}

	a := accounts[0]
	if a.StudentNumber != "20240001" {
		t.Errorf("numeric student number decoded as %q", a.StudentNumber)
	}
	if a.Year != SecondYear {
		t.Errorf("Year = %q", a.Year)
	}
	if len(a.Schedule) != 1 {
		t.Errorf("unreadable schedule entry was not dropped: %+v", a.Schedule)
	}
	if len(a.Grades) != 2 || !a.Grades[0].Units.IsMissing() || !a.Grades[1].Units.IsMissing() {
		t.Errorf("grade units = %+v, want both missing", a.Grades)
	}
	if a.Grades[0].Prelim != "1.5" {
		t.Errorf("numeric prelim decoded as %q", a.Grades[0].Prelim)
	}
	if a.Ledger[0].Amount != "5000" || a.Ledger[1].Amount != "¥5000" {
		t.Errorf("amounts decoded as %q, %q", a.Ledger[0].Amount, a.Ledger[1].Amount)
	}
	if a.Ledger[0].Date != date.MustParse("2025-08-13") || !a.Ledger[1].Date.IsZero() {
		t.Errorf("dates decoded as %v, %v", a.Ledger[0].Date, a.Ledger[1].Date)
	}
	if a.AcademicRecord[0].Units != 18 || a.Documents[0].Name != "Form 137" {
		t.Errorf("record/documents decoded as %+v %+v", a.AcademicRecord, a.Documents)
	}

	// Decoded legacy data is then repaired into canonical form.
	if !Repair(a) {
		t.Fatal("Repair() of legacy account = false")
	}
	if a.Grades[0].Units != 3 || a.Grades[1].Units != DefaultUnits {
		t.Errorf("repaired units = %d, %d", a.Grades[0].Units, a.Grades[1].Units)
	}
	if a.Ledger[0].Amount != "P5,000.00" || a.Ledger[1].Amount != "P5,000.00" {
		t.Errorf("repaired amounts = %q, %q", a.Ledger[0].Amount, a.Ledger[1].Amount)
	}
}

func TestDecodeAccounts_Empty(t *testing.T) {
	for _, in := range []string{"", "null", "[]"} {
		accounts, err := DecodeAccounts(strings.NewReader(in))
		if err != nil {
			t.Errorf("DecodeAccounts(%q) error = %v", in, err)
		}
		if len(accounts) != 0 {
			t.Errorf("DecodeAccounts(%q) = %d accounts", in, len(accounts))
		}
	}
}

func TestDecodeAccounts_NotAList(t *testing.T) {
	if _, err := DecodeAccounts(strings.NewReader(`{"name":"Ana"}`)); err == nil {
		t.Error("DecodeAccounts(object) error = nil, want an error")
	}
}

func TestEncodeAccounts_Canonical(t *testing.T) {
	a := newTestAccount("Ana", "1", "pw")
	var b bytes.Buffer
	if err := EncodeAccounts(&b, []*Account{a}); err != nil {
		t.Fatalf("EncodeAccounts() error = %v", err)
	}
	out := b.String()
	for _, want := range []string{`"studentNumber":"1"`, `"units":3`, `"amount":"P5,000.00"`, `"date":"2025-08-13"`, `"academicRecord":[`} {
		if !strings.Contains(out, want) {
			t.Errorf("EncodeAccounts() output lacks %s", want)
		}
	}

	var empty bytes.Buffer
	if err := EncodeAccounts(&empty, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(empty.String()); got != "[]" {
		t.Errorf("EncodeAccounts(nil) = %q, want []", got)
	}
}

func TestDecodeAccount_Null(t *testing.T) {
	a, err := DecodeAccount(strings.NewReader("null"))
	if err != nil || a != nil {
		t.Errorf("DecodeAccount(null) = %v, %v", a, err)
	}
}

func TestEncodeAccount_EmptyLists(t *testing.T) {
	a := &Account{Name: "Ana", StudentNumber: "1", Year: FirstYear}
	for name, encode := range map[string]func(*bytes.Buffer) error{
		"EncodeAccount":  func(b *bytes.Buffer) error { return EncodeAccount(b, a) },
		"EncodeAccounts": func(b *bytes.Buffer) error { return EncodeAccounts(b, []*Account{a}) },
	} {
		var b bytes.Buffer
		if err := encode(&b); err != nil {
			t.Fatalf("%s() error = %v", name, err)
		}
		out := b.String()
		if strings.Contains(out, "null") {
			t.Errorf("%s() = %s, has null lists", name, out)
		}
		for _, want := range []string{`"schedule":[]`, `"grades":[]`, `"ledger":[]`, `"academicRecord":[]`, `"documents":[]`} {
			if !strings.Contains(out, want) {
				t.Errorf("%s() output lacks %s", name, want)
			}
		}
	}
	if a.Schedule != nil {
		t.Error("encoding changed the account")
	}
}

func TestLedgerEntry_UnreadableDate(t *testing.T) {
	a, err := DecodeAccount(strings.NewReader(`{"name":"Ana","studentNumber":"1",
		"ledger":[{"date":"next Tuesday","description":"Tuition","amount":"P5,000.00","status":"Paid"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Ledger[0].Date.IsZero() {
		t.Errorf("Date = %v, want the zero date", a.Ledger[0].Date)
	}
	var b bytes.Buffer
	if err := EncodeAccount(&b, a.Clone()); err != nil {
		t.Fatal(err)
	}
	if want := `"ledger":[{"date":"next Tuesday","description":"Tuition","amount":"P5,000.00","status":"Paid"}]`; !strings.Contains(b.String(), want) {
		t.Errorf("EncodeAccount() = %s, want it to contain %s", b.String(), want)
	}
}
