package portal

import (
	"encoding/json"
	"slices"

	"github.com/etnz/portal/date"
)

// Account is a student and every record generated for them at signup.
//
// Identity is the name or the student number: both are unique in a Store.
type Account struct {
	Name           string                `json:"name"`
	StudentNumber  string                `json:"studentNumber"`
	Course         string                `json:"course"`
	Year           YearLevel             `json:"year"`
	Email          string                `json:"email"`
	Password       string                `json:"password"`
	Schedule       []ScheduleEntry       `json:"schedule"`
	Grades         []GradeEntry          `json:"grades"`
	Ledger         []LedgerEntry         `json:"ledger"`
	AcademicRecord []AcademicRecordEntry `json:"academicRecord"`
	Documents      []DocumentEntry       `json:"documents"`
}

// ScheduleEntry is a class of the current term. Its Units are the source of
// truth for the grade of the same subject.
type ScheduleEntry struct {
	Subject   string `json:"subject"`
	Units     Units  `json:"units"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Room      string `json:"room"`
	Professor string `json:"professor"`
}

// GradeEntry holds the term grades of a subject. Grades are numeric strings,
// lower is better.
type GradeEntry struct {
	Subject    string `json:"subject"`
	Units      Units  `json:"units"`
	Prelim     string `json:"prelim"`
	Midterm    string `json:"midterm"`
	Final      string `json:"final"`
	FinalGrade string `json:"finalGrade"`
}

// LedgerEntry is a billing line. Amount is kept in its persisted display
// form; use Money to compute with it.
type LedgerEntry struct {
	Date        date.Date `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`

	rawDate string // persisted date that could not be read, written back as is.
}

type jsonLedgerEntry LedgerEntry

// MarshalJSON writes the entry, with its date as it was persisted when that
// date could not be read.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	if !e.Date.IsZero() || e.rawDate == "" {
		return json.Marshal(jsonLedgerEntry(e))
	}
	return json.Marshal(struct {
		Date string `json:"date"`
		jsonLedgerEntry
	}{e.rawDate, jsonLedgerEntry(e)})
}

// Money parses the entry amount.
func (e LedgerEntry) Money() (Money, error) { return ParseMoney(e.Amount) }

// IsPaid reports whether the entry is settled.
func (e LedgerEntry) IsPaid() bool { return e.Status == StatusPaid }

// AcademicRecordEntry is one semester of the academic history.
type AcademicRecordEntry struct {
	AcademicYear string `json:"academicYear"`
	Year         string `json:"year"`
	Semester     string `json:"semester"`
	Status       string `json:"status"`
	Units        Units  `json:"units"`
	GWA          string `json:"gwa"`
}

// DocumentEntry is an enrollment requirement and whether it was submitted.
type DocumentEntry struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Status string `json:"status"`
}

// Completed reports whether the document was submitted.
func (d DocumentEntry) Completed() bool { return d.Status == DocumentCompleted }

// Clone returns a deep copy of a, so that callers can never alter a stored
// snapshot by accident.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Schedule = slices.Clone(a.Schedule)
	c.Grades = slices.Clone(a.Grades)
	c.Ledger = slices.Clone(a.Ledger)
	c.AcademicRecord = slices.Clone(a.AcademicRecord)
	c.Documents = slices.Clone(a.Documents)
	return &c
}

// Identifies reports whether identifier is a's name or student number.
func (a *Account) Identifies(identifier string) bool {
	return a.Name == identifier || a.StudentNumber == identifier
}

// Collides reports whether a and b share a name or a student number.
func (a *Account) Collides(b *Account) bool {
	return a.Name == b.Name || a.StudentNumber == b.StudentNumber
}

// scheduledUnits returns the units of the schedule entry for subject.
func (a *Account) scheduledUnits(subject string) (Units, bool) {
	i := slices.IndexFunc(a.Schedule, func(s ScheduleEntry) bool { return s.Subject == subject })
	if i < 0 {
		return 0, false
	}
	return a.Schedule[i].Units, true
}
