package portal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/portal/date"
	"github.com/sirupsen/logrus"
)

// This file handles the storage boundary: persisted accounts are untyped JSON
// written by many versions of the portal. They are decoded into dedicated
// lenient structs, then converted into typed accounts. Records that cannot be
// an account are dropped, fields with a wrong shape are decoded as missing so
// that the repairer can fix them at login.

// text is a string that also accepts json numbers and booleans, null being "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = text(x)
	case float64:
		*t = text(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		*t = text(strconv.FormatBool(x))
	default:
		return fmt.Errorf("cannot read %s as a text", b)
	}
	return nil
}

// the j* structs are the persisted shape, as read from the storage.

type jaccount struct {
	Name           text              `json:"name"`
	StudentNumber  text              `json:"studentNumber"`
	Course         text              `json:"course"`
	Year           text              `json:"year"`
	Email          text              `json:"email"`
	Password       text              `json:"password"`
	Schedule       []json.RawMessage `json:"schedule"`
	Grades         []json.RawMessage `json:"grades"`
	Ledger         []json.RawMessage `json:"ledger"`
	AcademicRecord []json.RawMessage `json:"academicRecord"`
	Documents      []json.RawMessage `json:"documents"`
}

type jschedule struct {
	Subject   text  `json:"subject"`
	Units     Units `json:"units"`
	Day       text  `json:"day"`
	Time      text  `json:"time"`
	Room      text  `json:"room"`
	Professor text  `json:"professor"`
}

type jgrade struct {
	Subject    text  `json:"subject"`
	Units      Units `json:"units"`
	Prelim     text  `json:"prelim"`
	Midterm    text  `json:"midterm"`
	Final      text  `json:"final"`
	FinalGrade text  `json:"finalGrade"`
}

type jledger struct {
	Date        text `json:"date"`
	Description text `json:"description"`
	Amount      text `json:"amount"`
	Status      text `json:"status"`
}

type jrecord struct {
	AcademicYear text  `json:"academicYear"`
	Year         text  `json:"year"`
	Semester     text  `json:"semester"`
	Status       text  `json:"status"`
	Units        Units `json:"units"`
	GWA          text  `json:"gwa"`
}

type jdocument struct {
	Name   text `json:"name"`
	Icon   text `json:"icon"`
	Status text `json:"status"`
}

// DecodeAccounts reads the persisted list of accounts.
//
// The document must be a json array (or null). Elements that are not an
// account are skipped and logged.
func DecodeAccounts(r io.Reader) ([]*Account, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("format error in %q: not a list of accounts: %w", AccountsKey, err)
	}
	accounts := make([]*Account, 0, len(raw))
	for i, msg := range raw {
		a, err := decodeAccount(msg)
		if err != nil {
			logg.WithFields(logrus.Fields{"key": AccountsKey, "index": i}).Warn(err.Error())
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// DecodeAccount reads a single persisted account, as saved for the session.
func DecodeAccount(r io.Reader) (*Account, error) {
	var msg json.RawMessage
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", SessionKey, err)
	}
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil, nil
	}
	return decodeAccount(msg)
}

func decodeAccount(msg json.RawMessage) (*Account, error) {
	var ja jaccount
	if err := json.Unmarshal(msg, &ja); err != nil {
		return nil, fmt.Errorf("not an account: %w", err)
	}
	if ja.Name == "" && ja.StudentNumber == "" {
		return nil, fmt.Errorf("account has neither name nor student number")
	}
	a := &Account{
		Name:          string(ja.Name),
		StudentNumber: string(ja.StudentNumber),
		Course:        string(ja.Course),
		Year:          YearLevel(ja.Year),
		Email:         string(ja.Email),
		Password:      string(ja.Password),
	}
	field := func(name string, i int, err error) {
		logg.WithFields(logrus.Fields{
			"studentNumber": a.StudentNumber,
			"field":         fmt.Sprintf("%s[%d]", name, i),
		}).Warn(fmt.Sprintf("dropping unreadable entry: %v", err))
	}

	for i, msg := range ja.Schedule {
		var j jschedule
		if err := json.Unmarshal(msg, &j); err != nil {
			field("schedule", i, err)
			continue
		}
		a.Schedule = append(a.Schedule, ScheduleEntry{
			Subject:   string(j.Subject),
			Units:     j.Units,
			Day:       string(j.Day),
			Time:      string(j.Time),
			Room:      string(j.Room),
			Professor: string(j.Professor),
		})
	}
	for i, msg := range ja.Grades {
		var j jgrade
		if err := json.Unmarshal(msg, &j); err != nil {
			field("grades", i, err)
			continue
		}
		a.Grades = append(a.Grades, GradeEntry{
			Subject:    string(j.Subject),
			Units:      j.Units,
			Prelim:     string(j.Prelim),
			Midterm:    string(j.Midterm),
			Final:      string(j.Final),
			FinalGrade: string(j.FinalGrade),
		})
	}
	for i, msg := range ja.Ledger {
		var j jledger
		if err := json.Unmarshal(msg, &j); err != nil {
			field("ledger", i, err)
			continue
		}
		e := LedgerEntry{
			Description: string(j.Description),
			Amount:      string(j.Amount),
			Status:      string(j.Status),
		}
		if j.Date != "" {
			d, err := date.Parse(string(j.Date))
			if err != nil {
				logg.WithFields(logrus.Fields{
					"studentNumber": a.StudentNumber,
					"field":         fmt.Sprintf("ledger[%d].date", i),
				}).Warn(fmt.Sprintf("keeping unreadable date as is: %v", err))
				e.rawDate = string(j.Date)
			}
			e.Date = d
		}
		a.Ledger = append(a.Ledger, e)
	}
	for i, msg := range ja.AcademicRecord {
		var j jrecord
		if err := json.Unmarshal(msg, &j); err != nil {
			field("academicRecord", i, err)
			continue
		}
		a.AcademicRecord = append(a.AcademicRecord, AcademicRecordEntry{
			AcademicYear: string(j.AcademicYear),
			Year:         string(j.Year),
			Semester:     string(j.Semester),
			Status:       string(j.Status),
			Units:        j.Units,
			GWA:          string(j.GWA),
		})
	}
	for i, msg := range ja.Documents {
		var j jdocument
		if err := json.Unmarshal(msg, &j); err != nil {
			field("documents", i, err)
			continue
		}
		a.Documents = append(a.Documents, DocumentEntry{
			Name:   string(j.Name),
			Icon:   string(j.Icon),
			Status: string(j.Status),
		})
	}
	return a, nil
}

// EncodeAccounts writes the list of accounts in their canonical json form.
func EncodeAccounts(w io.Writer, accounts []*Account) error {
	canonical := make([]*Account, 0, len(accounts))
	for _, a := range accounts {
		canonical = append(canonical, withLists(a))
	}
	if err := json.NewEncoder(w).Encode(canonical); err != nil {
		return fmt.Errorf("cannot encode accounts: %w", err)
	}
	return nil
}

// EncodeAccount writes a single account in its canonical json form.
func EncodeAccount(w io.Writer, a *Account) error {
	if err := json.NewEncoder(w).Encode(withLists(a)); err != nil {
		return fmt.Errorf("cannot encode account %q: %w", a.StudentNumber, err)
	}
	return nil
}

// withLists returns a shallow copy of a whose missing lists are empty, so
// that they persist as [] and never as null.
func withLists(a *Account) *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Schedule = nonNil(c.Schedule)
	c.Grades = nonNil(c.Grades)
	c.Ledger = nonNil(c.Ledger)
	c.AcademicRecord = nonNil(c.AcademicRecord)
	c.Documents = nonNil(c.Documents)
	return &c
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
