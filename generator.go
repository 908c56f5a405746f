package portal

import (
	"math/rand/v2"

	"github.com/etnz/portal/date"
	"github.com/shopspring/decimal"
)

// Installment is the amount of each of the fixed tuition installments.
var Installment = Pesos(5000)

// InstallmentCount is the number of installments of a school term.
const InstallmentCount = 5

// Units of each semester slot of the academic record.
const (
	regularSemesterUnits Units = 18
	thirdSemesterUnits   Units = 15
)

// Generator synthesizes the records of a new account.
//
// Everything but grades and GWAs is deterministic. Rand drives the random
// part and Today anchors the academic year labels; nil fields fall back to
// the global source and the current date.
type Generator struct {
	Rand  *rand.Rand
	Today func() date.Date
}

// NewGenerator returns a Generator seeded from the runtime and using the current date.
func NewGenerator() *Generator {
	return &Generator{
		Rand:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Today: date.Today,
	}
}

// Populate fills every generated collection of a from its course and year.
func (g *Generator) Populate(a *Account) {
	a.Schedule = g.Schedule(a.Course)
	a.Grades = g.Grades(a.Schedule)
	a.Ledger = g.Ledger()
	a.AcademicRecord = g.AcademicRecord(a.Year)
	a.Documents = g.Documents()
}

// common subjects are taken by every course.
var commonSubjects = []ScheduleEntry{
	{Subject: "Research Methods", Units: 3, Day: "Tuesday, Thursday", Time: "10:30 AM - 12:00 PM", Room: "Library Room 202", Professor: "Prof. Johnson"},
	{Subject: "Professional Ethics", Units: 3, Day: "Monday, Wednesday", Time: "1:00 PM - 2:30 PM", Room: "Room 205", Professor: "Dr. Williams"},
}

// courseSubject describes a course specific class, slots are shared by all courses.
type courseSubject struct{ subject, room, professor string }

var courseSubjects = map[string][3]courseSubject{
	"BS Information Technology": {
		{"IT Fundamentals", "Main Hall 101", "Dr. Smith"},
		{"Web Development", "IT Lab 1", "Prof. Brown"},
		{"Database Management", "IT Lab 2", "Dr. Davis"},
	},
	"BS Computer Science": {
		{"CS Fundamentals", "Main Hall 101", "Dr. Smith"},
		{"Algorithms", "CS Lab 1", "Prof. Taylor"},
		{"Data Structures", "CS Lab 2", "Dr. Anderson"},
	},
	"BS Business Administration": {
		{"Business Fundamentals", "Main Hall 101", "Dr. Smith"},
		{"Business Management", "Business Hall 301", "Prof. Martinez"},
		{"Economics", "Business Hall 302", "Dr. Garcia"},
	},
	"BS Education": {
		{"Education Fundamentals", "Main Hall 101", "Dr. Smith"},
		{"Teaching Methods", "Education Hall 401", "Prof. Wilson"},
		{"Child Psychology", "Education Hall 402", "Dr. Thompson"},
	},
	"BS Nursing": {
		{"Nursing Fundamentals", "Main Hall 101", "Dr. Smith"},
		{"Anatomy and Physiology", "Science Lab 501", "Prof. Clark"},
		{"Medical Ethics", "Science Lab 502", "Dr. Lewis"},
	},
}

// Courses lists the courses with a dedicated curriculum.
var Courses = []string{
	"BS Information Technology",
	"BS Computer Science",
	"BS Business Administration",
	"BS Education",
	"BS Nursing",
}

// genericSubjects builds the curriculum of a course without a dedicated one.
func genericSubjects(course string) [3]courseSubject {
	return [3]courseSubject{
		{course + " Fundamentals", "Main Hall 101", "Dr. Smith"},
		{course + " Advanced Topics", "General Hall 301", "Prof. Generic"},
		{course + " Applications", "General Hall 302", "Dr. General"},
	}
}

// the three course slots, in order.
var slots = [3]struct{ day, time string }{
	{"Monday, Wednesday", "9:00 AM - 10:30 AM"},
	{"Tuesday, Thursday", "2:30 PM - 4:00 PM"},
	{"Friday", "9:00 AM - 12:00 PM"},
}

// Schedule returns the classes of a course: three course subjects then the common ones.
func (g *Generator) Schedule(course string) []ScheduleEntry {
	subjects, ok := courseSubjects[course]
	if !ok {
		subjects = genericSubjects(course)
	}
	schedule := make([]ScheduleEntry, 0, len(subjects)+len(commonSubjects))
	for i, s := range subjects {
		schedule = append(schedule, ScheduleEntry{
			Subject:   s.subject,
			Units:     3,
			Day:       slots[i].day,
			Time:      slots[i].time,
			Room:      s.room,
			Professor: s.professor,
		})
	}
	return append(schedule, commonSubjects...)
}

// grade returns a random grade in [1.00, 2.50] with two decimals.
func (g *Generator) grade() decimal.Decimal {
	f := rand.Float64
	if g.Rand != nil {
		f = g.Rand.Float64
	}
	return decimal.NewFromFloat(f()*1.5 + 1.0).Round(2)
}

func (g *Generator) today() date.Date {
	if g.Today == nil {
		return date.Today()
	}
	return g.Today()
}

// Grades returns a grade for every scheduled subject, with the subject units.
// finalGrade is the mean of the three term grades.
func (g *Generator) Grades(schedule []ScheduleEntry) []GradeEntry {
	grades := make([]GradeEntry, 0, len(schedule))
	three := decimal.NewFromInt(3)
	for _, s := range schedule {
		prelim, midterm, final := g.grade(), g.grade(), g.grade()
		grades = append(grades, GradeEntry{
			Subject:    s.Subject,
			Units:      s.Units,
			Prelim:     prelim.StringFixed(2),
			Midterm:    midterm.StringFixed(2),
			Final:      final.StringFixed(2),
			FinalGrade: prelim.Add(midterm).Add(final).Div(three).StringFixed(2),
		})
	}
	return grades
}

// Ledger returns the fixed tuition ledger: a down payment and three
// installments paid, the fourth installment outstanding.
func (g *Generator) Ledger() []LedgerEntry {
	amount := Installment.String()
	return []LedgerEntry{
		{Date: date.MustParse("2025-08-13"), Description: "Tuition Fee - Down Payment", Amount: amount, Status: StatusPaid},
		{Date: date.MustParse("2025-09-01"), Description: "Tuition Fee - 1st Installment", Amount: amount, Status: StatusPaid},
		{Date: date.MustParse("2025-09-16"), Description: "Tuition Fee - 2nd Installment", Amount: amount, Status: StatusPaid},
		{Date: date.MustParse("2025-10-01"), Description: "Tuition Fee - 3rd Installment", Amount: amount, Status: StatusPaid},
		{Date: date.MustParse("2025-11-03"), Description: "Tuition Fee - 4th Installment", Amount: amount, Status: StatusOutstanding},
	}
}

// AcademicRecord returns three semesters for every year elapsed up to year,
// the last one ending on the current school year.
func (g *Generator) AcademicRecord(year YearLevel) []AcademicRecordEntry {
	years := year.Ordinals()
	current := g.today().Year()
	record := make([]AcademicRecordEntry, 0, 3*len(years))
	for i, yr := range years {
		label := date.AcademicYear(current - len(years) + i)
		for _, sem := range []struct {
			name  string
			units Units
		}{
			{SemesterFirst, regularSemesterUnits},
			{SemesterSecond, regularSemesterUnits},
			{SemesterThird, thirdSemesterUnits},
		} {
			record = append(record, AcademicRecordEntry{
				AcademicYear: label,
				Year:         yr,
				Semester:     sem.name,
				Status:       "Regular",
				Units:        sem.units,
				GWA:          g.grade().StringFixed(2),
			})
		}
	}
	return record
}

// Documents returns the enrollment requirements checklist.
func (g *Generator) Documents() []DocumentEntry {
	return []DocumentEntry{
		{Name: "Form 137", Icon: "fa-file-alt", Status: DocumentCompleted},
		{Name: "Birth Certificate", Icon: "fa-certificate", Status: DocumentCompleted},
		{Name: "Diploma", Icon: "fa-scroll", Status: DocumentCompleted},
		{Name: "Prospectus", Icon: "fa-book", Status: DocumentIncomplete},
		{Name: "Medical Certificate", Icon: "fa-file-medical", Status: DocumentCompleted},
		{Name: "Good Moral Certificate", Icon: "fa-award", Status: DocumentIncomplete},
		{Name: "Transcript of Records", Icon: "fa-file-contract", Status: DocumentCompleted},
		{Name: "Enrollment Form", Icon: "fa-clipboard-list", Status: DocumentCompleted},
	}
}
