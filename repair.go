package portal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Repairer rewrites the persisted fields of an account into canonical form.
//
// Every rewrite is logged as a MalformedFieldError on Log, or on Logger()
// when Log is nil.
type Repairer struct {
	Log logrus.FieldLogger
}

// Repair canonicalizes a in place with the default Repairer and reports
// whether anything changed. A second call on the result is a no-op.
func Repair(a *Account) bool { return Repairer{}.Repair(a) }

// Repair canonicalizes a in place and reports whether anything changed:
//   - ledger amounts are re-rendered as "P1,234.00"; amounts that cannot be
//     read become "P0.00",
//   - schedule entries without units get the default units,
//   - grade units follow the schedule entry of the same subject, or the
//     default units for subjects not on the schedule.
func (r Repairer) Repair(a *Account) (changed bool) {
	if a == nil {
		return false
	}
	report := func(field, value, fixed string) {
		changed = true
		err := &MalformedFieldError{Account: a.StudentNumber, Field: field, Value: value, Fixed: fixed}
		r.logger().WithFields(logrus.Fields{
			"studentNumber": a.StudentNumber,
			"field":         field,
		}).Warn(err.Error())
	}

	for i := range a.Ledger {
		e := &a.Ledger[i]
		fixed := canonicalAmount(e.Amount)
		if fixed != e.Amount {
			report(fmt.Sprintf("ledger[%d].amount", i), e.Amount, fixed)
			e.Amount = fixed
		}
	}

	for i := range a.Schedule {
		s := &a.Schedule[i]
		if s.Units.IsMissing() {
			report(fmt.Sprintf("schedule[%d].units", i), s.Units.String(), DefaultUnits.String())
			s.Units = DefaultUnits
		}
	}

	for i := range a.Grades {
		g := &a.Grades[i]
		want, ok := a.scheduledUnits(g.Subject)
		if !ok {
			want = DefaultUnits
		}
		if g.Units != want {
			report(fmt.Sprintf("grades[%d].units", i), g.Units.String(), want.String())
			g.Units = want
		}
	}
	return changed
}

func (r Repairer) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return Logger()
}

// canonicalAmount returns the canonical display of a ledger amount. Symbols
// are stripped before the canonical one is prefixed, so they never pile up.
func canonicalAmount(amount string) string {
	m, err := ParseMoney(amount)
	if err != nil {
		return Money{}.String()
	}
	return m.String()
}
