package portal

import (
	"github.com/etnz/portal/date"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DueDays is the number of days between today and the next payment due date.
const DueDays = 30

// LedgerTotal is the tuition of a term, whatever the ledger rows say.
var LedgerTotal = Installment.Mul(InstallmentCount)

// Totals summarizes a ledger.
type Totals struct {
	Total   Money
	Paid    Money
	Balance Money
	valid   bool
}

// Valid reports whether t was computed by LedgerTotals. The zero Totals is
// not valid and renders with the fallback amounts.
func (t Totals) Valid() bool { return t.valid }

// LedgerTotals returns the fixed total, the sum of the Paid rows and the
// remaining balance. Paid rows whose amount cannot be read count for nothing.
// ledger is never modified.
func LedgerTotals(ledger []LedgerEntry) Totals {
	paid := Money{}
	for i, e := range ledger {
		if !e.IsPaid() {
			continue
		}
		m, err := e.Money()
		if err != nil {
			logg.WithFields(logrus.Fields{"row": i, "amount": e.Amount}).Debug("invalid amount found, using 0")
			continue
		}
		sum := paid.Add(m)
		if !sum.InRange() || !LedgerTotal.Sub(sum).InRange() {
			logg.WithFields(logrus.Fields{"row": i, "amount": e.Amount}).Debug("amount overflows the totals, using 0")
			continue
		}
		paid = sum
	}
	return Totals{
		Total:   LedgerTotal,
		Paid:    paid,
		Balance: LedgerTotal.Sub(paid),
		valid:   true,
	}
}

// GWA returns the mean of the final grades with two decimals, "0.00" when
// there are no grades. A final grade that is not a number counts as 0.
func GWA(grades []GradeEntry) string {
	if len(grades) == 0 {
		return "0.00"
	}
	sum := decimal.Zero
	for i, g := range grades {
		v, err := decimal.NewFromString(g.FinalGrade)
		if err != nil {
			logg.WithFields(logrus.Fields{"row": i, "finalGrade": g.FinalGrade}).Debug("invalid final grade, using 0")
			continue
		}
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(grades)))).StringFixed(2)
}

// CurrentGWA returns the GWA of the latest semester on record, or the GWA of
// the current grades when there is no record.
func CurrentGWA(a *Account) string {
	if n := len(a.AcademicRecord); n > 0 {
		return a.AcademicRecord[n-1].GWA
	}
	return GWA(a.Grades)
}

// Dashboard is the landing view data of a session.
type Dashboard struct {
	Totals
	GWA     string
	DueDate date.Date
}

// NewDashboard computes the dashboard of a on the given day.
func NewDashboard(a *Account, today date.Date) Dashboard {
	return Dashboard{
		Totals:  LedgerTotals(a.Ledger),
		GWA:     CurrentGWA(a),
		DueDate: today.Add(DueDays),
	}
}
