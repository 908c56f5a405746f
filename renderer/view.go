package renderer

import (
	"github.com/etnz/portal"
	"github.com/etnz/portal/date"
)

// Amounts displayed when the ledger totals could not be computed.
const (
	FallbackTotal   = "P25,000.00"
	FallbackPaid    = "P15,000.00"
	FallbackBalance = "P10,000.00"
)

// View is the data every section renders: the session account and its dashboard.
type View struct {
	Account   *portal.Account
	Dashboard portal.Dashboard
}

// NewView computes the view of a on the given day.
func NewView(a *portal.Account, today date.Date) *View {
	return &View{Account: a, Dashboard: portal.NewDashboard(a, today)}
}

func (v *View) TotalAmount() string {
	if !v.Dashboard.Valid() {
		return FallbackTotal
	}
	return v.Dashboard.Total.String()
}

func (v *View) PaidAmount() string {
	if !v.Dashboard.Valid() {
		return FallbackPaid
	}
	return v.Dashboard.Paid.String()
}

func (v *View) BalanceAmount() string {
	if !v.Dashboard.Valid() {
		return FallbackBalance
	}
	return v.Dashboard.Balance.String()
}
