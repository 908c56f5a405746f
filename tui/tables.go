package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/etnz/portal"
	"github.com/etnz/portal/renderer"
)

// newTables builds the tables of the sections that have one.
func newTables(a *portal.Account, p palette) map[string]table.Model {
	tables := make(map[string]table.Model)

	var rows []table.Row
	for _, r := range a.AcademicRecord {
		rows = append(rows, table.Row{r.AcademicYear, r.Year, r.Semester, r.Status, r.Units.String(), r.GWA})
	}
	tables[renderer.SectionRecord] = newTable([]table.Column{
		{Title: "Academic Year", Width: 13},
		{Title: "Year", Width: 5},
		{Title: "Semester", Width: 8},
		{Title: "Status", Width: 8},
		{Title: "Units", Width: 5},
		{Title: "GWA", Width: 5},
	}, rows, p)

	rows = nil
	for _, s := range a.Schedule {
		rows = append(rows, table.Row{s.Subject, s.Units.String(), s.Day, s.Time, s.Room, s.Professor})
	}
	tables[renderer.SectionSchedule] = newTable([]table.Column{
		{Title: "Subject", Width: 30},
		{Title: "Units", Width: 5},
		{Title: "Day", Width: 18},
		{Title: "Time", Width: 19},
		{Title: "Room", Width: 18},
		{Title: "Professor", Width: 15},
	}, rows, p)

	rows = nil
	for _, g := range a.Grades {
		rows = append(rows, table.Row{g.Subject, g.Units.String(), g.Prelim, g.Midterm, g.Final, g.FinalGrade})
	}
	tables[renderer.SectionGrades] = newTable([]table.Column{
		{Title: "Subject", Width: 30},
		{Title: "Units", Width: 5},
		{Title: "Prelim", Width: 7},
		{Title: "Midterm", Width: 7},
		{Title: "Final", Width: 7},
		{Title: "Final Grade", Width: 11},
	}, rows, p)

	rows = nil
	for _, e := range a.Ledger {
		rows = append(rows, table.Row{e.Date.String(), e.Description, e.Amount, e.Status})
	}
	tables[renderer.SectionLedger] = newTable([]table.Column{
		{Title: "Date", Width: 10},
		{Title: "Description", Width: 30},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 20},
	}, rows, p)

	return tables
}

func newTable(columns []table.Column, rows []table.Row, p palette) table.Model {
	tableHeight := min(max(len(rows)+1, 5), 15)
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)
	tbl.SetStyles(p.tableStyles())
	return tbl
}
