// Package renderer renders the portal views of an account as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/portal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed *.md
var templates embed.FS

// Sections of the portal, in menu order.
const (
	SectionDashboard = "dashboard"
	SectionRecord    = "record"
	SectionSchedule  = "schedule"
	SectionGrades    = "grades"
	SectionLedger    = "ledger"
	SectionDocuments = "documents"
)

// Sections lists every section, in menu order.
var Sections = []string{SectionDashboard, SectionRecord, SectionSchedule, SectionGrades, SectionLedger, SectionDocuments}

// Titles of the sections.
var Titles = map[string]string{
	SectionDashboard: "Dashboard",
	SectionRecord:    "Student Record",
	SectionSchedule:  "Class Schedule",
	SectionGrades:    "Grades",
	SectionLedger:    "Student Ledger",
	SectionDocuments: "Documents",
}

// partials of each section.
var partials = map[string]map[string]string{
	SectionDashboard: {
		"student_info":      "record_student.md",
		"dashboard_summary": "dashboard_summary.md",
	},
	SectionRecord: {
		"student_info":    "record_student.md",
		"record_academic": "record_academic.md",
		"documents_list":  "documents_list.md",
	},
	SectionSchedule: {},
	SectionGrades: {
		"grades_gwa": "grades_gwa.md",
	},
	SectionLedger: {
		"ledger_entries": "ledger_entries.md",
		"ledger_summary": "ledger_summary.md",
	},
	SectionDocuments: {
		"documents_list": "documents_list.md",
	},
}

var funcs = template.FuncMap{
	"cell":  cell,
	"units": units,
}

// Render renders a section of v as markdown.
func Render(section string, v *View) (string, error) {
	p, ok := partials[section]
	if !ok {
		return "", fmt.Errorf("unknown section %q, valid sections are %s", section, strings.Join(Sections, ", "))
	}
	return renderTemplate(section, section+".md", p, v), nil
}

// HTML converts markdown into an HTML fragment, tables included.
func HTML(w io.Writer, markdown string) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("cannot convert markdown to HTML: %w", err)
	}
	return nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// cell prints v for a markdown table cell.
func cell(v any) string {
	s := strings.ReplaceAll(fmt.Sprint(v), "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// units prints the units of a row, the default when missing.
func units(u portal.Units) portal.Units {
	if u.IsMissing() {
		return portal.DefaultUnits
	}
	return u
}
