package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/portal"
	"github.com/etnz/portal/renderer"
)

func (m model) View() string {
	var body string
	switch m.currentView {
	case LoginView:
		body = m.renderLogin()
	case SignupView:
		body = m.renderSignup()
	case PortalView:
		body = m.renderPortal()
	default:
		body = "Unknown view"
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m model) renderField(label, value string, focused, secret bool) string {
	p := paletteOf(m.theme)
	if secret && !m.showPassword {
		value = strings.Repeat("•", len([]rune(value)))
	}
	if focused {
		value += "▌"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.label().Render(label),
		p.input(focused).Render(value),
	)
}

func (m model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return paletteOf(m.theme).status(!m.noticeIsErr).Render(m.notice)
}

func (m model) renderLogin() string {
	p := paletteOf(m.theme)
	parts := []string{
		p.title().MarginBottom(1).Render("🎓 Student Portal Login"),
		m.renderField("Name or Student Number", m.login[fieldIdentifier], m.focusedField == fieldIdentifier, false),
		m.renderField("Password", m.login[fieldPassword], m.focusedField == fieldPassword, true),
		p.button(m.focusedField == fieldLoginButton).Render("Login"),
		m.renderNotice(),
		p.help().Render("• Tab: Next field • Enter: Submit • Ctrl+R: Show password • Ctrl+N: Sign up • Esc: Quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) renderSignup() string {
	p := paletteOf(m.theme)
	parts := []string{p.title().MarginBottom(1).Render("📝 Create an Account")}
	for i, label := range signupLabels {
		secret := i == fieldSignupPassword || i == fieldConfirm
		parts = append(parts, m.renderField(label, m.signup[i], m.focusedField == i, secret))
	}
	parts = append(parts,
		p.button(m.focusedField == fieldSignupButton).Render("Sign Up"),
		m.renderNotice(),
		p.help().Render("Courses: "+strings.Join(portal.Courses, ", ")),
		p.help().Render("• Tab: Next field • Enter: Submit • Ctrl+R: Show password • Esc: Back to login"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) renderTabs() string {
	p := paletteOf(m.theme)
	tabs := make([]string, 0, len(renderer.Sections))
	for i, s := range renderer.Sections {
		tabs = append(tabs, p.tab(i == m.section).Render(renderer.Titles[s]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderPortal() string {
	p := paletteOf(m.theme)
	a := m.view.Account
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		p.title().Render("🎓 Student Portal"),
		p.help().Render(fmt.Sprintf("  %s • %s • theme %s", a.Name, a.StudentNumber, m.theme)),
	)

	var body string
	switch section := renderer.Sections[m.section]; section {
	case renderer.SectionDashboard:
		body = m.renderDashboard()
	case renderer.SectionRecord:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderStudentInfo(),
			"",
			m.tables[section].View(),
			"",
			m.renderDocuments(),
		)
	case renderer.SectionGrades:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.tables[section].View(),
			"",
			p.label().Render("General Weighted Average: ")+m.view.Dashboard.GWA,
		)
	case renderer.SectionLedger:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.tables[section].View(),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top,
				p.card().Render("Total Amount\n"+m.view.TotalAmount()),
				p.card().Render("Amount Paid\n"+m.view.PaidAmount()),
				p.card().Render("Balance\n"+m.view.BalanceAmount()),
			),
		)
	case renderer.SectionDocuments:
		body = m.renderDocuments()
	default:
		body = m.tables[section].View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderTabs(),
		"",
		body,
		"",
		m.renderNotice(),
		p.help().Render("• Tab/←→: Sections • ↑↓: Rows • T: Theme • Ctrl+L: Logout • Q: Quit"),
	)
}

func (m model) renderDashboard() string {
	p := paletteOf(m.theme)
	d := m.view.Dashboard
	return lipgloss.JoinVertical(lipgloss.Left,
		p.title().Render("Welcome, "+m.view.Account.Name),
		"",
		m.renderStudentInfo(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			p.card().Render("Current Balance\n"+m.view.BalanceAmount()),
			p.card().Render("Due Date\n"+d.DueDate.Long()),
			p.card().Render("Current GWA\n"+d.GWA),
		),
	)
}

func (m model) renderStudentInfo() string {
	p := paletteOf(m.theme)
	a := m.view.Account
	var b strings.Builder
	for _, row := range [][2]string{
		{"Name", a.Name},
		{"Student Number", a.StudentNumber},
		{"Course", a.Course},
		{"Year", string(a.Year)},
		{"Email", a.Email},
	} {
		fmt.Fprintf(&b, "%s %s\n", p.label().Width(16).Render(row[0]), row[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m model) renderDocuments() string {
	p := paletteOf(m.theme)
	lines := []string{p.label().Render("Documents")}
	for _, d := range m.view.Account.Documents {
		mark := "✅"
		if !d.Completed() {
			mark = "❌"
		}
		lines = append(lines, fmt.Sprintf("%s %-24s %s", mark, d.Name, p.status(d.Completed()).Render(d.Status)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
