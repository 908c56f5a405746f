// Package tui is the interactive student portal: login and signup forms, then
// a tabbed view of the student records.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/portal"
	"github.com/etnz/portal/date"
	"github.com/etnz/portal/renderer"
)

type ViewType int

const (
	LoginView ViewType = iota
	SignupView
	PortalView
)

const (
	fieldIdentifier = iota
	fieldPassword
	fieldLoginButton
	loginFields
)

const (
	fieldName = iota
	fieldStudentNumber
	fieldCourse
	fieldYear
	fieldEmail
	fieldSignupPassword
	fieldConfirm
	fieldSignupButton
	signupFields
)

var signupLabels = [signupFields - 1]string{
	"Full Name", "Student Number", "Course", "Year Level", "Email", "Password", "Confirm Password",
}

type model struct {
	portal *portal.SessionManager
	today  func() date.Date

	width        int
	height       int
	currentView  ViewType
	theme        portal.Theme
	focusedField int
	showPassword bool
	notice       string
	noticeIsErr  bool

	login  [fieldLoginButton]string
	signup [fieldSignupButton]string

	view    *renderer.View
	section int
	tables  map[string]table.Model
}

func newModel(m *portal.SessionManager, today func() date.Date) model {
	return model{
		portal:      m,
		today:       today,
		currentView: LoginView,
		theme:       m.Theme(),
	}
}

// Run opens the interactive portal over m until the user quits.
func Run(m *portal.SessionManager) error {
	_, err := tea.NewProgram(newModel(m, date.Today), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.currentView {
	case LoginView:
		return m.handleLoginKeys(msg)
	case SignupView:
		return m.handleSignupKeys(msg)
	case PortalView:
		return m.handlePortalKeys(msg)
	default:
		return m, nil
	}
}

func (m model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+n":
		m.currentView = SignupView
		m.focusedField = fieldName
		m.notice = ""
	case "ctrl+r":
		m.showPassword = !m.showPassword
	case "tab", "down":
		m.focusedField = (m.focusedField + 1) % loginFields
	case "shift+tab", "up":
		m.focusedField = (m.focusedField - 1 + loginFields) % loginFields
	case "enter":
		if m.focusedField != fieldLoginButton {
			m.focusedField++
			return m, nil
		}
		m.submitLogin()
	case "backspace":
		if m.focusedField < fieldLoginButton {
			m.login[m.focusedField] = trimLast(m.login[m.focusedField])
		}
	default:
		if m.focusedField < fieldLoginButton {
			m.login[m.focusedField] += typed(msg)
		}
	}
	return m, nil
}

func (m *model) submitLogin() {
	identifier, password := m.login[fieldIdentifier], m.login[fieldPassword]
	if identifier == "" || password == "" {
		m.setNotice("Please enter your name or student number, and your password.", true)
		return
	}
	a, err := m.portal.Login(identifier, password)
	if err != nil {
		if errors.Is(err, portal.ErrInvalidCredentials) {
			m.setNotice("Invalid credentials. Please try again.", true)
		} else {
			m.setNotice(err.Error(), true)
		}
		return
	}
	m.login = [fieldLoginButton]string{}
	m.showPortal(a)
}

func (m model) handleSignupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetToLogin()
	case "ctrl+r":
		m.showPassword = !m.showPassword
	case "tab", "down":
		m.focusedField = (m.focusedField + 1) % signupFields
	case "shift+tab", "up":
		m.focusedField = (m.focusedField - 1 + signupFields) % signupFields
	case "enter":
		if m.focusedField != fieldSignupButton {
			m.focusedField++
			return m, nil
		}
		m.submitSignup()
	case "backspace":
		if m.focusedField < fieldSignupButton {
			m.signup[m.focusedField] = trimLast(m.signup[m.focusedField])
		}
	default:
		if m.focusedField < fieldSignupButton {
			m.signup[m.focusedField] += typed(msg)
		}
	}
	return m, nil
}

func (m *model) submitSignup() {
	year, err := portal.ParseYearLevel(m.signup[fieldYear])
	if err != nil {
		year = portal.YearLevel(m.signup[fieldYear])
	}
	a, err := m.portal.Signup(portal.SignupForm{
		Name:            m.signup[fieldName],
		StudentNumber:   m.signup[fieldStudentNumber],
		Course:          m.signup[fieldCourse],
		Year:            year,
		Email:           m.signup[fieldEmail],
		Password:        m.signup[fieldSignupPassword],
		ConfirmPassword: m.signup[fieldConfirm],
	})
	switch {
	case errors.Is(err, portal.ErrPasswordMismatch):
		m.setNotice("Passwords do not match.", true)
		return
	case errors.Is(err, portal.ErrDuplicateIdentity):
		m.setNotice("User already exists with this name or student number.", true)
		return
	case err != nil:
		m.setNotice(err.Error(), true)
		return
	}
	m.signup = [fieldSignupButton]string{}
	m.resetToLogin()
	m.login[fieldIdentifier] = a.StudentNumber
	m.focusedField = fieldPassword
	m.setNotice("Account created successfully! Please log in.", false)
}

func (m model) handlePortalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.section = (m.section + 1) % len(renderer.Sections)
	case "shift+tab", "left", "h":
		m.section = (m.section - 1 + len(renderer.Sections)) % len(renderer.Sections)
	case "t":
		m.cycleTheme()
	case "ctrl+l":
		if err := m.portal.Logout(); err != nil {
			m.setNotice(err.Error(), true)
			return m, nil
		}
		m.resetToLogin()
	case "up", "k", "down", "j":
		section := renderer.Sections[m.section]
		if tbl, ok := m.tables[section]; ok {
			var cmd tea.Cmd
			m.tables[section], cmd = tbl.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *model) cycleTheme() {
	theme := m.theme.Next()
	if err := m.portal.SetTheme(theme); err != nil {
		m.setNotice(err.Error(), true)
		return
	}
	m.theme = theme
	if m.view != nil {
		m.tables = newTables(m.view.Account, paletteOf(m.theme))
	}
}

func (m *model) showPortal(a *portal.Account) {
	m.currentView = PortalView
	m.view = renderer.NewView(a, m.today())
	m.tables = newTables(a, paletteOf(m.theme))
	m.section = 0
	m.notice = ""
}

func (m *model) resetToLogin() {
	m.currentView = LoginView
	m.focusedField = fieldIdentifier
	m.showPassword = false
	m.notice = ""
	m.view = nil
	m.tables = nil
	m.section = 0
}

func (m *model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeIsErr = isErr
}

// typed returns the text a key press types in a field.
func typed(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return string(msg.Runes)
	}
	return ""
}

func trimLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
