package portal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/portal/date"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// SignupForm is what a new student fills in.
type SignupForm struct {
	Name            string    `validate:"required"`
	StudentNumber   string    `validate:"required"`
	Course          string    `validate:"required"`
	Year            YearLevel `validate:"yearlevel"`
	Email           string    `validate:"required,email"`
	Password        string    `validate:"required"`
	ConfirmPassword string    `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("yearlevel", func(fl validator.FieldLevel) bool {
		return YearLevel(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the form. Password confirmation is checked first, then
// every field.
func (f SignupForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return fmt.Errorf("%w: %s", ErrInvalidSignup, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidSignup, err)
	}
	return nil
}

// SessionManager is the only way to change the portal state: it signs
// students up, logs them in (repairing their records on the way) and out.
type SessionManager struct {
	store     *Store
	generator *Generator
	repairer  Repairer
	today     func() date.Date
}

// NewSessionManager returns a SessionManager over store. A nil generator uses NewGenerator().
func NewSessionManager(store *Store, generator *Generator) *SessionManager {
	if generator == nil {
		generator = NewGenerator()
	}
	today := generator.Today
	if today == nil {
		today = date.Today
	}
	return &SessionManager{store: store, generator: generator, today: today}
}

// Store returns the underlying store.
func (m *SessionManager) Store() *Store { return m.store }

// Signup validates the form, generates the records of the new student and
// registers the account. Nothing is written when it fails.
func (m *SessionManager) Signup(f SignupForm) (*Account, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	a := &Account{
		Name:          f.Name,
		StudentNumber: f.StudentNumber,
		Course:        f.Course,
		Year:          f.Year,
		Email:         f.Email,
		Password:      f.Password,
	}
	m.generator.Populate(a)
	if err := m.store.Register(a); err != nil {
		return nil, err
	}
	logg.WithFields(logrus.Fields{"studentNumber": a.StudentNumber, "course": a.Course}).Info("account created")
	return a.Clone(), nil
}

// Login authenticates the student, repairs their records, persists the
// repaired account if anything changed, and opens the session.
func (m *SessionManager) Login(identifier, password string) (*Account, error) {
	a, err := m.store.Authenticate(identifier, password)
	if err != nil {
		return nil, err
	}
	if m.repairer.Repair(a) {
		if err := m.store.Save(a); err != nil {
			return nil, fmt.Errorf("cannot save repaired account: %w", err)
		}
		logg.WithField("studentNumber", a.StudentNumber).Info("user data validated and fixed")
	}
	if err := m.store.SetSession(a); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// Logout closes the session.
func (m *SessionManager) Logout() error { return m.store.SetSession(nil) }

// Current returns the session account, or nil.
func (m *SessionManager) Current() *Account { return m.store.Session() }

// Dashboard returns the dashboard of the session account, or false without a session.
func (m *SessionManager) Dashboard() (Dashboard, bool) {
	a := m.store.Session()
	if a == nil {
		return Dashboard{}, false
	}
	return NewDashboard(a, m.today()), true
}

// Theme returns the saved theme.
func (m *SessionManager) Theme() Theme { return m.store.Theme() }

// SetTheme saves the theme preference.
func (m *SessionManager) SetTheme(t Theme) error { return m.store.SetTheme(t) }

// Repair repairs every stored account, and returns the student numbers of the changed ones.
func (m *SessionManager) Repair() ([]string, error) {
	var changed []string
	for a := range m.store.Accounts() {
		if !m.repairer.Repair(a) {
			continue
		}
		if err := m.store.Save(a); err != nil {
			return changed, err
		}
		changed = append(changed, a.StudentNumber)
	}
	return changed, nil
}

// Reset deletes every account, the session and the theme preference.
func (m *SessionManager) Reset() error { return m.store.Reset() }
