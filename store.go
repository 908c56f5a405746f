package portal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"slices"

	"github.com/PaesslerAG/jsonpath"
)

// Store is the collection of accounts plus the current session, persisted in
// a Storage.
//
// Accounts are only appended (or replaced by Save after a repair). Every
// account handed out is a clone: changing it does not change the store.
type Store struct {
	storage  Storage
	accounts []*Account
	session  *Account
}

// Open loads the accounts from s and clears any previous session, so that
// every start requires a new login.
func Open(s Storage) (*Store, error) {
	st := &Store{storage: s}

	data, err := s.Load(AccountsKey)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logg.Info("no accounts yet, starting with an empty store")
	case err != nil:
		return nil, fmt.Errorf("cannot load accounts: %w", err)
	default:
		st.accounts, err = DecodeAccounts(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}

	if err := s.Delete(SessionKey); err != nil {
		return nil, fmt.Errorf("cannot clear the previous session: %w", err)
	}
	return st, nil
}

// Accounts iterates over clones of every account, in signup order.
func (s *Store) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range s.accounts {
			if !yield(a.Clone()) {
				return
			}
		}
	}
}

// Len returns the number of accounts.
func (s *Store) Len() int { return len(s.accounts) }

// Register appends a new account and persists the collection.
//
// It fails with ErrDuplicateIdentity when an account already has the same
// name or the same student number.
func (s *Store) Register(a *Account) error {
	if slices.ContainsFunc(s.accounts, a.Collides) {
		return fmt.Errorf("cannot register %q (%s): %w", a.Name, a.StudentNumber, ErrDuplicateIdentity)
	}
	accounts := append(slices.Clip(s.accounts), a.Clone())
	if err := s.saveAccounts(accounts); err != nil {
		return err
	}
	s.accounts = accounts
	return nil
}

// Authenticate returns the first account whose name or student number is
// identifier, and whose password is password.
func (s *Store) Authenticate(identifier, password string) (*Account, error) {
	for _, a := range s.accounts {
		if a.Identifies(identifier) && a.Password == password {
			return a.Clone(), nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Save replaces the stored account with the same student number by a, and
// the session too when it is that account. Both are persisted.
func (s *Store) Save(a *Account) error {
	i := slices.IndexFunc(s.accounts, func(x *Account) bool { return x.StudentNumber == a.StudentNumber })
	if i < 0 {
		return fmt.Errorf("cannot save %q: no account with student number %q", a.Name, a.StudentNumber)
	}
	accounts := slices.Clone(s.accounts)
	accounts[i] = a.Clone()
	if err := s.saveAccounts(accounts); err != nil {
		return err
	}
	s.accounts = accounts

	if s.session != nil && s.session.StudentNumber == a.StudentNumber {
		return s.SetSession(a)
	}
	return nil
}

// SetSession makes a the current session, nil clears it.
func (s *Store) SetSession(a *Account) error {
	if a == nil {
		if err := s.storage.Delete(SessionKey); err != nil {
			return fmt.Errorf("cannot clear the session: %w", err)
		}
		s.session = nil
		return nil
	}
	var b bytes.Buffer
	if err := EncodeAccount(&b, a); err != nil {
		return err
	}
	if err := s.storage.Save(SessionKey, b.Bytes()); err != nil {
		return fmt.Errorf("cannot save the session: %w", err)
	}
	s.session = a.Clone()
	return nil
}

// Session returns a clone of the current session account, or nil.
func (s *Store) Session() *Account { return s.session.Clone() }

// Theme returns the saved theme, or DefaultTheme.
func (s *Store) Theme() Theme {
	data, err := s.storage.Load(ThemeKey)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logg.WithError(err).Warn("cannot load the theme preference, using the default")
		}
		return DefaultTheme
	}
	t, err := ParseTheme(string(bytes.TrimSpace(data)))
	if err != nil {
		logg.WithError(err).Warn("ignoring the theme preference")
		return DefaultTheme
	}
	return t
}

// SetTheme saves the theme preference.
func (s *Store) SetTheme(t Theme) error {
	if err := s.storage.Save(ThemeKey, []byte(t)); err != nil {
		return fmt.Errorf("cannot save the theme preference: %w", err)
	}
	return nil
}

// Reset deletes every account, the session and the theme preference.
func (s *Store) Reset() error {
	for _, key := range []string{AccountsKey, SessionKey, ThemeKey} {
		if err := s.storage.Delete(key); err != nil {
			return fmt.Errorf("cannot reset %q: %w", key, err)
		}
	}
	s.accounts, s.session = nil, nil
	return nil
}

// Query evaluates a jsonpath expression (e.g. "$[*].studentNumber") on the
// persisted accounts, as they are stored.
func (s *Store) Query(path string) (any, error) {
	data, err := s.storage.Load(AccountsKey)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = []byte("[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load accounts: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", AccountsKey, err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return v, nil
}

func (s *Store) saveAccounts(accounts []*Account) error {
	var b bytes.Buffer
	if err := EncodeAccounts(&b, accounts); err != nil {
		return err
	}
	if err := s.storage.Save(AccountsKey, b.Bytes()); err != nil {
		return fmt.Errorf("cannot save accounts: %w", err)
	}
	return nil
}
