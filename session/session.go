// Package session tracks whether the current client is logged in and as whom.
package session

import (
	"errors"
	"fmt"

	"food-cart-api/cart"
	"food-cart-api/confirm"
	"food-cart-api/storage"
)

const (
	KeyLoggedIn  = "isLoggedIn"
	KeyUserEmail = "userEmail"

	LogoutPrompt = "Are you sure you want to logout?"
)

var ErrMissingCredentials = errors.New("email and password are required")

// Authenticator decides whether a credential pair may open a session.
type Authenticator interface {
	Authenticate(email, password string) error
}

// AnyNonEmpty accepts every non-empty email and password. There is no
// credential authority behind it.
type AnyNonEmpty struct{}

func (AnyNonEmpty) Authenticate(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	return nil
}

type Session struct {
	store    storage.Store
	auth     Authenticator
	loggedIn bool
	email    string
}

// Load reads the session flags from store. Anything other than "true" under
// KeyLoggedIn means logged out.
func Load(store storage.Store, auth Authenticator) (*Session, error) {
	if auth == nil {
		auth = AnyNonEmpty{}
	}
	s := &Session{store: store, auth: auth}
	flag, _, err := store.Get(KeyLoggedIn)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s.loggedIn = flag == "true"
	if s.loggedIn {
		s.email, _, err = store.Get(KeyUserEmail)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
	}
	return s, nil
}

func (s *Session) IsAuthenticated() bool { return s.loggedIn }

// Email is empty while logged out.
func (s *Session) Email() string { return s.email }

func (s *Session) Login(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if err := s.auth.Authenticate(email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.store.Set(KeyUserEmail, email); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.store.Set(KeyLoggedIn, "true"); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.loggedIn = true
	s.email = email
	return nil
}

// Logout ends the session and empties c once ask agrees. A declined prompt
// changes nothing and reports false.
func (s *Session) Logout(c *cart.Cart, ask confirm.Func) (bool, error) {
	if !ask(LogoutPrompt) {
		return false, nil
	}
	if err := s.store.Delete(KeyLoggedIn); err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}
	if err := s.store.Delete(KeyUserEmail); err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}
	if err := c.Clear(); err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}
	s.loggedIn = false
	s.email = ""
	return true, nil
}
