package store

import (
	"fmt"
	"sync"

	"hardtrack/internal/model"
	"hardtrack/pkg/storage"
)

// Seed values for the first-run administrator account.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminQuestion = "What is your mother's maiden name?"
	DefaultAdminAnswer   = "bocalbos"
)

type UserStore interface {
	Find(username string) (*model.User, error)
	Create(user model.User) error
	Update(user model.User) error

	// SeedDefaultAdmin creates the default admin account only when no
	// account with that username exists. An existing record, customized
	// or not, is never touched.
	SeedDefaultAdmin() (created bool, err error)

	Path() string
}

type userStore struct {
	path  string
	mu    sync.Mutex
	users map[string]model.User
}

// OpenUserStore loads the user document, a mapping from username to
// account record. Absent file means no accounts yet; a corrupt file is
// reported, not discarded.
func OpenUserStore(path string) (UserStore, error) {
	s := &userStore{path: path, users: map[string]model.User{}}
	if _, err := storage.Load(path, &s.users); err != nil {
		return nil, err
	}
	for username, user := range s.users {
		user.Username = username
		s.users[username] = user
	}
	return s, nil
}

func (s *userStore) Path() string { return s.path }

func (s *userStore) save() error {
	return storage.Save(s.path, s.users)
}

func (s *userStore) Find(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return &user, nil
}

func (s *userStore) Create(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return fmt.Errorf("user %s: %w", user.Username, ErrDuplicate)
	}
	s.users[user.Username] = user
	if err := s.save(); err != nil {
		delete(s.users, user.Username)
		return err
	}
	return nil
}

func (s *userStore) Update(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, ok := s.users[user.Username]
	if !ok {
		return fmt.Errorf("user %s: %w", user.Username, ErrNotFound)
	}
	s.users[user.Username] = user
	if err := s.save(); err != nil {
		s.users[user.Username] = previous
		return err
	}
	return nil
}

func (s *userStore) SeedDefaultAdmin() (bool, error) {
	s.mu.Lock()
	if _, ok := s.users[DefaultAdminUsername]; ok {
		s.mu.Unlock()
		return false, nil
	}
	s.mu.Unlock()

	admin := model.User{
		Username:         DefaultAdminUsername,
		Role:             model.RoleAdmin,
		SecurityQuestion: DefaultAdminQuestion,
	}
	if err := admin.SetPassword(DefaultAdminPassword); err != nil {
		return false, err
	}
	if err := admin.SetSecurityAnswer(DefaultAdminAnswer); err != nil {
		return false, err
	}
	if err := s.Create(admin); err != nil {
		return false, err
	}
	return true, nil
}
