package service

import (
	"errors"
	"log"

	"hardtrack/internal/model"
	"hardtrack/internal/store"
	"hardtrack/pkg/jwt"
	"hardtrack/pkg/validator"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so the caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUserNotFound       = errors.New("username not found")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrMissingField       = errors.New("all fields are required")
	ErrIncorrectAnswer    = errors.New("incorrect answer")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Register(req *RegisterRequest) error
	FindAccount(username string) (question string, err error)
	ResetPassword(req *ResetPasswordRequest) error
	SecurityQuestions() []string

	// SeedDefaultAdmin creates the stock admin account on first run and
	// leaves any existing record alone.
	SeedDefaultAdmin() error
}

type LoginResponse struct {
	Token    string     `json:"token"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
	Confirm     string `json:"confirm" validate:"required"`
}

type authService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrMissingField
	}

	user, err := s.users.Find(username)
	if err != nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *authService) Register(req *RegisterRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrMissingField
	}
	if req.Password != req.Confirm {
		return ErrPasswordMismatch
	}

	// Every self-registered account is a cashier; admins exist only
	// through seeding.
	user := model.User{
		Username:         req.Username,
		Role:             model.RoleCashier,
		SecurityQuestion: req.Question,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return err
	}
	if err := user.SetSecurityAnswer(req.Answer); err != nil {
		return err
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (s *authService) FindAccount(username string) (string, error) {
	if username == "" {
		return "", ErrMissingField
	}
	user, err := s.users.Find(username)
	if err != nil {
		return "", ErrUserNotFound
	}
	return user.SecurityQuestion, nil
}

func (s *authService) ResetPassword(req *ResetPasswordRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrMissingField
	}
	if req.NewPassword != req.Confirm {
		return ErrPasswordMismatch
	}

	user, err := s.users.Find(req.Username)
	if err != nil {
		return ErrUserNotFound
	}
	if !user.CheckSecurityAnswer(req.Answer) {
		return ErrIncorrectAnswer
	}

	// Only the password hash changes; role, question and answer stay.
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.users.Update(*user)
}

func (s *authService) SecurityQuestions() []string {
	return model.SecurityQuestions
}

func (s *authService) SeedDefaultAdmin() error {
	created, err := s.users.SeedDefaultAdmin()
	if err != nil {
		return err
	}
	if created {
		log.Printf("seeded default admin account %q", store.DefaultAdminUsername)
	}
	return nil
}
