package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davidosoro/userhub/pkg/model"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// Config holds the toggleable policies around registration and login
type Config struct {
	// EnforceUniqueEmail rejects registrations reusing an existing email
	EnforceUniqueEmail bool

	// IssueLoginTokens issues a signed JWT on successful authentication
	IssueLoginTokens bool

	// TokenKey is the HMAC key for issued tokens
	TokenKey []byte

	// TokenTTL is the lifetime of issued tokens
	TokenTTL time.Duration
}

// Service implements the registration and authentication flows on top of a
// UsersStore
type Service struct {
	users store.UsersStore
	cfg   Config
	now   func() time.Time
}

// NewService creates a Service with the given store and policies
func NewService(users store.UsersStore, cfg Config) *Service {
	return &Service{
		users: users,
		cfg:   cfg,
		now:   time.Now,
	}
}

// RegistrationInput is the raw form input for the registration flow
type RegistrationInput struct {
	Name     string
	Email    string
	Age      int
	Password string
}

// LoginResult reports a successful authentication. Token is empty unless
// token issuance is enabled.
type LoginResult struct {
	User  *model.User
	Token string
}

// Register validates the input, derives a bcrypt hash and persists a new
// user record. The returned record carries the hash; callers serializing it
// to an external boundary must not expose it (model.User marshals without
// it).
func (s *Service) Register(input RegistrationInput) (*model.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Age <= 0 {
		return nil, NewValidationError("missing field")
	}
	if input.Age < 18 {
		return nil, NewValidationError("underage")
	}
	if !CheckPasswordPolicy(input.Password) {
		return nil, NewValidationError("weak password")
	}

	if s.cfg.EnforceUniqueEmail {
		_, err := s.users.FindUserByEmail(input.Email)
		switch {
		case err == nil:
			return nil, NewValidationError("email taken")
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("checking email uniqueness: %w", err)
		}
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.CreateUser(&model.User{
		Name:         input.Name,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Authenticate looks up the user by email and verifies the submitted
// password against the stored hash. On a match it returns the user and,
// when issuance is enabled, a signed login token. No session state is kept
// server-side.
func (s *Service) Authenticate(email, password string) (*LoginResult, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	result := &LoginResult{User: user}
	if s.cfg.IssueLoginTokens {
		token, err := s.issueToken(user)
		if err != nil {
			return nil, fmt.Errorf("issuing login token: %w", err)
		}
		result.Token = token
	}

	return result, nil
}

func (s *Service) issueToken(user *model.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.TokenKey)
}
