package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

// Bootstrap admin credentials for the one-time /admin/init-admin call.
const (
	InitialAdminEmail    = "admin@ecycle.com"
	InitialAdminPassword = "admin123"
)

type AuthService struct {
	Users      *repos.UserRepo
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Phone    string
	Address  string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Register creates a non-admin account. The email conflict is checked before
// the username conflict, and the password is stored only as a bcrypt hash.
func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := s.Users.ByUsername(in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:    in.Email,
		Username: in.Username,
		Hash:     string(hash),
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (TokenPair, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return TokenPair{}, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return TokenPair{}, ErrBadCreds
	}
	return s.issueTokens(u.Email)
}

// Refresh re-resolves the subject and issues a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	email, err := s.verify(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return TokenPair{}, ErrUserNotFound
	}
	return s.issueTokens(u.Email)
}

// UserFromToken resolves a bearer token to its user record.
func (s *AuthService) UserFromToken(token string) (*domain.User, error) {
	email, err := s.verify(token)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// CreateAdmin adds an admin account on behalf of an existing admin.
func (s *AuthService) CreateAdmin(in RegisterInput) (*domain.User, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:    in.Email,
		Username: in.Username,
		Hash:     string(hash),
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
		IsAdmin:  true,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// InitAdmin creates the first admin with fixed credentials. Repeated calls
// never produce a second admin.
func (s *AuthService) InitAdmin() (*domain.User, error) {
	exists, err := s.Users.AdminExists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(InitialAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:    InitialAdminEmail,
		Username: "admin",
		Hash:     string(hash),
		FullName: "System Administrator",
		IsAdmin:  true,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issueTokens(email string) (TokenPair, error) {
	access, err := s.sign(email, s.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(email, s.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *AuthService) sign(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

func (s *AuthService) verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
