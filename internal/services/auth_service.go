package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Darshan-Yash/Periodic-table/config"
	"github.com/Darshan-Yash/Periodic-table/internal/domain/user"
	"github.com/Darshan-Yash/Periodic-table/internal/repository"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.SessionSecret),
		accessTTL: time.Duration(cfg.TokenExpiryHours) * time.Hour,
	}
}

type SignupInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Signup creates an account and returns a fresh access token.
// The explicit pre-check gives a clean duplicate error; the UNIQUE
// constraint on the email column catches the remaining race between
// concurrent signups, and both paths surface as ErrAlreadyExists.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return "", err
	}

	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return "", ptable_errors.ErrAlreadyExists
	}
	if !errors.Is(err, ptable_errors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	if _, err := s.userRepo.Create(ctx, in.Email, hash); err != nil {
		return "", err
	}

	return s.IssueToken(in.Email)
}

// Login verifies the credentials and returns a fresh access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, ptable_errors.ErrNotFound) {
			return "", ptable_errors.ErrUnauthorized
		}
		return "", err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return "", ptable_errors.ErrUnauthorized
	}

	return s.IssueToken(u.Email)
}

// CurrentUser resolves a verified token subject back to its account row.
// A valid token whose subject no longer exists yields ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (user.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// IssueToken signs a token carrying the subject email and an absolute
// expiry. Tokens are stateless; there is no server-side session row and no
// revocation.
func (s *AuthService) IssueToken(subjectEmail string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectEmail,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken checks the signature and expiry and returns the subject
// email. Expiry is reported as ErrTokenExpired; every other defect is
// ErrUnauthorized.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ptable_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ptable_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ptable_errors.ErrTokenExpired
		}
		return "", ptable_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ptable_errors.ErrUnauthorized
	}

	return claims.Subject, nil
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ptable_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, ptable_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, ptable_errors.ErrUnauthorized), errors.Is(err, ptable_errors.ErrTokenExpired):
		return 401
	case errors.Is(err, ptable_errors.ErrNotFound):
		return 404
	case errors.Is(err, ptable_errors.ErrUpstream):
		return 502
	case errors.Is(err, ptable_errors.ErrUpstreamTimeout):
		return 504
	default:
		return 500
	}
}

type ctxKey string

var subjectKey ctxKey = "subject"

func WithSubject(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, subjectKey, email)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(subjectKey)
	if value == nil {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return ptable_errors.ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return ptable_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
