package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/session"
	"github.com/cheickthiam/portfolio/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials   = errors.New("Invalid credentials")
	ErrInvalidToken         = errors.New("Invalid or expired token")
	ErrAdminExists          = errors.New("an admin account already exists")
	ErrEmailInUse           = errors.New("email already in use")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

// Claims are the JWT claims issued to the admin. ID carries the admin id,
// RegisteredClaims.ID the session id.
type Claims struct {
	AdminID string `json:"id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	admins    repository.AdminRepository
	sessions  *session.Tracker
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(admins repository.AdminRepository, sessions *session.Tracker, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		admins:    admins,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Login checks the credentials and issues a token. Unknown emails and
// wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	err := validation.Required("email", email, "password", password)
	if err != nil {
		return nil, "", err
	}

	admin, err := s.admins.ByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get admin: %w", err)
	}

	err = s.ComparePassword(password, admin.PasswordHash)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("admin logged in", "admin_id", admin.ID)
	return admin, token, nil
}

// CreateAdmin bootstraps the single admin account. It refuses once any
// admin exists.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name string) (*model.Admin, error) {
	email = validation.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	err := validation.Required("email", email, "password", password, "name", name)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateName(name)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, err
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{Email: email, PasswordHash: hash, Name: name}
	err = s.admins.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin created", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}

// EnsureAdmin creates the admin at boot when none exists yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	_, err := s.CreateAdmin(ctx, email, password, name)
	if errors.Is(err, ErrAdminExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) Admin(ctx context.Context, id string) (*model.Admin, error) {
	return s.admins.ByID(ctx, id)
}

// UpdateAdmin applies the self-service fields of patch.
func (s *AuthService) UpdateAdmin(ctx context.Context, id string, patch model.AdminPatch) (*model.Admin, error) {
	admin, err := s.admins.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		err = validation.ValidateName(name)
		if err != nil {
			return nil, err
		}
		admin.Name = name
	}

	if patch.Email != nil {
		email := validation.NormalizeEmail(*patch.Email)
		err = validation.ValidateEmail(email)
		if err != nil {
			return nil, err
		}
		if email != admin.Email {
			existing, err := s.admins.ByEmail(ctx, email)
			if err != nil && !errors.Is(err, repository.ErrAdminNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if existing != nil {
				return nil, ErrEmailInUse
			}
		}
		admin.Email = email
	}

	err = s.admins.Update(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	err := validation.Required("currentPassword", currentPassword, "newPassword", newPassword)
	if err != nil {
		return err
	}

	admin, err := s.admins.ByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.ComparePassword(currentPassword, admin.PasswordHash)
	if err != nil {
		return ErrWrongCurrentPassword
	}

	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.PasswordHash = hash

	err = s.admins.Update(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	slog.Info("admin password changed", "admin_id", admin.ID)
	return nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT(admin *model.Admin) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}

	s.sessions.Touch(claims.ID, claims.ExpiresAt.Time)
	return tokenString, claims, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.AdminID == "" || claims.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Authenticate verifies the token and records session activity. Every
// failure maps to ErrInvalidToken.
func (s *AuthService) Authenticate(tokenString string) (*Claims, error) {
	claims, err := s.VerifyJWT(tokenString)
	if err != nil {
		slog.Debug("token rejected", "error", err)
		return nil, ErrInvalidToken
	}
	if !s.sessions.Touch(claims.ID, claims.ExpiresAt.Time) {
		slog.Debug("session ended", "admin_id", claims.AdminID)
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Logout ends the session identified by the token id.
func (s *AuthService) Logout(sessionID string, expiresAt time.Time) {
	s.sessions.Revoke(sessionID, expiresAt)
	slog.Info("session ended by logout", "session_id", sessionID)
}
