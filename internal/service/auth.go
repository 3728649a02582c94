package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService registers and logs in advisors
type AuthService struct {
	advisors AdvisorStore
	secret   []byte
	ttl      time.Duration
	invite   []byte
	log      *logrus.Logger
}

// NewAuthService initializes a new auth service. Registration requires inviteCode
// and is closed when it is empty.
func NewAuthService(advisors AdvisorStore, jwtSecret string, ttl time.Duration, inviteCode string, log *logrus.Logger) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{advisors: advisors, secret: []byte(jwtSecret), ttl: ttl, invite: []byte(inviteCode), log: log}
}

// Register creates a new advisor with hashed password
func (s *AuthService) Register(ctx context.Context, username, email, password, inviteCode string) (*models.Advisor, error) {
	if len(s.invite) == 0 {
		return nil, ErrRegistrationClosed
	}
	if subtle.ConstantTimeCompare(s.invite, []byte(inviteCode)) != 1 {
		s.log.Warnf("Advisor registration rejected for %s: bad invite code", email)
		return nil, ErrInvalidInvite
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("username, email and a password of at least 8 characters are required")
	}

	existing, err := s.advisors.FindAdvisorByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdvisorExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	advisor := &models.Advisor{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.advisors.CreateAdvisor(ctx, advisor); err != nil {
		return nil, err
	}

	s.log.Infof("Advisor registered: %s", advisor.Email)
	return advisor, nil
}

// Login authenticates an advisor and returns a JWT token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	advisor, err := s.advisors.FindAdvisorByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if advisor == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(advisor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", advisor.ID),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("Advisor logged in: %s", advisor.Email)
	return tokenString, nil
}
