package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dalarosa-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, u *User)
	CurrentUser(ctx context.Context, token string) (*User, error)
	CreateAdmin(ctx context.Context, email, password string) (*User, error)
	OnAuthStateChange(fn AuthListener)
}

type service struct {
	repo   Repository
	secret string
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	listeners []AuthListener
}

func NewService(repo Repository, secret string, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &service{repo: repo, secret: secret, ttl: ttl, now: time.Now}
}

// SignIn never tells the caller which part of the credentials was wrong. A
// storage failure is returned as such, not as bad credentials.
func (s *service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SignIn"),
	)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		log.Info("email not found")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to load user", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedLoadUser, err)
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Info("password not match", zap.String("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := GenerateJWT(s.secret, *u, expiresAt)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	log.Info("sign in completed", zap.String("user_id", u.ID))
	s.notify(EventSignedIn, u)

	return &Session{Token: token, ExpiresAt: expiresAt, User: *u}, nil
}

func (s *service) SignOut(ctx context.Context, u *User) {
	s.notify(EventSignedOut, u)
}

func (s *service) CurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := ParseJWT(s.secret, token)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return u, nil
}

func (s *service) CreateAdmin(ctx context.Context, email, password string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAdmin"),
	)

	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < 8 {
		return nil, ErrPasswordShort
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, email, hashed, RoleAdmin)
	if err != nil {
		return nil, err
	}

	log.Info("admin created", zap.String("user_id", u.ID), zap.String("email", email))
	return u, nil
}

func (s *service) OnAuthStateChange(fn AuthListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *service) notify(event AuthEvent, u *User) {
	s.mu.RLock()
	listeners := append([]AuthListener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(event, u)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
