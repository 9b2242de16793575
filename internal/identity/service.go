package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Provider is the identity boundary: account creation, sign-in,
// sign-out, and token validation. Failures are logged and re-signaled
// to the caller for user-facing reporting.
type Provider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*User, error)
	SignIn(ctx context.Context, email, password string) (string, *User, error)
	SignOut(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (*User, error)
}

type authService struct {
	userRepo   Repository
	observer   *SessionObserver
	logger     *zap.Logger
	sessionTTL time.Duration
}

func NewProvider(userRepo Repository, observer *SessionObserver, sessionTTL time.Duration, logger *zap.Logger) Provider {
	return &authService{
		userRepo:   userRepo,
		observer:   observer,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		applog.Error(ctx, s.logger, "Error hashing password", zap.Error(err))
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		UID:          uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hashed),
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			applog.Warn(ctx, s.logger, "Email already registered", zap.String("email", email))
			return nil, err
		}

		applog.Error(ctx, s.logger, "Error signing up", zap.Error(err))
		return nil, err
	}

	applog.Info(ctx, s.logger, "User signed up", zap.String("uid", created.UID))
	return created, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}

		applog.Error(ctx, s.logger, "Error signing in", zap.Error(err))
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenID, err := GenerateSessionToken(user.UID, user.Email, s.sessionTTL)
	if err != nil {
		applog.Error(ctx, s.logger, "Error generating session token", zap.Error(err))
		return "", nil, fmt.Errorf("error generating session token: %w", err)
	}

	session := &Session{
		TokenID:   tokenID,
		UserUID:   user.UID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.userRepo.SaveSession(ctx, session); err != nil {
		applog.Error(ctx, s.logger, "Error saving session", zap.Error(err))
		return "", nil, err
	}

	applog.Info(ctx, s.logger, "User signed in", zap.String("uid", user.UID))
	s.observer.Notify(user)

	return token, user, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := ValidateSessionToken(token)
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}

	if err := s.userRepo.DeleteSession(ctx, claims.ID); err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			applog.Error(ctx, s.logger, "Error signing out", zap.Error(err))
			return err
		}
	}

	applog.Info(ctx, s.logger, "User signed out", zap.String("uid", claims.UID))
	s.observer.Notify(nil)

	return nil
}

// Validate resolves a bearer token to its user, checking both the
// signature and that the session has not been revoked.
func (s *authService) Validate(ctx context.Context, token string) (*User, error) {
	claims, err := ValidateSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	if _, err := s.userRepo.FindSession(ctx, claims.ID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByUID(ctx, claims.UID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
