package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUID(ctx context.Context, uid string) (*User, error)
	SaveSession(ctx context.Context, session *Session) error
	FindSession(ctx context.Context, tokenID string) (*Session, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

type userRepo struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &userRepo{
		pool:   pool,
		logger: logger,
		tracer: otel.Tracer("identity/repository"),
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.CreateUser")
	defer span.End()

	span.SetAttributes(
		attribute.String("email", user.Email),
	)

	query := `
		INSERT INTO users (uid, email, display_name, photo_url, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at;
	`

	err := r.pool.QueryRow(ctx, query,
		user.UID, user.Email, user.DisplayName, user.PhotoURL, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}

		span.RecordError(err)

		applog.Error(
			ctx,
			r.logger,
			"Error creating user",
			zap.String("email", user.Email),
			zap.Error(err),
		)

		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.GetByEmail")
	defer span.End()

	query := `
		SELECT uid, email, display_name, photo_url, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	var u User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.UID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		span.RecordError(err)

		applog.Error(ctx, r.logger, "Error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return &u, nil
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (*User, error) {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.GetByUID")
	defer span.End()

	span.SetAttributes(
		attribute.String("uid", uid),
	)

	query := `
		SELECT uid, email, display_name, photo_url, password_hash, created_at, updated_at
		FROM users
		WHERE uid = $1;
	`

	var u User
	err := r.pool.QueryRow(ctx, query, uid).Scan(
		&u.UID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		span.RecordError(err)

		applog.Error(
			ctx,
			r.logger,
			"Error finding user by uid",
			zap.String("uid", uid),
			zap.Error(err),
		)

		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return &u, nil
}

func (r *userRepo) SaveSession(ctx context.Context, session *Session) error {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.SaveSession")
	defer span.End()

	query := `
		INSERT INTO sessions (token_id, user_uid, expires_at)
		VALUES ($1, $2, $3);
	`

	if _, err := r.pool.Exec(ctx, query, session.TokenID, session.UserUID, session.ExpiresAt); err != nil {
		span.RecordError(err)

		applog.Error(ctx, r.logger, "Error saving session", zap.Error(err))
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (r *userRepo) FindSession(ctx context.Context, tokenID string) (*Session, error) {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.FindSession")
	defer span.End()

	query := `
		SELECT token_id, user_uid, expires_at, created_at
		FROM sessions
		WHERE token_id = $1 AND expires_at > NOW();
	`

	var s Session
	err := r.pool.QueryRow(ctx, query, tokenID).Scan(
		&s.TokenID, &s.UserUID, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}

		span.RecordError(err)

		applog.Error(ctx, r.logger, "Error finding session", zap.Error(err))
		return nil, fmt.Errorf("error finding session: %w", err)
	}

	return &s, nil
}

func (r *userRepo) DeleteSession(ctx context.Context, tokenID string) error {
	ctx, span := r.tracer.Start(ctx, "IdentityRepository.DeleteSession")
	defer span.End()

	query := `
		DELETE FROM sessions
		WHERE token_id = $1;
	`

	tag, err := r.pool.Exec(ctx, query, tokenID)
	if err != nil {
		span.RecordError(err)

		applog.Error(ctx, r.logger, "Error deleting session", zap.Error(err))
		return fmt.Errorf("error deleting session: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}
