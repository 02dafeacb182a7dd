// Package account implements user registration, login and listing.
package account

import (
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/metrics"
	"chargemap/pkg/password"
	"chargemap/pkg/serrors"
	"chargemap/pkg/storage"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	msgAlreadyExists      = "A user with this email already exists."
	msgInvalidCredentials = "Invalid credentials"
)

type service struct {
	storage storage.Storage
	hasher  PasswordHasher
	issuer  TokenIssuer
}

// Register validates params, checks that neither the username nor the email
// is taken and stores the user with a hashed password.
func (s service) Register(ctx context.Context, params domain.UserParams) (domain.UserID, error) {
	if params.Username == "" || params.Email == "" || params.Password == "" {
		return 0, serrors.With(serrors.ErrInvalidArgument, "Username, email, and password are required.")
	}

	user, err := domain.NewUser(params, s.hasher)
	if err != nil {
		return 0, serrors.Internal(err, "could not create user")
	}

	var id domain.UserID
	if err := s.storage.WithSession(ctx, func(strg storage.AllStorage) error {
		exists, err := strg.UserExists(ctx, user.Username, user.Email)
		if err != nil {
			return fmt.Errorf("could not check user existence: %w", err)
		}
		if exists {
			return serrors.With(serrors.ErrAlreadyExists, msgAlreadyExists)
		}

		id, err = strg.StoreUser(ctx, *user)
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrAlreadyExists, err, msgAlreadyExists)
		}
		if err != nil {
			return fmt.Errorf("could not store user: %w", err)
		}

		return nil
	}); err != nil {
		return 0, serrors.Internal(err, "could not register user")
	}

	logger.Info(ctx, "user registered", zap.Int64("user_id", int64(id)), zap.String("username", user.Username))

	return id, nil
}

// Login authenticates identifier, a username or an email, with password and
// returns a bearer token whose subject is the username.
func (s service) Login(ctx context.Context, identifier, plain string) (string, error) {
	user, err := s.storage.UserByUsernameOrEmail(ctx, identifier)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()

		return "", serrors.Internal(err, "could not get user")
	}
	if user == nil {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()

		return "", serrors.With(serrors.ErrUnauthorized, msgInvalidCredentials)
	}

	if err := s.hasher.Compare(user.PasswordHash, plain); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			logger.Warn(ctx, "could not compare password", zap.Int64("user_id", int64(user.ID)), zap.Error(err))
		}
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()

		return "", serrors.Wrap(serrors.ErrUnauthorized, err, msgInvalidCredentials)
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()

		return "", serrors.Internal(err, "could not issue token")
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	return token, nil
}

// Users returns every registered user.
func (s service) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.storage.Users(ctx)
	if err != nil {
		return nil, serrors.Internal(err, "could not list users")
	}

	return users, nil
}

// New creates a Service storing users in strg, hashing passwords with hasher
// and signing login tokens with issuer.
func New(strg storage.Storage, hasher PasswordHasher, issuer TokenIssuer) Service {
	return &service{
		storage: strg,
		hasher:  hasher,
		issuer:  issuer,
	}
}
