package account

import (
	"chargemap/pkg/domain"
	"context"
)

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	Register(ctx context.Context, params domain.UserParams) (domain.UserID, error)
	Login(ctx context.Context, identifier, password string) (string, error)
	Users(ctx context.Context) ([]domain.User, error)
}

// TokenIssuer signs bearer credentials for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// PasswordHasher hashes passwords and compares them against stored hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
