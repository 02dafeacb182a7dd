// Package storage defines the persistence interfaces the services rely on.
// A backend (PostgreSQL today) provides per-entity repositories together with
// scoped sessions and transactions that are released on every exit path.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"chargemap/pkg/domain"
	"context"
)

// StationStorage provides typed access to charging stations.
type StationStorage interface {
	// StoreStations inserts stations atomically and returns them with their
	// generated ids.
	StoreStations(ctx context.Context, stations ...domain.ChargingStation) ([]domain.ChargingStation, error)
	// StationByID returns the station with the given id, or nil when absent.
	StationByID(ctx context.Context, id domain.StationID) (*domain.ChargingStation, error)
	// Stations returns every station ordered by id.
	Stations(ctx context.Context) ([]domain.ChargingStation, error)
	// StationsByPostalCode returns the stations referencing the postal code.
	StationsByPostalCode(ctx context.Context, postalCodeID domain.PostalCodeID) ([]domain.ChargingStation, error)
	// UpdateStationStatus sets the status of a single station atomically.
	// ErrNoRows is returned when no station has the id.
	UpdateStationStatus(ctx context.Context, id domain.StationID, status domain.OperationStatus) error
}

// PostalCodeStorage provides typed access to postal codes.
type PostalCodeStorage interface {
	// StorePostalCodes inserts postal codes atomically and returns them with
	// their generated ids. A duplicate number fails with ErrDuplicate.
	StorePostalCodes(ctx context.Context, codes ...domain.PostalCode) ([]domain.PostalCode, error)
	// PostalCodeByID returns the postal code with the given id, or nil.
	PostalCodeByID(ctx context.Context, id domain.PostalCodeID) (*domain.PostalCode, error)
	// PostalCodeByNumber returns the postal code with the given number, or nil.
	PostalCodeByNumber(ctx context.Context, number int) (*domain.PostalCode, error)
	// PostalCodeExists reports whether a postal code with the number is stored.
	PostalCodeExists(ctx context.Context, number int) (bool, error)
	// PostalCodes returns every postal code ordered by number.
	PostalCodes(ctx context.Context) ([]domain.PostalCode, error)
}

// UserStorage provides typed access to users.
type UserStorage interface {
	// StoreUser inserts the user atomically and returns the generated id. A
	// taken username or email fails with ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (domain.UserID, error)
	// UserByID returns the user with the given id, or nil.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByUsernameOrEmail returns the user whose username or email equals
	// identifier, or nil.
	UserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	// UserExists reports whether any user holds the username or the email.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// Users returns every user ordered by id.
	Users(ctx context.Context) ([]domain.User, error)
}

// AllStorage groups every repository available on a storage handle.
type AllStorage interface {
	StationStorage
	PostalCodeStorage
	UserStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists all changes of the transaction.
	Commit() error
	// Rollback discards all changes of the transaction.
	Rollback() error
}

// Storage is the root storage handle shared by the services.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction. The transaction is committed when
	// cb returns nil and rolled back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
	// WithSession runs cb on a single dedicated connection that is released
	// when cb returns, whether it succeeded or not.
	WithSession(ctx context.Context, cb func(storage AllStorage) error) error
}
