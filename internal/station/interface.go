package station

import (
	"chargemap/pkg/domain"
	"context"
)

// StatusChange is the outcome of a successful ChangeStatus call.
type StatusChange struct {
	ID     domain.StationID       `json:"station_id"`
	Status domain.OperationStatus `json:"status"`
}

//go:generate mockgen -package mockstation -source=interface.go -destination=mock/mockstation.go *
type Service interface {
	Search(ctx context.Context, postalCode string) ([]domain.ChargingStation, error)
	List(ctx context.Context) ([]domain.ChargingStation, error)
	ChangeStatus(ctx context.Context, id domain.StationID, status string) (*StatusChange, error)
	PostalCodes(ctx context.Context) ([]domain.PostalCode, error)
}

// PostalCodeCache remembers which id a postal-code number is stored under.
type PostalCodeCache interface {
	PostalCodeID(ctx context.Context, number int) (domain.PostalCodeID, bool, error)
	RememberPostalCode(ctx context.Context, number int, id domain.PostalCodeID) error
}
