// Package station implements the charging-station use cases: search by
// postal code, listing and status changes.
package station

import (
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/metrics"
	"chargemap/pkg/serrors"
	"chargemap/pkg/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	cache   PostalCodeCache
}

// Search returns every station located in the postal code given as token.
// Tokens that are not numeric, out of range or not stored are reported as
// not found.
func (s service) Search(ctx context.Context, postalCode string) ([]domain.ChargingStation, error) {
	number, err := domain.ParsePostalCodeNumber(postalCode)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "given postal_code is not valid: %s", postalCode)
	}

	var stations []domain.ChargingStation
	if err := s.storage.WithSession(ctx, func(strg storage.AllStorage) error {
		id, found, err := s.postalCodeID(ctx, strg, number)
		if err != nil {
			return err
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "given postal_code is not valid: %s", postalCode)
		}

		stations, err = strg.StationsByPostalCode(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get stations of postal code %d: %w", number, err)
		}

		return nil
	}); err != nil {
		return nil, serrors.Internal(err, "could not search charging stations")
	}

	return stations, nil
}

// postalCodeID resolves number to its stored id, consulting the cache
// first. Cache failures are logged and fall back to the store.
func (s service) postalCodeID(
	ctx context.Context,
	strg storage.AllStorage,
	number int) (domain.PostalCodeID, bool, error) {
	id, ok, err := s.cache.PostalCodeID(ctx, number)
	if err != nil {
		logger.Warn(ctx, "could not read postal code cache", zap.Int("postal_code", number), zap.Error(err))
	}
	if ok {
		return id, true, nil
	}

	code, err := strg.PostalCodeByNumber(ctx, number)
	if err != nil {
		return 0, false, fmt.Errorf("could not get postal code %d: %w", number, err)
	}
	if code == nil {
		return 0, false, nil
	}

	if err := s.cache.RememberPostalCode(ctx, number, code.ID); err != nil {
		logger.Warn(ctx, "could not update postal code cache", zap.Int("postal_code", number), zap.Error(err))
	}

	return code.ID, true, nil
}

// List returns every stored station.
func (s service) List(ctx context.Context) ([]domain.ChargingStation, error) {
	stations, err := s.storage.Stations(ctx)
	if err != nil {
		return nil, serrors.Internal(err, "could not list charging stations")
	}

	return stations, nil
}

// ChangeStatus moves station id into the named status. Any status may be
// reached from any other.
func (s service) ChangeStatus(ctx context.Context, id domain.StationID, status string) (*StatusChange, error) {
	newStatus, ok := domain.ParseOperationStatus(status)
	if !ok {
		names := make([]string, 0, len(domain.OperationStatuses()))
		for _, st := range domain.OperationStatuses() {
			names = append(names, string(st))
		}

		return nil, serrors.With(serrors.ErrInvalidArgument,
			"Invalid status. Must be one of: %s.", strings.Join(names, ", "))
	}

	if err := s.storage.WithSession(ctx, func(strg storage.AllStorage) error {
		station, err := strg.StationByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get charging station %d: %w", id, err)
		}
		if station == nil {
			return notFound(id)
		}
		if err := station.TransitionTo(newStatus); err != nil {
			return serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid status transition")
		}

		err = strg.UpdateStationStatus(ctx, id, station.Status)
		if errors.Is(err, storage.ErrNoRows) {
			return notFound(id)
		}
		if err != nil {
			return fmt.Errorf("could not update charging station %d: %w", id, err)
		}

		return nil
	}); err != nil {
		return nil, serrors.Internal(err, "could not change charging station status")
	}

	metrics.StationStatusChanges.WithLabelValues(string(newStatus)).Inc()
	logger.Info(ctx, "charging station status changed",
		zap.Int64("station_id", int64(id)), zap.String("status", string(newStatus)))

	return &StatusChange{ID: id, Status: newStatus}, nil
}

// PostalCodes returns every stored postal code.
func (s service) PostalCodes(ctx context.Context) ([]domain.PostalCode, error) {
	codes, err := s.storage.PostalCodes(ctx)
	if err != nil {
		return nil, serrors.Internal(err, "could not list postal codes")
	}

	return codes, nil
}

func notFound(id domain.StationID) error {
	return serrors.With(serrors.ErrNotFound, "Charging station with ID %d not found.", id)
}

// New creates a Service backed by strg. A nil cache disables caching.
func New(strg storage.Storage, cache PostalCodeCache) Service {
	if cache == nil {
		cache = noCache{}
	}

	return &service{
		storage: strg,
		cache:   cache,
	}
}

type noCache struct{}

func (noCache) PostalCodeID(context.Context, int) (domain.PostalCodeID, bool, error) {
	return 0, false, nil
}

func (noCache) RememberPostalCode(context.Context, int, domain.PostalCodeID) error { return nil }
