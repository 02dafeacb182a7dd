package postgres

import (
	"chargemap/pkg/domain"
	"chargemap/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	stationsTable = "charging_stations"
)

func (p *PgSQL) StoreStations(ctx context.Context,
	stations ...domain.ChargingStation) ([]domain.ChargingStation, error) {
	if len(stations) == 0 {
		return nil, nil
	}

	rows := make([]PgChargingStation, len(stations))
	for i := range stations {
		rows[i].FromDomain(stations[i])
	}

	var result []PgChargingStation
	if err := p.atomically(ctx, func(q *PgSQL) error {
		return q.Builder.Insert(stationsTable).
			Rows(rows).
			Returning(&PgChargingStation{}).
			Executor().ScanStructsContext(ctx, &result)
	}); err != nil {
		return nil, writeError(err, "could not store charging stations into pg")
	}

	return pgStationsToDomain(result), nil
}

func (p *PgSQL) StationByID(ctx context.Context, id domain.StationID) (*domain.ChargingStation, error) {
	var row PgChargingStation
	found, err := p.Builder.From(stationsTable).
		Where(goqu.I("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get charging station by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Stations(ctx context.Context) ([]domain.ChargingStation, error) {
	var rows []PgChargingStation
	if err := p.Builder.From(stationsTable).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list charging stations from pg: %w", err)
	}

	return pgStationsToDomain(rows), nil
}

func (p *PgSQL) StationsByPostalCode(ctx context.Context,
	postalCodeID domain.PostalCodeID) ([]domain.ChargingStation, error) {
	var rows []PgChargingStation
	if err := p.Builder.From(stationsTable).
		Where(goqu.I("postal_code_id").Eq(int64(postalCodeID))).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list charging stations by postal code from pg: %w", err)
	}

	return pgStationsToDomain(rows), nil
}

// UpdateStationStatus sets status and updated_at of one station in its own
// transaction unless p is already transactional.
func (p *PgSQL) UpdateStationStatus(ctx context.Context, id domain.StationID, status domain.OperationStatus) error {
	return p.atomically(ctx, func(q *PgSQL) error {
		res, err := q.Builder.Update(stationsTable).
			Set(goqu.Record{
				"status":     string(status),
				"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(goqu.I("id").Eq(int64(id))).
			Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not update charging station status in pg: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not read affected rows: %w", err)
		}
		if affected == 0 {
			return storage.ErrNoRows
		}

		return nil
	})
}
