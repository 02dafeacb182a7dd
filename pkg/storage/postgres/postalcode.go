package postgres

import (
	"chargemap/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	postalCodesTable = "postal_codes"
)

func (p *PgSQL) StorePostalCodes(ctx context.Context, codes ...domain.PostalCode) ([]domain.PostalCode, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	rows := make([]PgPostalCode, len(codes))
	for i := range codes {
		rows[i].FromDomain(codes[i])
	}

	var result []PgPostalCode
	if err := p.atomically(ctx, func(q *PgSQL) error {
		return q.Builder.Insert(postalCodesTable).
			Rows(rows).
			Returning(&PgPostalCode{}).
			Executor().ScanStructsContext(ctx, &result)
	}); err != nil {
		return nil, writeError(err, "could not store postal codes into pg")
	}

	return pgPostalCodesToDomain(result), nil
}

func (p *PgSQL) PostalCodeByID(ctx context.Context, id domain.PostalCodeID) (*domain.PostalCode, error) {
	return p.postalCodeWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) PostalCodeByNumber(ctx context.Context, number int) (*domain.PostalCode, error) {
	return p.postalCodeWhere(ctx, goqu.I("number").Eq(number))
}

func (p *PgSQL) postalCodeWhere(ctx context.Context, where goqu.Expression) (*domain.PostalCode, error) {
	var row PgPostalCode
	found, err := p.Builder.From(postalCodesTable).
		Where(where).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get postal code from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PostalCodeExists(ctx context.Context, number int) (bool, error) {
	count, err := p.Builder.From(postalCodesTable).
		Where(goqu.I("number").Eq(number)).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count postal codes in pg: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) PostalCodes(ctx context.Context) ([]domain.PostalCode, error) {
	var rows []PgPostalCode
	if err := p.Builder.From(postalCodesTable).
		Order(goqu.I("number").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list postal codes from pg: %w", err)
	}

	return pgPostalCodesToDomain(rows), nil
}
