package postgres

import (
	"chargemap/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (domain.UserID, error) {
	var row PgUser
	row.FromDomain(user)

	var id int64
	if err := p.atomically(ctx, func(q *PgSQL) error {
		_, err := q.Builder.Insert(usersTable).
			Rows(row).
			Returning(goqu.C("id")).
			Executor().ScanValContext(ctx, &id)

		return err //nolint: wrapcheck
	}); err != nil {
		return 0, writeError(err, "could not store user into pg")
	}

	return domain.UserID(id), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(int64(id)))
}

// UserByUsernameOrEmail matches identifier against both unique columns. The
// oldest account wins if the identifier is a username of one user and the
// email of another.
func (p *PgSQL) UserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Or(
		goqu.I("username").Eq(identifier),
		goqu.I("email").Eq(identifier),
	))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Order(goqu.I("id").Asc()).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserExists(ctx context.Context, username, email string) (bool, error) {
	count, err := p.Builder.From(usersTable).
		Where(goqu.Or(
			goqu.I("username").Eq(username),
			goqu.I("email").Eq(email),
		)).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count users in pg: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) Users(ctx context.Context) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
