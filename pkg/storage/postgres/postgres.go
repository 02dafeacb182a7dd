package postgres

import (
	"chargemap/pkg/storage"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections to the database
	MaxOpenConnections int
	// MaxIdleConnections is the minimum number of connections kept open by the pool
	MaxIdleConnections int
}

// DB is the subset of database/sql used by the repositories. *sql.DB,
// *sql.Conn and *sql.Tx all satisfy it, so the same queries run on the pool,
// inside a session or inside a transaction.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu used to construct queries bound to DB.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage for PostgreSQL using database/sql and goqu.
type PgSQL struct {
	// DB is the underlying executor: a *sql.DB for the root handle, a
	// *sql.Conn inside WithSession or a *sql.Tx inside a transaction.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
	// Pool is the pgx pool backing the root handle. It is nil on derived handles.
	Pool *pgxpool.Pool
}

var _ storage.Storage = (*PgSQL)(nil)

// sessionConn adapts a *sql.Conn to goqu's SQLDatabase, which also asks for
// a context-free Begin.
type sessionConn struct {
	*sql.Conn
}

func (c sessionConn) Begin() (*sql.Tx, error) {
	return c.BeginTx(context.Background(), nil) //nolint: wrapcheck
}

// Close closes the underlying pgx connection pool.
func (p *PgSQL) Close() error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when PgSQL is not in a transactional context.
func (p *PgSQL) Commit() error {
	db, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when PgSQL is not in a transactional context.
func (p *PgSQL) Rollback() error {
	db, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction on the pool or on the session connection.
// storage.ErrAlreadyInTx is returned when p is already transactional.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	return p.begin(ctx)
}

func (p *PgSQL) begin(ctx context.Context) (*PgSQL, error) {
	var (
		tx  *sql.Tx
		err error
	)
	switch db := p.DB.(type) {
	case *sql.DB:
		tx, err = db.BeginTx(ctx, nil)
	case *sql.Conn:
		tx, err = db.BeginTx(ctx, nil)
	default:
		return nil, storage.ErrAlreadyInTx
	}
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx starts a transaction, runs cb with it and commits when cb returns
// nil. If cb fails the transaction is rolled back and the error returned.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// WithSession acquires a dedicated connection from the pool, runs cb on it
// and releases the connection on every exit path, including panics.
func (p *PgSQL) WithSession(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrInSession
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("could not acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return cb(&PgSQL{
		DB:      conn,
		Builder: goqu.Dialect(dialect).DB(sessionConn{conn}),
	})
}

// atomically runs fn inside the current transaction or, when p is not
// transactional, inside a new one that is rolled back if fn fails.
func (p *PgSQL) atomically(ctx context.Context, fn func(q *PgSQL) error) error {
	if _, ok := p.DB.(*sql.Tx); ok {
		return fn(p)
	}

	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// writeError annotates err and maps unique violations onto storage.ErrDuplicate.
func writeError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w: %w", msg, storage.ErrDuplicate, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// NewFromDB wraps an already opened *sql.DB.
func NewFromDB(db *sql.DB) *PgSQL {
	return &PgSQL{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
	}
}

// New creates a new PostgreSQL storage instance backed by pgxpool, and a
// database/sql wrapper for compatibility with goqu and migrations.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not ping postgres: %w", err)
	}

	// wrap the pool with a *sql.DB to keep compatibility with goqu and goose
	pg := NewFromDB(stdlib.OpenDBFromPool(pool))
	pg.Pool = pool

	return pg, nil
}
