package postgres

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

type PostgresDB struct {
	Conn   *sql.DB
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewPostgresDB(dbURL string) *PostgresDB {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	return &PostgresDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    dbURL,
	}
}

// EnsureSSLMode appends sslmode=require when the connection string does
// not pick one. Neon terminates TLS with a managed certificate, so the
// connection is encrypted but the chain is not verified (lib/pq
// "require" semantics).
func EnsureSSLMode(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		return dbURL
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (p *PostgresDB) Connect() error {
	conn, err := sql.Open("postgres", EnsureSSLMode(p.URL))
	if err != nil {
		return err
	}

	// Recommended pool tuning for Neon
	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)

	p.Conn = conn
	return p.Conn.Ping()
}

func (p *PostgresDB) Disconnect() error {
	p.Cancel()
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}

func (p *PostgresDB) GetContext() context.Context {
	return p.Ctx
}
