package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the shared lifecycle contract for both store backends: open at
// startup, close on shutdown, nothing else.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
