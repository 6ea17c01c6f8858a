// Package kvstore provides the small durable key-value slot the task list is
// persisted into. Values are opaque strings.
package kvstore

import (
	"context"
	"errors"
	"fmt"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var ErrUnknownDriver = errors.New("kvstore: unknown driver")

// Store is a durable string-to-string map.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver string
	Path   string // file and sqlite
	DSN    string // mysql
}

// Open creates the Store described by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		f, err := NewFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case DriverSQLite:
		s, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMySQL:
		s, err := OpenMySQL(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
