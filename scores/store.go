package scores

import (
	"errors"
	"fmt"
)

// Store persists the leaderboard
type Store interface {
	Load() (*Table, error)
	Save(t *Table) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendFile     = "file"
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown score backend")

	// ErrMalformed is returned when stored scores cannot be parsed
	ErrMalformed = errors.New("malformed score data")
)

// Open creates the store for a backend; path is used by file backends, dsn by postgres
func Open(backend, path, dsn string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendJSON:
		return NewJSONStore(path), nil
	case BackendPostgres:
		return NewPostgresStore(dsn)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
