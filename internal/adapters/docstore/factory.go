package docstore

import "fmt"

// Backend names accepted by Open. Kept in sync with internal/config.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Open constructs the configured Store backend.
func Open(backend, dataDir, dsn string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendBadger:
		return OpenBadger(dataDir)
	case BackendPostgres:
		return OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
