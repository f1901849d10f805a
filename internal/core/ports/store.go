package ports

import "go.trai.ch/hrdesk/internal/core/domain"

// SnapshotStore persists the roster snapshot between invocations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the stored snapshot.
	// Returns nil, nil if no snapshot has been stored.
	Load() (*domain.RosterSnapshot, error)

	// Save replaces the stored snapshot.
	Save(snapshot domain.RosterSnapshot) error
}
