// Package snapshot persists the employee roster between invocations.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
	// formatVersion is bumped whenever the envelope layout changes.
	formatVersion = 1
)

// envelope is the on-disk layout. Checksum covers the raw Roster bytes.
type envelope struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	Roster   json.RawMessage `json:"roster"`
}

// Store implements ports.SnapshotStore with a single JSON file.
// An empty path disables persistence.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored snapshot. Returns nil, nil when there is none.
func (s *Store) Load() (*domain.RosterSnapshot, error) {
	if s.path == "" {
		return nil, nil
	}

	//nolint:gosec // Path comes from resolved settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrSnapshotReadFailed, err), "path", s.path)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrSnapshotCorrupt, err), "path", s.path)
	}
	if env.Version != formatVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotCorrupt, "unsupported snapshot version"), "version", env.Version)
	}
	if env.Checksum != checksum(env.Roster) {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotCorrupt, "checksum mismatch"), "path", s.path)
	}

	var snap domain.RosterSnapshot
	if err := json.Unmarshal(env.Roster, &snap); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrSnapshotCorrupt, err), "path", s.path)
	}
	if snap.Employees == nil {
		snap.Employees = []domain.Employee{}
	}

	return &snap, nil
}

// Save atomically replaces the stored snapshot.
func (s *Store) Save(snapshot domain.RosterSnapshot) error {
	if s.path == "" {
		return nil
	}

	roster, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Join(domain.ErrSnapshotWriteFailed, err)
	}

	data, err := json.Marshal(envelope{
		Version:  formatVersion,
		Checksum: checksum(roster),
		Roster:   roster,
	})
	if err != nil {
		return errors.Join(domain.ErrSnapshotWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrSnapshotWriteFailed, err), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, ".roster-*.tmp")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrSnapshotWriteFailed, err), "dir", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrSnapshotWriteFailed, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrSnapshotWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrSnapshotWriteFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(errors.Join(domain.ErrSnapshotWriteFailed, err), "path", s.path)
	}
	return nil
}

func checksum(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
