package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backup writes a consistent snapshot of the database into dir and
// returns the created file path. VACUUM INTO runs online: sales can
// commit while the snapshot is taken, and the copy is compacted.
func (s *Store) Backup(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("backup dir must not be empty")
	}
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	name := fmt.Sprintf("tally-%s.db", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if _, err := db.Exec("VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}

	s.log.Info().Str("path", path).Msg("backup written")
	return path, nil
}
