// Backup command snapshots the database file.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var backupDirFlag string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a consistent snapshot of the database",
	Long: `Backup writes a timestamped copy of the database into the target
directory using SQLite's VACUUM INTO, safe to run while the store is in
use. The default target is a backups/ directory under the data directory.

Example:
  till backup
  till backup --dir /mnt/nas/tally`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupDirFlag, "dir", "", "target directory (default: <data-dir>/backups)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("backup", err)
	}
	defer store.Close()

	dir := backupDirFlag
	if dir == "" {
		dataDir, err := resolveDataDir()
		if err != nil {
			fail("backup", err)
		}
		dir = filepath.Join(dataDir, "backups")
	}

	path, err := store.Backup(dir)
	if err != nil {
		fail("backup", err)
	}

	fmt.Println("Backup written to", path)
	return nil
}
