package main

import (
	"os"

	"github.com/spf13/cobra"

	"filesavant/internal/snapshot"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [directory]",
	Short: "Write a compressed metadata snapshot of a directory tree",
	Long: `Walk a directory tree and write the metadata of every visible entry
to a zstd-compressed snapshot file. Snapshots can later be inspected or
compared against a live tree.

Example:
  filesavant snapshot /srv/data -o data.snap.zst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "filesavant.snap.zst",
		"Snapshot output file")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	f, err := os.Create(snapshotOut)
	if err != nil {
		return err
	}

	stats, err := snapshot.Write(root, f)
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	cmd.Printf("Snapshot written to %s: %d entries, %d directories",
		snapshotOut, stats.Entries, stats.Directories)
	if stats.Skipped > 0 {
		cmd.Printf(" (%d unreadable directories skipped)", stats.Skipped)
	}
	cmd.Println()

	return nil
}
