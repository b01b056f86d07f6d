package fsmeta

import (
	"os"
	"strings"
)

// List enumerates the immediate entries of dir and reads metadata for each.
//
// Semantics:
//   - If dir cannot be opened or enumerated, the whole listing fails with a
//     *DirectoryOpenError; there is no partial listing for that case.
//   - Entries whose names start with "." are skipped before any stat.
//   - Entries that fail to stat are silently omitted; a best-effort listing
//     never surfaces per-entry failures.
//   - Entries keep the order the file system yields them in; no sort is
//     applied.
//
// The directory handle is released before List returns on every path.
func List(dir string) ([]FileRecord, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &DirectoryOpenError{Path: dir, Err: err}
	}
	defer func() { _ = f.Close() }()

	// Readdirnames rather than ReadDir: ReadDir sorts, and enumeration
	// order is part of the observable behavior.
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &DirectoryOpenError{Path: dir, Err: err}
	}

	records := make([]FileRecord, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}

		rec, err := Read(dir, name)
		if err != nil {
			// Entry vanished or is unreadable; omit it.
			continue
		}
		records = append(records, *rec)
	}

	return records, nil
}
