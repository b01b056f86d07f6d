// Package snapshot writes and reads compressed metadata snapshots: a zstd
// stream of JSON lines, one header followed by one FileRecord per entry.
// Snapshots let metadata from one point in time be compared offline against
// a live tree.
package snapshot

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"filesavant/internal/fsmeta"
)

// FormatVersion identifies the snapshot layout
const FormatVersion = 1

// Header is the first JSON line of every snapshot
type Header struct {
	SnapshotID    string `json:"snapshotId"`
	Root          string `json:"root"`
	CreatedAt     int64  `json:"createdAt"`
	FormatVersion int    `json:"formatVersion"`
}

// Stats summarizes what a Write covered
type Stats struct {
	Entries     int
	Directories int
	Skipped     int
}

// Write walks root and streams the metadata of every visible entry into w.
// Traversal uses the same semantics as a live listing: hidden entries are
// skipped and unreadable entries are omitted. Subdirectories that cannot be
// enumerated are counted as skipped rather than failing the snapshot; only
// an unopenable root fails.
func Write(root string, w io.Writer) (*Stats, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}

	enc := json.NewEncoder(zw)

	header := Header{
		SnapshotID:    uuid.NewString(),
		Root:          root,
		CreatedAt:     time.Now().Unix(),
		FormatVersion: FormatVersion,
	}
	if err := enc.Encode(header); err != nil {
		_ = zw.Close()
		return nil, err
	}

	stats := &Stats{}
	if err := writeTree(enc, root, stats, true); err != nil {
		_ = zw.Close()
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return stats, nil
}

func writeTree(enc *json.Encoder, dir string, stats *Stats, isRoot bool) error {
	records, err := fsmeta.List(dir)
	if err != nil {
		if isRoot {
			return err
		}
		stats.Skipped++
		return nil
	}

	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
		stats.Entries++

		if rec.Type == fsmeta.TypeDirectory {
			stats.Directories++
			if err := writeTree(enc, rec.Path, stats, false); err != nil {
				return err
			}
		}
	}

	return nil
}

// Read decodes a snapshot stream back into its header and records
func Read(r io.Reader) (*Header, []fsmeta.FileRecord, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)

	var header Header
	if err := dec.Decode(&header); err != nil {
		return nil, nil, err
	}
	if header.FormatVersion != FormatVersion {
		return nil, nil, errors.New("unsupported snapshot format version")
	}

	var records []fsmeta.FileRecord
	for {
		var rec fsmeta.FileRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}
		records = append(records, rec)
	}

	return &header, records, nil
}
