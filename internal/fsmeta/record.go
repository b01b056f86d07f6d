// Package fsmeta reads file system metadata for directory entries and
// assembles best-effort directory listings.
package fsmeta

// FileType classifies a directory entry from its mode bits.
type FileType string

// Entry types, as they appear on the wire.
const (
	TypeFile        FileType = "file"
	TypeDirectory   FileType = "directory"
	TypeSymlink     FileType = "symlink"
	TypeCharDevice  FileType = "char_device"
	TypeBlockDevice FileType = "block_device"
	TypeFifo        FileType = "fifo"
	TypeSocket      FileType = "socket"
	TypeUnknown     FileType = "unknown"
)

// FileRecord is an immutable snapshot of one directory entry at stat time.
//
// The JSON field names are the wire contract; consumers string-match on them.
// Device ids are string-encoded so 64-bit values survive textual transports.
type FileRecord struct {
	Name                string   `json:"name"`
	Path                string   `json:"path"`
	Size                int64    `json:"size"`
	Owner               string   `json:"owner"`
	Group               string   `json:"group"`
	UID                 uint32   `json:"uid"`
	GID                 uint32   `json:"gid"`
	Permissions         string   `json:"permissions"`
	PermissionsReadable string   `json:"permissions_readable"`
	Type                FileType `json:"type"`
	Modified            int64    `json:"modified"`
	Accessed            int64    `json:"accessed"`
	Changed             int64    `json:"changed"`
	Inode               uint64   `json:"inode"`
	Device              string   `json:"device"`
	HardLinks           uint64   `json:"hard_links"`
	BlockSize           int64    `json:"block_size"`
	Blocks              int64    `json:"blocks"`
}

// rawStat is the portable subset of a stat result. Each supported platform
// fills it in from its native Stat_t layout.
type rawStat struct {
	Mode    uint32
	Size    int64
	UID     uint32
	GID     uint32
	Ino     uint64
	Dev     uint64
	Nlink   uint64
	Blksize int64
	Blocks  int64
	Atime   int64
	Mtime   int64
	Ctime   int64
}
