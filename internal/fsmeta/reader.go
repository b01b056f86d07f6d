package fsmeta

import (
	"fmt"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// UnknownIdentity is substituted when a uid/gid has no name in the user
// database. Identity resolution failures never fail the record.
const UnknownIdentity = "unknown"

// Read performs one lstat on the entry name inside dir and builds a
// FileRecord. Symlinks are reported as symlinks, not resolved.
// Failure to stat returns a *StatError; the caller decides whether to skip.
func Read(dir, name string) (*FileRecord, error) {
	path := JoinEntryPath(dir, name)

	st, err := lstatRaw(path)
	if err != nil {
		return nil, &StatError{Path: path, Err: err}
	}

	return &FileRecord{
		Name:                name,
		Path:                path,
		Size:                st.Size,
		Owner:               lookupOwner(st.UID),
		Group:               lookupGroup(st.GID),
		UID:                 st.UID,
		GID:                 st.GID,
		Permissions:         OctalString(st.Mode),
		PermissionsReadable: SymbolicString(st.Mode),
		Type:                ClassifyMode(st.Mode),
		Modified:            st.Mtime,
		Accessed:            st.Atime,
		Changed:             st.Ctime,
		Inode:               st.Ino,
		Device:              strconv.FormatUint(st.Dev, 10),
		HardLinks:           st.Nlink,
		BlockSize:           st.Blksize,
		Blocks:              st.Blocks,
	}, nil
}

// JoinEntryPath joins a directory argument and a bare entry name. When the
// directory is exactly "." the result degenerates to the bare name (no "./"
// prefix); downstream consumers string-match on these paths.
func JoinEntryPath(dir, name string) string {
	if dir == "." {
		return name
	}
	return dir + "/" + name
}

// ClassifyMode maps mode bits to the closed FileType enum. Unmappable modes
// classify as TypeUnknown rather than erroring.
func ClassifyMode(mode uint32) FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return TypeDirectory
	case unix.S_IFREG:
		return TypeFile
	case unix.S_IFLNK:
		return TypeSymlink
	case unix.S_IFCHR:
		return TypeCharDevice
	case unix.S_IFBLK:
		return TypeBlockDevice
	case unix.S_IFIFO:
		return TypeFifo
	case unix.S_IFSOCK:
		return TypeSocket
	default:
		return TypeUnknown
	}
}

// OctalString renders the permission bits as a 3-digit octal string.
func OctalString(mode uint32) string {
	return fmt.Sprintf("%03o", mode&0777)
}

// SymbolicString renders mode bits as the 10-character ls-style string:
// type char followed by user/group/other rwx triplets. The character
// positions are an exact wire contract.
func SymbolicString(mode uint32) string {
	buf := make([]byte, 10)

	buf[0] = typeChar(mode)

	bits := []struct {
		mask uint32
		char byte
	}{
		{unix.S_IRUSR, 'r'},
		{unix.S_IWUSR, 'w'},
		{unix.S_IXUSR, 'x'},
		{unix.S_IRGRP, 'r'},
		{unix.S_IWGRP, 'w'},
		{unix.S_IXGRP, 'x'},
		{unix.S_IROTH, 'r'},
		{unix.S_IWOTH, 'w'},
		{unix.S_IXOTH, 'x'},
	}
	for i, b := range bits {
		if mode&b.mask != 0 {
			buf[i+1] = b.char
		} else {
			buf[i+1] = '-'
		}
	}

	return string(buf)
}

func typeChar(mode uint32) byte {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return 'd'
	case unix.S_IFLNK:
		return 'l'
	case unix.S_IFCHR:
		return 'c'
	case unix.S_IFBLK:
		return 'b'
	case unix.S_IFIFO:
		return 'p'
	case unix.S_IFSOCK:
		return 's'
	default:
		return '-'
	}
}

func lookupOwner(uid uint32) string {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return UnknownIdentity
	}
	return u.Username
}

func lookupGroup(gid uint32) string {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return UnknownIdentity
	}
	return g.Name
}
