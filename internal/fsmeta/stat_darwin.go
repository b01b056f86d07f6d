//go:build darwin

package fsmeta

import "golang.org/x/sys/unix"

func lstatRaw(path string) (rawStat, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return rawStat{}, err
	}

	return rawStat{
		Mode:    uint32(st.Mode),
		Size:    st.Size,
		UID:     st.Uid,
		GID:     st.Gid,
		Ino:     st.Ino,
		Dev:     uint64(uint32(st.Dev)),
		Nlink:   uint64(st.Nlink),
		Blksize: int64(st.Blksize),
		Blocks:  st.Blocks,
		Atime:   st.Atimespec.Sec,
		Mtime:   st.Mtimespec.Sec,
		Ctime:   st.Ctimespec.Sec,
	}, nil
}
