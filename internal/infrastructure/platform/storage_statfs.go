//go:build linux || darwin || freebsd

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"

	"ecoclean/internal/domain/device"
)

func statfs(path string) (*device.StorageStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, fmt.Errorf("statfs %s: %w", path, err)
	}

	bsize := uint64(st.Bsize)
	total := int64(uint64(st.Blocks) * bsize)
	free := int64(uint64(st.Bavail) * bsize)
	return &device.StorageStats{
		TotalBytes: total,
		FreeBytes:  free,
		UsedBytes:  total - free,
	}, nil
}
