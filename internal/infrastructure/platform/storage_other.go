//go:build !linux && !darwin && !freebsd

package platform

import (
	"errors"

	"ecoclean/internal/domain/device"
)

func statfs(path string) (*device.StorageStats, error) {
	return nil, errors.New("storage stats are not supported on this operating system")
}
