package device

import "errors"

var (
	ErrCapabilityUnavailable = errors.New("capability not available on this device")
	ErrInvalidThreshold      = errors.New("days unused must not be negative")
	ErrInvalidPackage        = errors.New("package name is required")
)
