package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	deviceService "ecoclean/internal/application/device"
	domain "ecoclean/internal/domain/device"
)

// DeviceHandler exposes device-wide statistics
type DeviceHandler struct {
	service deviceService.Service
}

func NewDeviceHandler(service deviceService.Service) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// Storage handles GET /api/device/storage
func (h *DeviceHandler) Storage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.service.GetStorageStats(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to read storage stats")
		return
	}
	SendSuccess(w, "", stats)
}

// UsageAccess handles GET /api/device/usage-access
func (h *DeviceHandler) UsageAccess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	granted, err := h.service.HasUsageAccess(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to check usage access")
		return
	}
	SendSuccess(w, "", map[string]bool{"granted": granted})
}

// OpenUsageAccessSettings handles POST /api/device/usage-access/settings
func (h *DeviceHandler) OpenUsageAccessSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.service.OpenUsageAccessSettings()
	SendAccepted(w, "Opening usage access settings")
}

// Battery handles GET /api/device/battery
func (h *DeviceHandler) Battery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.service.GetBatteryInfo(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to read battery info")
		return
	}
	SendSuccess(w, "", info)
}

// Memory handles GET /api/device/memory
func (h *DeviceHandler) Memory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.service.GetMemoryInfo(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to read memory info")
		return
	}
	SendSuccess(w, "", info)
}

// DataUsage handles GET /api/device/data-usage
func (h *DeviceHandler) DataUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	usage, err := h.service.GetDataUsage(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to read data usage")
		return
	}
	SendSuccess(w, "", usage)
}

// sendDeviceError maps bridge errors to HTTP responses
func sendDeviceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrCapabilityUnavailable):
		SendError(w, err.Error(), http.StatusNotImplemented)
	case errors.Is(err, domain.ErrInvalidThreshold):
		SendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.DeadlineExceeded):
		SendError(w, message, http.StatusGatewayTimeout)
	default:
		slog.Error(message, "error", err, "path", r.URL.Path, "request_id", GetRequestID(r.Context()))
		SendError(w, message, http.StatusInternalServerError)
	}
}
