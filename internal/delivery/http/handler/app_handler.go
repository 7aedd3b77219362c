package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deviceService "ecoclean/internal/application/device"
	domain "ecoclean/internal/domain/device"
)

const defaultDaysUnused = 30

// AppHandler exposes per-app statistics and app actions
type AppHandler struct {
	service   deviceService.Service
	usageRepo domain.UsageRepository
}

func NewAppHandler(service deviceService.Service, usageRepo domain.UsageRepository) *AppHandler {
	return &AppHandler{
		service:   service,
		usageRepo: usageRepo,
	}
}

// Storage handles GET /api/apps/storage
func (h *AppHandler) Storage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	apps, err := h.service.GetAppsStorage(r.Context())
	if err != nil {
		sendDeviceError(w, r, err, "Failed to read app storage")
		return
	}
	SendSuccess(w, "", apps)
}

// Unused handles GET /api/apps/unused?days=...
func (h *AppHandler) Unused(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := defaultDaysUnused
	if d := r.URL.Query().Get("days"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			SendError(w, "Invalid days parameter", http.StatusBadRequest)
			return
		}
		days = n
	}

	apps, err := h.service.GetUnusedApps(r.Context(), days)
	if err != nil {
		sendDeviceError(w, r, err, "Failed to list unused apps")
		return
	}
	SendSuccess(w, "", apps)
}

// ReportUsage handles POST /api/apps/usage
func (h *AppHandler) ReportUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UsageReportRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Apps) == 0 {
		SendError(w, "No usage reports provided", http.StatusBadRequest)
		return
	}

	records := make([]domain.UsageRecord, 0, len(req.Apps))
	for _, report := range req.Apps {
		if report.PackageName == "" || report.LastTimeUsed <= 0 {
			SendError(w, "Each report needs packageName and lastTimeUsed", http.StatusBadRequest)
			return
		}
		records = append(records, report.ToRecord())
	}

	if err := h.usageRepo.Upsert(r.Context(), records); err != nil {
		slog.Error("Failed to store usage reports", "error", err, "request_id", GetRequestID(r.Context()))
		SendError(w, "Failed to store usage reports", http.StatusInternalServerError)
		return
	}
	SendSuccess(w, fmt.Sprintf("Stored %d usage report(s)", len(records)), nil)
}

// OpenInfo handles POST /api/apps/info
func (h *AppHandler) OpenInfo(w http.ResponseWriter, r *http.Request) {
	packageName, ok := decodeAppRequest(w, r)
	if !ok {
		return
	}
	h.service.OpenAppInfo(packageName)
	SendAccepted(w, "Opening app info for "+packageName)
}

// Uninstall handles POST /api/apps/uninstall
func (h *AppHandler) Uninstall(w http.ResponseWriter, r *http.Request) {
	packageName, ok := decodeAppRequest(w, r)
	if !ok {
		return
	}
	h.service.OpenAppUninstall(packageName)
	SendAccepted(w, "Opening uninstall for "+packageName)
}

func decodeAppRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}

	var req domain.AppRequest
	if !DecodeJSON(w, r, &req) {
		return "", false
	}
	if req.PackageName == "" {
		SendError(w, domain.ErrInvalidPackage.Error(), http.StatusBadRequest)
		return "", false
	}
	return req.PackageName, true
}
