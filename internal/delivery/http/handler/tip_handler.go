package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	tipService "ecoclean/internal/application/tip"
	domain "ecoclean/internal/domain/tip"
)

type TipHandler struct {
	service tipService.Service
}

func NewTipHandler(service tipService.Service) *TipHandler {
	return &TipHandler{service: service}
}

// HandleTips handles POST /api/tips (generate) and GET /api/tips (history)
func (h *TipHandler) HandleTips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Create(w, r)
	case http.MethodGet:
		h.List(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Create handles POST /api/tips
func (h *TipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var summary domain.ScanSummary
	if !DecodeJSON(w, r, &summary) {
		return
	}
	if summary.ItemCount < 0 || summary.TotalSizeBytes < 0 {
		SendError(w, "itemCount and totalSizeBytes must not be negative", http.StatusBadRequest)
		return
	}

	t := h.service.GetEcoTip(r.Context(), summary)
	SendSuccess(w, "", t)
}

// List handles GET /api/tips?limit=...
func (h *TipHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			SendError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	tips, err := h.service.ListTips(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to list tips", "error", err, "request_id", GetRequestID(r.Context()))
		SendError(w, "Failed to list tips", http.StatusInternalServerError)
		return
	}
	SendSuccess(w, "", tips)
}
