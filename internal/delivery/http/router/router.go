package router

import (
	"net/http"

	"ecoclean/internal/application/auth"
	"ecoclean/internal/delivery/http/handler"
	"ecoclean/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Device *handler.DeviceHandler
	App    *handler.AppHandler
	Tip    *handler.TipHandler
}

// Setup configures all routes for the application
func Setup(handlers Handlers, authService auth.Service, allowedOrigins []string) *http.ServeMux {
	mux := http.NewServeMux()

	// Middleware helpers
	cors := middleware.CORS(allowedOrigins)
	authRequired := middleware.Auth(authService)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return chain(h, middleware.RequestLog, cors, authRequired)
	}

	mux.HandleFunc("/api/health", chain(handler.Health, middleware.RequestLog, cors))

	// ==================
	// Device routes
	// ==================
	if handlers.Device != nil {
		mux.HandleFunc("/api/device/storage", protected(handlers.Device.Storage))
		mux.HandleFunc("/api/device/usage-access", protected(handlers.Device.UsageAccess))
		mux.HandleFunc("/api/device/usage-access/settings", protected(handlers.Device.OpenUsageAccessSettings))
		mux.HandleFunc("/api/device/battery", protected(handlers.Device.Battery))
		mux.HandleFunc("/api/device/memory", protected(handlers.Device.Memory))
		mux.HandleFunc("/api/device/data-usage", protected(handlers.Device.DataUsage))
	}

	// ==================
	// App routes
	// ==================
	if handlers.App != nil {
		mux.HandleFunc("/api/apps/storage", protected(handlers.App.Storage))
		mux.HandleFunc("/api/apps/unused", protected(handlers.App.Unused))
		mux.HandleFunc("/api/apps/usage", protected(handlers.App.ReportUsage))
		mux.HandleFunc("/api/apps/info", protected(handlers.App.OpenInfo))
		mux.HandleFunc("/api/apps/uninstall", protected(handlers.App.Uninstall))
	}

	// ==================
	// Tip routes
	// ==================
	if handlers.Tip != nil {
		mux.HandleFunc("/api/tips", protected(handlers.Tip.HandleTips))
	}

	return mux
}
