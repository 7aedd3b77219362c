package device

import "context"

// Bridge defines the contract for the native device statistics layer
type Bridge interface {
	GetStorageStats(ctx context.Context) (*StorageStats, error)
	HasUsageAccess(ctx context.Context) (bool, error)
	GetUnusedApps(ctx context.Context, daysUnused int) ([]UnusedApp, error)
	GetAppsStorage(ctx context.Context) ([]AppStorage, error)

	// Actions are fire-and-forget.
	OpenUsageAccessSettings()
	OpenAppInfo(packageName string)
	OpenAppUninstall(packageName string)

	Capabilities() Capabilities
}

// UsageRepository defines the contract for app usage storage
type UsageRepository interface {
	Upsert(ctx context.Context, records []UsageRecord) error
	List(ctx context.Context) ([]UsageRecord, error)
	Count(ctx context.Context) (int, error)
}
