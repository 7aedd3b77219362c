package device

import (
	"context"
	"fmt"

	domain "ecoclean/internal/domain/device"
)

// Service defines the device statistics operations exposed to callers
type Service interface {
	GetStorageStats(ctx context.Context) (*domain.StorageStats, error)
	HasUsageAccess(ctx context.Context) (bool, error)
	OpenUsageAccessSettings()
	OpenAppInfo(packageName string)
	OpenAppUninstall(packageName string)
	GetUnusedApps(ctx context.Context, daysUnused int) ([]domain.UnusedApp, error)
	GetAppsStorage(ctx context.Context) ([]domain.AppStorage, error)
	GetBatteryInfo(ctx context.Context) (*domain.BatteryInfo, error)
	GetMemoryInfo(ctx context.Context) (*domain.MemoryInfo, error)
	GetDataUsage(ctx context.Context) (*domain.DataUsage, error)
}

type service struct {
	bridge domain.Bridge
	caps   domain.Capabilities
}

// NewService creates a new device service. Optional capabilities are
// resolved here, once.
func NewService(bridge domain.Bridge) Service {
	return &service{
		bridge: bridge,
		caps:   bridge.Capabilities(),
	}
}

func (s *service) GetStorageStats(ctx context.Context) (*domain.StorageStats, error) {
	return s.bridge.GetStorageStats(ctx)
}

func (s *service) HasUsageAccess(ctx context.Context) (bool, error) {
	return s.bridge.HasUsageAccess(ctx)
}

func (s *service) OpenUsageAccessSettings() {
	s.bridge.OpenUsageAccessSettings()
}

func (s *service) OpenAppInfo(packageName string) {
	s.bridge.OpenAppInfo(packageName)
}

func (s *service) OpenAppUninstall(packageName string) {
	s.bridge.OpenAppUninstall(packageName)
}

func (s *service) GetUnusedApps(ctx context.Context, daysUnused int) ([]domain.UnusedApp, error) {
	return s.bridge.GetUnusedApps(ctx, daysUnused)
}

func (s *service) GetAppsStorage(ctx context.Context) ([]domain.AppStorage, error) {
	return s.bridge.GetAppsStorage(ctx)
}

func (s *service) GetBatteryInfo(ctx context.Context) (*domain.BatteryInfo, error) {
	return query(ctx, "getBatteryInfo", s.caps.Battery)
}

func (s *service) GetMemoryInfo(ctx context.Context) (*domain.MemoryInfo, error) {
	return query(ctx, "getMemoryInfo", s.caps.Memory)
}

func (s *service) GetDataUsage(ctx context.Context) (*domain.DataUsage, error) {
	return query(ctx, "getDataUsage", s.caps.DataUsage)
}

func query[T any](ctx context.Context, name string, c domain.Capability[T]) (*T, error) {
	result, ok, err := c.Query(ctx)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrCapabilityUnavailable)
	}
	return result, err
}
