package device

import (
	"context"
	"errors"
	"testing"

	domain "ecoclean/internal/domain/device"
)

type stubBridge struct {
	storage    *domain.StorageStats
	storageErr error
	access     bool
	accessErr  error
	unused     []domain.UnusedApp
	unusedErr  error
	apps       []domain.AppStorage
	appsErr    error
	caps       domain.Capabilities

	capsCalls   int
	gotDays     int
	openedInfo  string
	uninstalled string
	settings    int
}

func (b *stubBridge) GetStorageStats(ctx context.Context) (*domain.StorageStats, error) {
	return b.storage, b.storageErr
}

func (b *stubBridge) HasUsageAccess(ctx context.Context) (bool, error) {
	return b.access, b.accessErr
}

func (b *stubBridge) GetUnusedApps(ctx context.Context, daysUnused int) ([]domain.UnusedApp, error) {
	b.gotDays = daysUnused
	return b.unused, b.unusedErr
}

func (b *stubBridge) GetAppsStorage(ctx context.Context) ([]domain.AppStorage, error) {
	return b.apps, b.appsErr
}

func (b *stubBridge) OpenUsageAccessSettings() { b.settings++ }
func (b *stubBridge) OpenAppInfo(packageName string) { b.openedInfo = packageName }
func (b *stubBridge) OpenAppUninstall(packageName string) { b.uninstalled = packageName }

func (b *stubBridge) Capabilities() domain.Capabilities {
	b.capsCalls++
	return b.caps
}

func TestUnguardedQueriesForwardErrors(t *testing.T) {
	wantErr := errors.New("statfs: permission denied")
	bridge := &stubBridge{
		storageErr: wantErr,
		accessErr:  wantErr,
		unusedErr:  wantErr,
		appsErr:    wantErr,
	}
	svc := NewService(bridge)
	ctx := context.Background()

	if _, err := svc.GetStorageStats(ctx); err != wantErr {
		t.Errorf("GetStorageStats err = %v, want %v", err, wantErr)
	}
	if _, err := svc.HasUsageAccess(ctx); err != wantErr {
		t.Errorf("HasUsageAccess err = %v, want %v", err, wantErr)
	}
	if _, err := svc.GetUnusedApps(ctx, 30); err != wantErr {
		t.Errorf("GetUnusedApps err = %v, want %v", err, wantErr)
	}
	if _, err := svc.GetAppsStorage(ctx); err != wantErr {
		t.Errorf("GetAppsStorage err = %v, want %v", err, wantErr)
	}
}

func TestUnguardedQueriesForwardResults(t *testing.T) {
	bridge := &stubBridge{
		storage: &domain.StorageStats{TotalBytes: 100, FreeBytes: 40, UsedBytes: 60},
		access:  true,
		unused:  []domain.UnusedApp{{PackageName: "com.example.old"}},
		apps:    []domain.AppStorage{{PackageName: "com.example.app", AppBytes: 10}},
	}
	svc := NewService(bridge)
	ctx := context.Background()

	stats, err := svc.GetStorageStats(ctx)
	if err != nil || stats != bridge.storage {
		t.Errorf("GetStorageStats = %v, %v", stats, err)
	}
	ok, err := svc.HasUsageAccess(ctx)
	if err != nil || !ok {
		t.Errorf("HasUsageAccess = %v, %v", ok, err)
	}
	unused, err := svc.GetUnusedApps(ctx, 45)
	if err != nil || len(unused) != 1 {
		t.Errorf("GetUnusedApps = %v, %v", unused, err)
	}
	if bridge.gotDays != 45 {
		t.Errorf("days forwarded = %d, want 45", bridge.gotDays)
	}
	apps, err := svc.GetAppsStorage(ctx)
	if err != nil || len(apps) != 1 || apps[0].PackageName != "com.example.app" {
		t.Errorf("GetAppsStorage = %v, %v", apps, err)
	}
}

func TestActionsForwardToBridge(t *testing.T) {
	bridge := &stubBridge{}
	svc := NewService(bridge)

	svc.OpenAppInfo("com.example.info")
	svc.OpenAppUninstall("com.example.gone")
	svc.OpenUsageAccessSettings()

	if bridge.openedInfo != "com.example.info" {
		t.Errorf("OpenAppInfo package = %q", bridge.openedInfo)
	}
	if bridge.uninstalled != "com.example.gone" {
		t.Errorf("OpenAppUninstall package = %q", bridge.uninstalled)
	}
	if bridge.settings != 1 {
		t.Errorf("OpenUsageAccessSettings calls = %d, want 1", bridge.settings)
	}
}

func TestUnsupportedCapabilitiesReturnError(t *testing.T) {
	svc := NewService(&stubBridge{})
	ctx := context.Background()

	battery, err := svc.GetBatteryInfo(ctx)
	if battery != nil || !errors.Is(err, domain.ErrCapabilityUnavailable) {
		t.Errorf("GetBatteryInfo = %v, %v", battery, err)
	}
	memory, err := svc.GetMemoryInfo(ctx)
	if memory != nil || !errors.Is(err, domain.ErrCapabilityUnavailable) {
		t.Errorf("GetMemoryInfo = %v, %v", memory, err)
	}
	usage, err := svc.GetDataUsage(ctx)
	if usage != nil || !errors.Is(err, domain.ErrCapabilityUnavailable) {
		t.Errorf("GetDataUsage = %v, %v", usage, err)
	}
	if err.Error() != "getDataUsage: capability not available on this device" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestSupportedCapabilities(t *testing.T) {
	memErr := errors.New("meminfo vanished")
	bridge := &stubBridge{
		caps: domain.Capabilities{
			Battery: domain.Supported(func(ctx context.Context) (*domain.BatteryInfo, error) {
				return &domain.BatteryInfo{Level: 80, IsCharging: true}, nil
			}),
			Memory: domain.Supported(func(ctx context.Context) (*domain.MemoryInfo, error) {
				return nil, memErr
			}),
			DataUsage: domain.Unsupported[domain.DataUsage](),
		},
	}
	svc := NewService(bridge)
	ctx := context.Background()

	battery, err := svc.GetBatteryInfo(ctx)
	if err != nil || battery.Level != 80 || !battery.IsCharging {
		t.Errorf("GetBatteryInfo = %+v, %v", battery, err)
	}
	if _, err := svc.GetMemoryInfo(ctx); err != memErr {
		t.Errorf("GetMemoryInfo err = %v, want %v", err, memErr)
	}
	if _, err := svc.GetDataUsage(ctx); !errors.Is(err, domain.ErrCapabilityUnavailable) {
		t.Errorf("GetDataUsage err = %v", err)
	}

	svc.GetBatteryInfo(ctx)
	if bridge.capsCalls != 1 {
		t.Errorf("Capabilities resolved %d times, want 1", bridge.capsCalls)
	}
}
