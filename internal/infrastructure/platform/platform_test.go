package platform

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"ecoclean/internal/domain/device"
)

const testMeminfo = `MemTotal:        8000000 kB
MemFree:          500000 kB
MemAvailable:     600000 kB
Buffers:          100000 kB
Cached:          2000000 kB
`

const testNetDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:  900000     100    0    0    0     0          0         0   900000     100    0    0    0     0       0          0
 wlan0: 5000000    4000    0    0    0     0          0         0  1000000    2000    0    0    0     0       0          0
rmnet_data0: 3000000    3000    0    0    0     0          0         0   700000    1000    0    0    0     0       0          0
  eth0:  100000      10    0    0    0     0          0         0    20000      10    0    0    0     0       0          0
`

type recordingLauncher struct {
	mu    sync.Mutex
	calls [][]string
}

func (l *recordingLauncher) Launch(args ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, args)
}

type stubUsage struct {
	records []device.UsageRecord
	err     error
}

func (s *stubUsage) Upsert(ctx context.Context, records []device.UsageRecord) error {
	s.records = append(s.records, records...)
	return nil
}

func (s *stubUsage) List(ctx context.Context) ([]device.UsageRecord, error) {
	return s.records, s.err
}

func (s *stubUsage) Count(ctx context.Context) (int, error) {
	return len(s.records), s.err
}

func writeFile(t *testing.T, path string, size int, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if content == "" {
		content = strings.Repeat("x", size)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// setupDevice lays out a fake device root and returns options pointing at it
func setupDevice(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "proc", "meminfo"), 0, testMeminfo)
	writeFile(t, filepath.Join(root, "proc", "net", "dev"), 0, testNetDev)

	ps := filepath.Join(root, "sys", "power_supply")
	writeFile(t, filepath.Join(ps, "usb", "type"), 0, "USB\n")
	writeFile(t, filepath.Join(ps, "battery", "type"), 0, "Battery\n")
	writeFile(t, filepath.Join(ps, "battery", "capacity"), 0, "76\n")
	writeFile(t, filepath.Join(ps, "battery", "status"), 0, "Charging\n")
	writeFile(t, filepath.Join(ps, "battery", "health"), 0, "Good\n")
	writeFile(t, filepath.Join(ps, "battery", "technology"), 0, "Li-ion\n")
	writeFile(t, filepath.Join(ps, "battery", "temp"), 0, "312\n")
	writeFile(t, filepath.Join(ps, "battery", "voltage_now"), 0, "4123000\n")

	apps := filepath.Join(root, "data", "app")
	writeFile(t, filepath.Join(apps, "~~a1b2==", "com.example.maps-Qx9==", "base.apk"), 4000, "")
	writeFile(t, filepath.Join(apps, "~~a1b2==", "com.example.maps-Qx9==", "icon.png"), 0, "png!")
	writeFile(t, filepath.Join(apps, "com.example.game-1", "base.apk"), 9000, "")
	writeFile(t, filepath.Join(apps, "com.vendor.bloat-2", "base.apk"), 100, "")
	writeFile(t, filepath.Join(root, "system", "app", "com.android.settings", "base.apk"), 2000, "")

	data := filepath.Join(root, "data", "data")
	writeFile(t, filepath.Join(data, "com.example.maps", "files", "tiles.db"), 3000, "")
	writeFile(t, filepath.Join(data, "com.example.maps", "cache", "img1"), 500, "")
	writeFile(t, filepath.Join(data, "com.example.maps", "code_cache", "x.dex"), 250, "")

	return Options{
		DataPath:        root,
		ProcPath:        filepath.Join(root, "proc"),
		PowerSupplyPath: ps,
		UserAppsPath:    apps,
		SystemAppsPath:  filepath.Join(root, "system", "app"),
		AppDataPath:     data,
		IgnoredPackages: []string{"com.vendor.*"},
	}
}

func TestCapabilitiesProbed(t *testing.T) {
	p := New(setupDevice(t), nil, &recordingLauncher{})
	caps := p.Capabilities()
	ctx := context.Background()

	battery, ok, err := caps.Battery.Query(ctx)
	if !ok || err != nil {
		t.Fatalf("battery query ok=%v err=%v", ok, err)
	}
	want := device.BatteryInfo{
		Level: 76, IsCharging: true, Status: "Charging", Health: "Good",
		Technology: "Li-ion", TemperatureC: 31.2, VoltageMV: 4123,
	}
	if *battery != want {
		t.Errorf("battery = %+v, want %+v", *battery, want)
	}

	memory, ok, err := caps.Memory.Query(ctx)
	if !ok || err != nil {
		t.Fatalf("memory query ok=%v err=%v", ok, err)
	}
	if memory.TotalBytes != 8000000*1024 || memory.AvailableBytes != 600000*1024 {
		t.Errorf("memory = %+v", memory)
	}
	if !memory.LowMemory {
		t.Errorf("memory below threshold not flagged: %+v", memory)
	}

	usage, ok, err := caps.DataUsage.Query(ctx)
	if !ok || err != nil {
		t.Fatalf("data usage query ok=%v err=%v", ok, err)
	}
	wantUsage := device.DataUsage{
		MobileRxBytes: 3000000, MobileTxBytes: 700000,
		WifiRxBytes: 5000000, WifiTxBytes: 1000000,
		TotalRxBytes: 8100000, TotalTxBytes: 1720000,
	}
	if *usage != wantUsage {
		t.Errorf("data usage = %+v, want %+v", *usage, wantUsage)
	}
}

func TestCapabilitiesUnsupported(t *testing.T) {
	root := t.TempDir()
	p := New(Options{
		ProcPath:        filepath.Join(root, "proc"),
		PowerSupplyPath: filepath.Join(root, "power_supply"),
	}, nil, &recordingLauncher{})

	caps := p.Capabilities()
	if caps.Battery.Available() || caps.Memory.Available() || caps.DataUsage.Available() {
		t.Errorf("capabilities available on empty device: %+v", caps)
	}
}

func TestParseMeminfoWithoutMemAvailable(t *testing.T) {
	info, err := parseMeminfo(strings.NewReader("MemTotal: 1000 kB\nMemFree: 200 kB\nBuffers: 100 kB\nCached: 300 kB\n"))
	if err != nil {
		t.Fatal(err)
	}
	if info.AvailableBytes != 600*1024 || info.UsedBytes != 400*1024 || info.LowMemory {
		t.Errorf("info = %+v", info)
	}

	if _, err := parseMeminfo(strings.NewReader("garbage\n")); err == nil {
		t.Error("expected error without MemTotal")
	}
}

func TestGetStorageStats(t *testing.T) {
	p := New(setupDevice(t), nil, &recordingLauncher{})
	stats, err := p.GetStorageStats(context.Background())
	if err != nil {
		t.Fatalf("GetStorageStats: %v", err)
	}
	if stats.TotalBytes <= 0 || stats.UsedBytes != stats.TotalBytes-stats.FreeBytes {
		t.Errorf("stats = %+v", stats)
	}

	p.opts.DataPath = filepath.Join(t.TempDir(), "missing")
	if _, err := p.GetStorageStats(context.Background()); err == nil {
		t.Error("expected error for missing data path")
	}
}

func TestGetAppsStorage(t *testing.T) {
	lastUsed := time.UnixMilli(1_760_000_000_000)
	usage := &stubUsage{records: []device.UsageRecord{
		{PackageName: "com.example.maps", AppName: "Maps", LastTimeUsed: lastUsed},
	}}
	p := New(setupDevice(t), usage, &recordingLauncher{})

	apps, err := p.GetAppsStorage(context.Background())
	if err != nil {
		t.Fatalf("GetAppsStorage: %v", err)
	}

	var names []string
	for _, a := range apps {
		names = append(names, a.PackageName)
	}
	want := []string{"com.example.game", "com.example.maps", "com.android.settings"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("packages = %v, want %v", names, want)
	}

	maps := apps[1]
	if maps.AppBytes != 4004 || maps.DataBytes != 3000 || maps.CacheBytes != 750 {
		t.Errorf("maps sizes = %+v", maps)
	}
	if maps.LastTimeUsed != lastUsed.UnixMilli() {
		t.Errorf("maps last used = %d", maps.LastTimeUsed)
	}
	if maps.IconBase64 != base64.StdEncoding.EncodeToString([]byte("png!")) {
		t.Errorf("maps icon = %q", maps.IconBase64)
	}
	if !apps[2].IsSystem || apps[0].IsSystem {
		t.Errorf("system flags wrong: %+v", apps)
	}
}

func TestGetUnusedApps(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	usage := &stubUsage{records: []device.UsageRecord{
		{PackageName: "com.example.maps", AppName: "Maps", LastTimeUsed: now.AddDate(0, 0, -2)},
		{PackageName: "com.example.game", AppName: "Game", LastTimeUsed: now.AddDate(0, 0, -90)},
	}}
	p := New(setupDevice(t), usage, &recordingLauncher{})
	p.now = func() time.Time { return now }
	ctx := context.Background()

	unused, err := p.GetUnusedApps(ctx, 30)
	if err != nil {
		t.Fatalf("GetUnusedApps: %v", err)
	}
	want := []device.UnusedApp{
		{PackageName: "com.example.game", AppName: "Game", LastTimeUsed: now.AddDate(0, 0, -90).UnixMilli()},
	}
	if !reflect.DeepEqual(unused, want) {
		t.Errorf("unused = %+v, want %+v", unused, want)
	}

	unused, err = p.GetUnusedApps(ctx, 0)
	if err != nil || len(unused) != 2 {
		t.Errorf("GetUnusedApps(0) = %+v, %v", unused, err)
	}

	if _, err := p.GetUnusedApps(ctx, -1); !errors.Is(err, device.ErrInvalidThreshold) {
		t.Errorf("negative threshold err = %v", err)
	}
}

func TestGetUnusedAppsWithoutUsageData(t *testing.T) {
	p := New(setupDevice(t), &stubUsage{}, &recordingLauncher{})

	unused, err := p.GetUnusedApps(context.Background(), 30)
	if err != nil || len(unused) != 0 {
		t.Errorf("GetUnusedApps = %+v, %v", unused, err)
	}
	ok, err := p.HasUsageAccess(context.Background())
	if err != nil || ok {
		t.Errorf("HasUsageAccess = %v, %v", ok, err)
	}
}

func TestHasUsageAccess(t *testing.T) {
	usage := &stubUsage{records: []device.UsageRecord{{PackageName: "com.example.maps"}}}
	p := New(setupDevice(t), usage, &recordingLauncher{})
	if ok, err := p.HasUsageAccess(context.Background()); err != nil || !ok {
		t.Errorf("HasUsageAccess = %v, %v", ok, err)
	}

	usage.err = errors.New("database is locked")
	if _, err := p.HasUsageAccess(context.Background()); err != usage.err {
		t.Errorf("HasUsageAccess err = %v", err)
	}
}

func TestActionsLaunchIntents(t *testing.T) {
	launcher := &recordingLauncher{}
	p := New(setupDevice(t), nil, launcher)

	p.OpenAppInfo("com.example.maps")
	p.OpenAppUninstall("com.example.game")
	p.OpenUsageAccessSettings()

	want := [][]string{
		{"start", "-a", "android.settings.APPLICATION_DETAILS_SETTINGS", "-d", "package:com.example.maps"},
		{"start", "-a", "android.intent.action.DELETE", "-d", "package:com.example.game"},
		{"start", "-a", "android.settings.USAGE_ACCESS_SETTINGS"},
	}
	if !reflect.DeepEqual(launcher.calls, want) {
		t.Errorf("launches = %v, want %v", launcher.calls, want)
	}
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"com.example.game-1":         "com.example.game",
		"com.example.maps-Qx9==":     "com.example.maps",
		"com.android.settings":       "com.android.settings",
		"com.example.a_b-AbC12xyz==": "com.example.a_b",
	}
	for in, want := range tests {
		if got := packageName(in); got != want {
			t.Errorf("packageName(%q) = %q, want %q", in, got, want)
		}
	}
}
