// Package platform implements the device statistics bridge on top of the
// Linux interfaces an Android device exposes: /proc, /sys/class/power_supply,
// statfs on the data partition and the app install directories. Actions are
// delivered as Android intents through the activity manager.
package platform

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
	"github.com/dustin/go-humanize"

	"ecoclean/internal/domain/device"
)

// Options holds the filesystem locations the platform reads from
type Options struct {
	DataPath        string
	ProcPath        string
	PowerSupplyPath string
	UserAppsPath    string
	SystemAppsPath  string
	AppDataPath     string
	IgnoredPackages []string
}

// Platform is the device.Bridge for Linux based devices
type Platform struct {
	opts     Options
	usage    device.UsageRepository
	launcher Launcher
	caps     device.Capabilities
	now      func() time.Time
}

// New creates the platform bridge and probes the optional capabilities.
// usage may be nil, in which case usage access is reported as missing.
func New(opts Options, usage device.UsageRepository, launcher Launcher) *Platform {
	p := &Platform{
		opts:     opts,
		usage:    usage,
		launcher: launcher,
		now:      time.Now,
	}
	p.caps = p.probe()

	slog.Info("Device platform initialized",
		"battery", p.caps.Battery.Available(),
		"memory", p.caps.Memory.Available(),
		"data_usage", p.caps.DataUsage.Available(),
	)
	return p
}

var _ device.Bridge = (*Platform)(nil)

func (p *Platform) probe() device.Capabilities {
	caps := device.Capabilities{
		Battery:   device.Unsupported[device.BatteryInfo](),
		Memory:    device.Unsupported[device.MemoryInfo](),
		DataUsage: device.Unsupported[device.DataUsage](),
	}

	if dir := findBattery(p.opts.PowerSupplyPath); dir != "" {
		caps.Battery = device.Supported(func(ctx context.Context) (*device.BatteryInfo, error) {
			return readBattery(dir)
		})
	}
	if _, err := readMeminfo(p.meminfoPath()); err == nil {
		caps.Memory = device.Supported(func(ctx context.Context) (*device.MemoryInfo, error) {
			return readMeminfo(p.meminfoPath())
		})
	}
	if _, err := os.Stat(p.netDevPath()); err == nil {
		caps.DataUsage = device.Supported(func(ctx context.Context) (*device.DataUsage, error) {
			return readNetDev(p.netDevPath())
		})
	}

	return caps
}

func (p *Platform) Capabilities() device.Capabilities {
	return p.caps
}

func (p *Platform) GetStorageStats(ctx context.Context) (*device.StorageStats, error) {
	stats, err := statfs(p.opts.DataPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("Storage snapshot",
		"path", p.opts.DataPath,
		"total", humanize.IBytes(uint64(stats.TotalBytes)),
		"free", humanize.IBytes(uint64(stats.FreeBytes)),
	)
	return stats, nil
}

func (p *Platform) HasUsageAccess(ctx context.Context) (bool, error) {
	if p.usage == nil {
		return false, nil
	}
	count, err := p.usage.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *Platform) OpenUsageAccessSettings() {
	p.launcher.Launch("start", "-a", "android.settings.USAGE_ACCESS_SETTINGS")
}

func (p *Platform) OpenAppInfo(packageName string) {
	p.launcher.Launch("start", "-a", "android.settings.APPLICATION_DETAILS_SETTINGS", "-d", "package:"+packageName)
}

func (p *Platform) OpenAppUninstall(packageName string) {
	p.launcher.Launch("start", "-a", "android.intent.action.DELETE", "-d", "package:"+packageName)
}

func (p *Platform) meminfoPath() string {
	return filepath.Join(p.opts.ProcPath, "meminfo")
}

func (p *Platform) netDevPath() string {
	return filepath.Join(p.opts.ProcPath, "net", "dev")
}

// ignored reports whether a package matches any configured ignore pattern
func (p *Platform) ignored(packageName string) bool {
	for _, pattern := range p.opts.IgnoredPackages {
		if wildcard.Match(pattern, packageName) {
			return true
		}
	}
	return false
}
