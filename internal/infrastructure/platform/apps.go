package platform

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"ecoclean/internal/domain/device"
)

type installedApp struct {
	packageName string
	path        string
	isSystem    bool
}

func (p *Platform) GetAppsStorage(ctx context.Context) ([]device.AppStorage, error) {
	apps, err := p.installedApps()
	if err != nil {
		return nil, err
	}
	usage := p.usageByPackage(ctx)

	result := make([]device.AppStorage, 0, len(apps))
	for _, app := range apps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := device.AppStorage{
			PackageName: app.packageName,
			IsSystem:    app.isSystem,
			IconBase64:  readIcon(app.path),
		}
		if entry.AppBytes, err = dirSize(app.path); err != nil {
			return nil, err
		}

		dataDir := filepath.Join(p.opts.AppDataPath, app.packageName)
		dataBytes, err := dirSize(dataDir)
		if err != nil {
			return nil, err
		}
		for _, name := range []string{"cache", "code_cache"} {
			size, err := dirSize(filepath.Join(dataDir, name))
			if err != nil {
				return nil, err
			}
			entry.CacheBytes += size
		}
		entry.DataBytes = max(dataBytes-entry.CacheBytes, 0)

		if rec, ok := usage[app.packageName]; ok {
			entry.LastTimeUsed = rec.LastTimeUsed.UnixMilli()
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		ti, tj := result[i].TotalBytes(), result[j].TotalBytes()
		if ti != tj {
			return ti > tj
		}
		return result[i].PackageName < result[j].PackageName
	})
	return result, nil
}

func (p *Platform) GetUnusedApps(ctx context.Context, daysUnused int) ([]device.UnusedApp, error) {
	if daysUnused < 0 {
		return nil, device.ErrInvalidThreshold
	}

	usage := p.usageByPackage(ctx)
	if len(usage) == 0 {
		// without usage data every app would look unused
		return []device.UnusedApp{}, nil
	}

	apps, err := p.installedApps()
	if err != nil {
		return nil, err
	}

	cutoff := p.now().AddDate(0, 0, -daysUnused)
	unused := make([]device.UnusedApp, 0)
	for _, app := range apps {
		if app.isSystem {
			continue
		}
		rec, ok := usage[app.packageName]
		if ok && !rec.LastTimeUsed.Before(cutoff) {
			continue
		}

		u := device.UnusedApp{PackageName: app.packageName, AppName: app.packageName}
		if ok {
			u.LastTimeUsed = rec.LastTimeUsed.UnixMilli()
			if rec.AppName != "" {
				u.AppName = rec.AppName
			}
		}
		unused = append(unused, u)
	}

	sort.Slice(unused, func(i, j int) bool {
		if unused[i].LastTimeUsed != unused[j].LastTimeUsed {
			return unused[i].LastTimeUsed < unused[j].LastTimeUsed
		}
		return unused[i].PackageName < unused[j].PackageName
	})
	return unused, nil
}

// usageByPackage indexes usage reports by package. Store failures are logged
// and treated as missing data.
func (p *Platform) usageByPackage(ctx context.Context) map[string]device.UsageRecord {
	byPackage := make(map[string]device.UsageRecord)
	if p.usage == nil {
		return byPackage
	}
	records, err := p.usage.List(ctx)
	if err != nil {
		slog.Warn("Failed to load app usage", "error", err)
		return byPackage
	}
	for _, rec := range records {
		byPackage[rec.PackageName] = rec
	}
	return byPackage
}

// installedApps lists user apps first, then system apps. A package found in
// both keeps its user entry.
func (p *Platform) installedApps() ([]installedApp, error) {
	roots := []struct {
		path     string
		isSystem bool
	}{
		{p.opts.UserAppsPath, false},
		{p.opts.SystemAppsPath, true},
	}

	var apps []installedApp
	seen := make(map[string]bool)
	for _, root := range roots {
		if root.path == "" {
			continue
		}
		dirs, err := listAppDirs(root.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, dir := range dirs {
			pkg := packageName(filepath.Base(dir))
			if pkg == "" || seen[pkg] || p.ignored(pkg) {
				continue
			}
			seen[pkg] = true
			apps = append(apps, installedApp{packageName: pkg, path: dir, isSystem: root.isSystem})
		}
	}
	return apps, nil
}

// listAppDirs returns the app directories under root, descending into the
// randomized "~~" parents used since Android 11.
func listAppDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name())
		if !strings.HasPrefix(e.Name(), "~~") {
			dirs = append(dirs, path)
			continue
		}
		nested, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, n := range nested {
			if n.IsDir() {
				dirs = append(dirs, filepath.Join(path, n.Name()))
			}
		}
	}
	return dirs, nil
}

// packageName strips the install suffix ("com.app-1" or "com.app-Xyz==")
func packageName(dirName string) string {
	if i := strings.IndexByte(dirName, '-'); i >= 0 {
		return dirName[:i]
	}
	return dirName
}

// dirSize returns the apparent size of all files under path. A missing path
// has size 0.
func dirSize(path string) (int64, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var size atomic.Int64
	walk := func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtrees are skipped
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		size.Add(info.Size())
		return nil
	}

	if err := fastwalk.Walk(&fastwalk.Config{Follow: false}, path, walk); err != nil {
		return 0, err
	}
	return size.Load(), nil
}

func readIcon(appDir string) string {
	data, err := os.ReadFile(filepath.Join(appDir, "icon.png"))
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
