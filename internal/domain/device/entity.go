package device

import "time"

// StorageStats represents a snapshot of the device's data partition
type StorageStats struct {
	TotalBytes int64 `json:"totalBytes"`
	FreeBytes  int64 `json:"freeBytes"`
	UsedBytes  int64 `json:"usedBytes"`
}

// AppStorage represents the storage footprint of one installed application
type AppStorage struct {
	PackageName  string `json:"packageName"`
	AppBytes     int64  `json:"appBytes"`
	DataBytes    int64  `json:"dataBytes"`
	CacheBytes   int64  `json:"cacheBytes"`
	LastTimeUsed int64  `json:"lastTimeUsed,omitempty"` // ms since epoch
	IsSystem     bool   `json:"isSystem,omitempty"`
	IconBase64   string `json:"iconBase64,omitempty"`
}

// TotalBytes returns app + data + cache bytes
func (a AppStorage) TotalBytes() int64 {
	return a.AppBytes + a.DataBytes + a.CacheBytes
}

// UnusedApp represents an installed app that has not been used within a threshold
type UnusedApp struct {
	PackageName  string `json:"packageName"`
	AppName      string `json:"appName"`
	LastTimeUsed int64  `json:"lastTimeUsed"` // ms since epoch, 0 when never recorded
}

// BatteryInfo represents the battery state at query time
type BatteryInfo struct {
	Level        int     `json:"level"` // percent
	IsCharging   bool    `json:"isCharging"`
	Status       string  `json:"status,omitempty"`
	Health       string  `json:"health,omitempty"`
	Technology   string  `json:"technology,omitempty"`
	TemperatureC float64 `json:"temperature,omitempty"`
	VoltageMV    int64   `json:"voltage,omitempty"`
}

// MemoryInfo represents system memory at query time
type MemoryInfo struct {
	TotalBytes     int64 `json:"totalBytes"`
	AvailableBytes int64 `json:"availableBytes"`
	UsedBytes      int64 `json:"usedBytes"`
	ThresholdBytes int64 `json:"thresholdBytes"`
	LowMemory      bool  `json:"lowMemory"`
}

// DataUsage represents network byte counters split by interface class
type DataUsage struct {
	MobileRxBytes int64 `json:"mobileRxBytes"`
	MobileTxBytes int64 `json:"mobileTxBytes"`
	WifiRxBytes   int64 `json:"wifiRxBytes"`
	WifiTxBytes   int64 `json:"wifiTxBytes"`
	TotalRxBytes  int64 `json:"totalRxBytes"`
	TotalTxBytes  int64 `json:"totalTxBytes"`
}

// UsageRecord is a last-used report for one package
type UsageRecord struct {
	PackageName  string    `json:"packageName"`
	AppName      string    `json:"appName,omitempty"`
	LastTimeUsed time.Time `json:"lastTimeUsed"`
}

// AppRequest represents a request targeting a single package
type AppRequest struct {
	PackageName string `json:"packageName"`
}

// UsageReportRequest represents a batch of usage reports sent by the device
type UsageReportRequest struct {
	Apps []UsageReport `json:"apps"`
}

// UsageReport is the wire form of UsageRecord
type UsageReport struct {
	PackageName  string `json:"packageName"`
	AppName      string `json:"appName,omitempty"`
	LastTimeUsed int64  `json:"lastTimeUsed"` // ms since epoch
}

// ToRecord converts a wire report into a UsageRecord
func (r UsageReport) ToRecord() UsageRecord {
	return UsageRecord{
		PackageName:  r.PackageName,
		AppName:      r.AppName,
		LastTimeUsed: time.UnixMilli(r.LastTimeUsed),
	}
}
