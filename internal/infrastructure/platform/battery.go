package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ecoclean/internal/domain/device"
)

// findBattery returns the first power supply whose type is Battery
func findBattery(root string) string {
	if root == "" {
		return ""
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		if strings.EqualFold(readString(filepath.Join(dir, "type")), "Battery") {
			return dir
		}
	}
	return ""
}

func readBattery(dir string) (*device.BatteryInfo, error) {
	level, err := readInt(filepath.Join(dir, "capacity"))
	if err != nil {
		return nil, fmt.Errorf("battery capacity: %w", err)
	}

	status := readString(filepath.Join(dir, "status"))
	info := &device.BatteryInfo{
		Level:      int(level),
		Status:     status,
		IsCharging: status == "Charging" || status == "Full",
		Health:     readString(filepath.Join(dir, "health")),
		Technology: readString(filepath.Join(dir, "technology")),
	}

	// temp is in tenths of a degree, voltage_now in microvolts
	if temp, err := readInt(filepath.Join(dir, "temp")); err == nil {
		info.TemperatureC = float64(temp) / 10
	}
	if uv, err := readInt(filepath.Join(dir, "voltage_now")); err == nil {
		info.VoltageMV = uv / 1000
	}

	return info, nil
}

func readString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readInt(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}
