package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ecoclean/internal/domain/device"
)

// lowMemoryRatio is the share of total memory below which the device is
// considered low on memory
const lowMemoryRatio = 10

func readMeminfo(path string) (*device.MemoryInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMeminfo(f)
}

func parseMeminfo(r io.Reader) (*device.MemoryInfo, error) {
	values := make(map[string]int64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		if len(fields) > 1 && fields[1] == "kB" {
			n *= 1024
		}
		values[key] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meminfo: %w", err)
	}

	total := values["MemTotal"]
	if total == 0 {
		return nil, errors.New("meminfo: MemTotal missing")
	}

	available, ok := values["MemAvailable"]
	if !ok {
		available = values["MemFree"] + values["Buffers"] + values["Cached"]
	}

	threshold := total / lowMemoryRatio
	return &device.MemoryInfo{
		TotalBytes:     total,
		AvailableBytes: available,
		UsedBytes:      total - available,
		ThresholdBytes: threshold,
		LowMemory:      available <= threshold,
	}, nil
}
