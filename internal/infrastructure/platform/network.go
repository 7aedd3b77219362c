package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ecoclean/internal/domain/device"
)

var (
	mobilePrefixes = []string{"rmnet", "rev_rmnet", "ccmni", "wwan", "pdp"}
	wifiPrefixes   = []string{"wlan", "wlp", "wifi", "swlan"}
)

func readNetDev(path string) (*device.DataUsage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseNetDev(f)
}

// parseNetDev sums /proc/net/dev counters. Loopback is skipped.
func parseNetDev(r io.Reader) (*device.DataUsage, error) {
	usage := &device.DataUsage{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue // header lines
		}
		name = strings.TrimSpace(name)
		if name == "lo" {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) < 9 {
			continue
		}
		rx, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		tx, err := strconv.ParseInt(fields[8], 10, 64)
		if err != nil {
			continue
		}

		usage.TotalRxBytes += rx
		usage.TotalTxBytes += tx
		switch {
		case hasAnyPrefix(name, mobilePrefixes):
			usage.MobileRxBytes += rx
			usage.MobileTxBytes += tx
		case hasAnyPrefix(name, wifiPrefixes):
			usage.WifiRxBytes += rx
			usage.WifiTxBytes += tx
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("net/dev: %w", err)
	}
	return usage, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
