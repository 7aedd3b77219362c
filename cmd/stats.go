package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	deviceService "ecoclean/internal/application/device"
	"ecoclean/internal/domain/device"
	"ecoclean/internal/infrastructure/config"
	"ecoclean/internal/infrastructure/logger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print device statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		slog.SetDefault(logger.New(io.Discard, cfg.LogLevel))

		top, _ := cmd.Flags().GetInt("top")
		svc := deviceService.NewService(newPlatform(cfg, nil))
		return printStats(cmd, svc, top)
	},
}

func init() {
	statsCmd.Flags().Int("top", 5, "Number of largest apps to list")
}

func printStats(cmd *cobra.Command, svc deviceService.Service, top int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	storage, err := svc.GetStorageStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Storage:   %s used of %s (%s free)\n",
		humanize.IBytes(uint64(storage.UsedBytes)),
		humanize.IBytes(uint64(storage.TotalBytes)),
		humanize.IBytes(uint64(storage.FreeBytes)))

	if battery, err := svc.GetBatteryInfo(ctx); err == nil {
		charging := ""
		if battery.IsCharging {
			charging = ", charging"
		}
		fmt.Fprintf(out, "Battery:   %d%%%s\n", battery.Level, charging)
	} else if !errors.Is(err, device.ErrCapabilityUnavailable) {
		return err
	}

	if mem, err := svc.GetMemoryInfo(ctx); err == nil {
		fmt.Fprintf(out, "Memory:    %s available of %s\n",
			humanize.IBytes(uint64(mem.AvailableBytes)),
			humanize.IBytes(uint64(mem.TotalBytes)))
	} else if !errors.Is(err, device.ErrCapabilityUnavailable) {
		return err
	}

	if usage, err := svc.GetDataUsage(ctx); err == nil {
		fmt.Fprintf(out, "Mobile:    %s down, %s up\n",
			humanize.IBytes(uint64(usage.MobileRxBytes)),
			humanize.IBytes(uint64(usage.MobileTxBytes)))
		fmt.Fprintf(out, "Wi-Fi:     %s down, %s up\n",
			humanize.IBytes(uint64(usage.WifiRxBytes)),
			humanize.IBytes(uint64(usage.WifiTxBytes)))
	} else if !errors.Is(err, device.ErrCapabilityUnavailable) {
		return err
	}

	if top <= 0 {
		return nil
	}
	apps, err := svc.GetAppsStorage(ctx)
	if err != nil {
		return err
	}
	if len(apps) > top {
		apps = apps[:top]
	}
	fmt.Fprintln(out, "Largest apps:")
	for _, app := range apps {
		fmt.Fprintf(out, "  %-40s %10s\n", app.PackageName, humanize.IBytes(uint64(app.TotalBytes())))
	}
	return nil
}
