package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tipService "ecoclean/internal/application/tip"
	domainTip "ecoclean/internal/domain/tip"
	"ecoclean/internal/infrastructure/config"
	"ecoclean/internal/infrastructure/logger"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Generate an eco tip for a cleanup summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		slog.SetDefault(logger.New(os.Stderr, cfg.LogLevel))

		mode, _ := cmd.Flags().GetString("mode")
		items, _ := cmd.Flags().GetInt("items")
		size, _ := cmd.Flags().GetInt64("bytes")
		samples, _ := cmd.Flags().GetStringSlice("sample")

		svc := tipService.NewService(newGenerator(cmd.Context(), cfg), nil, tipTimeout(cfg))
		t := svc.GetEcoTip(cmd.Context(), domainTip.ScanSummary{
			Mode:           domainTip.Mode(mode),
			ItemCount:      items,
			TotalSizeBytes: size,
			SampleFiles:    samples,
		})

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n(%s, %s)\n", t.Text, t.Source, tipService.FormatSize(t.TotalSizeBytes))
		return nil
	},
}

func init() {
	tipCmd.Flags().String("mode", string(domainTip.ModeJunk), "Cleanup mode")
	tipCmd.Flags().Int("items", 0, "Number of items removed")
	tipCmd.Flags().Int64("bytes", 0, "Total bytes removed")
	tipCmd.Flags().StringSlice("sample", nil, "Sample file names")
}
