package tip

import (
	"fmt"
	"math"
	"strings"

	domain "ecoclean/internal/domain/tip"
)

const maxSampleFiles = 6

var modeLabels = map[domain.Mode]string{
	domain.ModeJunk:         "Junk Files",
	domain.ModeCache:        "App Cache",
	domain.ModeLarge:        "Large Files",
	domain.ModeDuplicates:   "Duplicate Files",
	domain.ModeScreenshots:  "Old Screenshots",
	domain.ModeDownloads:    "Old Downloads",
	domain.ModeEmptyFolders: "Empty Folders",
	domain.ModeAPKs:         "Leftover APK Files",
	domain.ModeUnusedApps:   "Unused Apps",
}

var fallbackTips = map[domain.Mode]string{
	domain.ModeJunk:         "Clearing junk files means your phone does less background work, and a device that works less uses less energy. Nice job keeping things lean!",
	domain.ModeCache:        "Cached data quietly piles up on every app. Clearing it regularly keeps your phone fast and cuts down on wasted storage writes.",
	domain.ModeLarge:        "Big files you no longer need take up space that could otherwise push you toward a new phone. Keeping your device longer is one of the greenest choices you can make.",
	domain.ModeDuplicates:   "Duplicates double the storage and the backups for the same memory. Keeping just one copy saves space on your phone and energy in the cloud.",
	domain.ModeScreenshots:  "Old screenshots add up fast and often get synced to the cloud. Deleting the ones you no longer need trims your digital footprint.",
	domain.ModeDownloads:    "Forgotten downloads are digital clutter. Clearing them regularly keeps your storage healthy and your phone running longer.",
	domain.ModeEmptyFolders: "Empty folders may be small, but a tidy file system makes every search and backup a little more efficient.",
	domain.ModeAPKs:         "Installer files are no longer needed once an app is installed. Removing them frees space without losing anything.",
	domain.ModeUnusedApps:   "Unused apps can still run in the background, sync data and drain battery. Uninstalling them saves energy every single day.",
}

const defaultFallbackTip = "Every file you clean up saves a little storage and a little energy. Small digital habits add up to a greener planet!"

// Label returns the human-readable name of a cleanup mode. Unknown modes are
// returned as-is.
func Label(mode domain.Mode) string {
	if label, ok := modeLabels[mode]; ok {
		return label
	}
	return string(mode)
}

// FallbackTip returns the static tip for a mode, or the generic tip when the
// mode is unknown or empty.
func FallbackTip(mode domain.Mode) string {
	if text, ok := fallbackTips[mode]; ok {
		return text
	}
	return defaultFallbackTip
}

// FormatSize renders a byte count with 1024-based units
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", math.Round(float64(bytes)/gb*10)/10)
	case bytes >= mb:
		return fmt.Sprintf("%d MB", int64(math.Round(float64(bytes)/mb)))
	case bytes >= kb:
		return fmt.Sprintf("%d KB", int64(math.Round(float64(bytes)/kb)))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// BuildPrompt composes the text-generation prompt for a scan summary
func BuildPrompt(summary domain.ScanSummary) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly sustainability coach inside a phone cleaner app. ")
	fmt.Fprintf(&sb, "The user just cleaned up %s: %d items, %s in total. ",
		Label(summary.Mode), summary.ItemCount, FormatSize(summary.TotalSizeBytes))

	if len(summary.SampleFiles) > 0 {
		samples := summary.SampleFiles
		if len(samples) > maxSampleFiles {
			samples = samples[:maxSampleFiles]
		}
		fmt.Fprintf(&sb, "Sample files found: %s. ", strings.Join(samples, ", "))
	}

	sb.WriteString("Write one short, upbeat eco tip (at most two sentences) that connects this cleanup " +
		"to saving energy or reducing digital waste. Reply with plain text only, no markdown or emojis.")
	return sb.String()
}
