package platform

import (
	"log/slog"
	"os/exec"
)

// Launcher starts an activity manager command without waiting for it
type Launcher interface {
	Launch(args ...string)
}

// CommandLauncher runs Command (usually "am") with the intent arguments
type CommandLauncher struct {
	Command string
}

func (l CommandLauncher) Launch(args ...string) {
	cmd := exec.Command(l.Command, args...)
	if err := cmd.Start(); err != nil {
		slog.Warn("Failed to launch intent", "command", l.Command, "args", args, "error", err)
		return
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("Intent command failed", "command", l.Command, "args", args, "error", err)
		}
	}()
}
