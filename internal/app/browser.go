package app

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// openBrowser opens the default browser on the given file or URL
func openBrowser(target string) error {
	var lastErr error

	for _, method := range browserOpenMethods(target) {
		slog.Info("Attempting to open browser",
			slog.String("method", method.name),
			slog.String("target", target))

		cmd := exec.Command(method.cmd, method.args...)
		if err := cmd.Start(); err != nil {
			lastErr = err
			slog.Warn("Browser open method failed",
				slog.String("method", method.name),
				slog.String("error", err.Error()))
			continue
		}

		// Reap the launcher so it doesn't linger as a zombie.
		go cmd.Wait()

		slog.Info("Browser opened",
			slog.String("method", method.name),
			slog.String("target", target))
		return nil
	}

	return fmt.Errorf("failed to open browser: %w", lastErr)
}

// browserMethod represents a method to open the browser
type browserMethod struct {
	name string
	cmd  string
	args []string
}

// browserOpenMethods returns platform-specific browser opening methods
func browserOpenMethods(target string) []browserMethod {
	switch runtime.GOOS {
	case "windows":
		return []browserMethod{
			{
				name: "start_command",
				cmd:  "cmd",
				args: []string{"/c", "start", "", target},
			},
			{
				name: "rundll32",
				cmd:  "rundll32",
				args: []string{"url.dll,FileProtocolHandler", target},
			},
		}
	case "darwin":
		return []browserMethod{
			{
				name: "open",
				cmd:  "open",
				args: []string{target},
			},
		}
	default: // Linux and others
		return []browserMethod{
			{
				name: "xdg-open",
				cmd:  "xdg-open",
				args: []string{target},
			},
			{
				name: "sensible-browser",
				cmd:  "sensible-browser",
				args: []string{target},
			},
		}
	}
}
