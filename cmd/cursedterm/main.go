// Command cursedterm is a PTY-hosted terminal emulator: a VT/ANSI
// interpreter driving a fixed 80x24 grid, rendered as a Bubbletea text UI.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justy989/cursedterm/internal/app"
	"github.com/justy989/cursedterm/internal/config"
	"github.com/justy989/cursedterm/internal/pty"
)

func main() {
	cfg := config.Load()

	logFile, err := os.OpenFile(cfg.LogFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// Startup failures (log creation, openpty, fork, thread creation)
		// are fatal with non-zero exit (spec §7).
		fmt.Fprintf(os.Stderr, "cursedterm: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := log.New(logFile, "", log.LstdFlags|log.Lmicroseconds)
	logger.Printf("[main] cursedterm starting, shell=%q theme=%q", cfg.Shell, cfg.Theme)

	pty.InstallSIGCHLDHandler(logger)

	model, err := app.New(cfg, logger)
	if err != nil {
		logger.Printf("[main] fatal: %v", err)
		fmt.Fprintf(os.Stderr, "cursedterm: failed to start: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Printf("[main] bubbletea exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "cursedterm: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("[main] cursedterm exiting cleanly")
}
