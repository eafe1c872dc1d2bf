//go:build windows

package pty

import "log"

// InstallSIGCHLDHandler is a no-op on Windows, which has no SIGCHLD.
func InstallSIGCHLDHandler(_ *log.Logger) {}
