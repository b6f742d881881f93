// Package waypipe manages a host-side waypipe client so GUI applications
// inside the devcontainer can reach the host display server.
package waypipe

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const (
	SocketDir  = "/tmp/waypipe"
	SocketPath = "/tmp/waypipe/waypipe.sock"
	LogPath    = "/tmp/waypipe/waypipe_client.log"

	socketWait = 5 * time.Second
)

// ErrUnsupported means the host cannot run a waypipe client.
var ErrUnsupported = errors.New("waypipe is only supported on linux hosts")

// Available reports whether the waypipe binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("waypipe")
	return err == nil
}

// EnsureClient makes sure a detached waypipe client is listening on the
// shared socket, starting one if needed.
func EnsureClient() error {
	if runtime.GOOS != "linux" {
		return ErrUnsupported
	}
	if !Available() {
		return errors.New("waypipe binary not found in PATH")
	}

	if clientRunning() {
		log.Debug("Waypipe client already running", "socket", SocketPath)
		return nil
	}

	// A leftover socket from a dead client blocks the new one.
	if _, err := os.Stat(SocketPath); err == nil {
		log.Debug("Removing stale waypipe socket", "socket", SocketPath)
		if err := os.Remove(SocketPath); err != nil {
			return fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	if err := os.MkdirAll(SocketDir, 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	if err := startClient(); err != nil {
		return err
	}

	if err := waitForSocket(SocketDir, SocketPath, socketWait); err != nil {
		return fmt.Errorf("waypipe client did not create %s: %w", SocketPath, err)
	}

	log.Info("Waypipe client started", "socket", SocketPath, "log", LogPath)
	return nil
}

// clientRunning checks for an existing waypipe client process.
func clientRunning() bool {
	err := exec.Command("pgrep", "-f", "waypipe.*--socket "+SocketPath+" client").Run()
	return err == nil
}

// startClient launches the waypipe client detached from this process,
// logging to LogPath.
func startClient() error {
	logFile, err := os.OpenFile(LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open waypipe log: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command("waypipe", "--compress", "zstd=3", "--socket", SocketPath, "client")
	cmd.Stdin = nil
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start waypipe client: %w", err)
	}

	// The client outlives this process; don't leave a zombie behind.
	go func() { _ = cmd.Wait() }()

	return nil
}

// waitForSocket blocks until sock appears inside dir or the timeout
// elapses.
func waitForSocket(dir, sock string, timeout time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// The socket may appear between Start and Add.
	if _, err := os.Stat(sock); err == nil {
		return nil
	}

	deadline := time.After(timeout)
	for {
		select {
		case event := <-watcher.Events:
			if event.Op&fsnotify.Create != 0 && filepath.Clean(event.Name) == sock {
				return nil
			}
		case err := <-watcher.Errors:
			return err
		case <-deadline:
			return fmt.Errorf("timed out after %s", timeout)
		}
	}
}
