package wizard

import (
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// stepWaypipe optionally merges the Waypipe template so GUI applications
// in the container can reach the host display server.
func (w *wizard) stepWaypipe() error {
	if runtime.GOOS != "linux" {
		log.Debug("Skipping Waypipe step, not a linux host")
		return nil
	}

	enable := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Enable Waypipe support for GUI applications?").
			Description("Forwards Wayland windows from the container to the host").
			Value(&enable),
	)).Run()
	if err != nil {
		return err
	}
	if !enable {
		return nil
	}

	if err := w.mergeTemplate("waypipe.jsonc"); err != nil {
		return err
	}
	w.prof.Waypipe = true
	log.Info("Waypipe forwarding enabled")

	return nil
}
