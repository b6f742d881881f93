// Package wizard implements the interactive configure flow: it renders
// devcontainer.json from the JSONC templates and writes the connection
// profile the connect flow matches against.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/abcdlsj/devcon/pkg/devjson"
	"github.com/abcdlsj/devcon/pkg/profile"
	"github.com/abcdlsj/devcon/templates"
)

const (
	defaultName       = "Dev Container"
	defaultRemoteUser = "vscode"
)

type wizard struct {
	ctx  context.Context
	dir  string
	data map[string]any
	prof profile.Profile
}

// Run walks the user through the full configuration and writes
// devcontainer.json plus the profile into dir. Cancelling at any prompt
// is a normal termination.
func Run(ctx context.Context, dir string) error {
	w := &wizard{ctx: ctx, dir: dir}

	data, err := w.loadTemplate("main.jsonc")
	if err != nil {
		return fmt.Errorf("failed to load base template: %w", err)
	}
	w.data = data

	steps := []func() error{
		w.stepWaypipe,
		w.stepName,
		w.stepUser,
		w.stepFeatures,
		w.stepPrograms,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				log.Info("Configuration cancelled, nothing written")
				return nil
			}
			return err
		}
	}

	outPath := filepath.Join(w.dir, "devcontainer.json")
	if err := devjson.Save(outPath, w.data); err != nil {
		return err
	}
	log.Info("Wrote devcontainer configuration", "path", outPath)

	w.fillProfile()
	if err := w.prof.Save(w.dir); err != nil {
		return err
	}
	log.Info("Saved connection profile", "path", filepath.Join(w.dir, profile.FileName), "container", w.prof.Name)

	return nil
}

// loadTemplate reads <dir>/templates/<name> when the project ships its
// own templates, otherwise the built-in default embedded in the binary.
func (w *wizard) loadTemplate(name string) (map[string]any, error) {
	path := filepath.Join(w.dir, "templates", name)
	if _, err := os.Stat(path); err == nil {
		return devjson.Load(path)
	}

	raw, err := templates.FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no template %s in %s and no built-in default: %w", name, filepath.Dir(path), err)
	}
	data, err := devjson.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("built-in template %s: %w", name, err)
	}
	return data, nil
}

// mergeTemplate deep-merges the named template into the configuration in
// progress.
func (w *wizard) mergeTemplate(name string) error {
	overlay, err := w.loadTemplate(name)
	if err != nil {
		return err
	}
	merged, err := devjson.Merge(w.data, overlay)
	if err != nil {
		return err
	}
	w.data = merged
	return nil
}

// fillProfile extracts the fields the connect flow needs from the final
// configuration.
func (w *wizard) fillProfile() {
	name, _ := w.data["name"].(string)
	if name == "" {
		name = defaultName
	}
	remoteUser, _ := w.data["remoteUser"].(string)
	if remoteUser == "" {
		remoteUser = defaultRemoteUser
	}
	image, _ := w.data["image"].(string)

	w.prof.Name = name
	w.prof.RemoteUser = remoteUser
	w.prof.Image = image
}
