package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/abcdlsj/devcon/pkg/features"
)

// stepFeatures lets the user pick devcontainer features from the public
// index and records them in the configuration.
func (w *wizard) stepFeatures() error {
	add := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Add devcontainer features?").
			Description("Language runtimes and tools installed on top of the base image").
			Value(&add),
	)).Run()
	if err != nil {
		return err
	}
	if !add {
		return nil
	}

	available, fetchErr := features.Fetch(w.ctx)
	if fetchErr != nil {
		log.Warn("Feature index unreachable, offering the built-in list", "err", fetchErr)
	}

	options := make([]huh.Option[string], 0, len(available))
	for _, f := range available {
		label := f.Name
		if f.Maintainer != "" {
			label = fmt.Sprintf("%s (%s)", f.Name, f.Maintainer)
		}
		options = append(options, huh.NewOption(label, f.Reference))
	}

	var picked []string
	err = huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Select features").
			Options(options...).
			Filterable(true).
			Value(&picked),
	)).Run()
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		return nil
	}

	feats, _ := w.data["features"].(map[string]any)
	if feats == nil {
		feats = map[string]any{}
	}
	for _, ref := range picked {
		feats[ref] = map[string]any{}
	}
	w.data["features"] = feats

	log.Info("Added features", "count", len(picked))
	return nil
}
