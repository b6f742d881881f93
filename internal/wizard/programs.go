package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/abcdlsj/devcon/pkg/debian"
	"github.com/abcdlsj/devcon/pkg/devjson"
)

// stepPrograms runs the Debian package search loop and appends an
// apt-get install for everything the user picked.
func (w *wizard) stepPrograms() error {
	var selected []string

	for {
		query := ""
		err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Search Debian packages to preinstall").
				Description("Leave empty to finish").
				Value(&query),
		)).Run()
		if err != nil {
			return err
		}
		if strings.TrimSpace(query) == "" {
			break
		}

		hits, err := debian.Search(w.ctx, query)
		if err != nil {
			log.Warn("Package search failed", "query", query, "err", err)
			continue
		}
		if len(hits) == 0 {
			log.Info("No packages found", "query", query)
			continue
		}

		options := make([]huh.Option[string], 0, len(hits))
		for _, p := range hits {
			label := p.Name
			if p.Description != "" {
				label = fmt.Sprintf("%s - %s", p.Name, p.Description)
			}
			options = append(options, huh.NewOption(label, p.Name))
		}

		var picked []string
		err = huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Results for %q", query)).
				Options(options...).
				Value(&picked),
		)).Run()
		if err != nil {
			return err
		}
		selected = append(selected, picked...)
	}

	if len(selected) == 0 {
		return nil
	}

	w.appendInstallCommand(selected)
	log.Info("Packages will be installed on container creation", "packages", strings.Join(selected, " "))
	return nil
}

func (w *wizard) appendInstallCommand(packages []string) {
	seen := map[string]bool{}
	var unique []string
	for _, p := range packages {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}

	devjson.AppendCommand(w.data, debian.InstallCommand(unique))
}
