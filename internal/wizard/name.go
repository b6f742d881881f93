package wizard

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

var (
	invalidNameChars   = regexp.MustCompile(`[^\w\s\-_.]`)
	collapseWhitespace = regexp.MustCompile(`\s+`)
	invalidDockerChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	collapseHyphens    = regexp.MustCompile(`-+`)
)

// stepName asks for the devcontainer display name and, optionally, a
// fixed docker container name.
func (w *wizard) stepName() error {
	current, _ := w.data["name"].(string)
	if current == "" {
		current = defaultName
	}

	name := current
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Devcontainer name").
			Description("Shown by the editor and used to find the running container").
			Value(&name),
	)).Run()
	if err != nil {
		return err
	}
	w.data["name"] = SanitizeName(name)

	fixed := false
	err = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Set a fixed docker container name?").
			Description("Makes the container trivial to find, but only one instance can run").
			Value(&fixed),
	)).Run()
	if err != nil {
		return err
	}
	if !fixed {
		return nil
	}

	dockerName := SanitizeDockerName(name)
	err = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Docker container name").Value(&dockerName),
	)).Run()
	if err != nil {
		return err
	}

	dockerName = SanitizeDockerName(dockerName)
	w.prof.ContainerName = dockerName
	w.appendRunArg("--name=" + dockerName)
	log.Info("Using fixed docker container name", "name", dockerName)

	return nil
}

// appendRunArg adds one argument to the configuration's runArgs list.
func (w *wizard) appendRunArg(arg string) {
	args, _ := w.data["runArgs"].([]any)
	w.data["runArgs"] = append(args, arg)
}

// SanitizeName strips characters the devcontainer tooling rejects and
// normalizes whitespace.
func SanitizeName(name string) string {
	s := invalidNameChars.ReplaceAllString(name, "")
	s = strings.TrimSpace(collapseWhitespace.ReplaceAllString(s, " "))
	if s == "" {
		return defaultName
	}
	return s
}

// SanitizeDockerName maps an arbitrary name onto docker's [a-zA-Z0-9-]
// container naming rules.
func SanitizeDockerName(name string) string {
	s := invalidDockerChars.ReplaceAllString(name, "-")
	s = strings.Trim(collapseHyphens.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return "my-container"
	}
	return s
}
