// Package connect drives the discovery, matching and selection flow that
// attaches the terminal to a running devcontainer.
package connect

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/abcdlsj/devcon/pkg/docker"
	"github.com/abcdlsj/devcon/pkg/match"
	"github.com/abcdlsj/devcon/pkg/profile"
	"github.com/abcdlsj/devcon/pkg/waypipe"
)

var (
	// ErrNoMatch means no running container corresponds to the profile.
	ErrNoMatch = errors.New("no matching container found")
	// ErrAborted means the user cancelled at the selection prompt.
	ErrAborted = errors.New("selection cancelled")
)

// Prompter asks the user to pick one candidate. Injected so the flow is
// testable without a terminal.
type Prompter func(candidates []match.Candidate) (docker.Container, error)

// Resolve narrows the ordered candidate list to exactly one container.
// A single exact-category candidate wins without prompting; anything else
// goes to the user.
func Resolve(candidates []match.Candidate, prompt Prompter) (docker.Container, error) {
	if len(candidates) == 0 {
		return docker.Container{}, ErrNoMatch
	}

	var exact []match.Candidate
	for _, c := range candidates {
		if c.Category == match.Exact {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		log.Info("Found container", "name", exact[0].Container.Name, "id", exact[0].Container.ShortID())
		return exact[0].Container, nil
	}

	return prompt(candidates)
}

// Run performs one full connection attempt: load profile, enumerate,
// classify, resolve, exec.
func Run(ctx context.Context, dir string) error {
	prof, err := profile.Load(dir)
	if err != nil {
		return err
	}

	log.Info("Looking for containers", "pattern", match.NormalizePattern(prof.Name), "user", prof.RemoteUser)

	cli, err := docker.NewClient(ctx)
	if err != nil {
		return err
	}
	defer cli.Close()

	containers, err := cli.ListRunning(ctx)
	if err != nil {
		return err
	}

	candidates, err := match.Classify(prof, containers)
	if err != nil {
		return err
	}

	target, err := Resolve(candidates, selectPrompt)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			log.Info("Selection cancelled")
			return nil
		}
		if errors.Is(err, ErrNoMatch) {
			return fmt.Errorf("%w: is the devcontainer running?", ErrNoMatch)
		}
		return err
	}

	if prof.Waypipe {
		if err := waypipe.EnsureClient(); err != nil {
			log.Warn("Waypipe client unavailable, GUI forwarding disabled", "err", err)
		}
	}

	return docker.ExecShell(ctx, target.ID, prof.RemoteUser, WorkspacePath(dir))
}

// WorkspacePath mirrors the editor's mount layout: the project directory
// that contains <dir> is mounted at /workspaces/<project> inside the
// container.
func WorkspacePath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	return "/workspaces/" + filepath.Base(filepath.Dir(abs))
}
