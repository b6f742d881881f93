package connect

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/abcdlsj/devcon/pkg/docker"
	"github.com/abcdlsj/devcon/pkg/match"
)

// selectPrompt shows the candidate list in classifier order and returns
// the user's pick.
func selectPrompt(candidates []match.Candidate) (docker.Container, error) {
	options := make([]huh.Option[int], 0, len(candidates))
	for i, c := range candidates {
		options = append(options, huh.NewOption(formatCandidate(c), i))
	}

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Select container to connect to").
			Description("Strongest matches first").
			Options(options...).
			Value(&picked),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return docker.Container{}, ErrAborted
		}
		return docker.Container{}, fmt.Errorf("selection failed: %w", err)
	}

	return candidates[picked].Container, nil
}

func formatCandidate(c match.Candidate) string {
	image := c.Container.Image
	if len(image) > 50 {
		image = image[:50] + "..."
	}
	return fmt.Sprintf("[%s] %s (%s) %s | %s",
		c.Category, c.Container.Name, c.Container.ShortID(), image, c.Container.Status)
}
