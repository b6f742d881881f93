package match

import (
	"errors"
	"sort"
	"strings"

	"github.com/abcdlsj/devcon/pkg/docker"
	"github.com/abcdlsj/devcon/pkg/profile"
)

// Category classifies how strongly a running container corresponds to the
// stored profile. Higher values rank first.
type Category int

const (
	ImageOnly Category = iota + 1
	NamePartial
	Exact
)

func (c Category) String() string {
	switch c {
	case Exact:
		return "exact"
	case NamePartial:
		return "name"
	case ImageOnly:
		return "image"
	default:
		return "none"
	}
}

// Candidate wraps a running container with its match category.
type Candidate struct {
	Container docker.Container
	Category  Category
}

// ErrInvalidProfile means the profile has no container name to match
// against, so classification would match everything.
var ErrInvalidProfile = errors.New("profile has no container name to match against")

// Classify compares running containers against the profile and returns the
// matching ones, strongest first. Containers matching neither name nor
// image are excluded. The order is deterministic: category first, then
// newest creation time, then container ID.
func Classify(p *profile.Profile, containers []docker.Container) ([]Candidate, error) {
	if p == nil || p.Name == "" {
		return nil, ErrInvalidProfile
	}

	pattern := NormalizePattern(p.Name)

	candidates := make([]Candidate, 0, len(containers))
	for _, c := range containers {
		nameHit := nameMatches(c, pattern, p.ContainerName)
		imageHit := imageMatches(c.Image, p.Image)

		var cat Category
		switch {
		case nameHit && imageHit:
			cat = Exact
		case nameHit:
			cat = NamePartial
		case imageHit:
			cat = ImageOnly
		default:
			continue
		}

		candidates = append(candidates, Candidate{Container: c, Category: cat})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Category != candidates[j].Category {
			return candidates[i].Category > candidates[j].Category
		}
		if candidates[i].Container.Created != candidates[j].Container.Created {
			return candidates[i].Container.Created > candidates[j].Container.Created
		}
		return candidates[i].Container.ID < candidates[j].Container.ID
	})

	return candidates, nil
}

// NormalizePattern turns a human readable devcontainer name into the
// lowercase hyphenated form embedded in generated container names, e.g.
// "God Container" -> "god-container".
func NormalizePattern(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// nameMatches reports whether the container corresponds to the profile by
// name. Editor-generated devcontainers carry the project name in the image
// reference (vsc-<name>-<hash>), so the image string counts as a name
// signal too.
func nameMatches(c docker.Container, pattern, customName string) bool {
	if pattern == "" {
		return false
	}
	name := strings.ToLower(c.Name)
	if customName != "" && name == strings.ToLower(customName) {
		return true
	}
	return strings.Contains(name, pattern) || strings.Contains(strings.ToLower(c.Image), pattern)
}

// imageMatches reports whether the container runs the profile's image.
// The tag is ignored when the repository parts match, so a profile
// pinned to python:3.11 still matches a python:3.11-slim container.
func imageMatches(containerImage, want string) bool {
	if want == "" || containerImage == "" {
		return false
	}

	ci := strings.ToLower(containerImage)
	wi := strings.ToLower(want)
	if ci == wi {
		return true
	}
	return repoEqual(stripTag(ci), stripTag(wi))
}

// stripTag removes a :tag suffix, leaving registry:port prefixes intact.
func stripTag(ref string) string {
	if i := strings.LastIndex(ref, ":"); i > 0 && !strings.Contains(ref[i:], "/") {
		return ref[:i]
	}
	return ref
}

// repoEqual compares repository references anchored at path-segment
// boundaries, so a registry or namespace prefix on either side still
// matches: python equals docker.io/library/python but not notpython.
func repoEqual(a, b string) bool {
	if a == b {
		return true
	}
	return strings.HasSuffix(a, "/"+b) || strings.HasSuffix(b, "/"+a)
}
