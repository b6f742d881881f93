package connect

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdlsj/devcon/pkg/docker"
	"github.com/abcdlsj/devcon/pkg/match"
)

func failPrompt(t *testing.T) Prompter {
	return func([]match.Candidate) (docker.Container, error) {
		t.Fatal("prompt should not be called")
		return docker.Container{}, nil
	}
}

func TestResolve(t *testing.T) {
	exact := match.Candidate{
		Container: docker.Container{ID: "exact-1", Name: "vsc-myapp-1"},
		Category:  match.Exact,
	}
	partial := match.Candidate{
		Container: docker.Container{ID: "partial-1", Name: "vsc-myapp-2"},
		Category:  match.NamePartial,
	}

	t.Run("single exact auto-selects without prompting", func(t *testing.T) {
		got, err := Resolve([]match.Candidate{exact, partial}, failPrompt(t))
		require.NoError(t, err)
		assert.Equal(t, "exact-1", got.ID)
	})

	t.Run("multiple exacts go to the prompt", func(t *testing.T) {
		other := exact
		other.Container.ID = "exact-2"
		prompted := false
		prompt := func(cands []match.Candidate) (docker.Container, error) {
			prompted = true
			require.Len(t, cands, 2)
			return cands[1].Container, nil
		}

		got, err := Resolve([]match.Candidate{exact, other}, prompt)
		require.NoError(t, err)
		assert.True(t, prompted)
		assert.Equal(t, "exact-2", got.ID)
	})

	t.Run("single non-exact candidate still prompts", func(t *testing.T) {
		imageOnly := match.Candidate{
			Container: docker.Container{ID: "img-1", Name: "vsc-other"},
			Category:  match.ImageOnly,
		}
		prompted := false
		prompt := func(cands []match.Candidate) (docker.Container, error) {
			prompted = true
			return cands[0].Container, nil
		}

		got, err := Resolve([]match.Candidate{imageOnly}, prompt)
		require.NoError(t, err)
		assert.True(t, prompted)
		assert.Equal(t, "img-1", got.ID)
	})

	t.Run("empty candidate list fails with ErrNoMatch", func(t *testing.T) {
		_, err := Resolve(nil, failPrompt(t))
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("abort propagates", func(t *testing.T) {
		prompt := func([]match.Candidate) (docker.Container, error) {
			return docker.Container{}, ErrAborted
		}
		_, err := Resolve([]match.Candidate{partial}, prompt)
		assert.ErrorIs(t, err, ErrAborted)
	})

	t.Run("prompt error propagates", func(t *testing.T) {
		bork := errors.New("terminal gone")
		prompt := func([]match.Candidate) (docker.Container, error) {
			return docker.Container{}, bork
		}
		_, err := Resolve([]match.Candidate{partial}, prompt)
		assert.ErrorIs(t, err, bork)
	})
}

func TestWorkspacePath(t *testing.T) {
	got := WorkspacePath(filepath.Join("/home/dev/projects/myapp", ".devcontainer"))
	assert.Equal(t, "/workspaces/myapp", got)
}
