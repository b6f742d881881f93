package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := []byte(`{
  "collections": [
    {
      "sourceInformation": {"name": "devcontainers"},
      "features": [
        {"id": "ghcr.io/devcontainers/features/go", "name": "Go", "version": "1"},
        {"id": "ghcr.io/devcontainers/features/node", "name": "", "version": "2"},
        {"id": "", "name": "broken entry"}
      ]
    }
  ]
}`)

	got, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Go", got[0].Name)
	assert.Equal(t, "ghcr.io/devcontainers/features/go:1", got[0].Reference)
	assert.Equal(t, "devcontainers", got[0].Maintainer)

	// Entries without a display name fall back to the id.
	assert.Equal(t, "ghcr.io/devcontainers/features/node", got[1].Name)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestFallback(t *testing.T) {
	got := Fallback()
	require.NotEmpty(t, got)
	for _, f := range got {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Reference)
	}
}
