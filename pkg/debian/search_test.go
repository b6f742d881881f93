package debian

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<h3>Package vim</h3>
<ul>
  <li><a href="/bookworm/vim">bookworm (editors)</a>: Vi IMproved - enhanced vi editor</li>
</ul>
<h3>Package vim-tiny</h3>
<ul>
  <li><a href="/bookworm/vim-tiny">bookworm (editors)</a>: Vi IMproved - enhanced vi editor - compact version</li>
</ul>
<h3>Not a package heading</h3>
</body></html>`

func TestParseResults(t *testing.T) {
	got, err := parseResults(strings.NewReader(resultsPage))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "vim", got[0].Name)
	assert.Equal(t, "Vi IMproved - enhanced vi editor", got[0].Description)
	assert.Equal(t, "vim-tiny", got[1].Name)
}

func TestParseResultsCapsAtLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 50; i++ {
		b.WriteString("<h3>Package p</h3><ul><li>bookworm: desc</li></ul>")
	}
	b.WriteString("</body></html>")

	got, err := parseResults(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Len(t, got, maxResults)
}

func TestParseResultsEmptyPage(t *testing.T) {
	got, err := parseResults(strings.NewReader("<html><body><p>no hits</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInstallCommand(t *testing.T) {
	assert.Empty(t, InstallCommand(nil))
	assert.Equal(t,
		"sudo apt-get update && sudo apt-get install -y vim git",
		InstallCommand([]string{"vim", "git"}))
}
