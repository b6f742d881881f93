package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	t.Run("keeps reasonable names", func(t *testing.T) {
		assert.Equal(t, "God Container", SanitizeName("God Container"))
	})

	t.Run("strips invalid characters and squeezes whitespace", func(t *testing.T) {
		assert.Equal(t, "myapp 2", SanitizeName("  my/app!   2  "))
	})

	t.Run("empty input falls back to default", func(t *testing.T) {
		assert.Equal(t, defaultName, SanitizeName("///"))
	})
}

func TestSanitizeDockerName(t *testing.T) {
	assert.Equal(t, "god-container", SanitizeDockerName("god container"))
	assert.Equal(t, "my-app", SanitizeDockerName("--my..app--"))
	assert.Equal(t, "my-container", SanitizeDockerName("!!!"))
}

func TestParseIDFile(t *testing.T) {
	passwd := `root:x:0:0:root:/root:/bin/bash
# comment
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
broken line
dev:x:1000:1000:Dev:/home/dev:/bin/bash
`
	entries := parseIDFile(strings.NewReader(passwd))
	require.Len(t, entries, 3)
	assert.Equal(t, idEntry{Name: "root", ID: 0}, entries[0])
	assert.Equal(t, idEntry{Name: "dev", ID: 1000}, entries[2])
}

func TestAppendRunArg(t *testing.T) {
	w := &wizard{data: map[string]any{"runArgs": []any{"--init"}}}
	w.appendRunArg("--user=1000:1000")
	assert.Equal(t, []any{"--init", "--user=1000:1000"}, w.data["runArgs"])

	empty := &wizard{data: map[string]any{}}
	empty.appendRunArg("--name=myapp")
	assert.Equal(t, []any{"--name=myapp"}, empty.data["runArgs"])
}

func TestUserRunArg(t *testing.T) {
	t.Run("root uid stays zero", func(t *testing.T) {
		arg, ok := userRunArg(0, 0, true, false)
		assert.True(t, ok)
		assert.Equal(t, "--user=0:1000", arg)
	})

	t.Run("only gid chosen defaults the uid", func(t *testing.T) {
		arg, ok := userRunArg(0, 4, false, true)
		assert.True(t, ok)
		assert.Equal(t, "--user=1000:4", arg)
	})

	t.Run("both chosen", func(t *testing.T) {
		arg, ok := userRunArg(1001, 1002, true, true)
		assert.True(t, ok)
		assert.Equal(t, "--user=1001:1002", arg)
	})

	t.Run("neither chosen", func(t *testing.T) {
		_, ok := userRunArg(0, 0, false, false)
		assert.False(t, ok)
	})
}

func TestLoadTemplate(t *testing.T) {
	t.Run("falls back to the built-in defaults", func(t *testing.T) {
		w := &wizard{dir: t.TempDir()}
		data, err := w.loadTemplate("main.jsonc")
		require.NoError(t, err)
		assert.Equal(t, defaultName, data["name"])
	})

	t.Run("project templates take precedence", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0755))
		custom := `{"name": "Custom Container"}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "main.jsonc"), []byte(custom), 0644))

		w := &wizard{dir: dir}
		data, err := w.loadTemplate("main.jsonc")
		require.NoError(t, err)
		assert.Equal(t, "Custom Container", data["name"])
	})

	t.Run("unknown template fails", func(t *testing.T) {
		w := &wizard{dir: t.TempDir()}
		_, err := w.loadTemplate("nope.jsonc")
		assert.Error(t, err)
	})
}

func TestFillProfile(t *testing.T) {
	t.Run("extracts fields from configuration", func(t *testing.T) {
		w := &wizard{data: map[string]any{
			"name":       "My App",
			"remoteUser": "dev",
			"image":      "python:3.11",
		}}
		w.fillProfile()
		assert.Equal(t, "My App", w.prof.Name)
		assert.Equal(t, "dev", w.prof.RemoteUser)
		assert.Equal(t, "python:3.11", w.prof.Image)
	})

	t.Run("applies defaults", func(t *testing.T) {
		w := &wizard{data: map[string]any{}}
		w.fillProfile()
		assert.Equal(t, defaultName, w.prof.Name)
		assert.Equal(t, defaultRemoteUser, w.prof.RemoteUser)
	})
}
