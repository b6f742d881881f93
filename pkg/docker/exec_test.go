package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExecFailure(t *testing.T) {
	t.Run("docker cli failure codes", func(t *testing.T) {
		assert.True(t, isExecFailure(125)) // daemon error
		assert.True(t, isExecFailure(126)) // cannot invoke command
		assert.True(t, isExecFailure(127)) // command not found
	})

	t.Run("shell exit statuses are not failures", func(t *testing.T) {
		assert.False(t, isExecFailure(0))
		assert.False(t, isExecFailure(1))
		assert.False(t, isExecFailure(130)) // interrupted with ctrl-c
	})
}
