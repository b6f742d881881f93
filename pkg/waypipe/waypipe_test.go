package waypipe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForSocket(t *testing.T) {
	t.Run("returns when the socket appears", func(t *testing.T) {
		dir := t.TempDir()
		sock := filepath.Join(dir, "waypipe.sock")

		go func() {
			time.Sleep(50 * time.Millisecond)
			f, err := os.Create(sock)
			if err == nil {
				f.Close()
			}
		}()

		assert.NoError(t, waitForSocket(dir, sock, 2*time.Second))
	})

	t.Run("returns immediately for a pre-existing socket", func(t *testing.T) {
		dir := t.TempDir()
		sock := filepath.Join(dir, "waypipe.sock")
		f, err := os.Create(sock)
		require.NoError(t, err)
		f.Close()

		assert.NoError(t, waitForSocket(dir, sock, time.Second))
	})

	t.Run("times out when nothing appears", func(t *testing.T) {
		dir := t.TempDir()
		err := waitForSocket(dir, filepath.Join(dir, "waypipe.sock"), 100*time.Millisecond)
		assert.Error(t, err)
	})
}
