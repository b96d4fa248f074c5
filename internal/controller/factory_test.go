package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	t.Run("tty gets the interactive ui", func(t *testing.T) {
		assert.IsType(t, &TUI{}, NewUI(cmd, true))
	})

	t.Run("pipes get plain text", func(t *testing.T) {
		assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	})
}

func TestIsTTY(t *testing.T) {
	t.Run("non-file writers are never terminals", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})

	t.Run("regular files are not terminals", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		assert.NoError(t, err)
		defer f.Close()

		assert.False(t, IsTTY(f))
	})
}
