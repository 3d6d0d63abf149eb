package command_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorgan81/logoforge/internal/command"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := command.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return stdout.String(), err
}

func dezgoServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text2image", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("img"))
	}))
	t.Cleanup(server.Close)

	t.Setenv("IMAGE_PROVIDER", "dezgo")
	t.Setenv("IMAGE_BASE_URL", server.URL)
	t.Setenv("IMAGE_MODEL", "")
	t.Setenv("API_KEY", "test-key")
	t.Setenv("API_KEY_PARAM", "")
	return server
}

func TestGenerate(t *testing.T) {
	t.Run("prints data uri", func(t *testing.T) {
		dezgoServer(t)

		out, err := run(t, "generate", "--idea", "Acme", "--style", "retro")
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,aW1n\n", out)
	})

	t.Run("writes file", func(t *testing.T) {
		dezgoServer(t)
		name := filepath.Join(t.TempDir(), "logo.jpg")

		out, err := run(t, "generate", "--idea", "Acme", "--style", "retro", "-o", name)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, []byte("img"), data)
	})

	t.Run("blank style", func(t *testing.T) {
		_, err := run(t, "generate", "--idea", "Acme", "--style", "  ")
		assert.EqualError(t, err, "both a business idea and a logo style are required")
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("API_KEY", "")
		t.Setenv("API_KEY_PARAM", "")

		_, err := run(t, "generate", "--idea", "Acme", "--style", "retro")
		assert.EqualError(t, err, "API_KEY environment variable is not set")
	})
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
