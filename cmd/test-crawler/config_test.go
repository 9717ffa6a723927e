package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/dapr/test-crawler/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestConfig loads a configuration from the given file contents (empty
// means defaults only), with the ambient search paths pointed at empty temp
// directories.
func loadTestConfig(t *testing.T, contents string) *config.Config {
	t.Helper()
	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()

	dir := t.TempDir()
	if contents != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0644))
	}
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	return cfg
}

func TestOutputFormatFlag(t *testing.T) {
	for _, tt := range []struct {
		name      string
		value     string
		expectErr bool
	}{
		{name: "text", value: "text"},
		{name: "json", value: "json"},
		{name: "unknown value rejected", value: "xml", expectErr: true},
		{name: "empty value rejected", value: "", expectErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			format := formatText
			err := format.Set(tt.value)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.value, format.String())
			}
		})
	}
}

func TestPrintConfigJSON(t *testing.T) {
	t.Setenv(config.EnvGitHubToken, "ghp_example123")
	cfg := loadTestConfig(t, "")

	var buf bytes.Buffer
	require.NoError(t, printConfigJSON(&buf, cfg))

	var got struct {
		Repository   string            `json:"repository"`
		Workflow     string            `json:"workflow"`
		Parameters   map[string]string `json:"parameters"`
		Output       string            `json:"output"`
		TokenPresent bool              `json:"token_present"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "dapr/dapr", got.Repository)
	assert.Equal(t, "dapr-test.yml", got.Workflow)
	assert.Equal(t, map[string]string{"per_page": "100"}, got.Parameters)
	assert.Equal(t, "log.txt", got.Output)
	assert.True(t, got.TokenPresent)

	// Only the presence of the token is reported, never its value.
	assert.NotContains(t, buf.String(), "ghp_example123")
}

func TestPrintConfigText(t *testing.T) {
	t.Setenv(config.EnvGitHubToken, "")
	cfg := loadTestConfig(t, "parameters:\n  branch: master\n")

	var buf bytes.Buffer
	printConfigText(&buf, cfg)
	out := buf.String()

	assert.Contains(t, out, "dapr/dapr")
	assert.Contains(t, out, "dapr-test.yml")
	assert.Contains(t, out, "log.txt")
	assert.Contains(t, out, "per_page: 100")
	assert.Contains(t, out, "branch: master")
	assert.Contains(t, out, "none (set $GITHUB_TOKEN)")
}
