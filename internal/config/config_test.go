package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("VAPI_URL", "https://api.vapi.ai/call")
	t.Setenv("BEARER_TOKEN", "secret")
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("SERVICE_ACCOUNT_FILE", "/etc/creds.json")
	t.Setenv("ASSISTANT_ID", "asst-out")
	t.Setenv("INBOUND_ASSISTANT_ID", "asst-in")
	t.Setenv("PARTNER_ASSISTANT_ID", "asst-p-out")
	t.Setenv("PARTNER_INBOUND_ASSISTANT_ID", "asst-p-in")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.vapi.ai/call", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 100, cfg.API.PageSize)
	assert.Equal(t, 1000, cfg.API.MaxPages)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/etc/creds.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, "Australia/Sydney", cfg.Report.Timezone)
	assert.Equal(t, "info", cfg.LogLevel)

	require.Len(t, cfg.Destinations, 4)

	outbound := cfg.Destinations[0]
	assert.Equal(t, "outbound", outbound.Name)
	assert.Equal(t, "asst-out", outbound.AssistantID)
	assert.Equal(t, "Outbound!A1:Z", outbound.Range)
	assert.Equal(t, "full", outbound.Schema)

	inbound := cfg.Destinations[1]
	assert.Equal(t, "asst-in", inbound.AssistantID)
	assert.Equal(t, "Inbound!A1:Z", inbound.Range)
	assert.Equal(t, "reduced", inbound.Schema)
	assert.Equal(t, 20.0, inbound.MinSeconds)

	assert.Equal(t, "asst-p-out", cfg.Destinations[2].AssistantID)
	assert.Equal(t, "asst-p-in", cfg.Destinations[3].AssistantID)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("BEARER_TOKEN", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
log_level: debug
api:
  base_url: https://example.com/call
  token: ${BEARER_TOKEN}
  page_size: 50
sync:
  interval_sec: 900
destinations:
  - name: outbound
    assistant_id: asst-1
    sheet: Calls
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.com/call", cfg.API.BaseURL)
	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, 50, cfg.API.PageSize)
	assert.Equal(t, 15*time.Minute, cfg.Sync.Interval())
	assert.Equal(t, 5*time.Minute, cfg.Sync.Timeout())

	require.Len(t, cfg.Destinations, 1)
	dest := cfg.Destinations[0]
	assert.Equal(t, "Calls!A1:Z", dest.Range)
	assert.Equal(t, "reduced", dest.Schema)
	assert.Equal(t, 20.0, dest.MinSeconds)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a mapping"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
