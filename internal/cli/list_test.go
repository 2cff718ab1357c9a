package cli_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/food"
)

func TestList_Table(t *testing.T) {
	setupCLITest(t)
	srv := newFoodServer(t)

	out, _, err := execute(t, nil, "--api-url", srv.URL, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "green-apple")
	assert.Contains(t, out, "Green Apple")
	assert.Contains(t, out, "banana")
	assert.Contains(t, out, "3 of 3 foods")
}

func TestList_FilterJSON(t *testing.T) {
	setupCLITest(t)
	srv := newFoodServer(t)

	out, _, err := execute(t, nil, "--api-url", srv.URL, "list", "--filter", "al", "--output", "json")
	require.NoError(t, err)

	var got []food.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []food.Summary{
		{Identifier: "green-apple", DisplayLabel: "Green Apple"},
		{Identifier: "kale", DisplayLabel: "Kale"},
	}, got)
}

func TestList_APIURLFromEnvironment(t *testing.T) {
	setupCLITest(t)
	srv := newFoodServer(t)

	env := map[string]string{config.EnvAPIURL: srv.URL, config.EnvOutputFormat: "json"}
	out, _, err := execute(t, env, "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"identifier": "kale"`)
}

func TestList_ServerError(t *testing.T) {
	setupCLITest(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, _, err := execute(t, nil, "--api-url", srv.URL, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing foods")
	assert.Contains(t, err.Error(), "500")
}

func TestList_InvalidSettings(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown output", []string{"list", "--output", "xml"}, "unsupported output format: xml"},
		{"relative api url", []string{"--api-url", "foods", "list"}, "invalid configuration"},
		{"negative timeout", []string{"--timeout", "-1", "list"}, "timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBrowse_FallsBackToListWithoutTerminal(t *testing.T) {
	setupCLITest(t)
	srv := newFoodServer(t)

	out, _, err := execute(t, nil, "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "kale")
}

func TestList_EnvFile(t *testing.T) {
	setupCLITest(t)
	srv := newFoodServer(t)

	envFile := filepath.Join(t.TempDir(), "nutrispark.env")
	require.NoError(t, os.WriteFile(envFile, []byte("NUTRISPARK_API_URL="+srv.URL+"\nNUTRISPARK_OUTPUT_FORMAT=json\n"), 0o600))

	out, _, err := execute(t, nil, "--env-file", envFile, "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"identifier": "green-apple"`)
}

func TestList_InjectedEnvironmentReplacesProcessEnv(t *testing.T) {
	home := setupCLITest(t)
	srv := newFoodServer(t)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("api:\n  base_url: "+srv.URL+"\n"), 0o600))
	t.Setenv(config.EnvAPIURL, "http://127.0.0.1:1")

	out, _, err := execute(t, map[string]string{}, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 3 foods")
}
