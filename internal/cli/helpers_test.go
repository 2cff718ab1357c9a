package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/nutrispark/internal/cli"
	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/food"
)

// setupCLITest isolates the config home and clears NUTRISPARK_* overrides.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, key := range []string{config.EnvAPIURL, config.EnvLogLevel, config.EnvLogFormat, config.EnvOutputFormat} {
		t.Setenv(key, "")
	}
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// newFoodServer serves a three-food catalog. Only kale and green-apple have
// detail records.
func newFoodServer(t *testing.T) *httptest.Server {
	t.Helper()
	records := map[string]food.Record{
		"kale": {
			Name: "Kale", Carbohydrates: 9, Protein: 4, Fat: 1,
			Vitamins: []string{"A", "C"}, Minerals: []string{"Iron"},
		},
		"green-apple": {Name: "Green Apple", Carbohydrates: 14, Protein: 0.3, Fat: 0.2},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/foods/all", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []food.Record{records["green-apple"], records["kale"], {Name: "Banana"}})
	})
	mux.HandleFunc("GET /api/foods/{id}", func(w http.ResponseWriter, r *http.Request) {
		rec, ok := records[r.PathValue("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(t, w, rec)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// execute runs the root command with args and an explicit environment.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := cli.NewRootCmdWithEnv("test", func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
