package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Commands read their configuration from the environment, so these tests
// use t.Setenv and cannot run in parallel.

const futbolkaPage = `<!DOCTYPE html>
<html><body>
<div id="mw-content-text"><div class="mw-parser-output">
<ol>
<li>лёгкая трикотажная рубашка <span class="example-fullblock"><span class="example-block">Он надел новую <b>футболку</b>. <span class="example-details">газета</span></span></span></li>
<li>то же, что футбольный мяч</li>
</ol>
</div></div>
</body></html>`

const samyiPage = `<!DOCTYPE html>
<html><body>
<a href="/x" class="synonym  relevant">наиболее</a>
<a href="/y" class="synonym">весьма</a>
</body></html>`

func newFakeSites(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/wiki/") != "футболка" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(futbolkaPage))
	})
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["` + q + `",["` + q + `","` + q + `ы"],["",""],["",""]]`))
	})
	mux.HandleFunc("/syn/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/syn/") != "самый" {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samyiPage))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, srv *httptest.Server) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("WIKTIONARY_PAGE_URL", srv.URL+"/wiki/")
	t.Setenv("WIKTIONARY_API_URL", srv.URL+"/w/api.php")
	t.Setenv("SYNONYMS_BASE_URL", srv.URL+"/syn/")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(input), &out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '~'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

// ---------------------------------------------------------------------------
// gen-cards
// ---------------------------------------------------------------------------

func TestGenCards_WritesOneRowPerFoundWord(t *testing.T) {
	setupEnv(t, newFakeSites(t))
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, "", "gen-cards", "футболка", "нетслова", "-r", path)
	require.NoError(t, err)

	assert.Equal(t,
		"Word \"футболка\" processed successfully\n"+
			"[Error] Word \"нетслова\" not found\n",
		out)

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Contains(t, rows[0][0], "Футболка")
	assert.Contains(t, rows[0][0], "лёгкая трикотажная рубашка")
	assert.Contains(t, rows[0][0], "Он надел новую футболку.")
	assert.NotContains(t, rows[0][0], "газета")
}

func TestGenCards_NotFoundWritesEmptyFile(t *testing.T) {
	setupEnv(t, newFakeSites(t))
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, "", "gen-cards", "нетслова", "--result_path", path)
	require.NoError(t, err)
	assert.Contains(t, out, `[Error] Word "нетслова" not found`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestGenCards_UnwritableResultPath(t *testing.T) {
	setupEnv(t, newFakeSites(t))
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	_, err := run(t, "", "gen-cards", "футболка", "-r", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create result file")
}

// ---------------------------------------------------------------------------
// search
// ---------------------------------------------------------------------------

func TestSearch_PrintsTitles(t *testing.T) {
	setupEnv(t, newFakeSites(t))

	out, err := run(t, "", "search", "час", "дом")
	require.NoError(t, err)
	assert.Equal(t,
		"Results for \"час\": час, часы\n"+
			"Results for \"дом\": дом, домы\n",
		out)
}

// ---------------------------------------------------------------------------
// synonyms
// ---------------------------------------------------------------------------

func TestSynonyms_WritesCard(t *testing.T) {
	setupEnv(t, newFakeSites(t))
	dir := t.TempDir()

	input := strings.Join([]string{
		"1",                   // наиболее
		"",                    // no manual additions
		"Это наиболее важно.", // lookup fails, own example
		"2",                   // hide "наиболее"
	}, "\n") + "\n"

	out, err := run(t, input, "synonyms", "самый", "-d", dir, "--html")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. наиболее")
	assert.Contains(t, out, `Word "самый" processed successfully`)

	md, err := os.ReadFile(filepath.Join(dir, "Самый.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Самый\n\n1. **Наиболее**: Это {1|наиболее} важно.\n", string(md))

	_, err = os.Stat(filepath.Join(dir, "Самый.html"))
	require.NoError(t, err)
}

func TestSynonyms_FetchFailureIsReported(t *testing.T) {
	setupEnv(t, newFakeSites(t))
	dir := t.TempDir()

	out, err := run(t, "", "synonyms", "другое", "-d", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `[Error] Word "другое" was not processed. Network issues - server is not reachable`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSynonyms_InputClosed(t *testing.T) {
	setupEnv(t, newFakeSites(t))

	out, err := run(t, "", "synonyms", "самый", "-d", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "[Error] Input closed, remaining words were not processed")
}

// ---------------------------------------------------------------------------
// root
// ---------------------------------------------------------------------------

func TestRoot_MissingConfigFile(t *testing.T) {
	setupEnv(t, newFakeSites(t))

	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "search", "час")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestRoot_Version(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "ankiwiktionary version dev")
}

func TestRoot_LogLevelFlag(t *testing.T) {
	setupEnv(t, newFakeSites(t))

	out, err := run(t, "", "--log-level", "debug", "search")
	require.NoError(t, err)
	assert.Empty(t, out)
}
