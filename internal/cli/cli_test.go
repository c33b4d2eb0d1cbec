package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/cinedex/internal/config"
	"github.com/matzehuels/cinedex/pkg/catalog"
)

type upstream struct {
	mu     sync.Mutex
	uris   []string
	status int
	body   string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.uris = append(u.uris, r.URL.RequestURI())
	status, body := u.status, u.body
	u.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func (u *upstream) requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.uris...)
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with args against u, isolated from the user's
// config and environment.
func run(t *testing.T, u *upstream, args ...string) result {
	t.Helper()
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{config.EnvAPIURL, config.EnvPublicAPIURL, config.EnvCache, config.EnvRedisAddr, config.EnvRedisDB, config.EnvLogLevel} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	c.Out = &stdout

	root := c.RootCommand()
	root.SetArgs(append([]string{"--base-url", srv.URL}, args...))
	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestCommandsRequestPaths(t *testing.T) {
	tests := []struct {
		args []string
		body string
		want string
	}{
		{[]string{"movies", "list"}, "[]", "/movies"},
		{[]string{"movies", "list", "--page", "2"}, "[]", "/movies?page=2"},
		{[]string{"movies", "popular", "-p", "1"}, "[]", "/popular/movies?page=1"},
		{[]string{"movies", "recent"}, "[]", "/recent-release/movies"},
		{[]string{"movies", "top-rated"}, "[]", "/top-rated/movies"},
		{[]string{"movies", "get", "m1"}, `{"_id":"m1","title":"Heat"}`, "/movies/m1"},
		{[]string{"movies", "streams", "m1"}, "[]", "/movies/m1/streams"},
		{[]string{"movies", "downloads", "m1"}, "[]", "/movies/m1/download"},
		{[]string{"series", "list", "--page", "3"}, "[]", "/series?page=3"},
		{[]string{"series", "popular"}, "[]", "/popular/series"},
		{[]string{"series", "recent"}, "[]", "/recent-release/series"},
		{[]string{"series", "top-rated"}, "[]", "/top-rated/series"},
		{[]string{"series", "get", "s1"}, `{"_id":"s1","title":"Dark"}`, "/series/s1"},
		{[]string{"series", "streams", "s1", "--season", "1", "--episode", "2"}, "[]", "/series/s1/streams?season=1&episode=2"},
		{[]string{"series", "downloads", "s1"}, "[]", "/series/s1/downloads"},
		{[]string{"genres"}, "[]", "/genres"},
		{[]string{"countries"}, "[]", "/countries"},
		{[]string{"years"}, "[]", "/years"},
		{[]string{"genre", "action", "--series", "--page", "3"}, "[]", "/genres/action?series=&page=3"},
		{[]string{"country", "japan"}, "[]", "/countries/japan"},
		{[]string{"year", "2024", "--series"}, "[]", "/years/2024?series="},
		{[]string{"search", "the", "matrix"}, "[]", "/search/the%20matrix"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			u := &upstream{body: tt.body}
			res := run(t, u, tt.args...)
			if res.err != nil {
				t.Fatalf("error: %v\nstderr: %s", res.err, res.stderr)
			}
			got := u.requests()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("requests = %v, want [%s]", got, tt.want)
			}
		})
	}
}

func TestMoviesListOutput(t *testing.T) {
	u := &upstream{body: `[{"_id":"m1","title":"Heat","type":"movie","rating":"8.3/10","qualityResolution":"HD"}]`}
	res := run(t, u, "movies", "list")
	if res.err != nil {
		t.Fatal(res.err)
	}
	for _, want := range []string{"Heat", "8.3/10", "HD", "m1"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	u := &upstream{body: `[{"parameter":"action","name":"Action","numberOfContents":12}]`}
	res := run(t, u, "--json", "genres")
	if res.err != nil {
		t.Fatal(res.err)
	}

	var entries []catalog.TaxonomyEntry
	if err := json.Unmarshal([]byte(res.stdout), &entries); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(entries) != 1 || entries[0].Parameter != "action" || entries[0].NumberOfContents != 12 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestEmptyJSONListIsArray(t *testing.T) {
	u := &upstream{body: "null"}
	res := run(t, u, "--json", "search", "nothing")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if strings.TrimSpace(res.stdout) != "[]" {
		t.Errorf("stdout = %q, want []", res.stdout)
	}
}

func TestGenresFilter(t *testing.T) {
	u := &upstream{body: `[
		{"parameter":"action","name":"Action"},
		{"parameter":"sci-fi","name":"Science Fiction"},
		{"parameter":"drama","name":"Drama"}
	]`}
	res := run(t, u, "genres", "--filter", "scifi")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, "Science Fiction") {
		t.Errorf("stdout missing match:\n%s", res.stdout)
	}
	if strings.Contains(res.stdout, "Drama") || strings.Contains(res.stdout, "Action") {
		t.Errorf("stdout contains non-matching entries:\n%s", res.stdout)
	}
}

func TestPartialEpisodeSelectionWarns(t *testing.T) {
	u := &upstream{body: "[]"}
	res := run(t, u, "series", "streams", "s1", "--season", "2")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if got := u.requests(); len(got) != 1 || got[0] != "/series/s1/streams" {
		t.Errorf("requests = %v", got)
	}
	if !strings.Contains(res.stderr, "Ignoring partial episode selection") {
		t.Errorf("stderr = %q, want warning toast", res.stderr)
	}
}

func TestFailureIsReportedAsToast(t *testing.T) {
	u := &upstream{status: http.StatusNotFound, body: `{}`}
	res := run(t, u, "movies", "get", "missing")

	if res.err == nil {
		t.Fatal("expected error")
	}
	if !Reported(res.err) {
		t.Errorf("Reported(%v) = false", res.err)
	}
	if !strings.Contains(res.stderr, "Failed to load movie") || !strings.Contains(res.stderr, "not found") {
		t.Errorf("stderr = %q", res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := [][]string{
		{"movies", "list", "--page", "-1"},
		{"genre", " ", "--page", "1"},
		{"browse", "--kind", "music"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			u := &upstream{body: "[]"}
			res := run(t, u, args...)
			if res.err == nil || !Reported(res.err) {
				t.Errorf("err = %v, want reported error", res.err)
			}
			if len(u.requests()) != 0 {
				t.Errorf("requests = %v, want none", u.requests())
			}
		})
	}
}

func TestStatsFlag(t *testing.T) {
	u := &upstream{body: "[]"}
	res := run(t, u, "--stats", "years")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stderr, "1 requests") || !strings.Contains(res.stderr, "0 cache hits") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestCacheInfo(t *testing.T) {
	res := run(t, &upstream{}, "--no-cache", "cache", "info")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, "none") || !strings.Contains(res.stdout, "30m0s") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestCacheDeleteWithoutSharedBackend(t *testing.T) {
	res := run(t, &upstream{}, "cache", "delete", "/movies")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stderr, "keeps nothing between runs") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestCompletion(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "cinedex") {
		t.Error("completion script does not mention cinedex")
	}
}
