package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpm/ghbot/internal/config"
	"github.com/mpm/ghbot/internal/github"
)

func fakeAPI(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/main/issues/42" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"number":   42,
			"title":    "Fix bug",
			"state":    "open",
			"html_url": "https://github.com/owner/main/issues/42",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setEnv(t *testing.T, apiURL, client string) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GHBOT_GITHUB_USER", "owner")
	t.Setenv("GHBOT_GITHUB_REPO", "main")
	t.Setenv("GHBOT_GITHUB_API_URL", apiURL)
	t.Setenv("GHBOT_GITHUB_CLIENT", client)
	t.Setenv("GHBOT_LOGGING_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func TestGhCommand(t *testing.T) {
	for _, client := range []string{config.ClientREST, config.ClientGoGitHub} {
		t.Run(client, func(t *testing.T) {
			srv := fakeAPI(t)
			setEnv(t, srv.URL, client)

			out, err := execute(t, "gh", "42")
			require.NoError(t, err)
			assert.Equal(t, "[Issue 42] <open> Fix bug <https://github.com/owner/main/issues/42>\n", out)

			out, err = execute(t, "gh", "99")
			require.NoError(t, err)
			assert.Equal(t, "Issue does not exist.\n", out)
		})
	}
}

func TestGhCommand_RepoLink(t *testing.T) {
	setEnv(t, "http://127.0.0.1:1", config.ClientREST)

	out, err := execute(t, "gh", "alice/octo")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/alice/octo\n", out)
}

func TestGhCommand_DashArgument(t *testing.T) {
	setEnv(t, "http://127.0.0.1:1", config.ClientREST)

	out, err := execute(t, "gh", "--", "-3")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/owner/-3\n", out)
}

func TestGhCommand_MissingConfig(t *testing.T) {
	tests := []struct {
		env string
		key string
	}{
		{"GHBOT_GITHUB_USER", config.KeyGitHubUser},
		{"GHBOT_GITHUB_REPO", config.KeyGitHubRepo},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setEnv(t, "http://127.0.0.1:1", config.ClientREST)
			t.Setenv(tt.env, "")

			_, err := execute(t, "gh")

			var cfgErr *config.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestNewFetcher(t *testing.T) {
	rest, err := newFetcher(&config.Config{GitHub: config.GitHubConfig{Client: config.ClientREST}})
	require.NoError(t, err)
	assert.IsType(t, &github.Client{}, rest)

	sdk, err := newFetcher(&config.Config{GitHub: config.GitHubConfig{Client: config.ClientGoGitHub}})
	require.NoError(t, err)
	assert.IsType(t, &github.SDKFetcher{}, sdk)

	_, err = newFetcher(&config.Config{GitHub: config.GitHubConfig{Client: "soap"}})
	assert.Error(t, err)
}
