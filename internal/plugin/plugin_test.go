package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mpm/ghbot/internal/command"
	"github.com/mpm/ghbot/internal/config"
	"github.com/mpm/ghbot/internal/github"
	"github.com/mpm/ghbot/internal/logging"
)

func testConfig() *config.Config {
	return &config.Config{
		GitHubUser: "owner",
		GitHubRepo: "main",
		GitHub:     config.GitHubConfig{WebURL: "https://github.com"},
	}
}

func TestNew_Registration(t *testing.T) {
	p, err := New(testConfig(), nil, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "github", p.Name)
	assert.Equal(t, []string{"gh"}, p.Commands)
	assert.Equal(t, []string{"!gh [user/repo] issue-number"}, p.Help["gh"])
}

func TestNew_MissingConfig(t *testing.T) {
	cfg := testConfig()
	cfg.GitHubRepo = ""

	_, err := New(cfg, nil, logging.Discard())

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, config.KeyGitHubRepo, cfgErr.Key)
}

func TestPlugin_Handle(t *testing.T) {
	p, err := New(testConfig(), nil, logging.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	got, err := p.Handle(ctx, "gh", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/owner/main", got)

	got, err = p.Handle(ctx, "!gh", []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, command.Usage, got)

	_, err = p.Handle(ctx, "!jira", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestPlugin_HandleLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := command.NewMockFetcher(ctrl)
	p, err := New(testConfig(), fetcher, logging.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	fetcher.EXPECT().LookupIssue(ctx, "bob", "proj", "7").Return(&github.IssueLookup{
		Kind:    github.KindIssue,
		State:   "open",
		Title:   "Docs",
		HTMLURL: "https://github.com/bob/proj/issues/7",
	}, nil)

	got, err := p.HandleLine(ctx, "  !gh   bob/proj 7 ")
	require.NoError(t, err)
	assert.Equal(t, "[Issue 7] <open> Docs <https://github.com/bob/proj/issues/7>", got)
}

func TestPlugin_HandleLineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := command.NewMockFetcher(ctrl)
	p, err := New(testConfig(), fetcher, logging.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	boom := errors.New("dial tcp: timeout")
	fetcher.EXPECT().LookupIssue(ctx, "owner", "main", "42").Return(nil, boom)

	_, err = p.HandleLine(ctx, "!gh 42")
	assert.ErrorIs(t, err, boom)
}

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{"!gh", "!gh", []string{}, nil},
		{"!gh 42", "!gh", []string{"42"}, nil},
		{"!gh bob/proj 7", "!gh", []string{"bob/proj", "7"}, nil},
		{"hello there", "", nil, ErrNotCommand},
		{"", "", nil, ErrNotCommand},
		{"! gh", "", nil, ErrNotCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, args, err := Parse(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
