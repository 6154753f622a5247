package cli

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mpm/ghbot/internal/command"
	"github.com/mpm/ghbot/internal/config"
	"github.com/mpm/ghbot/internal/github"
	"github.com/mpm/ghbot/internal/logging"
	"github.com/mpm/ghbot/internal/plugin"
)

// app is everything a command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	fetcher command.Fetcher
	plugin  *plugin.Plugin
}

// newFetcher builds the GitHub backend selected by github.client.
func newFetcher(cfg *config.Config) (command.Fetcher, error) {
	hc := &http.Client{Timeout: cfg.GitHub.Timeout}

	switch cfg.GitHub.Client {
	case config.ClientGoGitHub:
		return github.NewSDKFetcher(cfg.GitHub.Token, cfg.GitHub.APIURL, hc)
	case config.ClientREST, "":
		return github.NewClient(
			cfg.GitHub.Token,
			github.WithBaseURL(cfg.GitHub.APIURL),
			github.WithHTTPClient(hc),
			github.WithUserAgent("ghbot/"+version),
		), nil
	default:
		return nil, fmt.Errorf("unknown github.client %q", cfg.GitHub.Client)
	}
}

// loadApp loads configuration, the logger, the fetcher and the plugin, in that order.
// Required settings are checked once, by plugin.New.
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &app{cfg: cfg, log: logging.New(cfg.Logging, nil)}

	if a.fetcher, err = newFetcher(cfg); err != nil {
		return nil, err
	}

	if a.plugin, err = plugin.New(cfg, a.fetcher, a.log); err != nil {
		return nil, err
	}

	return a, nil
}

// logRateLimit reports the last seen rate limit when the REST client is in use.
func (a *app) logRateLimit() {
	client, ok := a.fetcher.(*github.Client)
	if !ok {
		return
	}
	if rl := client.GetRateLimit(); rl != nil {
		a.log.WithFields(logrus.Fields{
			"limit":     rl.Limit,
			"remaining": rl.Remaining,
			"reset":     rl.Reset,
		}).Debug("GitHub rate limit")
	}
}
