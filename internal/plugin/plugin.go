// Package plugin registers the !gh command with a chat framework.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mpm/ghbot/internal/command"
	"github.com/mpm/ghbot/internal/config"
)

const (
	// Name is the plugin name.
	Name = "github"
	// CommandName is the command as listed in help.
	CommandName = "gh"
	// Prefix marks a chat line as a command.
	Prefix = "!"
)

var (
	// ErrUnknownCommand is returned for a command the plugin does not register.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotCommand is returned by Parse for a chat line that is not a command.
	ErrNotCommand     = errors.New("not a command")
)

// Handler runs one command invocation.
type Handler func(ctx context.Context, args []string) (string, error)

// Plugin is what a chat framework loads: a name, the commands it answers,
// help lines per command and the handlers.
type Plugin struct {
	Name     string
	Commands []string
	Help     map[string][]string

	handlers map[string]Handler
	log      logrus.FieldLogger
}

// New validates the configuration and builds the plugin. A missing
// github-user or github-repo aborts with a *config.ConfigError.
func New(cfg *config.Config, fetcher command.Fetcher, log logrus.FieldLogger) (*Plugin, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defaults := command.Defaults{User: cfg.GitHubUser, Repo: cfg.GitHubRepo}
	dispatcher := command.NewDispatcher(
		defaults,
		command.NewResolver(fetcher, log),
		command.WithWebURL(cfg.GitHub.WebURL),
	)

	return &Plugin{
		Name:     Name,
		Commands: []string{CommandName},
		Help: map[string][]string{
			CommandName: {command.Usage},
		},
		handlers: map[string]Handler{
			Prefix + CommandName: dispatcher.Handle,
		},
		log: log.WithField("plugin", Name),
	}, nil
}

// Handle runs the named command. name may be given with or without the prefix.
func (p *Plugin) Handle(ctx context.Context, name string, args []string) (string, error) {
	if !strings.HasPrefix(name, Prefix) {
		name = Prefix + name
	}
	h, ok := p.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	reply, err := h(ctx, args)
	if err != nil {
		p.log.WithError(err).WithField("command", name).Error("command failed")
		return "", err
	}
	return reply, nil
}

// HandleLine parses a chat line such as "!gh bob/proj 7" and runs it.
func (p *Plugin) HandleLine(ctx context.Context, line string) (string, error) {
	name, args, err := Parse(line)
	if err != nil {
		return "", err
	}
	return p.Handle(ctx, name, args)
}

// Parse splits a chat line into command name (with prefix) and arguments.
func Parse(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], Prefix) || fields[0] == Prefix {
		return "", nil, ErrNotCommand
	}
	return fields[0], fields[1:], nil
}
