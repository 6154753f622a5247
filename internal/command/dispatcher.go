// Package command implements the !gh chat command: argument resolution,
// repository links and issue/pull request summaries.
package command

import (
	"context"
	"fmt"
	"strings"
)

// Usage is returned for argument shapes the command does not understand.
const Usage = "!gh [user/repo] issue-number"

// DefaultWebURL is the base for repository links.
const DefaultWebURL = "https://github.com"

// Dispatcher routes !gh arguments to a repository link or an issue summary.
type Dispatcher struct {
	defaults Defaults
	webURL   string
	resolver *Resolver
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWebURL sets the base URL for repository links (GitHub Enterprise).
func WithWebURL(url string) DispatcherOption {
	return func(d *Dispatcher) {
		if url != "" {
			d.webURL = strings.TrimSuffix(url, "/")
		}
	}
}

// NewDispatcher creates a Dispatcher. defaults must have both fields set.
func NewDispatcher(defaults Defaults, resolver *Resolver, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		defaults: defaults,
		webURL:   DefaultWebURL,
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle runs one !gh invocation:
//
//	!gh                      default repository link
//	!gh <number>             summary of an issue in the default repository
//	!gh <user/repo>          repository link, missing parts from defaults
//	!gh <user/repo> <number> summary of an issue in that repository
//	!gh <user> <repo>        repository link, taken literally
//	!gh <user> <repo> <n>    summary, taken literally
//
// Anything else gets Usage.
func (d *Dispatcher) Handle(ctx context.Context, args []string) (string, error) {
	switch len(args) {
	case 0:
		return d.RepoURL(d.defaults.RepoRef()), nil

	case 1:
		if n, err := ParseIssueNumber(args[0]); err == nil {
			return d.resolver.Resolve(ctx, IssueQuery{RepoRef: d.defaults.RepoRef(), Issue: string(n)})
		}
		return d.RepoURL(ParseRepoRef(args[0], d.defaults)), nil

	case 2:
		if n, err := ParseIssueNumber(args[1]); err == nil {
			return d.resolver.Resolve(ctx, IssueQuery{RepoRef: ParseRepoRef(args[0], d.defaults), Issue: string(n)})
		}
		return d.RepoURL(RepoRef{User: args[0], Repo: args[1]}), nil

	case 3:
		return d.resolver.Resolve(ctx, IssueQuery{
			RepoRef: RepoRef{User: args[0], Repo: args[1]},
			Issue:   args[2],
		})
	}

	return Usage, nil
}

// RepoURL formats the web link for a repository.
func (d *Dispatcher) RepoURL(ref RepoRef) string {
	return fmt.Sprintf("%s/%s/%s", d.webURL, ref.User, ref.Repo)
}
