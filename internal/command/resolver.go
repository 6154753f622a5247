package command

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mpm/ghbot/internal/github"
)

//go:generate mockgen -source=resolver.go -destination=mock_fetcher.gen.go -package=command

// Fetcher performs the two GitHub lookups a resolution can need.
type Fetcher interface {
	LookupIssue(ctx context.Context, owner, repo, number string) (*github.IssueLookup, error)
	LookupPullRequest(ctx context.Context, url string) (*github.PullRequestLookup, error)
}

type step int

const (
	stepFetchIssue step = iota
	stepFetchPullRequest
	stepDone
)

func (s step) String() string {
	switch s {
	case stepFetchIssue:
		return "fetch_issue"
	case stepFetchPullRequest:
		return "fetch_pull_request"
	default:
		return "done"
	}
}

// resolution carries one query through the steps. reply is final once step
// reaches stepDone.
type resolution struct {
	query IssueQuery
	step  step
	prURL string
	reply string
}

// Resolver turns an IssueQuery into a summary line. It holds no per-query
// state and is safe for concurrent use.
type Resolver struct {
	fetcher Fetcher
	log     logrus.FieldLogger
}

// NewResolver creates a Resolver.
func NewResolver(fetcher Fetcher, log logrus.FieldLogger) *Resolver {
	return &Resolver{fetcher: fetcher, log: log}
}

// Resolve looks up the issue and, for closed pull requests, the pull request
// itself. Missing issues and pull requests yield a plain reply; transport and
// decode failures are returned as errors.
func (r *Resolver) Resolve(ctx context.Context, q IssueQuery) (string, error) {
	res := &resolution{query: q, step: stepFetchIssue}

	for res.step != stepDone {
		log := r.log.WithFields(logrus.Fields{
			"user":  q.User,
			"repo":  q.Repo,
			"issue": q.Issue,
			"step":  res.step.String(),
		})
		log.Debug("resolving")

		var err error
		switch res.step {
		case stepFetchIssue:
			var l *github.IssueLookup
			if l, err = r.fetcher.LookupIssue(ctx, q.User, q.Repo, q.Issue); err == nil {
				res.afterIssue(l)
			}
		case stepFetchPullRequest:
			var l *github.PullRequestLookup
			if l, err = r.fetcher.LookupPullRequest(ctx, res.prURL); err == nil {
				res.afterPullRequest(l)
			}
		}
		if err != nil {
			log.WithError(err).Error("lookup failed")
			return "", fmt.Errorf("%s %s/%s#%s: %w", res.step, q.User, q.Repo, q.Issue, err)
		}
	}

	return res.reply, nil
}

// afterIssue decides whether the issue response is final.
func (res *resolution) afterIssue(l *github.IssueLookup) {
	switch l.Kind {
	case github.KindNotFound:
		res.finish(IssueNotFound)
	case github.KindPullRequest:
		if l.State == StatusClosed {
			res.prURL = l.PullRequestURL
			res.step = stepFetchPullRequest
			return
		}
		res.finish(res.summary(KindPR, l.State, l.Title, l.HTMLURL))
	default:
		res.finish(res.summary(KindIssue, l.State, l.Title, l.HTMLURL))
	}
}

// afterPullRequest settles a closed pull request as merged or closed.
func (res *resolution) afterPullRequest(l *github.PullRequestLookup) {
	if l.Kind == github.KindNotFound {
		res.finish(PRNotFound)
		return
	}
	status := StatusClosed
	if l.Merged {
		status = StatusMerged
	}
	res.finish(res.summary(KindPR, status, l.Title, l.HTMLURL))
}

func (res *resolution) summary(kind, status, title, link string) string {
	return Summary{
		Kind:   kind,
		Number: res.query.Issue,
		Status: status,
		Title:  title,
		Link:   link,
	}.String()
}

func (res *resolution) finish(reply string) {
	res.reply = reply
	res.step = stepDone
}
