package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
)

// SDKFetcher performs the same lookups as Client on top of go-github.
type SDKFetcher struct {
	client *gogithub.Client
	// anon serves absolute URLs on hosts other than the API host.
	anon *gogithub.Client
}

// NewSDKFetcher creates a go-github backed fetcher. An empty baseURL keeps
// go-github's default endpoint.
func NewSDKFetcher(token, baseURL string, hc *http.Client) (*SDKFetcher, error) {
	anon := gogithub.NewClient(hc)
	if baseURL != "" && baseURL != DefaultBaseURL {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		anon.BaseURL = u
	}

	client := anon
	if token != "" {
		client = anon.WithAuthToken(token)
	}
	return &SDKFetcher{client: client, anon: anon}, nil
}

// LookupIssue fetches an issue and decodes it into an IssueLookup.
func (s *SDKFetcher) LookupIssue(ctx context.Context, owner, repo, number string) (*IssueLookup, error) {
	path := fmt.Sprintf("repos/%s/%s/issues/%s",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(number))

	var issue gogithub.Issue
	found, err := s.get(ctx, path, &issue)
	if err != nil {
		return nil, err
	}
	if !found {
		return &IssueLookup{Kind: KindNotFound}, nil
	}

	l := &IssueLookup{
		Kind:    KindIssue,
		State:   issue.GetState(),
		Title:   issue.GetTitle(),
		HTMLURL: issue.GetHTMLURL(),
	}
	if issue.PullRequestLinks != nil {
		l.Kind = KindPullRequest
		l.PullRequestURL = issue.GetPullRequestLinks().GetURL()
	}
	return l, nil
}

// LookupPullRequest fetches the pull request at apiURL.
func (s *SDKFetcher) LookupPullRequest(ctx context.Context, apiURL string) (*PullRequestLookup, error) {
	var pr gogithub.PullRequest
	found, err := s.get(ctx, apiURL, &pr)
	if err != nil {
		return nil, err
	}
	if !found {
		return &PullRequestLookup{Kind: KindNotFound}, nil
	}

	return &PullRequestLookup{
		Kind:    KindPullRequest,
		Merged:  pr.MergedAt != nil,
		Title:   pr.GetTitle(),
		HTMLURL: pr.GetHTMLURL(),
	}, nil
}

// get fetches target into result. It returns false, with no error, when
// GitHub says the resource does not exist, on a 404 or in a 200 envelope.
func (s *SDKFetcher) get(ctx context.Context, target string, result interface{}) (bool, error) {
	client := s.clientFor(target)
	req, err := client.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	var raw json.RawMessage
	resp, err := client.Do(ctx, req, &raw)
	if err != nil {
		if sdkNotFound(resp, err) {
			return false, nil
		}
		return false, err
	}

	if isNotFoundBody(raw) {
		return false, nil
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, result); err != nil {
			return false, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return true, nil
}

// clientFor picks the unauthenticated client for absolute URLs on a foreign host.
func (s *SDKFetcher) clientFor(target string) *gogithub.Client {
	if !isAbsoluteURL(target) {
		return s.client
	}
	u, err := url.Parse(target)
	if err != nil || !sameHost(u, s.client.BaseURL.String()) {
		return s.anon
	}
	return s.client
}

func sdkNotFound(resp *gogithub.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var errResp *gogithub.ErrorResponse
	return errors.As(err, &errResp) && errResp.Message == notFoundMessage
}
