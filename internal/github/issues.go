package github

import (
	"context"
	"fmt"
	"net/url"
)

// GetIssue fetches an issue by number. The number is passed through as text.
func (c *Client) GetIssue(ctx context.Context, owner, repo, number string) (*Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%s",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(number))
	var issue Issue
	if err := c.get(ctx, path, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// LookupIssue fetches an issue and decodes it into an IssueLookup. A missing
// issue is reported as KindNotFound, not as an error.
func (c *Client) LookupIssue(ctx context.Context, owner, repo, number string) (*IssueLookup, error) {
	issue, err := c.GetIssue(ctx, owner, repo, number)
	if err != nil {
		if IsNotFound(err) {
			return &IssueLookup{Kind: KindNotFound}, nil
		}
		return nil, err
	}
	return issueLookupFrom(issue), nil
}
