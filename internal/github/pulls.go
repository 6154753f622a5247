package github

import "context"

// GetPullRequestByURL fetches a pull request from the API URL found in an
// issue's pull_request cross-reference.
func (c *Client) GetPullRequestByURL(ctx context.Context, apiURL string) (*PullRequest, error) {
	var pr PullRequest
	if err := c.get(ctx, apiURL, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// LookupPullRequest fetches the pull request at apiURL. A missing pull request
// is reported as KindNotFound, not as an error.
func (c *Client) LookupPullRequest(ctx context.Context, apiURL string) (*PullRequestLookup, error) {
	pr, err := c.GetPullRequestByURL(ctx, apiURL)
	if err != nil {
		if IsNotFound(err) {
			return &PullRequestLookup{Kind: KindNotFound}, nil
		}
		return nil, err
	}
	return pullRequestLookupFrom(pr), nil
}
