// Package github provides a client for the GitHub issue and pull request lookups
// behind the !gh command.
package github

import "time"

// notFoundMessage is the message GitHub returns for missing issues, pulls and repos.
const notFoundMessage = "Not Found"

// Issue represents a GitHub issue. Pull requests are issues too; for those
// PullRequest is set.
type Issue struct {
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	State       string            `json:"state"` // "open" or "closed"
	HTMLURL     string            `json:"html_url"`
	PullRequest *PullRequestLinks `json:"pull_request,omitempty"`
}

// PullRequestLinks is the cross-reference an issue carries when it is a pull request.
type PullRequestLinks struct {
	URL      string     `json:"url"`
	HTMLURL  string     `json:"html_url"`
	MergedAt *time.Time `json:"merged_at"`
}

// PullRequest represents a GitHub pull request.
type PullRequest struct {
	Number   int        `json:"number"`
	Title    string     `json:"title"`
	State    string     `json:"state"` // "open", "closed"
	Merged   bool       `json:"merged"`
	MergedAt *time.Time `json:"merged_at"`
	HTMLURL  string     `json:"html_url"`
}

// RateLimit represents GitHub API rate limit information.
type RateLimit struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
}

// APIError represents a GitHub API error response.
type APIError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
	StatusCode       int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}
