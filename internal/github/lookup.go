package github

// LookupKind discriminates the decoded result of an issue or pull request lookup.
type LookupKind int

const (
	KindNotFound LookupKind = iota
	KindIssue
	KindPullRequest
)

func (k LookupKind) String() string {
	switch k {
	case KindIssue:
		return "issue"
	case KindPullRequest:
		return "pull_request"
	default:
		return "not_found"
	}
}

// IssueLookup is an issue endpoint response decoded into one of three variants.
// State, Title and HTMLURL are empty for KindNotFound; PullRequestURL is only
// set for KindPullRequest.
type IssueLookup struct {
	Kind           LookupKind
	State          string
	Title          string
	HTMLURL        string
	PullRequestURL string
}

// PullRequestLookup is a pull request endpoint response, either KindNotFound
// or KindPullRequest.
type PullRequestLookup struct {
	Kind    LookupKind
	Merged  bool
	Title   string
	HTMLURL string
}

func issueLookupFrom(issue *Issue) *IssueLookup {
	l := &IssueLookup{
		Kind:    KindIssue,
		State:   issue.State,
		Title:   issue.Title,
		HTMLURL: issue.HTMLURL,
	}
	if issue.PullRequest != nil {
		l.Kind = KindPullRequest
		l.PullRequestURL = issue.PullRequest.URL
	}
	return l
}

func pullRequestLookupFrom(pr *PullRequest) *PullRequestLookup {
	return &PullRequestLookup{
		Kind:    KindPullRequest,
		Merged:  pr.MergedAt != nil,
		Title:   pr.Title,
		HTMLURL: pr.HTMLURL,
	}
}
