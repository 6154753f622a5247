package command

import "fmt"

// Replies for lookups that hit a missing issue or pull request.
const (
	IssueNotFound = "Issue does not exist."
	PRNotFound    = "PR does not exist."
)

// Summary kinds.
const (
	KindIssue = "Issue"
	KindPR    = "PR"
)

// Pull request status once the merge state is known.
const (
	StatusClosed = "closed"
	StatusMerged = "merged"
)

// Summary is the one-line description of an issue or pull request.
type Summary struct {
	Kind   string
	Number string
	Status string
	Title  string
	Link   string
}

func (s Summary) String() string {
	return fmt.Sprintf("[%s %s] <%s> %s <%s>", s.Kind, s.Number, s.Status, s.Title, s.Link)
}
