package command

import "strings"

// RepoRef identifies a repository.
type RepoRef struct {
	User string
	Repo string
}

// Defaults is the repository used when a command leaves user or repo out.
type Defaults struct {
	User string
	Repo string
}

// RepoRef returns the default repository.
func (d Defaults) RepoRef() RepoRef {
	return RepoRef{User: d.User, Repo: d.Repo}
}

// IssueQuery is a repository plus the issue or pull request number to look up.
type IssueQuery struct {
	RepoRef
	Issue string
}

// ParseRepoRef turns "", "repo", "user/repo", "user/", "/repo" or "/" into a
// RepoRef, filling the missing parts from defaults. Only the first two
// slash-separated segments are used, so "a/b/c" is {a, b}.
func ParseRepoRef(token string, defaults Defaults) RepoRef {
	if token == "" {
		return defaults.RepoRef()
	}

	user, repo, found := strings.Cut(token, "/")
	if !found {
		return RepoRef{User: defaults.User, Repo: token}
	}
	repo, _, _ = strings.Cut(repo, "/")

	if user == "" {
		user = defaults.User
	}
	if repo == "" {
		repo = defaults.Repo
	}
	return RepoRef{User: user, Repo: repo}
}
