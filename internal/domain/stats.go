// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository is an owned, non-fork repository that has a default branch.
type Repository struct {
	Name          string `json:"name"`
	DefaultBranch string `json:"default_branch"`
}

// Commit holds the line counts of a single commit and the login of its author.
// AuthorLogin is empty when the commit author is not linked to a GitHub user.
type Commit struct {
	Additions   int    `json:"additions"`
	Deletions   int    `json:"deletions"`
	AuthorLogin string `json:"author_login,omitempty"`
}

// CommitHistory is one page of the most recent commits on a branch.
// TotalCount is the number of commits on the whole branch, not just this page.
type CommitHistory struct {
	TotalCount int      `json:"total_count"`
	Commits    []Commit `json:"commits"`
}

// Stats holds the aggregate activity counts for a user.
// It is the core domain entity of this application.
type Stats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Commits int `json:"commits"`
	Repos   int `json:"repos"`
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Added:   s.Added + other.Added,
		Removed: s.Removed + other.Removed,
		Commits: s.Commits + other.Commits,
		Repos:   s.Repos + other.Repos,
	}
}

// Contribution returns the stats a single branch history contributes for login.
// Line counts only include commits authored by login, while the commit count
// is the branch total regardless of author.
func (h CommitHistory) Contribution(login string) Stats {
	stats := Stats{Commits: h.TotalCount}
	for _, c := range h.Commits {
		if login == "" || c.AuthorLogin != login {
			continue
		}
		stats.Added += c.Additions
		stats.Removed += c.Deletions
	}
	return stats
}
