package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitHistory_Contribution(t *testing.T) {
	testCases := []struct {
		name     string
		history  CommitHistory
		login    string
		expected Stats
	}{
		{
			name:     "empty history contributes nothing",
			history:  CommitHistory{},
			login:    "octocat",
			expected: Stats{},
		},
		{
			name: "line counts are filtered by author but commit count is not",
			history: CommitHistory{
				TotalCount: 250,
				Commits: []Commit{
					{Additions: 10, Deletions: 2, AuthorLogin: "octocat"},
					{Additions: 100, Deletions: 50, AuthorLogin: "someone-else"},
					{Additions: 5, Deletions: 1, AuthorLogin: "octocat"},
					{Additions: 7, Deletions: 7},
				},
			},
			login:    "octocat",
			expected: Stats{Added: 15, Removed: 3, Commits: 250},
		},
		{
			name: "unlinked authors never match an empty login",
			history: CommitHistory{
				TotalCount: 1,
				Commits:    []Commit{{Additions: 3, Deletions: 4}},
			},
			login:    "",
			expected: Stats{Commits: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.history.Contribution(tc.login))
		})
	}
}

func TestStats_AddIsCommutative(t *testing.T) {
	a := Stats{Added: 1, Removed: 2, Commits: 3, Repos: 4}
	b := Stats{Added: 10, Removed: 20, Commits: 30}

	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, Stats{Added: 11, Removed: 22, Commits: 33, Repos: 4}, a.Add(b))
	assert.Equal(t, a, a.Add(Stats{}))
}
