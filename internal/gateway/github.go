// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// DefaultGraphQLURL is the public GitHub GraphQL endpoint.
const DefaultGraphQLURL = "https://api.github.com/graphql"

// historyPageSize is the number of most recent commits read per branch.
const historyPageSize = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error)
	FetchCommitHistory(ctx context.Context, owner, repo, branch string) (domain.CommitHistory, error)
	FetchViewerLogin(ctx context.Context) (string, error)
}

// Options configures the HTTP stack behind the gateway.
type Options struct {
	Token      string
	GraphQLURL string
	// Timeout bounds every single API call. Calls are never retried.
	Timeout time.Duration
	// RateLimit is the maximum number of requests per second; zero disables pacing.
	RateLimit float64
	// MaxRateLimitWait is the longest the gateway sleeps on a secondary rate limit
	// before giving up. Zero means a rate limited call fails immediately.
	MaxRateLimitWait time.Duration
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        logrus.FieldLogger
}

var _ Fetcher = &GitHubGateway{}

// repositoriesQuery lists the repositories owned by a user, excluding forks.
type repositoriesQuery struct {
	User struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Name             string
				DefaultBranchRef struct {
					Name string
				}
			}
		} `graphql:"repositories(first: 100, after: $cursor, ownerAffiliations: OWNER, isFork: false)"`
	} `graphql:"user(login: $login)"`
}

// commitHistoryQuery reads the most recent commits of a single branch.
type commitHistoryQuery struct {
	Repository struct {
		Ref struct {
			Target struct {
				Commit struct {
					History struct {
						TotalCount int
						Nodes      []struct {
							Additions int
							Deletions int
							Author    struct {
								User struct {
									Login string
								}
							}
						}
					} `graphql:"history(first: $first)"`
				} `graphql:"... on Commit"`
			}
		} `graphql:"ref(qualifiedName: $branch)"`
	} `graphql:"repository(owner: $owner, name: $repo)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger logrus.FieldLogger) (*GitHubGateway, error) {
	onLimited := func(*github_ratelimit.CallbackContext) {
		logger.Warn("Secondary rate limit hit; giving up on the request.")
	}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(opts.MaxRateLimitWait, onLimited))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
	httpClient := &http.Client{
		Timeout: opts.Timeout,
		Transport: &oauth2.Transport{
			Base:   newPacedTransport(rateLimitWaiter, opts.RateLimit),
			Source: ts,
		},
	}

	graphqlURL := opts.GraphQLURL
	if graphqlURL == "" {
		graphqlURL = DefaultGraphQLURL
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewEnterpriseClient(graphqlURL, httpClient),
		logger:        logger,
	}, nil
}

// FetchRepositories pages through every repository owned by login that is not a fork.
// Repositories without a default branch (for example empty ones) are skipped.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	g.logger.WithField("login", login).Info("Fetching owned repositories...")
	variables := map[string]interface{}{
		"login":  githubv4.String(login),
		"cursor": (*githubv4.String)(nil),
	}
	repos := make([]domain.Repository, 0)
	for {
		var q repositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for repositories: %w", err)
		}
		for _, node := range q.User.Repositories.Nodes {
			if node.DefaultBranchRef.Name == "" {
				g.logger.WithField("repository", node.Name).Debug("Skipping repository without a default branch.")
				continue
			}
			repos = append(repos, domain.Repository{
				Name:          node.Name,
				DefaultBranch: node.DefaultBranchRef.Name,
			})
		}
		if !q.User.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Repositories.PageInfo.EndCursor)
		g.logger.Debug("  Fetching next page of repositories...")
	}
	g.logger.WithField("count", len(repos)).Info("Completed fetching repositories.")
	return repos, nil
}

// FetchCommitHistory reads the most recent commits on branch along with the
// branch's total commit count. Missing refs and unlinked authors yield zero values.
func (g *GitHubGateway) FetchCommitHistory(ctx context.Context, owner, repo, branch string) (domain.CommitHistory, error) {
	variables := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"repo":   githubv4.String(repo),
		"branch": githubv4.String("refs/heads/" + branch),
		"first":  githubv4.Int(historyPageSize),
	}
	var q commitHistoryQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return domain.CommitHistory{}, fmt.Errorf("failed to execute GraphQL query for commit history: %w", err)
	}

	history := q.Repository.Ref.Target.Commit.History
	result := domain.CommitHistory{
		TotalCount: history.TotalCount,
		Commits:    make([]domain.Commit, 0, len(history.Nodes)),
	}
	for _, node := range history.Nodes {
		result.Commits = append(result.Commits, domain.Commit{
			Additions:   node.Additions,
			Deletions:   node.Deletions,
			AuthorLogin: node.Author.User.Login,
		})
	}
	return result, nil
}

// FetchViewerLogin returns the login of the user the token belongs to.
func (g *GitHubGateway) FetchViewerLogin(ctx context.Context) (string, error) {
	user, _, err := g.restClient.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to fetch authenticated user with REST API: %w", err)
	}
	return user.GetLogin(), nil
}
