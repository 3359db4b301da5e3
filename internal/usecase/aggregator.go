// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/github-profile-card/internal/domain"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
)

// Aggregator is the use case for aggregating GitHub stats.
// It orchestrates the fetching and summing of repository activity.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  logrus.FieldLogger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate sums the activity of every repository owned by login.
//
// Repositories are processed one at a time in listing order. Failing to list
// repositories aborts the aggregation; failing to read a single repository's
// history is logged and that repository contributes nothing.
func (a *Aggregator) Aggregate(ctx context.Context, login string) (domain.Stats, error) {
	a.logger.Info("Usecase: Starting stats aggregation...")

	repos, err := a.fetcher.FetchRepositories(ctx, login)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to list repositories: %w", err)
	}

	stats := domain.Stats{Repos: len(repos)}
	for _, repo := range repos {
		history, err := a.fetcher.FetchCommitHistory(ctx, login, repo.Name, repo.DefaultBranch)
		if err != nil {
			a.logger.WithError(err).WithField("repository", repo.Name).Warn("Failed to fetch stats for repository")
			continue
		}
		contribution := history.Contribution(login)
		a.logger.WithFields(logrus.Fields{
			"repository": repo.Name,
			"added":      contribution.Added,
			"removed":    contribution.Removed,
			"commits":    contribution.Commits,
		}).Debug("Repository stats fetched.")
		stats = stats.Add(contribution)
	}

	a.logger.Info("Usecase: Aggregation complete.")
	return stats, nil
}
