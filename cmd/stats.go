package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-card/internal/domain"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates GitHub user activity and outputs as JSON",
	Long:  `Aggregates lines added/removed and commit counts over the repositories a GitHub user owns, and prints the result as JSON without rendering the card.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Verbose)

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.GatewayOptions(), logger.WithField("component", "gateway"))
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		login, err := resolveLogin(ctx, cfg.User, githubGateway)
		if err != nil {
			return err
		}
		stats, err := usecase.NewAggregator(githubGateway, logger.WithField("component", "aggregator")).Aggregate(ctx, login)
		if err != nil {
			return fmt.Errorf("failed to aggregate stats: %w", err)
		}

		// Marshal the results into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(statsReport{Login: login, Stats: stats}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

type statsReport struct {
	Login string `json:"login"`
	domain.Stats
}

// resolveLogin returns user, or the token owner's login when user is empty.
func resolveLogin(ctx context.Context, user string, fetcher gateway.Fetcher) (string, error) {
	if user != "" {
		return user, nil
	}
	login, err := fetcher.FetchViewerLogin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve the token owner: %w", err)
	}
	return login, nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
