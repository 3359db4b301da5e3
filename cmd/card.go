package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-card/internal/config"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/profile"
	"github.com/naka-gawa/github-profile-card/internal/publish"
	"github.com/naka-gawa/github-profile-card/internal/render"
	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

func runCard(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)

	githubGateway, err := gateway.NewGitHubGateway(cfg.GatewayOptions(), logger.WithField("component", "gateway"))
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	login, err := generateCard(cmd.Context(), cfg, githubGateway, logger, time.Now(), rng)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "github-profile-card: wrote %s and %s for %q\n", cfg.Output, cfg.Readme, login)
	return nil
}

// generateCard runs the whole pipeline: stats, template, lines, SVG, files.
// Nothing is written unless every step before publishing succeeded.
func generateCard(ctx context.Context, cfg *config.Config, fetcher gateway.Fetcher, logger logrus.FieldLogger, now time.Time, rng render.Rand) (string, error) {
	// Local inputs are read first so a bad file fails before any API call.
	tpl, err := loadTemplate(cfg.Template)
	if err != nil {
		return "", err
	}
	art, err := loadASCIIArt(cfg.ASCII)
	if err != nil {
		return "", err
	}
	birthdate, err := cfg.BirthdateTime()
	if err != nil {
		return "", err
	}

	login, err := resolveLogin(ctx, cfg.User, fetcher)
	if err != nil {
		return "", err
	}
	stats, err := usecase.NewAggregator(fetcher, logger.WithField("component", "aggregator")).Aggregate(ctx, login)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate stats: %w", err)
	}

	composed := profile.Compose(tpl, profile.ComposeOptions{
		StatsSection: cfg.StatsSection,
		UptimePath:   cfg.UptimePath,
		Birthdate:    birthdate,
	}, stats, now)
	lines := profile.GenerateLines(composed, cfg.Width, cfg.PrimarySection)

	scheme, err := pickScheme(cfg.Scheme, rng)
	if err != nil {
		return "", err
	}
	svg, err := render.RenderWidth(art, lines, scheme, cfg.Width)
	if err != nil {
		return "", err
	}

	if err := publish.NewPublisher(cfg.Output, cfg.Readme, cfg.ImageURL, login).Publish(svg); err != nil {
		return "", err
	}
	logger.WithFields(logrus.Fields{
		"login":   login,
		"repos":   stats.Repos,
		"commits": stats.Commits,
		"lines":   len(lines),
	}).Info("Profile card generated.")
	return login, nil
}

func pickScheme(index int, rng render.Rand) (render.ColorScheme, error) {
	if index == config.RandomScheme {
		return render.PickScheme(rng), nil
	}
	scheme, ok := render.SchemeAt(index)
	if !ok {
		return render.ColorScheme{}, fmt.Errorf("unknown colour scheme %d", index)
	}
	return scheme, nil
}

func loadTemplate(path string) (profile.Template, error) {
	if path == "" {
		return profile.DefaultTemplate(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile template: %w", err)
	}
	defer f.Close()

	tpl, err := profile.LoadTemplate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tpl, nil
}

func loadASCIIArt(path string) ([]string, error) {
	if path == "" {
		return profile.DefaultASCIIArt(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ASCII art: %w", err)
	}
	return profile.ParseASCIIArt(string(b)), nil
}
