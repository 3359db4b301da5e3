package profile

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// ComposeOptions says where fetched values go in the template.
type ComposeOptions struct {
	// StatsSection is the top-level section replaced by the GitHub stats.
	StatsSection string
	// UptimePath locates the uptime leaf. It is only filled in when the
	// template already has that leaf; empty disables it.
	UptimePath []string
	// Birthdate is the start of the uptime. Zero disables it.
	Birthdate time.Time
}

// StatsGroup formats stats as the entries of the stats section.
func StatsGroup(stats domain.Stats) Group {
	return Group{
		{Key: "Repos", Value: Scalar(humanize.Comma(int64(stats.Repos)))},
		{Key: "Commits", Value: Scalar(humanize.Comma(int64(stats.Commits)))},
		{Key: "Lines of Code", Value: Scalar(humanize.Comma(int64(stats.Added)))},
	}
}

// Compose returns a copy of base with the uptime and stats filled in.
func Compose(base Template, opts ComposeOptions, stats domain.Stats, now time.Time) Template {
	t := base.With(nil)
	if _, ok := t.Lookup(opts.UptimePath...); ok && !opts.Birthdate.IsZero() {
		t = t.With(Scalar(Uptime(opts.Birthdate, now)), opts.UptimePath...)
	}
	if opts.StatsSection != "" {
		t = t.With(StatsGroup(stats), opts.StatsSection)
	}
	return t
}
