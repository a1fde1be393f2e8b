package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/garden/internal/client/feed"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dustin/go-humanize"
)

// nowFn is a test seam for the clock used in relative timestamps.
var nowFn = time.Now

// compactMagnitudes renders ages as 1m, 5m, 1h, 3d, 1M, 2y.
var compactMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "1m %s", DivBy: time.Second},
	{D: time.Hour, Format: "%dm %s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%dh %s", DivBy: time.Hour},
	{D: humanize.Month, Format: "%dd %s", DivBy: humanize.Day},
	{D: humanize.Year, Format: "%dM %s", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%dy %s", DivBy: humanize.Year},
}

// relativeTime is the age of t at now, e.g. "5m ago".
func relativeTime(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "ago", "from now", compactMagnitudes)
}

// formatSeed renders one list row; n is the number used by like/unlike.
func formatSeed(n int, s models.Seed, now time.Time) string {
	heart := "♡"
	if s.ViewerHasLiked {
		heart = "♥"
	}
	author := s.Author.Name
	if author == "" {
		author = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%3d. %s · %s\n", n, author, relativeTime(s.CreatedAt, now))
	fmt.Fprintf(&b, "     %s\n", strings.ReplaceAll(s.Text, "\n", "\n     "))
	fmt.Fprintf(&b, "     %s %d   id:%s", heart, s.LikeCount, s.ID)
	return b.String()
}

// render prints the seeds inside the viewport window followed by a footer
// that tells whether more pages can load.
func (a *App) render() {
	seeds := a.feed.Seeds()
	start, end := a.viewport.Window()

	title := "Garden"
	if name := a.feed.Key().AuthorName; name != "" {
		title = name + "'s garden"
	}

	if len(seeds) == 0 {
		fmt.Fprintf(a.out, "== %s ==\n", title)
		a.renderFooter(true)
		return
	}

	fmt.Fprintf(a.out, "== %s (%d-%d of %d) ==\n", title, start+1, end, len(seeds))
	now := nowFn()
	for i := start; i < end; i++ {
		fmt.Fprintln(a.out, formatSeed(i+1, seeds[i], now))
	}
	a.renderFooter(end >= len(seeds))
}

func (a *App) renderFooter(atEnd bool) {
	if err := a.feed.LastErr(); err != nil {
		fmt.Fprintf(a.out, "Could not load more: %s\n", describeError(err))
	}
	if !atEnd {
		return
	}
	switch a.feed.State() {
	case feed.Exhausted:
		if len(a.feed.Seeds()) == 0 {
			fmt.Fprintln(a.out, "Nothing has been planted here yet")
		} else {
			fmt.Fprintln(a.out, "No more items to load")
		}
	case feed.Fetching:
		fmt.Fprintln(a.out, "Loading...")
	}
}
