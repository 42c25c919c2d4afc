// Command votesummary fills a fresh in-memory session with synthetic ballots
// and prints the resulting tally and analytics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/voteportal/internal/adapters/catalog"
	"github.com/vncsmyrnk/voteportal/internal/app"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var (
		ballots     int
		seed        uint64
		catalogFile string
		timezone    string
	)

	flag.IntVar(&ballots, "ballots", 25, "Number of synthetic ballots to submit")
	flag.Uint64Var(&seed, "seed", 1, "Random seed for the synthetic ballots")
	flag.StringVar(&catalogFile, "catalog", os.Getenv("CATALOG_FILE"), "Voting catalog YAML file (built-in catalog when empty)")
	flag.StringVar(&timezone, "timezone", os.Getenv("TIMEZONE"), "IANA zone used to bucket votes by hour")
	flag.Parse()

	loc := time.Local
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			log.Fatalf("invalid timezone %q: %v", timezone, err)
		}
	}

	votingCatalog, err := catalog.Load(catalogFile)
	if err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(votingCatalog, app.Options{Location: loc})

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Submitting synthetic ballots...")

	rng := rand.New(rand.NewPCG(seed, seed))
	if err := submitBallots(ctx, session, rng, ballots); err != nil {
		log.Fatalf("Error submitting ballots: %v", err)
	}

	if err := printSummary(ctx, os.Stdout, session); err != nil {
		log.Fatalf("Error summarizing votes: %v", err)
	}
}

// submitBallots casts n ballots. Each ballot skips a category with
// probability 1/4 but always answers at least one.
func submitBallots(ctx context.Context, session *app.Session, rng *rand.Rand, n int) error {
	categories := session.Catalog.Categories()
	for i := range n {
		district := domain.Districts[rng.IntN(len(domain.Districts))]
		session.Capture.UpdateVoterInfo(ctx, domain.VoterInfo{
			Name:     fmt.Sprintf("Voter %d", i+1),
			Email:    fmt.Sprintf("voter%d@example.com", i+1),
			District: string(district),
		})

		answered := 0
		for _, cat := range categories {
			if answered > 0 && rng.IntN(4) == 0 {
				continue
			}
			opt := cat.Options[rng.IntN(len(cat.Options))]
			if err := session.Capture.Select(ctx, cat.ID, opt.ID); err != nil {
				return err
			}
			answered++
		}

		if _, err := session.Capture.Submit(ctx); err != nil {
			return fmt.Errorf("ballot %d: %w", i+1, err)
		}
	}
	return nil
}

func printSummary(ctx context.Context, out io.Writer, session *app.Session) error {
	summary, err := session.Tally.Summary(ctx)
	if err != nil {
		return err
	}
	analytics, err := session.Analytics.Analytics(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total votes cast:\t%d\n", summary.TotalVotes)
	fmt.Fprintf(w, "Categories:\t%d\n", summary.Categories)
	fmt.Fprintf(w, "Participation:\t%d%%\n\n", summary.Participation)

	for _, result := range summary.Results {
		fmt.Fprintf(w, "%s\t(%d votes)\n", result.Title, result.TotalVotes)
		for i, opt := range result.Options {
			fmt.Fprintf(w, "  #%d %s\t%s\t%d\t%.1f%%\n", i+1, opt.Name, opt.Party, opt.Votes, opt.Percentage)
		}
		if result.Leading != nil {
			fmt.Fprintf(w, "  Leading:\t%s\n", result.Leading.Name)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Votes by district:")
	for _, d := range domain.Districts {
		fmt.Fprintf(w, "  %s\t%d\n", d.Label(), analytics.Districts[string(d)])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Recent hours:")
	for _, h := range analytics.RecentHours {
		fmt.Fprintf(w, "  %02d:00\t%d\n", h.Hour, h.Votes)
	}

	if analytics.TopDistrict != nil {
		fmt.Fprintf(w, "Most active district:\t%s (%d)\n", domain.DistrictLabel(analytics.TopDistrict.District), analytics.TopDistrict.Votes)
	}
	if analytics.PeakHour != nil {
		fmt.Fprintf(w, "Peak voting hour:\t%02d:00 (%d)\n", analytics.PeakHour.Hour, analytics.PeakHour.Votes)
	}
	fmt.Fprintf(w, "Completion rate:\t%d%%\n", analytics.CompletionRate)

	return w.Flush()
}
