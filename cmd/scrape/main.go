package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/fortuna/gridiron/internal/assemble"
	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/fantasy"
	"github.com/fortuna/gridiron/internal/ingest/fbdb"
	"github.com/fortuna/gridiron/internal/ingest/pfr"
)

const (
	appName    = "gridiron-scrape"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	var (
		category   = flag.String("category", "", "Single stat category (e.g., rushing)")
		categories = flag.String("categories", "", "Comma-separated stat categories")
		year       = flag.Int("year", 0, "Single season year")
		start      = flag.Int("start", 0, "Range start year (inclusive)")
		end        = flag.Int("end", 0, "Range end year (inclusive)")
		withPoints = flag.Bool("fantasy", false, "Compute fantasy points")
		settings   = flag.String("settings", "", "YAML fantasy scoring profile (default profile when empty)")
		out        = flag.String("out", "stats.csv", "Output CSV path")
		redisURL   = flag.String("redis", getEnv("REDIS_URL", ""), "Redis URL for the page cache (disabled when empty)")
		pfrBase    = flag.String("pfr-url", getEnv("PFR_BASE", ""), "Override primary source base URL")
		fbdbBase   = flag.String("fbdb-url", getEnv("FBDB_BASE", ""), "Override supplemental source base URL")
	)

	flag.Parse()

	pfrClient := pfr.New(*pfrBase)
	fbdbClient := fbdb.New(*fbdbBase)

	if *redisURL != "" {
		pageCache, err := cache.NewPageCache(*redisURL)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		defer pageCache.Close()
		pfrClient.UseCache(pageCache)
		fbdbClient.UseCache(pageCache)
		log.Println("✓ Page cache enabled")
	}

	opts := assemble.Options{
		Year:      *year,
		StartYear: *start,
		EndYear:   *end,
		Category:  *category,
	}
	if *categories != "" {
		for _, c := range strings.Split(*categories, ",") {
			opts.Categories = append(opts.Categories, strings.TrimSpace(c))
		}
	}

	ctx := context.Background()
	assembler := assemble.New(pfrClient)

	ds, err := assembler.SeasonPlayerStats(ctx, opts, &consoleReporter{})
	if err != nil {
		log.Fatalf("assemble stats: %v", err)
	}

	if *withPoints {
		profile := fantasy.Settings(nil)
		if *settings != "" {
			profile, err = fantasy.LoadSettings(*settings)
			if err != nil {
				log.Fatalf("load settings: %v", err)
			}
		}

		engine, err := fantasy.NewEngine(fbdbClient, profile)
		if err != nil {
			log.Fatalf("create fantasy engine: %v", err)
		}
		if err := engine.Score(ctx, ds); err != nil {
			log.Fatalf("compute fantasy points: %v", err)
		}
	}

	if err := ds.WriteCSVFile(*out); err != nil {
		log.Fatalf("write output: %v", err)
	}

	log.Printf("✓ Wrote %d rows to %s", ds.Len(), *out)
}

type consoleReporter struct{}

func (c *consoleReporter) OnSeasonStart(category string, year, index, total int) {
	log.Printf("[%d/%d] %s %d", index+1, total, category, year)
}

func (c *consoleReporter) OnSeasonDone(category string, year, rows int) {
	log.Printf("%s %d: %d players", category, year, rows)
}

func (c *consoleReporter) OnJobError(err error) {
	log.Printf("Job error: %v", err)
}

func (c *consoleReporter) OnJobComplete(rows int) {
	log.Printf("Job complete: %d rows", rows)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
