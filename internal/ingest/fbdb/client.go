package fbdb

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/dataset"
)

const (
	// BaseURL for footballdb stat tables
	BaseURL = "https://www.footballdb.com"

	// UserAgent for requests; the site answers 403 without a browser agent
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// PageCache stores fetched HTML keyed by URL.
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, html string)
}

// Client fetches supplemental stat tables
type Client struct {
	baseURL string
	http    *http.Client
	cache   PageCache
}

// New creates a client with a custom base URL (used by tests to point at a
// local server)
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClient creates a client with default settings
func NewClient() *Client {
	return New(BaseURL)
}

// UseCache attaches a page cache. Pass nil to disable caching.
func (c *Client) UseCache(cache PageCache) {
	c.cache = cache
}

// tableURL builds the query URL selecting one table for one season
func (c *Client) tableURL(year int, t Table) string {
	return fmt.Sprintf("%s/stats/stats.html?lg=NFL&yr=%d&type=reg&mode=%s&conf=&limit=all&sort=%s",
		c.baseURL, year, t.Mode, t.Sort)
}

func (c *Client) fetchPage(ctx context.Context, url string) (string, error) {
	if c.cache != nil {
		if html, ok := c.cache.Get(ctx, url); ok {
			log.Printf("[fbdb-client] cache hit: %s", url)
			return html, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	log.Printf("[fbdb-client] GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	html := string(body)
	if c.cache != nil {
		c.cache.Set(ctx, url, html)
	}
	return html, nil
}

// Supplement fetches one supplemental table for one season and returns it as
// a dataset indexed by player name. Name is the only identifier shared with
// the primary source, so it is the join key despite being non-unique in rare
// cases.
func (c *Client) Supplement(ctx context.Context, year int, table string) (*dataset.Dataset, error) {
	t, err := LookupTable(table)
	if err != nil {
		return nil, err
	}

	html, err := c.fetchPage(ctx, c.tableURL(year, t))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse %s table for %d: %w", t.Name, year, err)
	}

	return ParseTable(doc, t, year)
}
