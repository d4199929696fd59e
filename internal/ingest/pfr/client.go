// Package pfr scrapes per-season player stat tables from
// pro-football-reference.com.
package pfr

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/record"
	"github.com/fortuna/gridiron/internal/schema"
)

const (
	// BaseURL for pro-football-reference season pages
	BaseURL = "https://www.pro-football-reference.com"

	// UserAgent for requests; the site serves bot-identified clients a 403
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// PageCache stores fetched HTML keyed by URL. A miss returns false; write
// failures are the cache's problem, not the client's.
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, html string)
}

// Client fetches and parses season stat pages
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

// seasonURL builds the page URL for one category and year
func (c *Client) seasonURL(year int, category string) string {
	return fmt.Sprintf("%s/years/%d/%s.htm", c.baseURL, year, category)
}

// FetchSeasonPage returns the raw HTML of a season stat page, consulting the
// page cache first when one is attached
func (c *Client) FetchSeasonPage(ctx context.Context, year int, category string) (string, error) {
	url := c.seasonURL(year, category)

	if c.cache != nil {
		if html, ok := c.cache.Get(ctx, url); ok {
			log.Printf("[pfr-client] cache hit: %s", url)
			return html, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	log.Printf("[pfr-client] GET %s", url)
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

// Season fetches and parses one category's table for one year, returning the
// header-derived column names and the raw player rows
func (c *Client) Season(ctx context.Context, year int, category string) ([]string, []record.RawRow, error) {
	cat, err := schema.Lookup(category)
	if err != nil {
		return nil, nil, err
	}

	html, err := c.FetchSeasonPage(ctx, year, cat.Name)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s page for %d: %w", cat.Name, year, err)
	}

	return ParseSeasonTable(doc, cat, year)
}

// IdentityKey builds the stable row key for one player season
func IdentityKey(playerURL string, year int) string {
	return playerURL + strconv.Itoa(year)
}
