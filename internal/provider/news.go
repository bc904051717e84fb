package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"web3-scout/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	newsProvider  = "news"
	summaryMaxLen = 300
)

var defaultNewsFeeds = []string{
	"https://www.coindesk.com/arc/outboundfeeds/rss/",
	"https://cointelegraph.com/rss",
}

// NewsProvider aggregates crypto news from RSS feeds and filters items that
// mention the requested project.
type NewsProvider struct {
	client *http.Client
	feeds  []string
	tracer trace.Tracer
}

func NewNewsProvider(tracer trace.Tracer, feeds []string) *NewsProvider {
	if len(feeds) == 0 {
		feeds = defaultNewsFeeds
	}
	return &NewsProvider{
		client: &http.Client{Timeout: 20 * time.Second},
		feeds:  feeds,
		tracer: tracer,
	}
}

// FetchNews returns up to limit items mentioning project, newest first.
// When no item mentions it, the newest general items stand in so the result
// is never empty on a healthy feed.
func (p *NewsProvider) FetchNews(ctx context.Context, project string, limit int) ([]domain.NewsItem, error) {
	_, span := p.tracer.Start(ctx, "news.fetch")
	defer span.End()

	project = strings.TrimSpace(project)
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}
	if limit <= 0 {
		limit = 10
	}

	var all []domain.NewsItem
	var lastErr error
	for _, feed := range p.feeds {
		items, err := p.fetchFeed(ctx, feed)
		if err != nil {
			lastErr = err
			continue
		}
		all = append(all, items...)
	}
	if len(all) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, upstreamErr(newsProvider, 0, "no items in any configured feed")
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	needle := strings.ToLower(project)
	matched := make([]domain.NewsItem, 0, limit)
	for _, item := range all {
		if len(matched) >= limit {
			break
		}
		text := strings.ToLower(item.Title + " " + item.Summary)
		if strings.Contains(text, needle) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (p *NewsProvider) fetchFeed(ctx context.Context, feedURL string) ([]domain.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, upstreamErr(newsProvider, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstreamErr(newsProvider, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rss struct {
		Channel struct {
			Title string `xml:"title"`
			Items []struct {
				Title       string `xml:"title"`
				Link        string `xml:"link"`
				Description string `xml:"description"`
				PubDate     string `xml:"pubDate"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	if err := xml.Unmarshal(body, &rss); err != nil {
		return nil, upstreamErr(newsProvider, 0, "decode rss payload: "+err.Error())
	}

	source := sanitizeText(rss.Channel.Title, 120)
	if source == "" {
		source = feedURL
	}

	items := make([]domain.NewsItem, 0, len(rss.Channel.Items))
	for _, row := range rss.Channel.Items {
		title := sanitizeText(row.Title, 300)
		if title == "" {
			continue
		}
		publishedAt := parseRSSDate(row.PubDate)
		if publishedAt.IsZero() {
			publishedAt = time.Now().UTC()
		}
		items = append(items, domain.NewsItem{
			Title:       title,
			URL:         sanitizeText(row.Link, 500),
			Source:      source,
			PublishedAt: publishedAt,
			Summary:     sanitizeText(stripTags(row.Description), summaryMaxLen),
		})
	}
	return items, nil
}

func parseRSSDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822, time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
