package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"web3-scout/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	webpageProvider = "webpage"
	pageContentMax  = 10000
)

// WebpageProvider fetches an arbitrary URL and reduces the HTML to plain
// visible text within a fixed character budget.
type WebpageProvider struct {
	client *http.Client
	tracer trace.Tracer
}

func NewWebpageProvider(tracer trace.Tracer) *WebpageProvider {
	return &WebpageProvider{
		client: &http.Client{Timeout: 20 * time.Second},
		tracer: tracer,
	}
}

func (p *WebpageProvider) FetchPage(ctx context.Context, pageURL string) (*domain.WebsiteContent, error) {
	_, span := p.tracer.Start(ctx, "webpage.fetch")
	defer span.End()

	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, fmt.Errorf("url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, upstreamErr(webpageProvider, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstreamErr(webpageProvider, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &domain.WebsiteContent{
		URL:       pageURL,
		Content:   sanitizeText(stripTags(dropBlocks(string(body), "script", "style")), pageContentMax),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// dropBlocks removes <tag ...>...</tag> blocks, case-insensitively.
func dropBlocks(in string, tags ...string) string {
	for _, tag := range tags {
		lower := strings.ToLower(in)
		open := "<" + tag
		close := "</" + tag + ">"
		var b strings.Builder
		for {
			start := strings.Index(lower, open)
			if start < 0 {
				b.WriteString(in)
				break
			}
			end := strings.Index(lower[start:], close)
			if end < 0 {
				b.WriteString(in[:start])
				break
			}
			b.WriteString(in[:start])
			cut := start + end + len(close)
			in = in[cut:]
			lower = lower[cut:]
		}
		in = b.String()
	}
	return in
}

// stripTags removes markup, keeping the text between tags.
func stripTags(in string) string {
	if strings.TrimSpace(in) == "" {
		return ""
	}
	var b strings.Builder
	inside := false
	for _, r := range in {
		switch r {
		case '<':
			inside = true
			b.WriteRune(' ')
			continue
		case '>':
			inside = false
			continue
		}
		if !inside {
			b.WriteRune(r)
		}
	}
	return b.String()
}
