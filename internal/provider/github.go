package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"web3-scout/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	githubBaseURL     = "https://api.github.com"
	githubProvider    = "github"
	commitWeeksKept   = 8
	topContributorCap = 5
)

// GitHubProvider is the source-hosting adapter. Repository activity costs
// three calls: metadata, weekly commit activity, and top contributors.
type GitHubProvider struct {
	client  *http.Client
	baseURL string
	token   string
	tracer  trace.Tracer
}

func NewGitHubProvider(tracer trace.Tracer, token string) *GitHubProvider {
	return &GitHubProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: githubBaseURL,
		token:   token,
		tracer:  tracer,
	}
}

// FetchActivity fetches repository metrics for owner/repo.
func (p *GitHubProvider) FetchActivity(ctx context.Context, owner, repo string) (*domain.GitHubActivity, error) {
	_, span := p.tracer.Start(ctx, "github.fetch-activity")
	defer span.End()

	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}
	base := fmt.Sprintf("%s/repos/%s/%s", p.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	body, err := p.doRequest(ctx, base)
	if err != nil {
		return nil, err
	}
	var meta struct {
		StargazersCount int `json:"stargazers_count"`
		ForksCount      int `json:"forks_count"`
		OpenIssuesCount int `json:"open_issues_count"`
	}
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, upstreamErr(githubProvider, 0, "unexpected repo payload: "+err.Error())
	}

	// stats/commit_activity answers 202 while GitHub computes the stats;
	// treat that like any other upstream failure.
	body, err = p.doRequest(ctx, base+"/stats/commit_activity")
	if err != nil {
		return nil, err
	}
	var weeks []struct {
		Total int   `json:"total"`
		Week  int64 `json:"week"`
	}
	if err := json.Unmarshal(body, &weeks); err != nil {
		return nil, upstreamErr(githubProvider, 0, "unexpected commit activity payload: "+err.Error())
	}
	weekly := make([]int, commitWeeksKept)
	for i := 0; i < commitWeeksKept && i < len(weeks); i++ {
		weekly[commitWeeksKept-1-i] = weeks[len(weeks)-1-i].Total
	}

	body, err = p.doRequest(ctx, base+fmt.Sprintf("/contributors?per_page=%d", topContributorCap))
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Login         string `json:"login"`
		Contributions int    `json:"contributions"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, upstreamErr(githubProvider, 0, "unexpected contributors payload: "+err.Error())
	}
	contributors := make([]domain.Contributor, 0, topContributorCap)
	for _, row := range rows {
		if len(contributors) >= topContributorCap {
			break
		}
		if strings.TrimSpace(row.Login) == "" {
			continue
		}
		contributors = append(contributors, domain.Contributor{
			Username:      row.Login,
			Contributions: row.Contributions,
		})
	}

	return &domain.GitHubActivity{
		Stars:                meta.StargazersCount,
		Forks:                meta.ForksCount,
		OpenIssues:           meta.OpenIssuesCount,
		LastUpdated:          time.Now().UTC(),
		WeeklyCommitActivity: weekly,
		TopContributors:      contributors,
	}, nil
}

// SearchRepositories returns up to limit repositories matching query,
// ordered by stars.
func (p *GitHubProvider) SearchRepositories(ctx context.Context, query string, limit int) ([]domain.RepoSummary, error) {
	_, span := p.tracer.Start(ctx, "github.search-repositories")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	u := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
		p.baseURL, url.QueryEscape(query), limit)
	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Items []struct {
			Name            string `json:"name"`
			FullName        string `json:"full_name"`
			Description     string `json:"description"`
			StargazersCount int    `json:"stargazers_count"`
			HTMLURL         string `json:"html_url"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, upstreamErr(githubProvider, 0, "unexpected search payload: "+err.Error())
	}

	repos := make([]domain.RepoSummary, 0, len(raw.Items))
	for _, item := range raw.Items {
		repos = append(repos, domain.RepoSummary{
			Name:        item.Name,
			FullName:    item.FullName,
			Description: sanitizeText(item.Description, 300),
			Stars:       item.StargazersCount,
			URL:         item.HTMLURL,
		})
	}
	return repos, nil
}

func (p *GitHubProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, upstreamErr(githubProvider, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstreamErr(githubProvider, resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
