package research

import (
	"context"
	"sort"
	"sync"
	"time"

	"web3-scout/internal/domain"
)

// CompareProjects fetches metrics for each named project concurrently
// (info, then price, then on-chain data sequentially within one project)
// and ranks them on the six fixed metrics. Rank ties keep input order.
func (s *Service) CompareProjects(ctx context.Context, names []string) *domain.ComparisonResult {
	ctx, span := s.tracer.Start(ctx, "research.compare-projects")
	defer span.End()

	projects := make([]domain.ProjectMetrics, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			info := s.fetcher.ProjectInfo(ctx, name)
			price := s.fetcher.PriceData(ctx, info.Symbol)
			chain := s.fetcher.OnChainData(ctx, name)
			projects[i] = domain.ProjectMetrics{
				Name:               info.Name,
				Symbol:             info.Symbol,
				Price:              price.Price,
				MarketCap:          price.MarketCap,
				Volume24h:          price.Volume24h,
				Change24h:          price.Change24h,
				ActiveAddresses24h: chain.ActiveAddresses24h,
				Transactions24h:    chain.Transactions24h,
			}
		}(i, name)
	}
	wg.Wait()

	rankings := make(map[string]map[string]int, len(domain.ComparisonMetrics))
	for _, metric := range domain.ComparisonMetrics {
		rankings[metric] = rankByMetric(projects, metric)
	}

	return &domain.ComparisonResult{
		Projects:   projects,
		Rankings:   rankings,
		ComparedAt: time.Now().UTC(),
	}
}

// rankByMetric assigns 1-based ranks, highest value first, stable on ties.
func rankByMetric(projects []domain.ProjectMetrics, metric string) map[string]int {
	order := make([]int, len(projects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return metricValue(projects[order[a]], metric) > metricValue(projects[order[b]], metric)
	})

	ranks := make(map[string]int, len(projects))
	for rank, idx := range order {
		ranks[projects[idx].Name] = rank + 1
	}
	return ranks
}

func metricValue(p domain.ProjectMetrics, metric string) float64 {
	switch metric {
	case domain.MetricPrice:
		return p.Price
	case domain.MetricMarketCap:
		return p.MarketCap
	case domain.MetricVolume24h:
		return p.Volume24h
	case domain.MetricChange24h:
		return p.Change24h
	case domain.MetricActiveAddresses:
		return float64(p.ActiveAddresses24h)
	case domain.MetricTransactions:
		return float64(p.Transactions24h)
	default:
		return 0
	}
}
