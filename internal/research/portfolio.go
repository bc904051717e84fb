package research

import (
	"context"
	"strings"
	"sync"
	"time"

	"web3-scout/internal/domain"
)

// AnalyzePortfolio prices every holding concurrently, then derives totals,
// the aggregate 24h move, and per-asset allocation. With a zero total value
// the percentage fields are reported as 0 so the result stays serializable.
func (s *Service) AnalyzePortfolio(ctx context.Context, holdings []domain.Holding) *domain.PortfolioResult {
	ctx, span := s.tracer.Start(ctx, "research.analyze-portfolio")
	defer span.End()

	assets := make([]domain.PortfolioAsset, len(holdings))
	var wg sync.WaitGroup
	for i, holding := range holdings {
		wg.Add(1)
		go func(i int, holding domain.Holding) {
			defer wg.Done()
			price := s.fetcher.PriceData(ctx, holding.Symbol)
			assets[i] = domain.PortfolioAsset{
				Symbol:    strings.ToUpper(strings.TrimSpace(holding.Symbol)),
				Amount:    holding.Amount,
				Price:     price.Price,
				Value:     holding.Amount * price.Price,
				Change24h: price.Change24h,
			}
		}(i, holding)
	}
	wg.Wait()

	totalValue := 0.0
	totalChange := 0.0
	for _, asset := range assets {
		totalValue += asset.Value
		totalChange += asset.Value * asset.Change24h / 100
	}

	percentChange := 0.0
	if totalValue != 0 {
		percentChange = totalChange / totalValue * 100
		for i := range assets {
			assets[i].Allocation = assets[i].Value / totalValue * 100
		}
	}

	return &domain.PortfolioResult{
		Assets:           assets,
		TotalValue:       totalValue,
		TotalChange24h:   totalChange,
		PercentChange24h: percentChange,
		AnalyzedAt:       time.Now().UTC(),
	}
}
