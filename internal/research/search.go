package research

import (
	"context"
	"fmt"
	"sync"

	"web3-scout/internal/domain"
)

const searchBranchLimit = 5

// SearchWeb3Info fans out one branch per requested source and merges the
// results into a map keyed by source name. An unrecognized source yields an
// inline error value for that key only; branches never block or abort each
// other.
func (s *Service) SearchWeb3Info(ctx context.Context, query string, sources []string) map[string]any {
	ctx, span := s.tracer.Start(ctx, "research.search-web3-info")
	defer span.End()

	results := make(map[string]any, len(sources))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, source := range sources {
		wg.Add(1)
		go func(source string) {
			defer wg.Done()
			value := s.searchBranch(ctx, query, source)
			mu.Lock()
			results[source] = value
			mu.Unlock()
		}(source)
	}
	wg.Wait()

	return results
}

func (s *Service) searchBranch(ctx context.Context, query, source string) any {
	switch source {
	case domain.SourceNews:
		return s.fetcher.ProjectNews(ctx, query, searchBranchLimit)
	case domain.SourceGitHub:
		return s.fetcher.SearchRepositories(ctx, query, searchBranchLimit)
	case domain.SourceTwitter:
		// No social upstream; tweets are synthesized.
		return s.synth.Tweets(query, searchBranchLimit)
	default:
		return domain.SourceError{Error: fmt.Sprintf("Unsupported source: %s", source)}
	}
}
