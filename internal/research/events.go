package research

import (
	"context"
	"sort"
	"strings"
	"time"

	"web3-scout/internal/domain"
)

// eventCatalog is the fixed set of upcoming ecosystem events the events
// operation filters over.
var eventCatalog = []domain.Event{
	{
		Name:        "ETHGlobal Online Hackathon",
		Category:    "hackathon",
		StartDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Location:    "Online",
		URL:         "https://ethglobal.com/events/online",
		Description: "Weekend-long online hackathon across the Ethereum ecosystem.",
	},
	{
		Name:        "Solana Breakpoint",
		Category:    "conference",
		StartDate:   time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC),
		Location:    "Singapore",
		URL:         "https://solana.com/breakpoint",
		Description: "Solana's annual flagship conference.",
	},
	{
		Name:        "Devcon",
		Category:    "conference",
		StartDate:   time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC),
		Location:    "Buenos Aires",
		URL:         "https://devcon.org",
		Description: "The Ethereum developer conference.",
	},
	{
		Name:        "Polkadot Parachain Hackathon",
		Category:    "hackathon",
		StartDate:   time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Location:    "Berlin",
		URL:         "https://polkadot.network/events",
		Description: "Build parachain tooling and runtime modules.",
	},
	{
		Name:        "Ethereum Fusaka Upgrade",
		Category:    "upgrade",
		StartDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Location:    "Mainnet",
		URL:         "https://ethereum.org/roadmap",
		Description: "Scheduled mainnet protocol upgrade window.",
	},
	{
		Name:        "Cosmoverse",
		Category:    "conference",
		StartDate:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC),
		Location:    "Lisbon",
		URL:         "https://cosmoverse.org",
		Description: "Cosmos ecosystem conference.",
	},
	{
		Name:        "Arbitrum Orbit Launch Week",
		Category:    "launch",
		StartDate:   time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 25, 0, 0, 0, 0, time.UTC),
		Location:    "Online",
		URL:         "https://arbitrum.io",
		Description: "Launch week for new Orbit chains.",
	},
	{
		Name:        "Chainlink SmartCon",
		Category:    "conference",
		StartDate:   time.Date(2027, 1, 14, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		Location:    "New York",
		URL:         "https://chain.link/smartcon",
		Description: "Oracle and DeFi infrastructure conference.",
	},
	{
		Name:        "Uniswap v5 Hookathon",
		Category:    "hackathon",
		StartDate:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 22, 0, 0, 0, 0, time.UTC),
		Location:    "Online",
		URL:         "https://uniswap.org/events",
		Description: "Hackathon focused on custom pool hooks.",
	},
	{
		Name:        "Bitcoin Halving Watch Party",
		Category:    "community",
		StartDate:   time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		Location:    "Online",
		URL:         "https://bitcoin.org",
		Description: "Community countdown to the next halving epoch.",
	},
}

// UpcomingEvents filters the catalog by category (case-insensitive, "all"
// or empty bypasses), sorts ascending by start date, and truncates to limit.
func (s *Service) UpcomingEvents(ctx context.Context, category string, limit int) []domain.Event {
	_, span := s.tracer.Start(ctx, "research.upcoming-events")
	defer span.End()

	category = strings.TrimSpace(category)
	all := category == "" || strings.EqualFold(category, "all")

	events := make([]domain.Event, 0, len(eventCatalog))
	for _, event := range eventCatalog {
		if all || strings.EqualFold(event.Category, category) {
			events = append(events, event)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}
