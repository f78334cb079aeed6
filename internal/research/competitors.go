package research

import (
	"context"
	"strings"

	"ideacheck-backend/internal/research/firecrawl"
	"ideacheck-backend/internal/shared/telemetry"
)

// CompetitorInsight is one discovered competitor/alternative listing.
type CompetitorInsight struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

const (
	competitorSearchLimit = 10
	maxCompetitors        = 5
	summaryMaxChars       = 300
	noDescriptionText     = "No description available"
)

// Directories that aggregate software alternatives and reviews. Union'd with
// the title signals below; either condition qualifies a result.
var competitorSites = []string{
	"producthunt", "g2.com", "capterra", "alternativeto",
	"saasworthy", "getapp", "softwareadvice", "trustradius",
}

var comparisonSignals = []string{"alternative", "competitor", "vs", "best", "top"}

// CompetitorAdapter turns a synthesized search query into competitor insights.
// A nil client (credential not configured) disables the adapter entirely.
type CompetitorAdapter struct {
	Client *firecrawl.Client
}

// NewCompetitorAdapter returns a disabled adapter when apiKey is empty.
func NewCompetitorAdapter(apiKey string) *CompetitorAdapter {
	if strings.TrimSpace(apiKey) == "" {
		return &CompetitorAdapter{}
	}
	return &CompetitorAdapter{Client: firecrawl.NewClient(apiKey)}
}

// Search runs one web search and filters results to plausible competitor
// listings. Every failure degrades to an empty list.
func (a *CompetitorAdapter) Search(ctx context.Context, query string) []CompetitorInsight {
	if a == nil || a.Client == nil || strings.TrimSpace(query) == "" {
		return nil
	}

	results, err := a.Client.Search(ctx, firecrawl.SearchRequest{
		Query: query,
		Limit: competitorSearchLimit,
		ScrapeOptions: &firecrawl.ScrapeOptions{
			Formats:         []string{"markdown"},
			OnlyMainContent: true,
		},
	})
	if err != nil {
		telemetry.Warn("competitor search failed", map[string]any{"error": err.Error()})
		return nil
	}

	return filterCompetitors(results)
}

func filterCompetitors(results []firecrawl.SearchResult) []CompetitorInsight {
	var insights []CompetitorInsight
	for _, result := range results {
		if !isCompetitorResult(result) {
			continue
		}
		insights = append(insights, CompetitorInsight{
			Name:    firstNonEmpty(result.Title, result.URL),
			URL:     result.URL,
			Summary: summarize(result),
		})
		if len(insights) == maxCompetitors {
			break
		}
	}
	return insights
}

func isCompetitorResult(result firecrawl.SearchResult) bool {
	url := strings.ToLower(result.URL)
	for _, site := range competitorSites {
		if strings.Contains(url, site) {
			return true
		}
	}
	title := strings.ToLower(result.Title)
	for _, signal := range comparisonSignals {
		if strings.Contains(title, signal) {
			return true
		}
	}
	return false
}

func summarize(result firecrawl.SearchResult) string {
	if result.Description != "" {
		return result.Description
	}
	if result.Markdown != "" {
		if len(result.Markdown) > summaryMaxChars {
			return result.Markdown[:summaryMaxChars]
		}
		return result.Markdown
	}
	return noDescriptionText
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
