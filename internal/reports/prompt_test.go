package reports

import (
	"strings"
	"testing"

	"ideacheck-backend/internal/research"
)

func TestBuildMarketContextEmpty(t *testing.T) {
	if got := buildMarketContext(nil, nil); got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestBuildMarketContextListsBothSources(t *testing.T) {
	ctx := buildMarketContext(
		[]research.CompetitorInsight{{Name: "Boardly", URL: "https://example.com", Summary: "kanban"}},
		[]research.SimilarProduct{{Name: "Tasker", Tagline: "tasks done", VotesCount: 900}},
	)
	if !strings.Contains(ctx, "Boardly") || !strings.Contains(ctx, "https://example.com") {
		t.Fatalf("competitor missing from context: %q", ctx)
	}
	if !strings.Contains(ctx, "Tasker") || !strings.Contains(ctx, "900 votes") {
		t.Fatalf("similar product missing from context: %q", ctx)
	}
}

func TestSystemPromptLanguageAndMarketField(t *testing.T) {
	withContext := systemPrompt("uk", "\n\nCompetitor/Market Research Data:\n1. x")
	if !strings.Contains(withContext, "Respond ONLY in Ukrainian") {
		t.Fatalf("expected Ukrainian instruction")
	}
	if !strings.Contains(withContext, `"market_analysis"`) {
		t.Fatalf("expected market_analysis field when context present")
	}

	withoutContext := systemPrompt("en", "")
	if !strings.Contains(withoutContext, "Respond ONLY in English") {
		t.Fatalf("expected English instruction")
	}
	if strings.Contains(withoutContext, `"market_analysis"`) {
		t.Fatalf("market_analysis field should be absent without context")
	}
}

func TestUserPromptOmitsEmptyMonetization(t *testing.T) {
	in := AnalysisInput{
		ProductIdea: "idea",
		TargetUser:  "user",
		Problem:     "problem",
		WhyItWorks:  "works",
	}
	prompt := userPrompt(in)
	if strings.Contains(prompt, "Monetization") {
		t.Fatalf("unexpected monetization section: %q", prompt)
	}

	in.Monetization = "subscriptions"
	if !strings.Contains(userPrompt(in), "Monetization: subscriptions") {
		t.Fatalf("expected monetization section")
	}
}
