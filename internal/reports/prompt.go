package reports

import (
	"fmt"
	"strings"

	"ideacheck-backend/internal/i18n"
	"ideacheck-backend/internal/research"
)

// buildMarketContext renders the adapter results as a text block for the
// prompt. Empty when both adapters came back empty.
func buildMarketContext(competitors []research.CompetitorInsight, similar []research.SimilarProduct) string {
	var b strings.Builder
	if len(competitors) > 0 {
		b.WriteString("\n\nCompetitor/Market Research Data:\n")
		for i, c := range competitors {
			fmt.Fprintf(&b, "%d. %s (%s): %s\n", i+1, c.Name, c.URL, c.Summary)
		}
	}
	if len(similar) > 0 {
		b.WriteString("\n\nSimilar Products from Product Hunt:\n")
		for i, p := range similar {
			fmt.Fprintf(&b, "%d. %s - %s (%d votes)\n", i+1, p.Name, p.Tagline, p.VotesCount)
		}
	}
	return b.String()
}

func systemPrompt(language, marketContext string) string {
	langName := i18n.LanguageName(language)

	var b strings.Builder
	b.WriteString("You are a strict, analytical product manager and startup advisor. Your job is to provide a brutally honest reality check of product ideas. Be factual, direct, and analytical. No motivational fluff. No insults. Just honest assessment.\n\n")
	fmt.Fprintf(&b, "IMPORTANT: Respond ONLY in %s. All text must be in %s.\n\n", langName, langName)

	if marketContext != "" {
		fmt.Fprintf(&b, "Use this market research data to inform your analysis:%s\n\n", marketContext)
	}

	b.WriteString(`Analyze the product idea and return a JSON object with this exact structure:
{
  "reality_check": {
    "summary": "2-3 sentence honest assessment",
    "assumptions": ["assumption 1", "assumption 2", "assumption 3"],
    "risks": ["risk 1", "risk 2", "risk 3"],
    "likely_failure_first": "The most likely way this will fail"
  },
  "product_thinking_score": {
    "score": 0-10,
    "level": "Beginner" or "Intermediate" or "Strong",
    "explanation": ["reason 1", "reason 2", "reason 3"]
  },
  "improvement_plan": {
    "improve_one_thing": "specific actionable improvement",
    "validate_one_assumption": "specific assumption to test and how",
    "run_one_experiment": "concrete experiment to run",
    "one_thing_not_to_build_yet": "feature to avoid building now"
  },
  "final_verdict": {
    "worth_testing": true or false,
    "reason": "1-2 sentence justification"
  }`)
	if marketContext != "" {
		b.WriteString(`,
  "market_analysis": "2-3 sentence analysis based on competitor and market data provided"`)
	}
	b.WriteString("\n}\n\n")

	b.WriteString(`Scoring guide:
- 0-3: Beginner - Missing basic product thinking
- 4-6: Intermediate - Shows understanding but has gaps
- 7-10: Strong - Well-thought-out with clear reasoning

Return ONLY valid JSON, no markdown, no explanation.`)

	return b.String()
}

func userPrompt(in AnalysisInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Idea: %s\n\n", in.ProductIdea)
	fmt.Fprintf(&b, "Target User: %s\n\n", in.TargetUser)
	fmt.Fprintf(&b, "Problem it solves: %s\n\n", in.Problem)
	fmt.Fprintf(&b, "Why it will work: %s\n", in.WhyItWorks)
	if in.Monetization != "" {
		fmt.Fprintf(&b, "\nMonetization: %s\n", in.Monetization)
	}
	return b.String()
}
