package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ideacheck-backend/internal/llm"
	"ideacheck-backend/internal/shared/telemetry"
	"ideacheck-backend/internal/shared/util"
)

// Queries holds the synthesized external-search inputs. A zero value means
// "skip external search" and is never an error.
type Queries struct {
	SearchQuery string
	TopicQuery  string
	Keywords    []string
}

// Synthesizer turns the raw idea text into external search queries.
type Synthesizer interface {
	Synthesize(ctx context.Context, idea, problem, targetUser string) Queries
}

// RuleBased combines extracted keywords into queries without any network call.
// Used when no query model is configured; input must already be English for the
// results to be useful.
type RuleBased struct{}

// Synthesize weights keywords 3/2/1 across idea/problem/target user.
func (RuleBased) Synthesize(_ context.Context, idea, problem, targetUser string) Queries {
	ideaKW := ExtractKeywords(idea)

	combined := dedupeKeywords(
		takeKeywords(ideaKW, 3),
		takeKeywords(ExtractKeywords(problem), 2),
		takeKeywords(ExtractKeywords(targetUser), 1),
	)
	if len(combined) == 0 {
		return Queries{}
	}

	return Queries{
		SearchQuery: strings.Join(combined, " ") + " software alternatives competitors",
		TopicQuery:  strings.Join(takeKeywords(ideaKW, 2), " "),
		Keywords:    combined,
	}
}

const querySystemPrompt = `You are a search query optimizer. Given a product idea (in any language), generate effective ENGLISH search queries to find competitors and similar products.

Return JSON only:
{
  "firecrawlQuery": "search query for finding competitor software on G2, Capterra, AlternativeTo (e.g. 'AI startup idea generator alternatives')",
  "productHuntQuery": "1-3 word topic for Product Hunt (e.g. 'startup tools' or 'AI productivity')",
  "keywords": ["keyword1", "keyword2", "keyword3"]
}

The keywords list holds 3-5 English keywords describing the product category. Be specific to the product domain. Return ONLY valid JSON.`

// LLMSynthesizer asks a lightweight model for English queries, which lets the
// form accept any input language. Every failure degrades to empty queries so
// the caller skips external search instead of failing the request.
type LLMSynthesizer struct {
	Client llm.Client
}

// Synthesize requests and parses a query JSON object from the model.
func (s *LLMSynthesizer) Synthesize(ctx context.Context, idea, problem, targetUser string) Queries {
	if s == nil || s.Client == nil {
		return Queries{}
	}

	userPrompt := fmt.Sprintf("Product Idea: %s\nProblem: %s\nTarget User: %s", idea, problem, targetUser)
	content, err := s.Client.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: querySystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	})
	if err != nil {
		telemetry.Warn("query synthesis failed", map[string]any{"error": err.Error()})
		return Queries{}
	}

	raw, err := util.ExtractJSONObject(content)
	if err != nil {
		telemetry.Warn("query synthesis returned no JSON", map[string]any{"error": err.Error()})
		return Queries{}
	}

	var parsed struct {
		FirecrawlQuery   string   `json:"firecrawlQuery"`
		ProductHuntQuery string   `json:"productHuntQuery"`
		Keywords         []string `json:"keywords"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		telemetry.Warn("query synthesis JSON malformed", map[string]any{"error": err.Error()})
		return Queries{}
	}

	return Queries{
		SearchQuery: parsed.FirecrawlQuery,
		TopicQuery:  parsed.ProductHuntQuery,
		Keywords:    parsed.Keywords,
	}
}

func takeKeywords(keywords []string, n int) []string {
	if len(keywords) < n {
		return keywords
	}
	return keywords[:n]
}

func dedupeKeywords(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, group := range groups {
		for _, kw := range group {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}
