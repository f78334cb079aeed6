package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ideacheck-backend/internal/llm"
	"ideacheck-backend/internal/research"
)

const validVerdictJSON = `{
  "reality_check": {
    "summary": "Crowded space, unclear wedge.",
    "assumptions": ["teams will switch tools", "keyword overlap matters", "budget exists"],
    "risks": ["incumbents", "churn", "distribution"],
    "likely_failure_first": "Nobody switches from their current tool."
  },
  "product_thinking_score": {
    "score": 5,
    "level": "Intermediate",
    "explanation": ["clear user", "weak moat", "no pricing thought"]
  },
  "improvement_plan": {
    "improve_one_thing": "narrow the niche",
    "validate_one_assumption": "interview 10 managers",
    "run_one_experiment": "landing page with waitlist",
    "one_thing_not_to_build_yet": "integrations"
  },
  "final_verdict": {
    "worth_testing": true,
    "reason": "Cheap to validate with a landing page."
  },
  "market_analysis": "Several funded incumbents with strong traction."
}`

type stubLLM struct {
	content string
	err     error
	calls   int
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message) (string, error) {
	s.calls++
	return s.content, s.err
}

type stubCompetitors struct {
	insights []research.CompetitorInsight
}

func (s *stubCompetitors) Search(_ context.Context, _ string) []research.CompetitorInsight {
	return s.insights
}

type stubSimilar struct {
	products []research.SimilarProduct
}

func (s *stubSimilar) Search(_ context.Context, _ string, _ []string) []research.SimilarProduct {
	return s.products
}

type failingRepo struct{}

func (failingRepo) Create(_ context.Context, _ Report) error      { return errors.New("insert failed") }
func (failingRepo) GetByID(_ context.Context, _ string) (Report, error) {
	return Report{}, ErrNotFound
}

func sampleInput() AnalysisInput {
	return AnalysisInput{
		ProductIdea: "AI-powered task management board for remote teams",
		TargetUser:  "engineering managers",
		Problem:     "tasks scattered across channels",
		WhyItWorks:  "remote work keeps growing",
		Language:    "en",
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:  repo,
		LLM:   &stubLLM{content: "Here is the result:\n```json\n" + validVerdictJSON + "\n```"},
		Synth: research.RuleBased{},
		Competitors: &stubCompetitors{insights: []research.CompetitorInsight{
			{Name: "Boardly", URL: "https://example.com", Summary: "kanban"},
		}},
		Similar: &stubSimilar{products: []research.SimilarProduct{
			{ID: "p1", Name: "Tasker", Tagline: "tasks done", VotesCount: 900},
		}},
	}

	report, err := svc.Analyze(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.ID == "" {
		t.Fatal("expected generated report id")
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 stored report, got %d", repo.Len())
	}

	output := report.Output
	if output.ProductThinkingScore.Score != 5 || output.ProductThinkingScore.Level != LevelIntermediate {
		t.Fatalf("unexpected score block %+v", output.ProductThinkingScore)
	}
	if output.MarketResearch == nil {
		t.Fatal("expected market research attached")
	}
	if len(output.MarketResearch.Competitors) != 1 || len(output.MarketResearch.SimilarProducts) != 1 {
		t.Fatalf("unexpected market research %+v", output.MarketResearch)
	}
	if output.MarketResearch.MarketAnalysis == nil || !strings.Contains(*output.MarketResearch.MarketAnalysis, "incumbents") {
		t.Fatalf("expected market_analysis moved under market_research, got %+v", output.MarketResearch.MarketAnalysis)
	}
	if output.MarketAnalysis != "" {
		t.Fatalf("expected top-level market_analysis cleared, got %q", output.MarketAnalysis)
	}

	stored, err := repo.GetByID(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.ProductIdea != sampleInput().ProductIdea {
		t.Fatalf("input not echoed into report: %+v", stored)
	}
}

func TestAnalyzeTwiceProducesDistinctReports(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:  repo,
		LLM:   &stubLLM{content: validVerdictJSON},
		Synth: research.RuleBased{},
	}

	first, err := svc.Analyze(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := svc.Analyze(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q twice", first.ID)
	}
	if repo.Len() != 2 {
		t.Fatalf("expected 2 stored reports, got %d", repo.Len())
	}
}

func TestAnalyzeRateLimitedNoInsert(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:  repo,
		LLM:   &stubLLM{err: fmt.Errorf("%w: slow down", llm.ErrRateLimited)},
		Synth: research.RuleBased{},
	}

	_, err := svc.Analyze(context.Background(), sampleInput())
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected no inserts, got %d", repo.Len())
	}
}

func TestAnalyzeParseFailureNoInsert(t *testing.T) {
	cases := map[string]string{
		"no JSON":       "I can't help with that.",
		"invalid shape": `{"reality_check": {"summary": ""}}`,
		"bad score":     strings.Replace(validVerdictJSON, `"score": 5`, `"score": 15`, 1),
	}
	for name, content := range cases {
		repo := NewMemoryRepo()
		svc := &Service{Repo: repo, LLM: &stubLLM{content: content}, Synth: research.RuleBased{}}

		_, err := svc.Analyze(context.Background(), sampleInput())
		if !errors.Is(err, ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", name, err)
		}
		if repo.Len() != 0 {
			t.Fatalf("%s: expected no inserts, got %d", name, repo.Len())
		}
	}
}

func TestAnalyzePersistFailure(t *testing.T) {
	svc := &Service{Repo: failingRepo{}, LLM: &stubLLM{content: validVerdictJSON}, Synth: research.RuleBased{}}

	_, err := svc.Analyze(context.Background(), sampleInput())
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
}

func TestAnalyzeRequiresLLM(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Analyze(context.Background(), sampleInput()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestAnalyzeOmitsMarketResearchWhenEmpty(t *testing.T) {
	content := strings.Replace(validVerdictJSON, `,
  "market_analysis": "Several funded incumbents with strong traction."`, "", 1)
	svc := &Service{Repo: NewMemoryRepo(), LLM: &stubLLM{content: content}, Synth: research.RuleBased{}}

	report, err := svc.Analyze(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Output.MarketResearch != nil {
		t.Fatalf("expected no market research block, got %+v", report.Output.MarketResearch)
	}
}
