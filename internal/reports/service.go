package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ideacheck-backend/internal/i18n"
	"ideacheck-backend/internal/llm"
	"ideacheck-backend/internal/research"
	"ideacheck-backend/internal/shared/metrics"
	"ideacheck-backend/internal/shared/telemetry"
	"ideacheck-backend/internal/shared/util"
)

// CompetitorSearcher yields competitor insights for a synthesized search query.
type CompetitorSearcher interface {
	Search(ctx context.Context, query string) []research.CompetitorInsight
}

// SimilarSearcher yields launched products relevant to a topic query.
type SimilarSearcher interface {
	Search(ctx context.Context, topicQuery string, keywords []string) []research.SimilarProduct
}

// Service orchestrates the analysis pipeline: query synthesis, concurrent
// research fan-out, prompt assembly, the LLM call, response parsing and the
// report insert. Adapter failures degrade to empty research data; everything
// from the LLM call onward is fatal for the request.
type Service struct {
	Repo        Repo
	LLM         llm.Client
	Synth       research.Synthesizer
	Competitors CompetitorSearcher
	Similar     SimilarSearcher
}

// Analyze runs the full pipeline for one submitted idea and returns the stored
// report. No step retries; the request either fully succeeds or fails once.
func (s *Service) Analyze(ctx context.Context, in AnalysisInput) (Report, error) {
	if s.LLM == nil {
		return Report{}, ErrNotConfigured
	}

	metrics.IncAnalysisStarted()
	start := time.Now()
	in.Language = i18n.Normalize(in.Language)

	var queries research.Queries
	if s.Synth != nil {
		queries = s.Synth.Synthesize(ctx, in.ProductIdea, in.Problem, in.TargetUser)
	}

	// Fan-out to both research adapters; both are awaited, neither can fail.
	var competitors []research.CompetitorInsight
	var similar []research.SimilarProduct
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.Competitors != nil {
			competitors = s.Competitors.Search(gctx, queries.SearchQuery)
		}
		return nil
	})
	g.Go(func() error {
		if s.Similar != nil {
			similar = s.Similar.Search(gctx, queries.TopicQuery, queries.Keywords)
		}
		return nil
	})
	_ = g.Wait()

	marketContext := buildMarketContext(competitors, similar)
	content, err := s.LLM.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt(in.Language, marketContext)},
		{Role: llm.RoleUser, Content: userPrompt(in)},
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return Report{}, err
	}

	output, err := parseOutput(content)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis parse failed", map[string]any{"error": err.Error()})
		return Report{}, err
	}

	attachMarketResearch(&output, competitors, similar)

	report := Report{
		ID:           uuid.NewString(),
		Language:     in.Language,
		ProductIdea:  in.ProductIdea,
		TargetUser:   in.TargetUser,
		Problem:      in.Problem,
		WhyItWorks:   in.WhyItWorks,
		Monetization: in.Monetization,
		Output:       output,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("report insert failed", map[string]any{"error": err.Error()})
		return Report{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"report_id":        report.ID,
		"language":         report.Language,
		"competitors":      len(competitors),
		"similar_products": len(similar),
		"score":            output.ProductThinkingScore.Score,
		"worth_testing":    output.FinalVerdict.WorthTesting,
	})
	return report, nil
}

// Get returns a stored report by ID.
func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	return s.Repo.GetByID(ctx, id)
}

func parseOutput(content string) (AnalysisOutput, error) {
	raw, err := util.ExtractJSONObject(content)
	if err != nil {
		return AnalysisOutput{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var output AnalysisOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return AnalysisOutput{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := output.Validate(); err != nil {
		return AnalysisOutput{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return output, nil
}

func attachMarketResearch(output *AnalysisOutput, competitors []research.CompetitorInsight, similar []research.SimilarProduct) {
	marketAnalysis := strings.TrimSpace(output.MarketAnalysis)
	output.MarketAnalysis = ""

	if len(competitors) == 0 && len(similar) == 0 && marketAnalysis == "" {
		return
	}

	mr := &MarketResearch{
		Competitors:     competitors,
		SimilarProducts: similar,
	}
	if mr.Competitors == nil {
		mr.Competitors = []research.CompetitorInsight{}
	}
	if mr.SimilarProducts == nil {
		mr.SimilarProducts = []research.SimilarProduct{}
	}
	if marketAnalysis != "" {
		mr.MarketAnalysis = &marketAnalysis
	}
	output.MarketResearch = mr
}
