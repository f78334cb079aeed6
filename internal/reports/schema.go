package reports

import (
	"fmt"

	"ideacheck-backend/internal/research"
)

// Product thinking levels, implied by score bands 0-3 / 4-6 / 7-10.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelStrong       = "Strong"
)

// AnalysisOutput is the model-authored verdict.
//
// The model may emit a top-level "market_analysis" field when market research
// was included in the prompt; it is moved under market_research before the
// output is stored.
type AnalysisOutput struct {
	RealityCheck         RealityCheck         `json:"reality_check"`
	ProductThinkingScore ProductThinkingScore `json:"product_thinking_score"`
	ImprovementPlan      ImprovementPlan      `json:"improvement_plan"`
	FinalVerdict         FinalVerdict         `json:"final_verdict"`
	MarketAnalysis       string               `json:"market_analysis,omitempty"`
	MarketResearch       *MarketResearch      `json:"market_research,omitempty"`
}

type RealityCheck struct {
	Summary            string   `json:"summary"`
	Assumptions        []string `json:"assumptions"`
	Risks              []string `json:"risks"`
	LikelyFailureFirst string   `json:"likely_failure_first"`
}

type ProductThinkingScore struct {
	Score       int      `json:"score"`
	Level       string   `json:"level"`
	Explanation []string `json:"explanation"`
}

type ImprovementPlan struct {
	ImproveOneThing       string `json:"improve_one_thing"`
	ValidateOneAssumption string `json:"validate_one_assumption"`
	RunOneExperiment      string `json:"run_one_experiment"`
	OneThingNotToBuildYet string `json:"one_thing_not_to_build_yet"`
}

type FinalVerdict struct {
	WorthTesting bool   `json:"worth_testing"`
	Reason       string `json:"reason"`
}

// MarketResearch carries the adapter results that informed the verdict.
// Attached only when at least one adapter returned data or the model supplied
// a market analysis.
type MarketResearch struct {
	Competitors     []research.CompetitorInsight `json:"competitors"`
	SimilarProducts []research.SimilarProduct    `json:"similar_products"`
	MarketAnalysis  *string                      `json:"market_analysis"`
}

// LevelForScore maps a score to its level band.
func LevelForScore(score int) string {
	switch {
	case score <= 3:
		return LevelBeginner
	case score <= 6:
		return LevelIntermediate
	default:
		return LevelStrong
	}
}

// Validate checks the parsed output against the report schema and normalizes
// the level to its score band. A report is never stored with invalid output.
func (o *AnalysisOutput) Validate() error {
	if o.RealityCheck.Summary == "" {
		return fmt.Errorf("reality_check.summary is empty")
	}
	if len(o.RealityCheck.Assumptions) == 0 {
		return fmt.Errorf("reality_check.assumptions is empty")
	}
	if len(o.RealityCheck.Risks) == 0 {
		return fmt.Errorf("reality_check.risks is empty")
	}
	if o.ProductThinkingScore.Score < 0 || o.ProductThinkingScore.Score > 10 {
		return fmt.Errorf("product_thinking_score.score %d out of range", o.ProductThinkingScore.Score)
	}
	if o.FinalVerdict.Reason == "" {
		return fmt.Errorf("final_verdict.reason is empty")
	}

	o.ProductThinkingScore.Level = LevelForScore(o.ProductThinkingScore.Score)
	return nil
}
