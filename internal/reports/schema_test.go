package reports

import "testing"

func TestLevelForScoreBands(t *testing.T) {
	cases := map[int]string{
		0:  LevelBeginner,
		2:  LevelBeginner,
		3:  LevelBeginner,
		4:  LevelIntermediate,
		5:  LevelIntermediate,
		6:  LevelIntermediate,
		7:  LevelStrong,
		9:  LevelStrong,
		10: LevelStrong,
	}
	for score, want := range cases {
		if got := LevelForScore(score); got != want {
			t.Errorf("LevelForScore(%d) = %q, want %q", score, got, want)
		}
	}
}

func validOutput() AnalysisOutput {
	return AnalysisOutput{
		RealityCheck: RealityCheck{
			Summary:            "Plausible but crowded market.",
			Assumptions:        []string{"a1", "a2", "a3"},
			Risks:              []string{"r1", "r2", "r3"},
			LikelyFailureFirst: "No distribution channel.",
		},
		ProductThinkingScore: ProductThinkingScore{
			Score:       5,
			Level:       LevelIntermediate,
			Explanation: []string{"e1"},
		},
		ImprovementPlan: ImprovementPlan{
			ImproveOneThing:       "narrow the niche",
			ValidateOneAssumption: "interview 10 users",
			RunOneExperiment:      "landing page test",
			OneThingNotToBuildYet: "mobile app",
		},
		FinalVerdict: FinalVerdict{WorthTesting: true, Reason: "cheap to validate"},
	}
}

func TestValidateAccepts(t *testing.T) {
	output := validOutput()
	if err := output.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateNormalizesLevel(t *testing.T) {
	output := validOutput()
	output.ProductThinkingScore.Score = 9
	output.ProductThinkingScore.Level = "Beginner"
	if err := output.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if output.ProductThinkingScore.Level != LevelStrong {
		t.Fatalf("expected level normalized to Strong, got %q", output.ProductThinkingScore.Level)
	}
}

func TestValidateRejectsOutOfRangeScore(t *testing.T) {
	for _, score := range []int{-1, 11, 100} {
		output := validOutput()
		output.ProductThinkingScore.Score = score
		if err := output.Validate(); err == nil {
			t.Fatalf("score %d: expected validation error", score)
		}
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	mutations := map[string]func(*AnalysisOutput){
		"empty summary":     func(o *AnalysisOutput) { o.RealityCheck.Summary = "" },
		"no assumptions":    func(o *AnalysisOutput) { o.RealityCheck.Assumptions = nil },
		"no risks":          func(o *AnalysisOutput) { o.RealityCheck.Risks = nil },
		"no verdict reason": func(o *AnalysisOutput) { o.FinalVerdict.Reason = "" },
	}
	for name, mutate := range mutations {
		output := validOutput()
		mutate(&output)
		if err := output.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
