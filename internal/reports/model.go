package reports

import "time"

// AnalysisInput is the submitted idea form. Immutable once submitted; echoed
// verbatim into the stored report.
type AnalysisInput struct {
	ProductIdea  string `json:"productIdea" binding:"required,max=1000"`
	TargetUser   string `json:"targetUser" binding:"required"`
	Problem      string `json:"problem" binding:"required"`
	WhyItWorks   string `json:"whyItWorks" binding:"required"`
	Monetization string `json:"monetization"`
	Language     string `json:"language" binding:"omitempty,oneof=en uk"`
}

// Report is the persisted unit: one row per analysis, created exactly once,
// never updated.
type Report struct {
	ID           string         `json:"id"`
	Language     string         `json:"language"`
	ProductIdea  string         `json:"productIdea"`
	TargetUser   string         `json:"targetUser"`
	Problem      string         `json:"problem"`
	WhyItWorks   string         `json:"whyItWorks"`
	Monetization string         `json:"monetization,omitempty"`
	Output       AnalysisOutput `json:"output"`
	CreatedAt    time.Time      `json:"createdAt"`
}
