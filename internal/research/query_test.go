package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ideacheck-backend/internal/llm"
)

type fakeLLM struct {
	content string
	err     error
	calls   int
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message) (string, error) {
	f.calls++
	return f.content, f.err
}

func TestRuleBasedSynthesize(t *testing.T) {
	q := RuleBased{}.Synthesize(context.Background(),
		"AI-powered task management board",
		"Remote teams lose track of tasks across channels",
		"Engineering managers at distributed companies",
	)

	if !strings.HasSuffix(q.SearchQuery, " software alternatives competitors") {
		t.Fatalf("expected domain suffix, got %q", q.SearchQuery)
	}
	if q.TopicQuery == "" {
		t.Fatalf("expected topic query from idea keywords")
	}
	if len(q.Keywords) == 0 {
		t.Fatalf("expected combined keywords")
	}
	seen := map[string]bool{}
	for _, kw := range q.Keywords {
		if seen[kw] {
			t.Fatalf("duplicate keyword %q in %v", kw, q.Keywords)
		}
		seen[kw] = true
	}
}

func TestRuleBasedSynthesizeEmptyInput(t *testing.T) {
	q := RuleBased{}.Synthesize(context.Background(), "", "", "")
	if q.SearchQuery != "" || q.TopicQuery != "" || len(q.Keywords) != 0 {
		t.Fatalf("expected zero queries, got %+v", q)
	}
}

func TestLLMSynthesizeParsesWrappedJSON(t *testing.T) {
	client := &fakeLLM{content: "Sure, here you go:\n```json\n{\"firecrawlQuery\":\"task management alternatives\",\"productHuntQuery\":\"task management\",\"keywords\":[\"task\",\"team\"]}\n```"}
	s := &LLMSynthesizer{Client: client}

	q := s.Synthesize(context.Background(), "idea", "problem", "target")
	if q.SearchQuery != "task management alternatives" {
		t.Fatalf("unexpected search query %q", q.SearchQuery)
	}
	if q.TopicQuery != "task management" {
		t.Fatalf("unexpected topic query %q", q.TopicQuery)
	}
	if len(q.Keywords) != 2 {
		t.Fatalf("unexpected keywords %v", q.Keywords)
	}
}

func TestLLMSynthesizeDegradesToEmpty(t *testing.T) {
	cases := map[string]*LLMSynthesizer{
		"nil client":   {Client: nil},
		"chat failure": {Client: &fakeLLM{err: errors.New("boom")}},
		"no JSON":      {Client: &fakeLLM{content: "I cannot help with that"}},
	}
	for name, s := range cases {
		q := s.Synthesize(context.Background(), "idea", "problem", "target")
		if q.SearchQuery != "" || q.TopicQuery != "" || len(q.Keywords) != 0 {
			t.Fatalf("%s: expected empty queries, got %+v", name, q)
		}
	}
}
