package scoring

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/afh/afh-platform/internal/ai"
	"github.com/afh/afh-platform/internal/models"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(_ context.Context, _ string, _ ai.Options) (string, error) {
	return s.reply, s.err
}

func zeroJitter() float64 { return 0 }

func TestScoreProductCoffeeOpportunity(t *testing.T) {
	opp := models.Opportunity{
		Title:            "Coffee chain expansion",
		Channel:          "Coffee",
		Priority:         "high",
		EstimatedRevenue: "$3.2M",
	}
	item := models.CatalogItem{
		Name:                     "Premium Espresso Partnership Program",
		Channels:                 []string{"QSR", "Fast Casual", "Coffee"},
		ImplementationComplexity: "Low",
		SuccessRate:              0.72,
	}

	scorer := NewScorer(ProductProfile(), stubCompleter{reply: "0.73"}, zeroJitter)
	result := scorer.Score(context.Background(), opp, models.RequestContext{}, item)

	if result.Breakdown["channel"] != 1.0 {
		t.Errorf("channel sub-score = %v, want 1.0", result.Breakdown["channel"])
	}
	// 0.5 base + 0.3 high priority + 0.1 revenue in (2,5]
	if result.Breakdown["market"] != 0.9 {
		t.Errorf("market sub-score = %v, want 0.9", result.Breakdown["market"])
	}
	if result.Breakdown["strategic"] != 0.73 {
		t.Errorf("strategic sub-score = %v, want 0.73", result.Breakdown["strategic"])
	}
	// 1.0*0.35 + 0.9*0.25 + 0.9*0.20 + 0.73*0.20 = 0.901 -> 0.90
	if result.Overall != 0.9 {
		t.Errorf("overall = %v, want 0.9", result.Overall)
	}
	if result.Confidence != result.Overall {
		t.Errorf("confidence with zero jitter = %v, want %v", result.Confidence, result.Overall)
	}
	if result.Reasoning == "" {
		t.Error("expected non-empty reasoning")
	}
}

func TestScoreStrategicDegradation(t *testing.T) {
	opp := models.Opportunity{Channel: "QSR", Priority: "medium"}
	item := models.CatalogItem{Channels: []string{"QSR"}, ImplementationComplexity: "Medium"}

	tests := []struct {
		name      string
		completer stubCompleter
		expected  float64
	}{
		{name: "call error", completer: stubCompleter{err: errors.New("connection refused")}, expected: 0.6},
		{name: "no number in reply", completer: stubCompleter{reply: "zero point five"}, expected: 0.6},
		{name: "number embedded in prose", completer: stubCompleter{reply: "I would rate this 0.8"}, expected: 0.8},
		{name: "clean reply", completer: stubCompleter{reply: "0.45"}, expected: 0.45},
		{name: "out of range clamps", completer: stubCompleter{reply: "1.5"}, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(ProductProfile(), tt.completer, zeroJitter)
			result := scorer.Score(context.Background(), opp, models.RequestContext{}, item)
			if result.Breakdown["strategic"] != tt.expected {
				t.Errorf("strategic = %v, want %v", result.Breakdown["strategic"], tt.expected)
			}
		})
	}
}

func TestScoreClampInvariant(t *testing.T) {
	opportunities := []models.Opportunity{
		{},
		{Channel: "Coffee", Priority: "high", EstimatedRevenue: "$100M", Timeline: "3 years"},
		{Channel: "Grocery", Priority: "low", EstimatedRevenue: "garbage", Timeline: "soon"},
		{Channel: "QSR", Priority: "nonsense"},
	}
	items := []models.CatalogItem{
		{},
		{Channels: []string{"Coffee"}, ImplementationComplexity: "Low", SuccessRate: 1.0},
		{Channels: []string{"QSR"}, ImplementationComplexity: "High", SuccessRate: 0.1},
	}
	completers := []stubCompleter{
		{reply: "1.0"},
		{reply: "-3"},
		{err: errors.New("boom")},
	}

	for _, profile := range []Profile{ProductProfile(), PlaybookProfile()} {
		for _, opp := range opportunities {
			for _, item := range items {
				for _, completer := range completers {
					scorer := NewScorer(profile, completer, nil)
					result := scorer.Score(context.Background(), opp, models.RequestContext{}, item)

					if result.Overall < 0 || result.Overall > 1 {
						t.Errorf("%s: overall %v out of [0,1]", profile.Kind, result.Overall)
					}
					if result.Confidence < 0 || result.Confidence > 1 {
						t.Errorf("%s: confidence %v out of [0,1]", profile.Kind, result.Confidence)
					}
				}
			}
		}
	}
}

func TestScoreConfidenceJitterCap(t *testing.T) {
	opp := models.Opportunity{Channel: "Coffee", Priority: "high", EstimatedRevenue: "$8M", Timeline: "12 months"}
	item := models.CatalogItem{Channels: []string{"Coffee"}, ImplementationComplexity: "Low", SuccessRate: 0.9}

	scorer := NewScorer(ProductProfile(), stubCompleter{reply: "1.0"}, func() float64 { return 0.09 })
	result := scorer.Score(context.Background(), opp, models.RequestContext{}, item)

	if result.Confidence > 0.95 {
		t.Errorf("confidence = %v, want <= 0.95", result.Confidence)
	}
}

func TestPlaybookMarketUsesSuccessRate(t *testing.T) {
	opp := models.Opportunity{Channel: "Coffee", Priority: "high", EstimatedRevenue: "$9M"}
	item := models.CatalogItem{Channels: []string{"Coffee"}, SuccessRate: 0.58}

	scorer := NewScorer(PlaybookProfile(), stubCompleter{reply: "0.5"}, zeroJitter)
	result := scorer.Score(context.Background(), opp, models.RequestContext{}, item)

	if result.Breakdown["market"] != 0.58 {
		t.Errorf("playbook market = %v, want success rate 0.58", result.Breakdown["market"])
	}
}

func TestPlaybookFeasibilityContextBonuses(t *testing.T) {
	item := models.CatalogItem{
		Channels:        []string{"Coffee"},
		InvestmentRange: "$200K - $600K",
		DurationWeeks:   16, // 4 months
	}

	tests := []struct {
		name     string
		rc       models.RequestContext
		expected float64
	}{
		{name: "no context stays at base", rc: models.RequestContext{}, expected: 0.5},
		{name: "full budget and timeline", rc: models.RequestContext{Budget: "$500K", Timeline: "6 months"}, expected: 1.0},
		{name: "partial budget only", rc: models.RequestContext{Budget: "$120K"}, expected: 0.65},
		{name: "tight timeline only", rc: models.RequestContext{Timeline: "3 months"}, expected: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := playbookFeasibility(models.Opportunity{}, tt.rc, item)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("playbookFeasibility = %v, want %v", got, tt.expected)
			}
		})
	}
}
