package scoring

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/afh/afh-platform/internal/ai"
	"github.com/afh/afh-platform/internal/metrics"
	"github.com/afh/afh-platform/internal/models"
)

const (
	// strategicDefault is substituted whenever the external strategic-fit
	// assessment fails or returns something unparseable.
	strategicDefault = 0.6

	// ViabilityThreshold is the minimum overall score for a match to be kept.
	ViabilityThreshold = 0.3

	strategicTimeout = 10 * time.Second
)

// Scorer computes weighted composite scores for one catalog kind. It never
// returns an error: every internal failure degrades a sub-score to its
// documented default.
type Scorer struct {
	profile Profile
	ai      ai.Completer
	jitter  func() float64
}

// NewScorer builds a scorer. jitter feeds the confidence calculation; pass
// nil for the default uniform [0, 0.1) source, or a fixed function in tests.
func NewScorer(profile Profile, completer ai.Completer, jitter func() float64) *Scorer {
	if jitter == nil {
		jitter = func() float64 { return rand.Float64() * 0.1 }
	}
	return &Scorer{
		profile: profile,
		ai:      completer,
		jitter:  jitter,
	}
}

// Score evaluates one opportunity against one catalog item.
func (s *Scorer) Score(ctx context.Context, opp models.Opportunity, rc models.RequestContext, item models.CatalogItem) models.ScoreResult {
	channel := channelAffinity(opp.Channel, item)
	market := clamp01(s.profile.market(opp, item))
	feasibility := clamp01(s.profile.feasibility(opp, rc, item))
	strategic := s.strategicFit(ctx, opp, item)

	w := s.profile.Weights
	overall := channel*w.Channel + market*w.Market + feasibility*w.Feasibility + strategic*w.Strategic
	overall = round2(clamp01(overall))

	confidence := overall + s.jitter()
	if confidence > 0.95 {
		confidence = 0.95
	}
	confidence = clamp01(confidence)

	breakdown := map[string]float64{
		"channel":     round2(channel),
		"market":      round2(market),
		"feasibility": round2(feasibility),
		"strategic":   round2(strategic),
	}

	return models.ScoreResult{
		Overall:    overall,
		Confidence: round2(confidence),
		Breakdown:  breakdown,
		Reasoning:  buildReasoning(breakdown),
	}
}

var floatRegex = regexp.MustCompile(`-?\d*\.?\d+`)

// strategicFit asks the LLM for a single 0.0-1.0 fit score. Any failure —
// transport, quota, or an unparseable reply — yields strategicDefault.
func (s *Scorer) strategicFit(ctx context.Context, opp models.Opportunity, item models.CatalogItem) float64 {
	prompt := fmt.Sprintf(`You are a partnership strategist for away-from-home food service.

OPPORTUNITY: %s
CHANNEL: %s
DESCRIPTION: %s

CANDIDATE: %s
CATEGORY: %s
CAPABILITIES: %s
DIFFERENTIATORS: %s

Rate the strategic fit between the opportunity and the candidate.
Respond with just a number between 0.0 and 1.0.`,
		opp.Title, opp.Channel, opp.Description,
		item.Name, item.Category,
		strings.Join(item.Capabilities, ", "),
		strings.Join(item.Differentiators, ", "))

	callCtx, cancel := context.WithTimeout(ctx, strategicTimeout)
	defer cancel()

	resp, err := s.ai.Complete(callCtx, prompt, ai.Options{MaxTokens: 16, Temperature: 0.2})
	if err != nil {
		metrics.LLMFailures.Inc()
		return strategicDefault
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(resp), 64)
	if err != nil {
		// Models sometimes wrap the number in prose; take the first float.
		m := floatRegex.FindString(resp)
		if m == "" {
			metrics.LLMFailures.Inc()
			return strategicDefault
		}
		val, err = strconv.ParseFloat(m, 64)
		if err != nil {
			metrics.LLMFailures.Inc()
			return strategicDefault
		}
	}

	return clamp01(val)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
