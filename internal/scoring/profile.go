package scoring

import (
	"github.com/afh/afh-platform/internal/models"
)

// Weights are the fixed sub-score weights for one catalog kind. They sum to 1.
type Weights struct {
	Channel     float64
	Market      float64
	Feasibility float64
	Strategic   float64
}

// Profile parameterizes the scorer per catalog kind: the weights, the
// kind-specific market and feasibility sub-scores, and how many matches a
// ranking returns.
type Profile struct {
	Kind    string
	Weights Weights
	TopN    int

	market      func(opp models.Opportunity, item models.CatalogItem) float64
	feasibility func(opp models.Opportunity, rc models.RequestContext, item models.CatalogItem) float64
}

// ProductProfile scores product catalog items.
func ProductProfile() Profile {
	return Profile{
		Kind:        models.KindProduct,
		Weights:     Weights{Channel: 0.35, Market: 0.25, Feasibility: 0.20, Strategic: 0.20},
		TopN:        5,
		market:      productMarketScore,
		feasibility: productFeasibility,
	}
}

// PlaybookProfile scores playbook catalog items.
func PlaybookProfile() Profile {
	return Profile{
		Kind:        models.KindPlaybook,
		Weights:     Weights{Channel: 0.30, Market: 0.25, Feasibility: 0.20, Strategic: 0.25},
		TopN:        4,
		market:      playbookMarketScore,
		feasibility: playbookFeasibility,
	}
}

// productMarketScore derives market attractiveness from the opportunity's
// priority and estimated revenue: 0.5 base, priority bonus, revenue bonus.
func productMarketScore(opp models.Opportunity, _ models.CatalogItem) float64 {
	score := 0.5

	switch opp.Priority {
	case "high":
		score += 0.3
	case "medium":
		score += 0.2
	case "low":
		score += 0.1
	}

	revenue := ParseRevenueMillions(opp.EstimatedRevenue)
	if revenue > 5 {
		score += 0.2
	} else if revenue > 2 {
		score += 0.1
	}

	return clamp01(score)
}

// playbookMarketScore uses the playbook's historical success rate as its
// market/track-record sub-score.
func playbookMarketScore(_ models.Opportunity, item models.CatalogItem) float64 {
	return clamp01(item.SuccessRate)
}

// productFeasibility starts from the complexity table and rewards timelines
// long enough for the item's complexity tier.
func productFeasibility(opp models.Opportunity, _ models.RequestContext, item models.CatalogItem) float64 {
	score := complexityScore(item.ImplementationComplexity)

	months := ParseTimelineMonths(opp.Timeline)
	switch item.ImplementationComplexity {
	case "High":
		if months >= 12 {
			score += 0.2
		}
	case "Medium":
		if months >= 6 {
			score += 0.1
		}
	case "Low":
		if months >= 3 {
			score += 0.1
		}
	}

	return clamp01(score)
}

// playbookFeasibility blends budget and timeline overlap with the request
// context onto a 0.5 base. The context's budget/timeline take precedence;
// the opportunity's own fields are the fallback.
func playbookFeasibility(opp models.Opportunity, rc models.RequestContext, item models.CatalogItem) float64 {
	score := 0.5

	budgetText := rc.Budget
	if budgetText == "" {
		budgetText = opp.EstimatedRevenue
	}
	budget := ParseInvestmentMin(budgetText)
	required := ParseInvestmentMin(item.InvestmentRange)
	if budget > 0 && required > 0 {
		if budget >= required {
			score += 0.3
		} else if budget >= required/2 {
			score += 0.15
		}
	}

	timelineText := rc.Timeline
	if timelineText == "" {
		timelineText = opp.Timeline
	}
	months := ParseTimelineMonths(timelineText)
	durationMonths := (item.DurationWeeks + 3) / 4
	if months > 0 && durationMonths > 0 {
		if months >= durationMonths {
			score += 0.2
		} else if float64(months) >= 0.75*float64(durationMonths) {
			score += 0.1
		}
	}

	return clamp01(score)
}
