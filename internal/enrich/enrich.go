package enrich

import (
	"math"

	"github.com/afh/afh-platform/internal/models"
	"github.com/afh/afh-platform/internal/scoring"
)

// durationMultiplier scales a nominal duration for an opportunity: high
// priority compresses, low priority stretches, and large revenue (> $5M)
// adds scope on top of the priority-scaled value.
func durationMultiplier(opp models.Opportunity) float64 {
	m := 1.0
	switch opp.Priority {
	case "high":
		m = 0.85
	case "low":
		m = 1.15
	}
	if scoring.ParseRevenueMillions(opp.EstimatedRevenue) > 5 {
		m *= 1.1
	}
	return m
}

// Timeline scales the item's nominal implementation timeline to the
// opportunity. Phase bounds are scaled by the same multiplier and each bound
// is rounded independently.
func Timeline(opp models.Opportunity, item models.CatalogItem) *models.Timeline {
	m := durationMultiplier(opp)

	phases := make([]models.PhaseEstimate, 0, len(item.Phases))
	for _, p := range item.Phases {
		phases = append(phases, models.PhaseEstimate{
			Name:     p.Name,
			MinWeeks: int(math.Round(float64(p.MinWeeks) * m)),
			MaxWeeks: int(math.Round(float64(p.MaxWeeks) * m)),
		})
	}

	return &models.Timeline{
		TotalWeeks: int(math.Round(float64(item.DurationWeeks) * m)),
		Phases:     phases,
	}
}

// Resource templates are deliberately item-independent; the dashboard treats
// them as a starting checklist, not a tailored plan.
var (
	templateRoles = []string{
		"Partnership lead",
		"Solution architect",
		"Field operations manager",
		"Data analyst",
	}
	templateTechnologies = []string{
		"Partner data exchange",
		"Analytics dashboard",
		"Campaign tracking",
	}
	templateSupport = []string{
		"Implementation consultancy",
		"Channel marketing agency",
	}
)

// Resources derives a budget band from the item's minimum investment and
// attaches the fixed staffing/technology templates.
func Resources(item models.CatalogItem) *models.Resources {
	min := scoring.ParseInvestmentMin(item.InvestmentRange)

	return &models.Resources{
		BudgetMin:       math.Round(min * 0.8),
		BudgetMax:       math.Round(min * 1.2),
		Currency:        "USD",
		Roles:           templateRoles,
		Technologies:    templateTechnologies,
		ExternalSupport: templateSupport,
	}
}

// ForProduct bundles the enrichment attached to a product match.
func ForProduct(opp models.Opportunity, item models.CatalogItem) *models.Enrichment {
	return &models.Enrichment{
		Timeline:  Timeline(opp, item),
		Resources: Resources(item),
	}
}

// ForPlaybook bundles the enrichment attached to a playbook match, including
// the prioritized action plan.
func ForPlaybook(opp models.Opportunity, item models.CatalogItem) *models.Enrichment {
	return &models.Enrichment{
		Timeline:  Timeline(opp, item),
		Resources: Resources(item),
		Actions:   NextBestActions(opp, item),
	}
}
