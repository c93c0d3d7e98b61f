package models

// ItemKind distinguishes the two catalog types.
const (
	KindProduct  = "product"
	KindPlaybook = "playbook"
)

// Phase is one step of a catalog item's nominal implementation plan.
type Phase struct {
	Name     string `yaml:"name" json:"name"`
	MinWeeks int    `yaml:"min_weeks" json:"minWeeks"`
	MaxWeeks int    `yaml:"max_weeks" json:"maxWeeks"`
}

// CatalogItem is a static product or playbook description used as a scoring
// target. Items are loaded once at startup and never mutated.
type CatalogItem struct {
	ID                       string   `yaml:"id" json:"id"`
	Name                     string   `yaml:"name" json:"name"`
	Kind                     string   `yaml:"-" json:"kind"`
	Category                 string   `yaml:"category" json:"category"`
	Channels                 []string `yaml:"channels" json:"channels"`
	Capabilities             []string `yaml:"capabilities" json:"capabilities"`
	Differentiators          []string `yaml:"differentiators" json:"differentiators"`
	Phases                   []Phase  `yaml:"phases" json:"phases"`
	SuccessFactors           []string `yaml:"success_factors" json:"successFactors"`
	RiskFactors              []string `yaml:"risk_factors" json:"riskFactors"`
	ImplementationComplexity string   `yaml:"implementation_complexity" json:"implementationComplexity"` // Low, Medium, High
	SuccessRate              float64  `yaml:"success_rate" json:"successRate"`
	InvestmentRange          string   `yaml:"investment_range" json:"investmentRange"`
	AverageDuration          string   `yaml:"average_duration" json:"averageDuration"`
	DurationWeeks            int      `yaml:"duration_weeks" json:"durationWeeks"`
}

// HasChannel reports whether the item serves the given channel exactly.
func (i CatalogItem) HasChannel(channel string) bool {
	for _, c := range i.Channels {
		if c == channel {
			return true
		}
	}
	return false
}
