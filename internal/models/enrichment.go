package models

// PhaseEstimate is a phase with its week bounds scaled to the opportunity.
type PhaseEstimate struct {
	Name     string `json:"name"`
	MinWeeks int    `json:"minWeeks"`
	MaxWeeks int    `json:"maxWeeks"`
}

// Timeline is the implementation timeline adjusted for priority and scale.
type Timeline struct {
	TotalWeeks int             `json:"totalWeeks"`
	Phases     []PhaseEstimate `json:"phases"`
}

// Resources is a rough budget and staffing estimate for a match.
type Resources struct {
	BudgetMin       float64  `json:"budgetMin"`
	BudgetMax       float64  `json:"budgetMax"`
	Currency        string   `json:"currency"`
	Roles           []string `json:"roles"`
	Technologies    []string `json:"technologies"`
	ExternalSupport []string `json:"externalSupport"`
}

// Action horizons for the next-best-actions plan.
const (
	HorizonImmediate = "immediate"
	HorizonShortTerm = "short_term"
	HorizonLongTerm  = "long_term"
)

// Action is one recommended step in a playbook implementation plan.
type Action struct {
	Horizon      string   `json:"horizon"`
	Title        string   `json:"title"`
	Priority     string   `json:"priority"` // Critical, High, Medium, Low
	Effort       string   `json:"effort"`   // High, Medium, Low
	Impact       string   `json:"impact"`   // High, Medium, Low
	Dependencies []string `json:"dependencies"`
}

// Enrichment bundles the derived artifacts attached to a top-ranked match.
type Enrichment struct {
	Timeline  *Timeline  `json:"timeline,omitempty"`
	Resources *Resources `json:"resources,omitempty"`
	Actions   []Action   `json:"implementationPlan,omitempty"`
}
