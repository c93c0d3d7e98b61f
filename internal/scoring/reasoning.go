package scoring

import (
	"strings"
)

// buildReasoning turns a sub-score breakdown into a short justification
// string using fixed threshold rules joined with "; ".
func buildReasoning(breakdown map[string]float64) string {
	var notes []string

	if c := breakdown["channel"]; c >= 0.8 {
		notes = append(notes, "Strong channel alignment with the target channel")
	} else if c >= 0.5 {
		notes = append(notes, "Adjacent channel experience transfers to this opportunity")
	}

	if breakdown["market"] >= 0.7 {
		notes = append(notes, "Favorable market priority and revenue potential")
	}

	if f := breakdown["feasibility"]; f >= 0.7 {
		notes = append(notes, "Timeline comfortably supports implementation")
	} else if f < 0.5 {
		notes = append(notes, "Implementation complexity may strain the proposed timeline")
	}

	if breakdown["strategic"] >= 0.7 {
		notes = append(notes, "Assessed as a strong strategic fit")
	}

	if len(notes) == 0 {
		return "Moderate fit across evaluation criteria"
	}
	return strings.Join(notes, "; ")
}
