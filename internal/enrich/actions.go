package enrich

import (
	"sort"

	"github.com/afh/afh-platform/internal/models"
)

var priorityRank = map[string]int{
	"Critical": 4,
	"High":     3,
	"Medium":   2,
	"Low":      1,
}

var impactRank = map[string]int{
	"High":   3,
	"Medium": 2,
	"Low":    1,
}

// NextBestActions produces the prioritized action plan for a playbook match:
// two immediate actions (three when the opportunity is high priority), three
// short-term and two long-term, sorted by priority rank plus impact rank,
// stable within equal ranks.
func NextBestActions(opp models.Opportunity, item models.CatalogItem) []models.Action {
	actions := []models.Action{
		{
			Horizon:      models.HorizonImmediate,
			Title:        "Align executive sponsors on partnership objectives",
			Priority:     "Critical",
			Effort:       "Low",
			Impact:       "High",
			Dependencies: nil,
		},
		{
			Horizon:      models.HorizonImmediate,
			Title:        "Stand up the joint working team and weekly cadence",
			Priority:     "High",
			Effort:       "Medium",
			Impact:       "High",
			Dependencies: []string{"Executive alignment"},
		},
	}

	if opp.Priority == "high" {
		actions = append(actions, models.Action{
			Horizon:      models.HorizonImmediate,
			Title:        "Fast-track commercial and legal review",
			Priority:     "Critical",
			Effort:       "Medium",
			Impact:       "High",
			Dependencies: []string{"Executive alignment"},
		})
	}

	actions = append(actions,
		models.Action{
			Horizon:      models.HorizonShortTerm,
			Title:        "Complete the " + item.Name + " readiness assessment",
			Priority:     "High",
			Effort:       "Medium",
			Impact:       "Medium",
			Dependencies: []string{"Joint working team"},
		},
		models.Action{
			Horizon:      models.HorizonShortTerm,
			Title:        "Define pilot success metrics and measurement plan",
			Priority:     "High",
			Effort:       "Low",
			Impact:       "High",
			Dependencies: nil,
		},
		models.Action{
			Horizon:      models.HorizonShortTerm,
			Title:        "Build the channel activation calendar",
			Priority:     "Medium",
			Effort:       "Medium",
			Impact:       "Medium",
			Dependencies: []string{"Success metrics"},
		},
		models.Action{
			Horizon:      models.HorizonLongTerm,
			Title:        "Negotiate multi-year expansion terms",
			Priority:     "Medium",
			Effort:       "High",
			Impact:       "High",
			Dependencies: []string{"Pilot results"},
		},
		models.Action{
			Horizon:      models.HorizonLongTerm,
			Title:        "Institutionalize quarterly business reviews",
			Priority:     "Low",
			Effort:       "Low",
			Impact:       "Medium",
			Dependencies: []string{"Pilot results"},
		},
	)

	sort.SliceStable(actions, func(i, j int) bool {
		ri := priorityRank[actions[i].Priority] + impactRank[actions[i].Impact]
		rj := priorityRank[actions[j].Priority] + impactRank[actions[j].Impact]
		return ri > rj
	})

	return actions
}
