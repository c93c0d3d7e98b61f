package scoring

import (
	"context"
	"sort"

	"github.com/afh/afh-platform/internal/models"
)

// Ranker scores every catalog item against an opportunity and returns the
// viable matches, best first.
type Ranker struct {
	scorer *Scorer
}

func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank evaluates all items, drops those below the viability threshold, sorts
// descending by overall score (stable, catalog order breaks ties) and keeps
// the profile's top-N. An empty or non-viable catalog yields an empty match
// list with a zeroed summary; it is not an error.
func (r *Ranker) Rank(ctx context.Context, opp models.Opportunity, rc models.RequestContext, items []models.CatalogItem) models.Ranking {
	matches := make([]models.Match, 0, len(items))
	for _, item := range items {
		score := r.scorer.Score(ctx, opp, rc, item)
		if score.Overall < ViabilityThreshold {
			continue
		}
		matches = append(matches, models.Match{Item: item, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Overall > matches[j].Score.Overall
	})

	summary := models.Summary{TotalMatches: len(matches)}
	if len(matches) > 0 {
		summary.TopScore = matches[0].Score.Overall
		summary.TopMatch = matches[0].Item.Name
		summary.TopConfidence = matches[0].Score.Confidence
	}

	if topN := r.scorer.profile.TopN; topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}

	return models.Ranking{Matches: matches, Summary: summary}
}
