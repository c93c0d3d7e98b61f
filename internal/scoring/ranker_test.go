package scoring

import (
	"context"
	"fmt"
	"testing"

	"github.com/afh/afh-platform/internal/models"
)

// playbookItems builds items whose overall score depends only on success
// rate: no channel match, strategic forced to 0 by the stub, no context
// bonuses. overall = successRate*0.25 + 0.5*0.20.
func playbookItems(successRates ...float64) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(successRates))
	for i, sr := range successRates {
		items = append(items, models.CatalogItem{
			ID:          fmt.Sprintf("pb-%d", i),
			Name:        fmt.Sprintf("Playbook %d", i),
			Channels:    []string{"Unlisted"},
			SuccessRate: sr,
		})
	}
	return items
}

func TestRankFiltersAndSorts(t *testing.T) {
	scorer := NewScorer(PlaybookProfile(), stubCompleter{reply: "0.0"}, zeroJitter)
	ranker := NewRanker(scorer)

	// overall: 0.35, 0.2, 0.33, 0.3
	items := playbookItems(1.0, 0.4, 0.9, 0.8)
	ranking := ranker.Rank(context.Background(), models.Opportunity{Channel: "Unknown"}, models.RequestContext{}, items)

	if ranking.Summary.TotalMatches != 3 {
		t.Fatalf("total matches = %d, want 3", ranking.Summary.TotalMatches)
	}
	if len(ranking.Matches) != 3 {
		t.Fatalf("returned matches = %d, want 3", len(ranking.Matches))
	}

	for i := 1; i < len(ranking.Matches); i++ {
		if ranking.Matches[i].Score.Overall > ranking.Matches[i-1].Score.Overall {
			t.Errorf("matches not sorted descending at index %d", i)
		}
	}
	for _, m := range ranking.Matches {
		if m.Score.Overall < ViabilityThreshold {
			t.Errorf("match %s below viability threshold: %v", m.Item.ID, m.Score.Overall)
		}
	}

	if ranking.Summary.TopMatch != "Playbook 0" {
		t.Errorf("top match = %q, want Playbook 0", ranking.Summary.TopMatch)
	}
	if ranking.Summary.TopScore != ranking.Matches[0].Score.Overall {
		t.Errorf("top score = %v, want %v", ranking.Summary.TopScore, ranking.Matches[0].Score.Overall)
	}
}

func TestRankTopNSlice(t *testing.T) {
	scorer := NewScorer(PlaybookProfile(), stubCompleter{reply: "0.0"}, zeroJitter)
	ranker := NewRanker(scorer)

	// All six viable; playbook profile keeps 4.
	items := playbookItems(1.0, 0.96, 0.92, 0.88, 0.84, 0.8)
	ranking := ranker.Rank(context.Background(), models.Opportunity{}, models.RequestContext{}, items)

	if ranking.Summary.TotalMatches != 6 {
		t.Errorf("total matches = %d, want 6", ranking.Summary.TotalMatches)
	}
	if len(ranking.Matches) != 4 {
		t.Errorf("returned matches = %d, want top 4", len(ranking.Matches))
	}
}

func TestRankStableOnTies(t *testing.T) {
	scorer := NewScorer(PlaybookProfile(), stubCompleter{reply: "0.0"}, zeroJitter)
	ranker := NewRanker(scorer)

	items := playbookItems(0.9, 0.9, 0.9)
	ranking := ranker.Rank(context.Background(), models.Opportunity{}, models.RequestContext{}, items)

	for i, m := range ranking.Matches {
		if m.Item.ID != fmt.Sprintf("pb-%d", i) {
			t.Errorf("tie order not stable: position %d holds %s", i, m.Item.ID)
		}
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	scorer := NewScorer(ProductProfile(), stubCompleter{reply: "0.5"}, zeroJitter)
	ranker := NewRanker(scorer)

	ranking := ranker.Rank(context.Background(), models.Opportunity{Channel: "QSR"}, models.RequestContext{}, nil)

	if len(ranking.Matches) != 0 {
		t.Errorf("matches = %d, want 0", len(ranking.Matches))
	}
	if ranking.Summary.TotalMatches != 0 || ranking.Summary.TopScore != 0 || ranking.Summary.TopMatch != "" {
		t.Errorf("summary not zeroed: %+v", ranking.Summary)
	}
}
