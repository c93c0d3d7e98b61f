package models

// ScoreResult is the outcome of scoring one opportunity against one catalog
// item. Overall and Confidence are always within [0,1]; scoring failures
// degrade individual sub-scores rather than producing an error.
type ScoreResult struct {
	Overall    float64            `json:"overall"`
	Confidence float64            `json:"confidence"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Reasoning  string             `json:"reasoning"`
}

// Match pairs a catalog item that survived the viability filter with its
// score and any enrichment artifacts computed for it.
type Match struct {
	Item       CatalogItem `json:"item"`
	Score      ScoreResult `json:"score"`
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// Summary describes a full ranking run.
type Summary struct {
	TotalMatches  int     `json:"totalMatches"`
	TopScore      float64 `json:"topScore"`
	TopMatch      string  `json:"topMatch"`
	TopConfidence float64 `json:"topConfidence"`
}

// Ranking is the result of scoring an opportunity against a whole catalog.
type Ranking struct {
	Matches []Match `json:"matches"`
	Summary Summary `json:"summary"`
}
