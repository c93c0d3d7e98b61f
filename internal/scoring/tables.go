package scoring

import (
	"github.com/afh/afh-platform/internal/models"
)

type channelPair struct {
	from string
	to   string
}

// channelSimilarity maps (opportunity channel, catalog channel) pairs to an
// affinity score. Entries were authored per direction and are intentionally
// not symmetric; pairs absent from the table score 0.
var channelSimilarity = map[channelPair]float64{
	{"QSR", "Fast Casual"}:           0.8,
	{"QSR", "Coffee"}:                0.6,
	{"QSR", "Casual Dining"}:         0.4,
	{"Fast Casual", "QSR"}:           0.7,
	{"Fast Casual", "Coffee"}:        0.5,
	{"Fast Casual", "Casual Dining"}: 0.6,
	{"Coffee", "QSR"}:                0.5,
	{"Coffee", "Fast Casual"}:        0.5,
	{"Coffee", "Casual Dining"}:      0.3,
	{"Casual Dining", "QSR"}:         0.4,
	{"Casual Dining", "Fast Casual"}: 0.6,
	{"Casual Dining", "Coffee"}:      0.3,
}

// complexityScores maps implementation complexity to a base feasibility score.
var complexityScores = map[string]float64{
	"Low":    0.9,
	"Medium": 0.7,
	"High":   0.5,
}

const defaultComplexityScore = 0.5

// channelAffinity scores how well an opportunity's channel matches a catalog
// item. An exact channel membership is always 1.0; otherwise the best
// similarity-table entry across the item's channels wins.
func channelAffinity(oppChannel string, item models.CatalogItem) float64 {
	if oppChannel == "" {
		return 0
	}
	if item.HasChannel(oppChannel) {
		return 1.0
	}

	best := 0.0
	for _, ch := range item.Channels {
		if v, ok := channelSimilarity[channelPair{oppChannel, ch}]; ok && v > best {
			best = v
		}
	}
	return best
}

func complexityScore(complexity string) float64 {
	if v, ok := complexityScores[complexity]; ok {
		return v
	}
	return defaultComplexityScore
}
