package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/afh/afh-platform/internal/ai"
	"github.com/afh/afh-platform/internal/catalog"
	"github.com/afh/afh-platform/internal/models"
	"github.com/afh/afh-platform/internal/scoring"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	title := flag.String("title", "", "opportunity title")
	channel := flag.String("channel", "QSR", "opportunity channel")
	description := flag.String("description", "", "opportunity description")
	priority := flag.String("priority", "medium", "priority: high, medium, low")
	revenue := flag.String("revenue", "", "estimated revenue, e.g. $3.2M")
	timeline := flag.String("timeline", "", "timeline, e.g. 12 months")
	kind := flag.String("kind", "product", "catalog to score against: product or playbook")
	flag.Parse()

	opp := models.Opportunity{
		ID:               uuid.New(),
		Title:            *title,
		Channel:          *channel,
		Description:      *description,
		Priority:         *priority,
		EstimatedRevenue: *revenue,
		Timeline:         *timeline,
	}

	var (
		cat     *catalog.Catalog
		profile scoring.Profile
		err     error
	)
	switch *kind {
	case "playbook":
		cat, err = catalog.LoadPlaybooks()
		profile = scoring.PlaybookProfile()
	default:
		cat, err = catalog.LoadProducts()
		profile = scoring.ProductProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	scorer := scoring.NewScorer(profile, ai.FromEnv(), nil)
	ranking := scoring.NewRanker(scorer).Rank(context.Background(), opp, models.RequestContext{}, cat.Items())

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Rank", "Name", "Score", "Confidence", "Reasoning"})

	for i, m := range ranking.Matches {
		t.AppendRow(table.Row{i + 1, m.Item.Name, m.Score.Overall, m.Score.Confidence, m.Score.Reasoning})
	}
	t.Render()

	fmt.Printf("\n%d viable matches; top: %s (%.2f)\n",
		ranking.Summary.TotalMatches, ranking.Summary.TopMatch, ranking.Summary.TopScore)
}
