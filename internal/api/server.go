package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/afh/afh-platform/internal/ai"
	"github.com/afh/afh-platform/internal/catalog"
	"github.com/afh/afh-platform/internal/enrich"
	"github.com/afh/afh-platform/internal/metrics"
	"github.com/afh/afh-platform/internal/models"
	"github.com/afh/afh-platform/internal/scoring"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Echo      *echo.Echo
	DB        *pgxpool.Pool
	AI        ai.Completer
	Products  *catalog.Catalog
	Playbooks *catalog.Catalog

	// Jitter overrides the scorer's confidence jitter source; nil keeps the
	// default random source. Tests set a fixed function here.
	Jitter func() float64
}

func NewServer(pool *pgxpool.Pool) (*Server, error) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow dashboard origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	products, err := catalog.LoadProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}
	playbooks, err := catalog.LoadPlaybooks()
	if err != nil {
		return nil, fmt.Errorf("failed to load playbook catalog: %w", err)
	}

	s := &Server{
		Echo:      e,
		DB:        pool,
		AI:        ai.FromEnv(),
		Products:  products,
		Playbooks: playbooks,
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	s.Echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.Echo.Group("/api/v1")
	api.POST("/matching", s.handleMatching)
	api.POST("/playbooks/recommend", s.handlePlaybookRecommend)
	api.POST("/playbooks/next-best-actions", s.handleNextBestActions)

	api.GET("/catalog/products", s.handleListProducts)
	api.GET("/catalog/playbooks", s.handleListPlaybooks)
	api.GET("/channels", s.handleListChannels)
	api.GET("/stats", s.handleGetStats)
}

type matchingRequest struct {
	Opportunity models.Opportunity `json:"opportunity"`
}

type playbookRequest struct {
	Opportunity models.Opportunity    `json:"opportunity"`
	Context     models.RequestContext `json:"context"`
}

type matchingResponse struct {
	Success bool           `json:"success"`
	Matches []models.Match `json:"matches"`
	Summary models.Summary `json:"summary"`
	Error   string         `json:"error,omitempty"`
}

type recommendResponse struct {
	Success         bool           `json:"success"`
	Recommendations []models.Match `json:"recommendations"`
	Summary         models.Summary `json:"summary"`
	Error           string         `json:"error,omitempty"`
}

type actionsResponse struct {
	Success bool            `json:"success"`
	Actions []models.Action `json:"actions"`
	Summary models.Summary  `json:"summary"`
	Error   string          `json:"error,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) rank(c echo.Context, profile scoring.Profile, opp models.Opportunity, rc models.RequestContext, items []models.CatalogItem) models.Ranking {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.WithLabelValues(profile.Kind).Observe(time.Since(start).Seconds())
	}()

	scorer := scoring.NewScorer(profile, s.AI, s.Jitter)
	return scoring.NewRanker(scorer).Rank(c.Request().Context(), opp, rc, items)
}

func (s *Server) handleMatching(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger().Errorf("matching analysis failed: %v", r)
			metrics.AnalysisRequests.WithLabelValues(models.KindProduct, "error").Inc()
			err = c.JSON(http.StatusInternalServerError, matchingResponse{
				Error: fmt.Sprintf("matching analysis failed: %v", r), Matches: []models.Match{},
			})
		}
	}()

	var req matchingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, matchingResponse{
			Error: "Invalid request body", Matches: []models.Match{},
		})
	}

	opp := req.Opportunity
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}

	ranking := s.rank(c, scoring.ProductProfile(), opp, models.RequestContext{}, s.Products.Items())
	for i := range ranking.Matches {
		ranking.Matches[i].Enrichment = enrich.ForProduct(opp, ranking.Matches[i].Item)
	}

	metrics.AnalysisRequests.WithLabelValues(models.KindProduct, "ok").Inc()
	return c.JSON(http.StatusOK, matchingResponse{
		Success: true,
		Matches: ranking.Matches,
		Summary: ranking.Summary,
	})
}

func (s *Server) handlePlaybookRecommend(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger().Errorf("playbook recommendation failed: %v", r)
			metrics.AnalysisRequests.WithLabelValues(models.KindPlaybook, "error").Inc()
			err = c.JSON(http.StatusInternalServerError, recommendResponse{
				Error: fmt.Sprintf("playbook recommendation failed: %v", r), Recommendations: []models.Match{},
			})
		}
	}()

	var req playbookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, recommendResponse{
			Error: "Invalid request body", Recommendations: []models.Match{},
		})
	}

	opp := req.Opportunity
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}

	ranking := s.rank(c, scoring.PlaybookProfile(), opp, req.Context, s.Playbooks.Items())
	for i := range ranking.Matches {
		ranking.Matches[i].Enrichment = enrich.ForPlaybook(opp, ranking.Matches[i].Item)
	}

	metrics.AnalysisRequests.WithLabelValues(models.KindPlaybook, "ok").Inc()
	return c.JSON(http.StatusOK, recommendResponse{
		Success:         true,
		Recommendations: ranking.Matches,
		Summary:         ranking.Summary,
	})
}

func (s *Server) handleNextBestActions(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger().Errorf("next-best-actions analysis failed: %v", r)
			metrics.AnalysisRequests.WithLabelValues(models.KindPlaybook, "error").Inc()
			err = c.JSON(http.StatusInternalServerError, actionsResponse{
				Error: fmt.Sprintf("next-best-actions analysis failed: %v", r), Actions: []models.Action{},
			})
		}
	}()

	var req playbookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, actionsResponse{
			Error: "Invalid request body", Actions: []models.Action{},
		})
	}

	opp := req.Opportunity
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}

	ranking := s.rank(c, scoring.PlaybookProfile(), opp, req.Context, s.Playbooks.Items())

	// Actions are built for the best-fitting playbook; no viable playbook
	// yields an empty plan, not an error.
	actions := []models.Action{}
	if len(ranking.Matches) > 0 {
		actions = enrich.NextBestActions(opp, ranking.Matches[0].Item)
	}

	metrics.AnalysisRequests.WithLabelValues(models.KindPlaybook, "ok").Inc()
	return c.JSON(http.StatusOK, actionsResponse{
		Success: true,
		Actions: actions,
		Summary: ranking.Summary,
	})
}

func (s *Server) handleListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": s.Products.Items(),
		"count": s.Products.Len(),
	})
}

func (s *Server) handleListPlaybooks(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": s.Playbooks.Items(),
		"count": s.Playbooks.Len(),
	})
}

func (s *Server) handleListChannels(c echo.Context) error {
	seen := make(map[string]bool)
	var channels []string
	for _, ch := range append(s.Products.Channels(), s.Playbooks.Channels()...) {
		if !seen[ch] {
			seen[ch] = true
			channels = append(channels, ch)
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"channels": channels})
}

func (s *Server) handleGetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products":  s.Products.Len(),
		"playbooks": s.Playbooks.Len(),
		"database":  s.DB != nil,
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
