package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/david/farm-grant-matcher/internal/auth"
	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/engine"
	"github.com/david/farm-grant-matcher/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the thin synchronous HTTP wrapper around the matching engine.
// The engine does all the work; handlers only translate JSON.
type Server struct {
	Engine  *engine.Engine
	Catalog *catalog.Swappable
	DB      *pgxpool.Pool // nil when running from the embedded catalog only
	Echo    *echo.Echo
}

func NewServer(eng *engine.Engine, cat *catalog.Swappable, pool *pgxpool.Pool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	allowedOrigins := []string{"http://localhost:4200"}
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
	}))

	s := &Server{
		Engine:  eng,
		Catalog: cat,
		DB:      pool,
		Echo:    e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.POST("/matches", s.handleFindMatches)
	api.GET("/grants/:id", s.handleGetGrant)
	api.POST("/grants/:id/match", s.handleGrantMatch)
	api.GET("/catalog/health", s.handleCatalogHealth)

	admin := api.Group("/admin")
	admin.Use(auth.RequireAdmin)
	admin.POST("/selftest", s.handleSelfTest)
	admin.POST("/refresh", s.handleRefresh)
	admin.POST("/seed", s.handleSeed)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type matchRequest struct {
	Profile  models.FarmProfile `json:"profile"`
	Limit    int                `json:"limit"`
	MinScore int                `json:"min_score"`
}

func (s *Server) handleFindMatches(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Profile.State == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "profile.state is required"})
	}

	result := s.Engine.FindMatches(req.Profile, engine.QueryOptions{
		Limit:    req.Limit,
		MinScore: req.MinScore,
	})
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetGrant(c echo.Context) error {
	grant, ok := s.Engine.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, grant)
}

type detailRequest struct {
	Profile models.FarmProfile `json:"profile"`
}

func (s *Server) handleGrantMatch(c echo.Context) error {
	var req detailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	detail, ok := s.Engine.DetailForProfile(c.Param("id"), req.Profile)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, detail)
}

func (s *Server) handleCatalogHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Engine.Health())
}

func (s *Server) handleSelfTest(c echo.Context) error {
	report := s.Engine.RunSelfTests()
	status := http.StatusOK
	if !report.Passed {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, report)
}

func (s *Server) handleRefresh(c echo.Context) error {
	if s.DB == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No database configured"})
	}

	snap, err := catalog.LoadFromDB(c.Request().Context(), s.DB)
	if err != nil {
		c.Logger().Errorf("Catalog refresh failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	s.Catalog.Publish(snap)

	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Catalog refreshed",
		"catalog_size": snap.Len(),
	})
}

func (s *Server) handleSeed(c echo.Context) error {
	if s.DB == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No database configured"})
	}

	snap, err := catalog.LoadEmbedded(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	n, err := catalog.Seed(c.Request().Context(), s.DB, snap.Grants())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Seed complete", "seeded": n})
}
