// Package api exposes the HTTP surface of the career guidance service.
package api

import (
	"net/http"
	"time"

	"career-guidance/internal/cache"
	"career-guidance/internal/catalog"
	"career-guidance/internal/common/config"
	"career-guidance/internal/common/database"
	"career-guidance/internal/common/logger"
	"career-guidance/internal/common/observability"
	"career-guidance/internal/recommend"
	"career-guidance/internal/roadmap"
	"career-guidance/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires the service dependencies into HTTP handlers.
type Router struct {
	cfg     *config.Config
	logger  logger.Logger
	catalog *catalog.Catalog
	engine  *recommend.Engine
	builder *roadmap.Builder

	quizStore    *storage.QuizStore
	recStore     *storage.RecommendationStore
	roadmapStore *storage.RoadmapStore
	recCache     *cache.RecommendationCache

	pg        *database.PostgresClient
	redis     *database.RedisClient
	obs       *observability.Observability
	startedAt time.Time
}

// Deps collects everything the router needs.
type Deps struct {
	Config  *config.Config
	Logger  logger.Logger
	Catalog *catalog.Catalog
	Engine  *recommend.Engine
	Builder *roadmap.Builder

	QuizStore    *storage.QuizStore
	RecStore     *storage.RecommendationStore
	RoadmapStore *storage.RoadmapStore
	RecCache     *cache.RecommendationCache

	Postgres *database.PostgresClient
	Redis    *database.RedisClient
	Obs      *observability.Observability
}

// NewRouter creates the router.
func NewRouter(deps Deps) *Router {
	return &Router{
		cfg:          deps.Config,
		logger:       deps.Logger.WithFields(map[string]interface{}{"component": "api"}),
		catalog:      deps.Catalog,
		engine:       deps.Engine,
		builder:      deps.Builder,
		quizStore:    deps.QuizStore,
		recStore:     deps.RecStore,
		roadmapStore: deps.RoadmapStore,
		recCache:     deps.RecCache,
		pg:           deps.Postgres,
		redis:        deps.Redis,
		obs:          deps.Obs,
		startedAt:    time.Now(),
	}
}

// Setup builds the chi handler tree.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(rt.requestLogging)
	r.Use(rt.requestMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quiz", rt.handleQuizSubmit)
		r.Get("/recommendations", rt.handleGetRecommendations)
		r.Get("/roadmap", rt.handleGetRoadmap)
		r.Post("/roadmaps/{roadmapID}/steps/{stepID}/complete", rt.handleCompleteStep)
		r.Get("/roadmaps/{roadmapID}", rt.handleGetStoredRoadmap)
		r.Get("/career-paths", rt.handleListCareerPaths)
		r.Get("/quiz/questions", rt.handleQuizQuestions)
		r.Get("/health", rt.handleHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
