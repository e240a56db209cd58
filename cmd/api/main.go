package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/clinic-outreach/internal/config"
	"github.com/xavierca1/clinic-outreach/internal/infra/enrichment"
	"github.com/xavierca1/clinic-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/clinic-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/clinic-outreach/internal/infra/integration/instantly"
	"github.com/xavierca1/clinic-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Lookup de enriquecimento (arquivo ausente não derruba o boot)
	store := enrichment.Load(cfg.EnrichmentPaths()...)

	// 2. Client do Instantly (sem credencial não tem dashboard)
	client, err := instantly.NewClient(cfg.InstantlyAPIKey, cfg.InstantlyURL)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Estratégias de start/pause, na ordem de preferência. O contrato
	// upstream já mudou de forma antes, então as duas ficam plugadas.
	strategies := []usecase.CampaignStatusSetter{
		instantly.StatusUpdateStrategy{Client: client},
		instantly.LaunchEndpointStrategy{Client: client},
	}

	// 4. Facade
	dashboard := usecase.NewDashboardUseCase(
		client, strategies, store,
		cfg.CampaignID, cfg.CampaignName,
		usecase.DefaultClinicKeywords,
	)

	// 5. Handlers
	campaignHandler := handlers.NewCampaignHandler(dashboard)
	leadHandler := handlers.NewLeadHandler(dashboard)
	healthHandler := handlers.NewHealthHandler(store, cfg.InstantlyAPIKey != "")

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// Health e metrics ficam fora do basic auth
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(cfg.DashboardUser, cfg.DashboardPass))

		r.Get("/api/campaign/stats", campaignHandler.HandleStats)
		r.Get("/api/campaign/leads", campaignHandler.HandleLeads)
		r.Post("/api/campaign/start", campaignHandler.HandleStart)
		r.Post("/api/campaign/pause", campaignHandler.HandlePause)
		r.Get("/api/lead/details/{email}", leadHandler.HandleDetails)
		r.Get("/api/campaign/message-preview", leadHandler.HandleMessagePreview)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("🔥 Dashboard de outreach rodando na porta %s (campanha %s)", addr, cfg.CampaignID)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
