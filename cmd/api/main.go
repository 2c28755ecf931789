package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blackboyfilms/studio-api/internal/infra/database"
	"github.com/blackboyfilms/studio-api/internal/infra/http/handlers"
	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
	"github.com/blackboyfilms/studio-api/internal/infra/mail"
	"github.com/blackboyfilms/studio-api/internal/infra/queue"
	"github.com/blackboyfilms/studio-api/internal/infra/worker"
	"github.com/blackboyfilms/studio-api/internal/usecase"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Banco indisponível: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatalf("❌ RabbitMQ indisponível: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	nicheRepo := database.NewNicheRepository(db)
	portfolioRepo := database.NewPortfolioRepository(db)
	clientRepo := database.NewClientRepository(db)
	settingsRepo := database.NewSettingsRepository(db)

	// 2. Fila, dispatcher e notificador
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	dispatcher := webhook.NewDispatcher(&database.WebhookConfigLoader{Settings: settingsRepo})

	var notifier usecase.LeadNotifierInterface
	if os.Getenv("MAIL_HOST") != "" {
		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		notifier = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("LEADS_INBOX"),
		)
	}

	// 3. Workers
	webhookWorker := queue.NewWorker(rabbitMQ.Ch, dispatcher)
	go webhookWorker.Start(queue.QueueName)

	staleWorker := worker.NewStaleLeadWorker(leadRepo)
	go staleWorker.Start(context.Background())

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer, notifier)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, producer)
	setStatusUC := usecase.NewSetLeadStatusUseCase(leadRepo, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC)
	adminLeadHandler := handlers.NewAdminLeadHandler(leadRepo, updateLeadUC, setStatusUC)
	nicheHandler := handlers.NewNicheHandler(nicheRepo)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo)
	clientHandler := handlers.NewClientHandler(clientRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, dispatcher)
	analyticsHandler := handlers.NewAnalyticsHandler(leadRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://blackboyfilms.com.br", "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Superfície pública do site
		r.Post("/leads", leadHandler.CaptureLead)
		r.Get("/niches", nicheHandler.HandlePublicList)
		r.Get("/portfolio", portfolioHandler.HandlePublicList)
		r.Get("/clients", clientHandler.HandlePublicList)
		r.Get("/tracking", settingsHandler.HandlePublicTracking)

		// Console administrativo
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(os.Getenv("ADMIN_API_TOKEN")))

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", adminLeadHandler.HandleList)
				r.Get("/kanban", adminLeadHandler.HandleKanban)
				r.Get("/{id}", adminLeadHandler.HandleGet)
				r.Put("/{id}", adminLeadHandler.HandleUpdate)
				r.Patch("/{id}/status", adminLeadHandler.HandleSetStatus)
				r.Delete("/{id}", adminLeadHandler.HandleDelete)
			})

			r.Get("/analytics", analyticsHandler.HandleSummary)

			r.Route("/niches", func(r chi.Router) {
				r.Get("/", nicheHandler.HandleList)
				r.Post("/", nicheHandler.HandleCreate)
				r.Get("/{id}", nicheHandler.HandleGet)
				r.Put("/{id}", nicheHandler.HandleUpdate)
				r.Delete("/{id}", nicheHandler.HandleDelete)
			})

			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/", portfolioHandler.HandleList)
				r.Post("/", portfolioHandler.HandleCreate)
				r.Get("/{id}", portfolioHandler.HandleGet)
				r.Put("/{id}", portfolioHandler.HandleUpdate)
				r.Delete("/{id}", portfolioHandler.HandleDelete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.HandleList)
				r.Post("/", clientHandler.HandleCreate)
				r.Get("/{id}", clientHandler.HandleGet)
				r.Put("/{id}", clientHandler.HandleUpdate)
				r.Delete("/{id}", clientHandler.HandleDelete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/webhook", settingsHandler.HandleGetWebhookConfig)
				r.Put("/webhook", settingsHandler.HandlePutWebhookConfig)
				r.Post("/webhook/test", settingsHandler.HandleTestWebhook)
				r.Get("/tracking", settingsHandler.HandleGetTrackingConfig)
				r.Put("/tracking", settingsHandler.HandlePutTrackingConfig)
			})
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🎬 API Blackboy Films rodando na porta :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
