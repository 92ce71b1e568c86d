package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/dealflow-pipeline/internal/config"
	"github.com/xavierca1/dealflow-pipeline/internal/entity"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/http/handlers"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/http/middleware"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/mail"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/memory"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/queue"
	"github.com/xavierca1/dealflow-pipeline/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Shared state: store, cursor, roster. All of it lives here and
	// gets injected; no package-level globals.
	store := memory.NewLeadStore()
	cursor := memory.NewCursor()
	roster := entity.DefaultRoster()

	// 2. Notification sink. RabbitMQ when configured, log-only otherwise.
	var notifier usecase.NotifierInterface = queue.LogNotifier{}
	var rabbitConn *amqp.Connection

	if cfg.HasRabbitMQ() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPort)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		notifier = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// 3. Worker: consumes assignment notifications and delivers them.
		var mailer queue.AssignmentMailer
		if cfg.HasSMTP() {
			mailer = mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		}
		worker := queue.NewWorker(rabbitMQ.Ch, mailer)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️  RabbitMQ not configured, notifications go to the log only")
	}

	// 4. UseCases
	ingestUC := usecase.NewIngestLeadUseCase(store)
	enrichUC := usecase.NewEnrichLeadUseCase(store)
	scoreUC := usecase.NewScoreLeadUseCase(store)
	routeUC := usecase.NewRouteLeadUseCase(store, roster, cursor, notifier)
	reportUC := usecase.NewReportPerformanceUseCase(store, roster)
	processUC := usecase.NewProcessLeadUseCase(ingestUC, enrichUC, scoreUC, routeUC, reportUC)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(ingestUC, enrichUC, scoreUC, routeUC, cfg.IngestRateLimit)
	reportHandler := handlers.NewReportHandler(reportUC, processUC)
	healthHandler := handlers.NewHealthHandler(rabbitConn, cfg.SMTPHost)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.IngestLead)
	r.Post("/leads/{leadId}/enrich", leadHandler.EnrichLead)
	r.Post("/leads/{leadId}/score", leadHandler.ScoreLead)
	r.Post("/leads/{leadId}/route", leadHandler.RouteLead)
	r.Get("/report", reportHandler.GetReport)
	r.Post("/process", reportHandler.ProcessLead)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 DealFlow API running on %s", addr)
	http.ListenAndServe(addr, r)
}
