package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/HealHub-Care/hospital-service/internal/auth"
	"github.com/HealHub-Care/hospital-service/internal/cache"
	"github.com/HealHub-Care/hospital-service/internal/db"
	httpapi "github.com/HealHub-Care/hospital-service/internal/http"
	"github.com/HealHub-Care/hospital-service/internal/messaging"
	"github.com/HealHub-Care/hospital-service/internal/notify"
	"github.com/HealHub-Care/hospital-service/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// OpenTelemetry first, so every later connection is instrumented
	otelCfg := telemetry.LoadConfig()
	provider, err := telemetry.InitProvider(ctx, otelCfg)
	if err != nil {
		log.Printf("Warning: OpenTelemetry init failed: %v", err)
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			provider.Shutdown(shutdownCtx)
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: metrics init failed: %v", err)
		metrics = nil
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	// The query cache is optional: a nil store behaves as a permanent miss
	store, err := cache.Connect()
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without query cache: %v", err)
		store = nil
	} else {
		defer store.Close()
	}
	if metrics != nil {
		store.SetMetrics(metrics)
	}

	// Events are best-effort too; the API stays up without the broker
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	mailer, err := notify.NewMailer()
	if err != nil {
		log.Printf("Warning: SMTP not configured, transactional mail disabled: %v", err)
		mailer = nil
	}

	authCfg := auth.LoadConfig()
	jwks, err := auth.NewJWKS(authCfg.JWKSURL, 15*time.Minute)
	if err != nil {
		log.Fatalf("failed to load JWKS: %v", err)
	}
	verifier := auth.NewVerifier(authCfg, jwks)

	perms, err := auth.LoadPermissions("permissions.yml")
	if err != nil {
		log.Fatalf("failed to load permissions: %v", err)
	}

	keycloak, err := auth.NewKeycloakClient()
	if err != nil {
		log.Fatalf("failed to initialize Keycloak client: %v", err)
	}

	deps := httpapi.Dependencies{
		DB:       database,
		Cache:    store,
		Verifier: verifier,
		Perms:    perms,
		Keycloak: keycloak,
		Metrics:  metrics,
	}
	if publisher != nil {
		deps.Publisher = publisher
	}
	if mailer != nil {
		deps.Mailer = mailer
	}

	router := httpapi.SetupRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      httpapi.CORSMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("hospital-service listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
