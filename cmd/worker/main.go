package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"

	"github.com/HealHub-Care/hospital-service/internal/appointments"
	"github.com/HealHub-Care/hospital-service/internal/db"
	"github.com/HealHub-Care/hospital-service/internal/messaging"
)

// The worker owns the administrative appointment lifecycle: once a day it
// moves upcoming appointments whose date has passed to completed.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	repo := appointments.NewRepository(database)
	completer := newCompleter(repo, publisher)

	schedule := os.Getenv("COMPLETION_SCHEDULE")
	if schedule == "" {
		schedule = "0 2 * * *" // 02:00 daily
	}

	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Cron(schedule).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := completer.Run(ctx); err != nil {
			log.Printf("appointment completion run failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule completion job: %v", err)
	}

	scheduler.StartAsync()
	log.Printf("worker started, completion schedule %q", schedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down worker...")
	scheduler.Stop()
}

func newCompleter(repo appointments.RepositoryInterface, publisher *messaging.Publisher) *appointments.CompletionService {
	if publisher == nil {
		return appointments.NewCompletionService(repo, nil)
	}
	return appointments.NewCompletionService(repo, publisher)
}
