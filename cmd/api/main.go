package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/course-reviews-api/internal/config"
	"github.com/course-reviews-api/internal/infrastructure/dynamo"
	"github.com/course-reviews-api/internal/infrastructure/twilio"
	"github.com/course-reviews-api/internal/pkg/identity"
	transporthttp "github.com/course-reviews-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	encryptor, err := identity.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("encryption key: %v", err)
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		CourseRepo:   dynamo.NewCourseRepo(dynamoClient, cfg.DynamoTables.Courses),
		SemesterRepo: dynamo.NewSemesterRepo(dynamoClient, cfg.DynamoTables.Semesters),
		ProgramRepo:  dynamo.NewProgramRepo(dynamoClient, cfg.DynamoTables.Programs),
		ReviewRepo:   dynamo.NewReviewRepo(dynamoClient, cfg.DynamoTables.Reviews),
		Verifier:     twilio.NewVerifier(cfg),
		Encryptor:    encryptor,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
