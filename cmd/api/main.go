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
	appsync "github.com/quant-backend/internal/application/sync"
	"github.com/quant-backend/internal/config"
	"github.com/quant-backend/internal/infrastructure/dynamo"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/quant-backend/internal/infrastructure/sendgrid"
	transporthttp "github.com/quant-backend/internal/transport/http"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	fwClient := fourthwall.NewClient(cfg)
	mailer := sendgrid.NewMailer(cfg)

	deps := &transporthttp.Deps{
		MemberRepo:       dynamo.NewMemberRepo(dynamoClient, cfg.DynamoTables.Members),
		VerificationRepo: dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.Verifications),
		InstallRepo:      dynamo.NewInstallRepo(dynamoClient, cfg.DynamoTables.MemberInstalls),
		Fourthwall:       fwClient,
		Mailer:           mailer,
	}

	// Periodic full sync, same path the /sync-members endpoint triggers.
	if cfg.SyncSchedule != "" {
		syncSvc := appsync.NewService(fwClient, deps.MemberRepo)
		c := cron.New(cron.WithLocation(time.UTC))
		_, err := c.AddFunc(cfg.SyncSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := syncSvc.SyncAll(ctx); err != nil {
				log.Printf("scheduled sync failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("invalid SYNC_SCHEDULE %q: %v", cfg.SyncSchedule, err)
		}
		c.Start()
		defer c.Stop()
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
