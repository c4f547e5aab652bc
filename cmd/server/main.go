package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/adityavk/portfolio-server/internal/api"
	"github.com/adityavk/portfolio-server/internal/auth"
	"github.com/adityavk/portfolio-server/internal/config"
	"github.com/adityavk/portfolio-server/internal/mailer"
	"github.com/adityavk/portfolio-server/internal/repositories"
)

func main() {
	cfg := config.Load()

	db, err := repositories.ConnectDatabase(cfg.DB_URL)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Successfully connected to database")

	media := repositories.NewR2MediaStore(cfg.Storage)
	mail := mailer.NewSMTPMailer(cfg.SMTP)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.CookieExpireDays)*24*time.Hour)

	handler := api.SetupRouter(cfg, db, media, mail, tokens)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting portfolio server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
