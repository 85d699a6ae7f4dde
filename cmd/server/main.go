// Package main is the entry point for the email service HTTP server.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/sebasr/email-service/internal/config"
	"github.com/sebasr/email-service/internal/email"
	"github.com/sebasr/email-service/internal/server"
)

func main() {
	// Load .env if present; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the delivery backend
	var sender email.Sender
	switch {
	case cfg.Mail.Provider == "console":
		sender = email.NewConsoleSender()
		log.Println("Email delivery in console mode - messages will be logged, not sent")
	case cfg.Mail.SenderAddress == "" || cfg.Mail.SenderPassword == "":
		// Missing credentials are not a startup error; sends will fail
		// at the SMTP relay and be reported per request
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Mail.Server,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.SenderAddress,
			Password: cfg.Mail.SenderPassword,
			Timeout:  cfg.Mail.Timeout,
		})
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD not set - sends will fail until configured")
	default:
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Mail.Server,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.SenderAddress,
			Password: cfg.Mail.SenderPassword,
			Timeout:  cfg.Mail.Timeout,
		})
		log.Printf("Email delivery via SMTP relay %s", cfg.Mail.Addr())
	}

	emailService := email.NewService(sender, email.NewRenderer(email.Templates()), cfg.Mail.SenderAddress)

	// Create server dependencies
	deps := &server.Dependencies{
		Config:       cfg,
		EmailService: emailService,
	}

	// Create and start the server
	srv := server.New(deps)

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
