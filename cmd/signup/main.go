// Command signup registers for the flagship event and one of its sessions on
// a running registration server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"eventregistration/config"
	"eventregistration/internal/adapters/registration"
	"eventregistration/internal/services"
)

func main() {
	session := flag.String("session", services.DefaultSessionTitle, "title of the session to sign up for")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	client := registration.NewHTTPClient(cfg.RegistrationURL, &http.Client{Timeout: cfg.RequestTimeout})
	signup := services.NewSignupService(client, cfg.EventCacheTTL, logger)

	msg, err := signup.SignUp(ctx, *session)
	if err != nil {
		logger.Error("sign up failed", "registration_url", cfg.RegistrationURL, "session", *session, "err", err)
		os.Exit(1)
	}
	fmt.Println(msg)
}
