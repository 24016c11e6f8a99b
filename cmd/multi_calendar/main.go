package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/akarev0/MultiCalendar/internal/app"
	"github.com/akarev0/MultiCalendar/internal/config"
)

func main() {
	// Best effort; the config layer falls back to env defaults.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
