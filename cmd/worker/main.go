package main

import (
	"context"
	"log"

	"foodtrace/internal/app/bootstrap"
)

// Worker process entrypoint: headless ledger refresh loop.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Poll the ledger on the refresh interval and log cycle summaries.
func main() {
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("foodtrace worker bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("foodtrace worker stopped with error: %v", err)
	}
}
