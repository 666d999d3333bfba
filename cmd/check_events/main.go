package main

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/marquee-pricing-service/internal/config"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
)

// Reads the outbox straight from Spanner, bypassing the server.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	rm := repo.NewEventsReadModel(client)

	fmt.Println("Events in outbox_events table:")
	for _, status := range []string{m_outbox.StatusPending, m_outbox.StatusProcessing, m_outbox.StatusCompleted, m_outbox.StatusFailed} {
		st := status
		events, total, err := rm.ListEvents(ctx, &list_events.Request{Status: &st, Limit: 10})
		if err != nil {
			log.Fatalf("Failed to read %s events: %v", status, err)
		}
		fmt.Printf("\n%s: %d\n", status, total)
		for i, e := range events {
			fmt.Printf("  %d. %s - %s (booking: %s, created: %s)\n", i+1, e.EventType, e.EventID, e.AggregateID, e.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	}
}
