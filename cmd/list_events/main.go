package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/marquee-pricing-service/internal/transport/grpc/pricing"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "gRPC server address")
	aggregate := flag.String("aggregate", "", "Only events of this booking")
	eventType := flag.String("type", "", "Only events of this type")
	status := flag.String("status", "", "Only events with this status")
	limit := flag.Int("limit", 10, "Maximum events to show")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := &pricing.ListEventsRequest{Limit: *limit}
	if *aggregate != "" {
		req.AggregateID = aggregate
	}
	if *eventType != "" {
		req.EventType = eventType
	}
	if *status != "" {
		req.Status = status
	}

	resp, err := pricing.NewClient(conn).ListEvents(ctx, req)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	fmt.Printf("Found %d events (total: %d):\n\n", len(resp.Events), resp.TotalCount)
	for i, event := range resp.Events {
		fmt.Printf("%d. %s\n", i+1, event.EventType)
		fmt.Printf("   Event ID: %s\n", event.EventID)
		fmt.Printf("   Booking: %s\n", event.AggregateID)
		fmt.Printf("   Status: %s (retries: %d)\n", event.Status, event.RetryCount)
		fmt.Printf("   Created: %s\n", event.CreatedAt)
		fmt.Printf("   Payload: %s\n\n", event.Payload)
	}
}
