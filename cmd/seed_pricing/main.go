package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/marquee-pricing-service/internal/config"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/marquee-pricing-service/internal/transport/grpc/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	orgID := flag.String("org", "demo-org", "Organization to seed")
	addr := flag.String("addr", "localhost:"+cfg.GRPC.Port, "gRPC server address")
	flag.Parse()

	ctx := context.Background()

	// 1. Write pricing configuration straight to Spanner
	if err := seedConfig(ctx, cfg.Spanner.Database, *orgID); err != nil {
		log.Fatalf("Failed to seed pricing config: %v", err)
	}
	fmt.Printf("Seeded rules and tiers for %s\n", *orgID)

	// 2. Exercise the service
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pricing.NewClient(conn)
	req := pricing.PricingRequestMessage{
		OrganizationID: *orgID,
		HallBasePrice:  "50000",
		GuestCount:     200,
		MenuSelections: []pricing.MenuSelectionMessage{
			{Item: pricing.MenuItemMessage{ID: "paneer-tikka", Name: "Paneer Tikka", BasePrice: "180"}, Quantity: "200"},
			{Item: pricing.MenuItemMessage{ID: "biryani", Name: "Biryani", BasePrice: "250"},
				Variant: &pricing.MenuItemVariantMessage{ID: "mutton", Name: "Mutton", PriceModifier: "120"}, Quantity: "200"},
		},
		EventDate:   "2026-12-12",
		EventType:   "wedding",
		AdvancePaid: "20000",
	}

	quote, err := client.QuotePrice(ctx, &pricing.QuotePriceRequest{PricingRequestMessage: req})
	if err != nil {
		log.Fatalf("Failed to quote: %v", err)
	}
	printBreakdown("Quote", quote.Breakdown)

	bookingID := uuid.New().String()
	calc, err := client.RecalculateBookingPrice(ctx, &pricing.RecalculateBookingPriceRequest{
		BookingID:             bookingID,
		PricingRequestMessage: req,
	})
	if err != nil {
		log.Fatalf("Failed to price booking: %v", err)
	}
	fmt.Printf("Stored calculation %s for booking %s\n", calc.CalculationID, bookingID)

	confirmed, err := client.ChangeBookingStatus(ctx, &pricing.ChangeBookingStatusRequest{
		BookingID: bookingID,
		Status:    string(domain.BookingStatusConfirmed),
		ChangedBy: "seed",
	})
	if err != nil {
		log.Fatalf("Failed to confirm booking: %v", err)
	}
	fmt.Printf("Booking %s is %s (version %d)\n", bookingID, confirmed.Status, confirmed.Version)

	fmt.Println("\nTest data created. Try:")
	fmt.Printf("  go run ./cmd/list_events -aggregate %s\n", bookingID)
	fmt.Printf("  curl 'http://localhost:%s/api/v1/events?aggregate_id=%s'\n", cfg.HTTP.Port, bookingID)
}

func seedConfig(ctx context.Context, database, orgID string) error {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	configRepo := repo.NewPricingConfigRepo(client)
	plan := committer.NewPlan()

	for _, rule := range sampleRules() {
		mut, err := configRepo.UpsertRuleMut(orgID, rule, true)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}
	for _, tier := range sampleTiers() {
		mut, err := configRepo.UpsertTierMut(orgID, tier, true)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}

	return committer.NewCommitter(client).Apply(ctx, plan)
}

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func sampleRules() []domain.PricingRule {
	minGuests := 150
	return []domain.PricingRule{
		{ID: "early-bird", Name: "Large party", Type: domain.RuleTypeDiscount, Percentage: pct(5), MinGuests: &minGuests, Priority: 10},
		{ID: "weekend", Name: "Weekend surcharge", Type: domain.RuleTypeSurcharge, Percentage: pct(10),
			ApplicableDays: []time.Weekday{time.Saturday, time.Sunday}, Priority: 20, IsCumulative: true},
		{ID: "service", Name: "Service charge", Type: domain.RuleTypeServiceCharge, Percentage: pct(5), Priority: 10, IsCumulative: true},
		{ID: "gst", Name: "GST", Type: domain.RuleTypeTax, Percentage: pct(18), Priority: 10, IsCumulative: true},
		{ID: "platform", Name: "Platform fee", Type: domain.RuleTypePlatformFee, Percentage: pct(2), Priority: 10, IsCumulative: true},
	}
}

func sampleTiers() []domain.DiscountTier {
	return []domain.DiscountTier{
		{ID: "tier-100", Name: "100+ guests", MinGuests: 100, MaxGuests: 199, DiscountPercentage: decimal.NewFromInt(3)},
		{ID: "tier-200", Name: "200+ guests", MinGuests: 200, MaxGuests: 500, DiscountPercentage: decimal.NewFromInt(7)},
	}
}

func printBreakdown(title string, b pricing.BreakdownMessage) {
	fmt.Printf("%s:\n", title)
	fmt.Printf("  subtotal        %s\n", b.SubtotalBeforeDiscount)
	fmt.Printf("  discounts      -%s\n", b.TotalDiscount)
	fmt.Printf("  surcharges      %s\n", b.SurchargeAmount)
	fmt.Printf("  service charge  %s\n", b.ServiceChargeAmount)
	fmt.Printf("  tax             %s\n", b.TaxAmount)
	fmt.Printf("  grand total     %s (%s per person)\n", b.GrandTotal, b.PricePerPerson)
	fmt.Printf("  balance due     %s\n", b.BalanceDue)
	fmt.Printf("  rules           %v\n", b.AppliedRuleIDs)
}
