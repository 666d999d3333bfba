package pricing

// Amounts, quantities and percentages travel as decimal strings so no precision is lost
// in the Struct's double-typed numbers. Dates are YYYY-MM-DD or RFC 3339.

// MenuItemVariantMessage is a priced variant of a menu item.
type MenuItemVariantMessage struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	PriceModifier string `json:"price_modifier,omitempty"`
}

// MenuItemMessage is a catalog menu item.
type MenuItemMessage struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	BasePrice    string `json:"base_price"`
	IsVegetarian bool   `json:"is_vegetarian,omitempty"`
	IsAvailable  bool   `json:"is_available,omitempty"`
	IsEssential  bool   `json:"is_essential,omitempty"`
}

// MenuSelectionMessage is a menu item, optionally in a variant, with a quantity.
type MenuSelectionMessage struct {
	Item     MenuItemMessage         `json:"item"`
	Variant  *MenuItemVariantMessage `json:"variant,omitempty"`
	Quantity string                  `json:"quantity"`
}

// LineItemMessage is an already priced line.
type LineItemMessage struct {
	Ref        string `json:"ref"`
	Name       string `json:"name,omitempty"`
	UnitPrice  string `json:"unit_price"`
	Quantity   string `json:"quantity"`
	IsOptional bool   `json:"is_optional,omitempty"`
	Confirmed  bool   `json:"confirmed,omitempty"`
}

// PackageItemMessage is a menu item inside a package.
type PackageItemMessage struct {
	Item       MenuItemMessage `json:"item"`
	IsOptional bool            `json:"is_optional,omitempty"`
	Confirmed  bool            `json:"confirmed,omitempty"`
}

// PackageMessage is a per-person menu package.
type PackageMessage struct {
	ID             string               `json:"id"`
	Name           string               `json:"name,omitempty"`
	PricePerPerson string               `json:"price_per_person"`
	Items          []PackageItemMessage `json:"items,omitempty"`
}

// PricingRequestMessage is the booking data priced by QuotePrice and
// RecalculateBookingPrice.
type PricingRequestMessage struct {
	OrganizationID string                 `json:"organization_id"`
	HallBasePrice  string                 `json:"hall_base_price"`
	GuestCount     int                    `json:"guest_count"`
	LineItems      []LineItemMessage      `json:"line_items,omitempty"`
	MenuSelections []MenuSelectionMessage `json:"menu_selections,omitempty"`
	Package        *PackageMessage        `json:"package,omitempty"`
	EventDate      string                 `json:"event_date"`
	EventType      string                 `json:"event_type,omitempty"`
	AdvancePaid    string                 `json:"advance_paid,omitempty"`
}

// QuotePriceRequest is the QuotePrice request.
type QuotePriceRequest struct {
	PricingRequestMessage
}

// TierMessage is the tier applied to a breakdown.
type TierMessage struct {
	ID                 string `json:"id"`
	Name               string `json:"name,omitempty"`
	DiscountPercentage string `json:"discount_percentage,omitempty"`
}

// AdjustmentMessage is the contribution of one fired rule.
type AdjustmentMessage struct {
	RuleID string `json:"rule_id"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// BreakdownMessage is an itemized price.
type BreakdownMessage struct {
	HallBasePrice          string              `json:"hall_base_price"`
	MenuSubtotal           string              `json:"menu_subtotal"`
	PackageSubtotal        string              `json:"package_subtotal"`
	SubtotalBeforeDiscount string              `json:"subtotal_before_discount"`
	AppliedTier            *TierMessage        `json:"applied_tier,omitempty"`
	GuestDiscountAmount    string              `json:"guest_discount_amount"`
	RuleDiscountAmount     string              `json:"rule_discount_amount"`
	TotalDiscount          string              `json:"total_discount"`
	SubtotalAfterDiscount  string              `json:"subtotal_after_discount"`
	SurchargeAmount        string              `json:"surcharge_amount"`
	ServiceChargeAmount    string              `json:"service_charge_amount"`
	TaxAmount              string              `json:"tax_amount"`
	PlatformCommission     string              `json:"platform_commission"`
	GrandTotal             string              `json:"grand_total"`
	PricePerPerson         string              `json:"price_per_person"`
	AdvancePaid            string              `json:"advance_paid"`
	BalanceDue             string              `json:"balance_due"`
	AppliedRuleIDs         []string            `json:"applied_rule_ids"`
	Adjustments            []AdjustmentMessage `json:"adjustments"`
}

// QuotePriceResponse is the QuotePrice response.
type QuotePriceResponse struct {
	Breakdown BreakdownMessage `json:"breakdown"`
}

// RecalculateBookingPriceRequest is the RecalculateBookingPrice request.
type RecalculateBookingPriceRequest struct {
	BookingID string `json:"booking_id"`
	PricingRequestMessage
}

// PriceCalculationMessage is a stored calculation.
type PriceCalculationMessage struct {
	CalculationID  string           `json:"calculation_id"`
	BookingID      string           `json:"booking_id"`
	OrganizationID string           `json:"organization_id"`
	GuestCount     int              `json:"guest_count"`
	EventDate      string           `json:"event_date"`
	EventType      string           `json:"event_type,omitempty"`
	CalculatedAt   string           `json:"calculated_at"`
	Breakdown      BreakdownMessage `json:"breakdown"`
}

// GetPriceCalculationRequest is the GetPriceCalculation request.
type GetPriceCalculationRequest struct {
	BookingID string `json:"booking_id"`
}

// CalculatePackagePriceRequest is the CalculatePackagePrice request.
type CalculatePackagePriceRequest struct {
	PricePerPerson string `json:"price_per_person"`
	GuestCount     int    `json:"guest_count"`
}

// CalculatePackagePriceResponse is the CalculatePackagePrice response.
type CalculatePackagePriceResponse struct {
	Total string `json:"total"`
}

// BudgetPreferencesMessage narrows a menu suggestion.
type BudgetPreferencesMessage struct {
	ExcludedCategories  []string `json:"excluded_categories,omitempty"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	VegetarianOnly      bool     `json:"vegetarian_only,omitempty"`
	TolerancePercentage string   `json:"tolerance_percentage,omitempty"`
}

// SuggestMenuRequest is the SuggestMenu request.
type SuggestMenuRequest struct {
	TargetBudget  string                   `json:"target_budget"`
	GuestCount    int                      `json:"guest_count"`
	HallBasePrice string                   `json:"hall_base_price,omitempty"`
	Items         []MenuItemMessage        `json:"items"`
	Preferences   BudgetPreferencesMessage `json:"preferences"`
}

// SuggestedItemMessage is one suggested item.
type SuggestedItemMessage struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name,omitempty"`
	CategoryID    string `json:"category_id,omitempty"`
	UnitPrice     string `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	EstimatedCost string `json:"estimated_cost"`
}

// SuggestMenuResponse is the SuggestMenu response.
type SuggestMenuResponse struct {
	Items                    []SuggestedItemMessage `json:"items"`
	SuggestedPerPersonBudget string                 `json:"suggested_per_person_budget"`
	TotalEstimatedCost       string                 `json:"total_estimated_cost"`
	VariancePercentage       string                 `json:"variance_percentage"`
	TolerancePercentage      string                 `json:"tolerance_percentage"`
	WithinTolerance          bool                   `json:"within_tolerance"`
}

// ChangeBookingStatusRequest is the ChangeBookingStatus request.
type ChangeBookingStatusRequest struct {
	BookingID       string `json:"booking_id"`
	Status          string `json:"status"`
	ChangedBy       string `json:"changed_by"`
	Reason          string `json:"reason,omitempty"`
	ExpectedVersion *int64 `json:"expected_version,omitempty"`
}

// ChangeBookingStatusResponse is the ChangeBookingStatus response.
type ChangeBookingStatusResponse struct {
	BookingID   string  `json:"booking_id"`
	Status      string  `json:"status"`
	Version     int64   `json:"version"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
}

// ListEventsRequest is the ListEvents request.
type ListEventsRequest struct {
	EventType   *string `json:"event_type,omitempty"`
	AggregateID *string `json:"aggregate_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	Limit       int     `json:"limit,omitempty"`
}

// EventMessage is one outbox event.
type EventMessage struct {
	EventID      string  `json:"event_id"`
	EventType    string  `json:"event_type"`
	AggregateID  string  `json:"aggregate_id"`
	Payload      string  `json:"payload"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
	RetryCount   int64   `json:"retry_count"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// ListEventsResponse is the ListEvents response.
type ListEventsResponse struct {
	Events     []EventMessage `json:"events"`
	TotalCount int64          `json:"total_count"`
}
