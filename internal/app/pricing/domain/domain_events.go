package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// PriceCalculatedEvent is emitted when a booking's price breakdown is stored.
type PriceCalculatedEvent struct {
	BookingID      string    `json:"booking_id"`
	OrganizationID string    `json:"organization_id"`
	CalculationID  string    `json:"calculation_id"`
	GrandTotal     string    `json:"grand_total"`
	BalanceDue     string    `json:"balance_due"`
	AppliedRuleIDs []string  `json:"applied_rule_ids"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

func (e *PriceCalculatedEvent) EventType() string {
	return "booking.price.calculated"
}

func (e *PriceCalculatedEvent) AggregateID() string {
	return e.BookingID
}

// BookingStatusChangedEvent is emitted when a booking moves to a new status.
type BookingStatusChangedEvent struct {
	BookingID string    `json:"booking_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

func (e *BookingStatusChangedEvent) EventType() string {
	return "booking.status.changed"
}

func (e *BookingStatusChangedEvent) AggregateID() string {
	return e.BookingID
}
