package pricing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is a typed client for PricingService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}, opts ...grpc.CallOption) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return err
	}
	// Responses are decoded leniently so older clients tolerate new fields.
	return fromStruct(out, resp, false)
}

// QuotePrice calls PricingService.QuotePrice.
func (c *Client) QuotePrice(ctx context.Context, req *QuotePriceRequest, opts ...grpc.CallOption) (*QuotePriceResponse, error) {
	resp := new(QuotePriceResponse)
	if err := c.invoke(ctx, MethodQuotePrice, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// RecalculateBookingPrice calls PricingService.RecalculateBookingPrice.
func (c *Client) RecalculateBookingPrice(ctx context.Context, req *RecalculateBookingPriceRequest, opts ...grpc.CallOption) (*PriceCalculationMessage, error) {
	resp := new(PriceCalculationMessage)
	if err := c.invoke(ctx, MethodRecalculateBookingPrice, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPriceCalculation calls PricingService.GetPriceCalculation.
func (c *Client) GetPriceCalculation(ctx context.Context, req *GetPriceCalculationRequest, opts ...grpc.CallOption) (*PriceCalculationMessage, error) {
	resp := new(PriceCalculationMessage)
	if err := c.invoke(ctx, MethodGetPriceCalculation, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// CalculatePackagePrice calls PricingService.CalculatePackagePrice.
func (c *Client) CalculatePackagePrice(ctx context.Context, req *CalculatePackagePriceRequest, opts ...grpc.CallOption) (*CalculatePackagePriceResponse, error) {
	resp := new(CalculatePackagePriceResponse)
	if err := c.invoke(ctx, MethodCalculatePackagePrice, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// SuggestMenu calls PricingService.SuggestMenu.
func (c *Client) SuggestMenu(ctx context.Context, req *SuggestMenuRequest, opts ...grpc.CallOption) (*SuggestMenuResponse, error) {
	resp := new(SuggestMenuResponse)
	if err := c.invoke(ctx, MethodSuggestMenu, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ChangeBookingStatus calls PricingService.ChangeBookingStatus.
func (c *Client) ChangeBookingStatus(ctx context.Context, req *ChangeBookingStatusRequest, opts ...grpc.CallOption) (*ChangeBookingStatusResponse, error) {
	resp := new(ChangeBookingStatusResponse)
	if err := c.invoke(ctx, MethodChangeBookingStatus, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListEvents calls PricingService.ListEvents.
func (c *Client) ListEvents(ctx context.Context, req *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	resp := new(ListEventsResponse)
	if err := c.invoke(ctx, MethodListEvents, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}
