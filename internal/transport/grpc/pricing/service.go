package pricing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "marquee.pricing.v1.PricingService"

// Method names.
const (
	MethodQuotePrice              = "QuotePrice"
	MethodRecalculateBookingPrice = "RecalculateBookingPrice"
	MethodGetPriceCalculation     = "GetPriceCalculation"
	MethodCalculatePackagePrice   = "CalculatePackagePrice"
	MethodSuggestMenu             = "SuggestMenu"
	MethodChangeBookingStatus     = "ChangeBookingStatus"
	MethodListEvents              = "ListEvents"
)

// FullMethod returns the /service/method path of a method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PricingServiceServer is the server API of the pricing service. Messages travel as
// google.protobuf.Struct documents whose shape is described in messages.go.
type PricingServiceServer interface {
	QuotePrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecalculateBookingPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPriceCalculation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculatePackagePrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SuggestMenu(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangeBookingStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEvents(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPricingServiceServer registers srv with s.
func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(PricingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for PricingService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodQuotePrice, Handler: unaryHandler(MethodQuotePrice, PricingServiceServer.QuotePrice)},
		{MethodName: MethodRecalculateBookingPrice, Handler: unaryHandler(MethodRecalculateBookingPrice, PricingServiceServer.RecalculateBookingPrice)},
		{MethodName: MethodGetPriceCalculation, Handler: unaryHandler(MethodGetPriceCalculation, PricingServiceServer.GetPriceCalculation)},
		{MethodName: MethodCalculatePackagePrice, Handler: unaryHandler(MethodCalculatePackagePrice, PricingServiceServer.CalculatePackagePrice)},
		{MethodName: MethodSuggestMenu, Handler: unaryHandler(MethodSuggestMenu, PricingServiceServer.SuggestMenu)},
		{MethodName: MethodChangeBookingStatus, Handler: unaryHandler(MethodChangeBookingStatus, PricingServiceServer.ChangeBookingStatus)},
		{MethodName: MethodListEvents, Handler: unaryHandler(MethodListEvents, PricingServiceServer.ListEvents)},
	},
	Streams: []grpc.StreamDesc{},
}
