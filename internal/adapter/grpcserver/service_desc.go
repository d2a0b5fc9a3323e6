package grpcserver

import (
	"context"

	"google.golang.org/grpc"
)

const (
	EstimatesServiceName = "internal.Estimates"
	RequestsServiceName  = "internal.Requests"
)

// EstimatesServer is the server API of the internal.Estimates service.
type EstimatesServer interface {
	GetEstimates(*GetEstimatesRequest, grpc.ServerStreamingServer[EstimateModel]) error
	GetEstimateRefresh(context.Context, *GetEstimateRefreshRequest) (*EstimateModel, error)
}

// RequestsServer is the server API of the internal.Requests service.
type RequestsServer interface {
	PostRideRequest(context.Context, *PostRideRequestModel) (*RideModel, error)
	GetRideRequest(context.Context, *GetRideRequestModel) (*RideModel, error)
	DeleteRideRequest(context.Context, *DeleteRideRequestModel) (*CurrencyModel, error)
}

func RegisterEstimatesServer(s grpc.ServiceRegistrar, srv EstimatesServer) {
	s.RegisterService(&EstimatesServiceDesc, srv)
}

func RegisterRequestsServer(s grpc.ServiceRegistrar, srv RequestsServer) {
	s.RegisterService(&RequestsServiceDesc, srv)
}

var EstimatesServiceDesc = grpc.ServiceDesc{
	ServiceName: EstimatesServiceName,
	HandlerType: (*EstimatesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEstimateRefresh",
			Handler:    getEstimateRefreshHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetEstimates",
			Handler:       getEstimatesHandler,
			ServerStreams: true,
		},
	},
	Metadata: "internal/estimates.proto",
}

var RequestsServiceDesc = grpc.ServiceDesc{
	ServiceName: RequestsServiceName,
	HandlerType: (*RequestsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostRideRequest",
			Handler:    postRideRequestHandler,
		},
		{
			MethodName: "GetRideRequest",
			Handler:    getRideRequestHandler,
		},
		{
			MethodName: "DeleteRideRequest",
			Handler:    deleteRideRequestHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/requests.proto",
}

func getEstimatesHandler(srv any, stream grpc.ServerStream) error {
	m := new(GetEstimatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EstimatesServer).GetEstimates(m, &grpc.GenericServerStream[GetEstimatesRequest, EstimateModel]{ServerStream: stream})
}

func getEstimateRefreshHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetEstimateRefreshRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EstimatesServer).GetEstimateRefresh(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + EstimatesServiceName + "/GetEstimateRefresh"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EstimatesServer).GetEstimateRefresh(ctx, req.(*GetEstimateRefreshRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func postRideRequestHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PostRideRequestModel)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServer).PostRideRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RequestsServiceName + "/PostRideRequest"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RequestsServer).PostRideRequest(ctx, req.(*PostRideRequestModel))
	}
	return interceptor(ctx, in, info, handler)
}

func getRideRequestHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRideRequestModel)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServer).GetRideRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RequestsServiceName + "/GetRideRequest"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RequestsServer).GetRideRequest(ctx, req.(*GetRideRequestModel))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteRideRequestHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteRideRequestModel)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServer).DeleteRideRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RequestsServiceName + "/DeleteRideRequest"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RequestsServer).DeleteRideRequest(ctx, req.(*DeleteRideRequestModel))
	}
	return interceptor(ctx, in, info, handler)
}
