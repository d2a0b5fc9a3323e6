package grpcserver

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationHeader = "authorization"

// sessionCredential reads the caller session credential from the incoming
// authorization metadata. The value is forwarded untouched to the Users service.
func sessionCredential(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		for _, v := range md.Get(authorizationHeader) {
			if v = strings.TrimSpace(v); v != "" {
				return v, nil
			}
		}
	}
	return "", status.Error(codes.Unauthenticated, "missing authorization metadata")
}
