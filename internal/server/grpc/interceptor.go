package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/garden/internal/common"
	pb "github.com/dmitrijs2005/garden/internal/proto"
	"github.com/dmitrijs2005/garden/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

type authMode int

const (
	authNone authMode = iota
	// authOptional accepts anonymous callers but rejects a bad token.
	authOptional
	authRequired
)

var methodAuth = map[string]authMode{
	pb.Garden_Garden_FullMethodName:              authOptional,
	pb.Garden_CreateSeed_FullMethodName:          authRequired,
	pb.Garden_Like_FullMethodName:                authRequired,
	pb.Garden_Unlike_FullMethodName:              authRequired,
	pb.Garden_CreateAvatarUpload_FullMethodName:  authRequired,
	pb.Garden_ConfirmAvatarUpload_FullMethodName: authRequired,
}

func accessTokenFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// userIDFromContext returns the authenticated caller, or "" for anonymous calls.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	mode := methodAuth[info.FullMethod]
	if mode == authNone {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromContext(ctx)
	if accessToken == "" {
		if mode == authOptional {
			return handler(ctx, req)
		}
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, userIDKey, userID)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Debug(ctx, "rpc", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc", args...)
	default:
		s.logger.Info(ctx, "rpc", args...)
	}

	return resp, err
}
