package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/garden/internal/common"
	pb "github.com/dmitrijs2005/garden/internal/proto"
	"github.com/dmitrijs2005/garden/internal/server/models"
	"github.com/dmitrijs2005/garden/internal/validation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC status codes. Unknown errors are
// logged and reported as Internal without leaking details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Message)
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, common.ErrorConflict.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.GetUsername(), req.GetSalt(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.GetUsername())
	return &pb.RegisterResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Garden(ctx context.Context, req *pb.GardenRequest) (*pb.GardenResponse, error) {

	q := validation.GardenQuery{
		Limit:  int(req.GetLimit()),
		Cursor: req.GetCursor(),
	}
	if a := req.GetWhere().GetAuthor(); a != nil {
		q.Where = &validation.Where{Author: &validation.AuthorWhere{Name: a.GetName()}}
	}

	page, err := s.seeds.Garden(ctx, userIDFromContext(ctx), q)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.GardenResponse{
		Seeds:      make([]*pb.Seed, 0, len(page.Seeds)),
		NextCursor: page.NextCursor,
	}
	for _, seed := range page.Seeds {
		resp.Seeds = append(resp.Seeds, seedToPB(seed))
	}

	return resp, nil
}

func (s *GRPCServer) CreateSeed(ctx context.Context, req *pb.CreateSeedRequest) (*pb.CreateSeedResponse, error) {

	seed, err := s.seeds.Create(ctx, userIDFromContext(ctx), req.GetText())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CreateSeedResponse{Seed: seedToPB(seed)}, nil
}

func (s *GRPCServer) Like(ctx context.Context, req *pb.LikeRequest) (*pb.LikeResponse, error) {

	userID, err := s.seeds.Like(ctx, userIDFromContext(ctx), req.GetSeedId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LikeResponse{UserId: userID}, nil
}

func (s *GRPCServer) Unlike(ctx context.Context, req *pb.UnlikeRequest) (*pb.UnlikeResponse, error) {

	userID, err := s.seeds.Unlike(ctx, userIDFromContext(ctx), req.GetSeedId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.UnlikeResponse{UserId: userID}, nil
}

func (s *GRPCServer) CreateAvatarUpload(ctx context.Context, req *pb.CreateAvatarUploadRequest) (*pb.CreateAvatarUploadResponse, error) {

	url, err := s.avatars.CreateUploadURL(ctx, userIDFromContext(ctx), req.GetContentType())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CreateAvatarUploadResponse{Url: url}, nil
}

func (s *GRPCServer) ConfirmAvatarUpload(ctx context.Context, _ *pb.ConfirmAvatarUploadRequest) (*pb.ConfirmAvatarUploadResponse, error) {

	url, err := s.avatars.ConfirmUpload(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.ConfirmAvatarUploadResponse{AvatarUrl: url}, nil
}

func seedToPB(seed *models.Seed) *pb.Seed {
	out := &pb.Seed{
		Id:             seed.ID,
		Text:           seed.Text,
		CreatedAt:      timestamppb.New(seed.CreatedAt),
		LikeCount:      seed.LikeCount,
		ViewerHasLiked: seed.ViewerHasLiked,
	}
	if seed.Author != nil {
		out.Author = &pb.User{Id: seed.Author.ID, Name: seed.Author.UserName, AvatarUrl: seed.Author.AvatarURL}
	} else {
		out.Author = &pb.User{Id: seed.AuthorID}
	}
	return out
}
