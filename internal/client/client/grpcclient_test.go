package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/garden/internal/common"
	pb "github.com/dmitrijs2005/garden/internal/proto"
	"github.com/dmitrijs2005/garden/internal/validation"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastGetSaltReq      *pb.GetSaltRequest
	lastLoginReq        *pb.LoginRequest
	lastRegisterReq     *pb.RegisterRequest
	lastGardenReq       *pb.GardenRequest
	lastCreateReq       *pb.CreateSeedRequest
	lastLikeReq         *pb.LikeRequest
	lastUnlikeReq       *pb.UnlikeRequest
	lastAvatarReq       *pb.CreateAvatarUploadRequest
	confirmCalls        int

	// outputs preset
	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	getSaltResp *pb.GetSaltResponse
	getSaltErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerErr error

	gardenResp *pb.GardenResponse
	gardenErr  error

	createResp *pb.CreateSeedResponse
	createErr  error

	likeErr   error
	unlikeErr error

	avatarResp *pb.CreateAvatarUploadResponse
	avatarErr  error

	confirmResp *pb.ConfirmAvatarUploadResponse
	confirmErr  error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	return &pb.RegisterResponse{}, f.registerErr
}
func (f *fakePB) GetSalt(ctx context.Context, in *pb.GetSaltRequest, opts ...grpc.CallOption) (*pb.GetSaltResponse, error) {
	f.lastGetSaltReq = in
	return f.getSaltResp, f.getSaltErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Garden(ctx context.Context, in *pb.GardenRequest, opts ...grpc.CallOption) (*pb.GardenResponse, error) {
	f.lastGardenReq = in
	return f.gardenResp, f.gardenErr
}
func (f *fakePB) CreateSeed(ctx context.Context, in *pb.CreateSeedRequest, opts ...grpc.CallOption) (*pb.CreateSeedResponse, error) {
	f.lastCreateReq = in
	return f.createResp, f.createErr
}
func (f *fakePB) Like(ctx context.Context, in *pb.LikeRequest, opts ...grpc.CallOption) (*pb.LikeResponse, error) {
	f.lastLikeReq = in
	if f.likeErr != nil {
		return nil, f.likeErr
	}
	return &pb.LikeResponse{UserId: "me"}, nil
}
func (f *fakePB) Unlike(ctx context.Context, in *pb.UnlikeRequest, opts ...grpc.CallOption) (*pb.UnlikeResponse, error) {
	f.lastUnlikeReq = in
	if f.unlikeErr != nil {
		return nil, f.unlikeErr
	}
	return &pb.UnlikeResponse{UserId: "me"}, nil
}
func (f *fakePB) CreateAvatarUpload(ctx context.Context, in *pb.CreateAvatarUploadRequest, opts ...grpc.CallOption) (*pb.CreateAvatarUploadResponse, error) {
	f.lastAvatarReq = in
	return f.avatarResp, f.avatarErr
}
func (f *fakePB) ConfirmAvatarUpload(ctx context.Context, in *pb.ConfirmAvatarUploadRequest, opts ...grpc.CallOption) (*pb.ConfirmAvatarUploadResponse, error) {
	f.confirmCalls++
	return f.confirmResp, f.confirmErr
}

type fakeHealth struct {
	healthpb.HealthClient
	resp *healthpb.HealthCheckResponse
	err  error
}

func (f *fakeHealth) Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	return f.resp, f.err
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}
	var persisted string
	c.OnTokensRefreshed(func(r string) { persisted = r })

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.Garden_Like_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
	require.Equal(t, "R2", persisted)
}

func TestInterceptor_SkipsRefreshAlreadyDoneByAnotherCall(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, "unauthorized")}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		md, _ := metadata.FromOutgoingContext(ctx)
		if md.Get(common.AccessTokenHeaderName)[0] == "A1" {
			// a concurrent call rotates the pair while this one is in flight
			c.setTokens("A2", "R2")
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.Garden_Like_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Nil(t, f.lastRefreshTokenReq, "the rotated token is reused, not refreshed again")
	require.Equal(t, "R2", c.RefreshToken())
}

func TestInterceptor_AnonymousCallCarriesNoToken(t *testing.T) {
	c := &GRPCClient{}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return nil
	}
	require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.Garden_Garden_FullMethodName, nil, nil, nil, invoker))
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), pb.Garden_Like_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_RejectedRefreshLogsOut(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, "unauthorized")}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), pb.Garden_Like_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Empty(t, c.RefreshToken())
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X"}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorConflict)

	verr := c.mapError(status.Error(codes.InvalidArgument, "text is too short"))
	require.ErrorIs(t, verr, common.ErrorValidation)
	require.EqualError(t, verr, "text is too short")

	require.ErrorContains(t, c.mapError(status.Error(codes.Internal, "x")), "rpc error:")

	plain := errors.New("plain")
	require.Equal(t, plain, c.mapError(plain))
	require.NoError(t, c.mapError(nil))
}

/*************
 * Ping tests
 *************/

func TestPing_OK(t *testing.T) {
	c := &GRPCClient{health: &fakeHealth{resp: &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}}}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotServing_ReturnsUnavailable(t *testing.T) {
	c := &GRPCClient{health: &fakeHealth{resp: &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	c := &GRPCClient{health: &fakeHealth{err: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * GetSalt / Login / Register / Resume tests
 *************/

func TestGetSalt_Success(t *testing.T) {
	f := &fakePB{getSaltResp: &pb.GetSaltResponse{Salt: []byte{1, 2, 3}}}
	c := &GRPCClient{client: f}
	salt, err := c.GetSalt(context.Background(), "u")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, salt)
	require.Equal(t, "u", f.lastGetSaltReq.Username)
}

func TestGetSalt_MapsError(t *testing.T) {
	f := &fakePB{getSaltErr: status.Error(codes.Unavailable, "x")}
	c := &GRPCClient{client: f}
	_, err := c.GetSalt(context.Background(), "u")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLogin_SetsTokens(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Login(context.Background(), "u", []byte{9}))
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.RefreshToken())
	require.Equal(t, "u", f.lastLoginReq.Username)
	require.Equal(t, []byte{9}, f.lastLoginReq.Verifier)

	c.Logout()
	require.Empty(t, c.accessToken)
	require.Empty(t, c.RefreshToken())
}

func TestRegister_MapsError(t *testing.T) {
	f := &fakePB{registerErr: status.Error(codes.AlreadyExists, "already exists")}
	c := &GRPCClient{client: f}
	err := c.Register(context.Background(), "u", []byte{1}, []byte{2})
	require.ErrorIs(t, err, common.ErrorConflict)
	require.Equal(t, "u", f.lastRegisterReq.Username)
	require.Equal(t, []byte{1}, f.lastRegisterReq.Salt)
	require.Equal(t, []byte{2}, f.lastRegisterReq.Verifier)
}

func TestResume(t *testing.T) {
	f := &fakePB{refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A", RefreshToken: "R2"}}
	c := &GRPCClient{client: f}

	require.ErrorIs(t, c.Resume(context.Background(), ""), ErrUnauthorized)

	require.NoError(t, c.Resume(context.Background(), "R1"))
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
	require.Equal(t, "R2", c.RefreshToken())

	f.refreshTokenErr = status.Error(codes.Unauthenticated, "refresh token expired")
	require.ErrorIs(t, c.Resume(context.Background(), "R2"), ErrUnauthorized)
	require.Empty(t, c.RefreshToken())
}

/*************
 * Garden / mutations
 *************/

func TestGarden_MapsReqAndResp(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &fakePB{gardenResp: &pb.GardenResponse{
		Seeds: []*pb.Seed{{
			Id: "s1", Text: "a seed of text", CreatedAt: timestamppb.New(created),
			Author: &pb.User{Id: "u1", Name: "alice", AvatarUrl: "http://a"}, LikeCount: 2, ViewerHasLiked: true,
		}},
		NextCursor: "s1",
	}}
	c := &GRPCClient{client: f}

	page, err := c.Garden(context.Background(), validation.GardenQuery{
		Limit: 10, Cursor: "c0", Where: &validation.Where{Author: &validation.AuthorWhere{Name: "alice"}},
	})
	require.NoError(t, err)

	require.EqualValues(t, 10, f.lastGardenReq.Limit)
	require.Equal(t, "c0", f.lastGardenReq.Cursor)
	require.Equal(t, "alice", f.lastGardenReq.GetWhere().GetAuthor().GetName())

	require.Equal(t, "s1", page.NextCursor)
	require.Len(t, page.Seeds, 1)
	s := page.Seeds[0]
	require.Equal(t, "s1", s.ID)
	require.True(t, created.Equal(s.CreatedAt))
	require.Equal(t, "alice", s.Author.Name)
	require.Equal(t, "http://a", s.Author.AvatarURL)
	require.EqualValues(t, 2, s.LikeCount)
	require.True(t, s.ViewerHasLiked)
}

func TestGarden_NoFilterAndError(t *testing.T) {
	f := &fakePB{gardenResp: &pb.GardenResponse{}}
	c := &GRPCClient{client: f}

	page, err := c.Garden(context.Background(), validation.GardenQuery{Limit: 5})
	require.NoError(t, err)
	require.Nil(t, f.lastGardenReq.Where)
	require.Empty(t, page.Seeds)
	require.False(t, page.HasMore())

	f.gardenErr = status.Error(codes.Unavailable, "x")
	_, err = c.Garden(context.Background(), validation.GardenQuery{Limit: 5})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateSeed(t *testing.T) {
	f := &fakePB{createResp: &pb.CreateSeedResponse{Seed: &pb.Seed{Id: "s9", Text: "freshly planted"}}}
	c := &GRPCClient{client: f}

	seed, err := c.CreateSeed(context.Background(), "freshly planted")
	require.NoError(t, err)
	require.Equal(t, "s9", seed.ID)
	require.Equal(t, "freshly planted", f.lastCreateReq.Text)

	f.createErr = status.Error(codes.InvalidArgument, "text is too short")
	_, err = c.CreateSeed(context.Background(), "short")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestLikeUnlike(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	id, err := c.Like(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, "me", id)
	require.Equal(t, "s1", f.lastLikeReq.GetSeedId())

	id, err = c.Unlike(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, "me", id)
	require.Equal(t, "s1", f.lastUnlikeReq.GetSeedId())

	f.likeErr = status.Error(codes.AlreadyExists, "already exists")
	_, err = c.Like(context.Background(), "s1")
	require.ErrorIs(t, err, common.ErrorConflict)

	f.unlikeErr = status.Error(codes.NotFound, "not found")
	_, err = c.Unlike(context.Background(), "s1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreateAvatarUpload(t *testing.T) {
	f := &fakePB{avatarResp: &pb.CreateAvatarUploadResponse{Url: "https://put"}}
	c := &GRPCClient{client: f}

	url, err := c.CreateAvatarUpload(context.Background(), "image/png")
	require.NoError(t, err)
	require.Equal(t, "https://put", url)
	require.Equal(t, "image/png", f.lastAvatarReq.ContentType)

	f.avatarErr = status.Error(codes.Unauthenticated, "missing token")
	_, err = c.CreateAvatarUpload(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestConfirmAvatarUpload(t *testing.T) {
	f := &fakePB{confirmResp: &pb.ConfirmAvatarUploadResponse{AvatarUrl: "https://get"}}
	c := &GRPCClient{client: f}

	url, err := c.ConfirmAvatarUpload(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://get", url)
	require.Equal(t, 1, f.confirmCalls)

	f.confirmErr = status.Error(codes.NotFound, "not found")
	_, err = c.ConfirmAvatarUpload(context.Background())
	require.ErrorIs(t, err, common.ErrorNotFound)
}
