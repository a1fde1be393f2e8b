package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/common"
	pb "github.com/dmitrijs2005/garden/internal/proto"
	"github.com/dmitrijs2005/garden/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.GardenClient
	health      healthpb.HealthClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(refreshToken string)

	// refreshMu serializes token rotation; the server accepts each refresh
	// token once.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(refresh)
	}
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.tokens()

	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" || method == pb.Garden_RefreshToken_FullMethodName {
		return err
	}

	if err := s.refreshExpired(ctx, refreshToken); err != nil {
		return err
	}

	// retry once with the new access token
	accessToken, _ = s.tokens()
	return invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
}

// refreshExpired rotates stale unless a concurrent call already did; in that
// case the pair it stored is reused.
func (s *GRPCClient) refreshExpired(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	switch _, current := s.tokens(); current {
	case stale:
		return s.refresh(ctx, stale)
	case "":
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	default:
		return nil
	}
}

// refresh must be called with refreshMu held.
func (s *GRPCClient) refresh(ctx context.Context, refreshToken string) error {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			s.Logout()
		}
		return err
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// NewGardenClientService connects to endpointURL. Extra dial options are
// appended to the defaults (insecure transport, token interceptor).
func NewGardenClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOptions: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewGardenClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) error {

	req := &pb.RegisterRequest{Username: userName, Salt: salt, Verifier: verifier}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, Verifier: verifier})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Resume exchanges a persisted refresh token for a fresh token pair.
func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrUnauthorized
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if err := s.refresh(ctx, refreshToken); err != nil {
		return s.mapError(err)
	}
	return nil
}

// Logout forgets both tokens.
func (s *GRPCClient) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *GRPCClient) RefreshToken() string {
	_, r := s.tokens()
	return r
}

// OnTokensRefreshed registers fn to be called with every new refresh token.
func (s *GRPCClient) OnTokensRefreshed(fn func(refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.Garden_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error) {

	req := &pb.GardenRequest{Limit: int32(q.Limit), Cursor: q.Cursor}
	if q.Where != nil && q.Where.Author != nil {
		req.Where = &pb.Where{Author: &pb.AuthorFilter{Name: q.Where.Author.Name}}
	}

	resp, err := s.client.Garden(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	page := &models.Page{Seeds: make([]models.Seed, 0, len(resp.GetSeeds())), NextCursor: resp.GetNextCursor()}
	for _, seed := range resp.GetSeeds() {
		page.Seeds = append(page.Seeds, seedFromPB(seed))
	}
	return page, nil
}

func (s *GRPCClient) CreateSeed(ctx context.Context, text string) (*models.Seed, error) {

	resp, err := s.client.CreateSeed(ctx, &pb.CreateSeedRequest{Text: text})
	if err != nil {
		return nil, s.mapError(err)
	}

	seed := seedFromPB(resp.GetSeed())
	return &seed, nil
}

func (s *GRPCClient) Like(ctx context.Context, seedID string) (string, error) {

	resp, err := s.client.Like(ctx, &pb.LikeRequest{SeedId: seedID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Unlike(ctx context.Context, seedID string) (string, error) {

	resp, err := s.client.Unlike(ctx, &pb.UnlikeRequest{SeedId: seedID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) CreateAvatarUpload(ctx context.Context, contentType string) (string, error) {

	resp, err := s.client.CreateAvatarUpload(ctx, &pb.CreateAvatarUploadRequest{ContentType: contentType})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

// ConfirmAvatarUpload makes the uploaded avatar visible and returns a URL
// to view it.
func (s *GRPCClient) ConfirmAvatarUpload(ctx context.Context) (string, error) {

	resp, err := s.client.ConfirmAvatarUpload(ctx, &pb.ConfirmAvatarUploadRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetAvatarUrl(), nil
}

func seedFromPB(p *pb.Seed) models.Seed {
	if p == nil {
		return models.Seed{}
	}
	seed := models.Seed{
		ID:             p.GetId(),
		Text:           p.GetText(),
		LikeCount:      p.GetLikeCount(),
		ViewerHasLiked: p.GetViewerHasLiked(),
	}
	if ts := p.GetCreatedAt(); ts != nil {
		seed.CreatedAt = ts.AsTime()
	}
	if a := p.GetAuthor(); a != nil {
		seed.Author = models.User{ID: a.GetId(), Name: a.GetName(), AvatarURL: a.GetAvatarUrl()}
	}
	return seed
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return common.NewValidationError("", common.RuleFormat, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorConflict
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
