package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/garden/internal/logging"
	pb "github.com/dmitrijs2005/garden/internal/proto"
	"github.com/dmitrijs2005/garden/internal/server/models"
	"github.com/dmitrijs2005/garden/internal/server/services"
	"github.com/dmitrijs2005/garden/internal/validation"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, error)
}

type seedService interface {
	Garden(ctx context.Context, viewerID string, q validation.GardenQuery) (*models.GardenPage, error)
	Create(ctx context.Context, userID string, text string) (*models.Seed, error)
	Like(ctx context.Context, userID string, seedID string) (string, error)
	Unlike(ctx context.Context, userID string, seedID string) (string, error)
}

type avatarService interface {
	CreateUploadURL(ctx context.Context, userID string, contentType string) (string, error)
	ConfirmUpload(ctx context.Context, userID string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedGardenServer
	address   string
	users     userService
	seeds     seedService
	avatars   avatarService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, ss *services.SeedService, as *services.AvatarService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		seeds:     ss,
		avatars:   as,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the gRPC server with the Garden and health services registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterGardenServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Garden_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled or the listener
// fails, then drains the server.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// returns nil once GracefulStop has been called
		return srv.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
		return nil
	})

	return g.Wait()
}
