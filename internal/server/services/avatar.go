package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/logging"
	sc "github.com/dmitrijs2005/garden/internal/server/config"
	"github.com/dmitrijs2005/garden/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in, optFns...)
	}
)

// AvatarURLs resolves stored avatar keys into URLs a client can download.
type AvatarURLs interface {
	GetURL(ctx context.Context, key string) (string, error)
}

// AvatarKey is the object storage key of a user's avatar.
func AvatarKey(userID string) string {
	return "avatars/" + userID
}

// AvatarService hands out presigned S3 URLs for uploading and viewing avatars.
type AvatarService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger

	mu            sync.Mutex
	client        *s3.Client
	presignClient *s3.PresignClient
}

func NewAvatarService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config, l logging.Logger) *AvatarService {
	return &AvatarService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		logger:      l.With("module", "avatar_service"),
	}
}

// getPresignClient builds the presign client on first use and reuses it.
func (s *AvatarService) getPresignClient() (*s3.PresignClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presignClient != nil {
		return s.presignClient, nil
	}

	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	s.client = newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	s.presignClient = newS3PresignClient(s.client)
	return s.presignClient, nil
}

func (s *AvatarService) getClient() (*s3.Client, error) {
	if _, err := s.getPresignClient(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client, nil
}

func (s *AvatarService) validity() time.Duration {
	if s.config.AvatarURLValidityDuration > 0 {
		return s.config.AvatarURLValidityDuration
	}
	return 15 * time.Minute
}

// CreateUploadURL returns a presigned PUT URL for avatars/<userID>.
// contentType may be empty. The avatar is not shown in feeds until
// ConfirmUpload finds the uploaded object.
func (s *AvatarService) CreateUploadURL(ctx context.Context, userID string, contentType string) (string, error) {
	if userID == "" {
		return "", common.ErrorUnauthorized
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", fmt.Errorf("presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := AvatarKey(userID)

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(s.validity()))
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "avatar upload url issued", "user_id", userID)
	return req.URL, nil
}

// ConfirmUpload records avatars/<userID> as the user's avatar once the
// object exists in the bucket and returns a presigned GET URL for it.
// A missing object yields common.ErrorNotFound and changes nothing.
func (s *AvatarService) ConfirmUpload(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", common.ErrorUnauthorized
	}

	client, err := s.getClient()
	if err != nil {
		return "", fmt.Errorf("s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := AvatarKey(userID)

	if _, err := headObject(client, ctx, &s3.HeadObjectInput{Bucket: &bucket, Key: &key}); err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return "", fmt.Errorf("avatar %s: %w", key, common.ErrorNotFound)
		}
		return "", fmt.Errorf("head avatar: %w", err)
	}

	if err := s.repomanager.Users(s.db).SetAvatarKey(ctx, userID, key); err != nil {
		return "", fmt.Errorf("error saving avatar key: %w", err)
	}

	s.logger.Info(ctx, "avatar confirmed", "user_id", userID)
	return s.GetURL(ctx, key)
}

// GetURL returns a presigned GET URL for key, or "" when key is empty.
func (s *AvatarService) GetURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.validity()))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
