package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	cfg "github.com/psaswat/testyourmodels/configs"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

// allowedMIMETypes is the upload allow-list.
var allowedMIMETypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
	"audio/mp3":       {},
	"audio/wav":       {},
	"audio/mpeg":      {},
	"application/pdf": {},
	"text/plain":      {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type StorageService struct {
	config cfg.Config
}

func NewStorageService(cfg cfg.Config) *StorageService {
	return &StorageService{config: cfg}
}

func (s *StorageService) Client() (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.config.R2.AccessKey, s.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.config.R2.AccountID))
	}), nil
}

// Upload validates the blob and stores it under a namespaced, timestamp-
// prefixed key, returning the public URL on success.
func (s *StorageService) Upload(ctx context.Context, path, fileName, declaredType string, file []byte) transfer.UploadResult {
	if !ValidateFileSize(int64(len(file)), s.config.MaxUploadSizeMB) {
		return transfer.UploadResult{Error: fmt.Sprintf("file exceeds the %d MB limit", s.config.MaxUploadSizeMB)}
	}

	contentType := DetectContentType(declaredType, file)
	if !IsAllowedType(contentType) {
		return transfer.UploadResult{Error: fmt.Sprintf("file type %s is not allowed", contentType)}
	}

	key, err := objectKey(path, fileName)
	if err != nil {
		slog.Info(err.Error())
		return transfer.UploadResult{Error: "unable to generate file name"}
	}

	client, err := s.Client()
	if err != nil {
		return transfer.UploadResult{Error: "storage is unavailable"}
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		slog.Info(err.Error())
		return transfer.UploadResult{Error: "unable to upload file"}
	}

	return transfer.UploadResult{
		Success:  true,
		URL:      fmt.Sprintf("%s/%s", s.config.R2.PublicURL, key),
		FileName: fileName,
		Path:     key,
	}
}

// objectKey builds a collision-avoiding name: namespace, millisecond
// timestamp prefix and a nanoid, keeping the original name for readability.
func objectKey(path, fileName string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = "media"
	}
	return fmt.Sprintf("%s/%d_%s_%s", path, time.Now().UnixMilli(), id, fileName), nil
}

// DetectContentType sniffs the content with filetype and falls back to the
// declared type for kinds the sniffer cannot recognize (plain text).
func DetectContentType(declaredType string, file []byte) string {
	kind, err := filetype.Match(file)
	if err == nil && kind != types.Unknown {
		return kind.MIME.Value
	}
	return declaredType
}

func IsAllowedType(mimeType string) bool {
	_, ok := allowedMIMETypes[mimeType]
	return ok
}

func ValidateFileSize(size int64, maxSizeMB int) bool {
	return size <= int64(maxSizeMB)*1024*1024
}
