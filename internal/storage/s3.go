package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/saobentodouna/rg-agendamento/internal/config"
)

// DocumentStore guarda no S3 (ou compatível, ex.: MinIO) os documentos
// digitalizados que o cidadão anexa ao agendamento.
type DocumentStore struct {
	client *s3.Client
	bucket string
}

func NewDocumentStore(cfg *config.Config) *DocumentStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &DocumentStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

// Put grava o conteúdo e devolve a chave do objeto. A chave é particionada
// por agendamento para facilitar expurgo.
func (s *DocumentStore) Put(
	ctx context.Context,
	appointmentID uint,
	contentType string,
	data []byte,
) (string, error) {

	key := fmt.Sprintf(
		"agendamentos/%d/%s/%s",
		appointmentID,
		time.Now().UTC().Format("2006-01-02"),
		uuid.NewString(),
	)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
