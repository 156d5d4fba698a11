package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3ImageStore guarda las imágenes de individuos y muestras en un bucket
// compatible con S3 (path-style, sirve también para MinIO o el storage de
// Supabase) y devuelve la URL pública del objeto.
type S3ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3ImageStoreFromEnv builds the store from S3_BUCKET and S3_PUBLIC_URL.
// Credentials and endpoint come from the standard AWS environment.
func NewS3ImageStoreFromEnv(ctx context.Context) (*S3ImageStore, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET debe estar configurado")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error cargando configuración de AWS: %w", err)
	}

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		BaseEndpoint: cfg.BaseEndpoint,
		UsePathStyle: true,
	})

	publicURL := strings.TrimSuffix(os.Getenv("S3_PUBLIC_URL"), "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	log.Printf("[STORAGE] Bucket de imágenes configurado: %s", bucket)

	return &S3ImageStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Upload stores the image under a collision-free key inside the given folder
// ("individuos" or "muestras") and returns its public URL.
func (s *S3ImageStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("error subiendo imagen a %s: %w", s.bucket, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}
