package services

import "context"

// ImageStore abstracts the object-storage bucket holding field photos.
// Implemented by utils.S3ImageStore; tests plug in a fake.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
}
