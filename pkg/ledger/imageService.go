package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/minio/minio-go/v7"
)

// ObjectClient defines the methods we need from the MinIO client.
type ObjectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

type imageRepository interface {
	findReceipt(ctx context.Context, eventID, receiptID uint) (*model.Receipt, error)
	updateReceiptImageKey(ctx context.Context, receipt *model.Receipt) error
}

func NewImageService(client ObjectClient, bucket string, repository imageRepository) *ImageService {
	return &ImageService{
		client:     client,
		bucket:     bucket,
		repository: repository,
	}
}

// ImageService stores receipt images in object storage. The receipt itself
// only carries the object key.
type ImageService struct {
	client     ObjectClient
	bucket     string
	repository imageRepository
}

func (s ImageService) AttachReceiptImage(ctx context.Context, eventID, receiptID uint, reader io.Reader, size int64, contentType string) (*model.Receipt, error) {
	receipt, err := s.repository.findReceipt(ctx, eventID, receiptID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("receipts/%d/%d", eventID, receiptID)
	_, err = s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload receipt image %q: %v", key, err)
	}

	receipt.ImageKey = key
	if err := s.repository.updateReceiptImageKey(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

func (s ImageService) GetReceiptImage(ctx context.Context, eventID, receiptID uint) (io.ReadCloser, int64, string, error) {
	receipt, err := s.repository.findReceipt(ctx, eventID, receiptID)
	if err != nil {
		return nil, 0, "", err
	}

	if receipt.ImageKey == "" {
		return nil, 0, "", errdef.NewNotFound("receipt with id %d has no image", receiptID)
	}

	object, err := s.client.GetObject(ctx, s.bucket, receipt.ImageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to get receipt image %q: %v", receipt.ImageKey, err)
	}

	stat, err := object.Stat()
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to stat receipt image %q: %v", receipt.ImageKey, err)
	}

	return object, stat.Size, stat.ContentType, nil
}
