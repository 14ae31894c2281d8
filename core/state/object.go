package state

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/storage"

	"github.com/minio/minio-go/v7"
)

// objectStore persists the watermark as a small JSON object in a bucket.
type objectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates an object-storage-backed watermark store.
func NewObjectStore(client storage.Client, bucket, object string) Store {
	return &objectStore{client: client, bucket: bucket, object: object}
}

// EnsureBucket creates the state bucket if it does not exist yet.
func EnsureBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("state: check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("state: create bucket: %w", err)
	}
	return nil
}

func (s *objectStore) Load(ctx context.Context) (int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("state: get watermark object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// A missing object only surfaces on read with the minio client.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return 0, nil
		}
		return 0, fmt.Errorf("state: read watermark object: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("state: parse watermark object: %w", err)
	}

	return snap.WatermarkMillis, nil
}

func (s *objectStore) Save(ctx context.Context, watermark int64) error {
	data, err := json.Marshal(snapshot{
		WatermarkMillis: watermark,
		UpdatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("state: encode watermark: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("state: put watermark object: %w", err)
	}

	return nil
}
