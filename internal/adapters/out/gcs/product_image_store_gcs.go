// internal/adapters/out/gcs/product_image_store_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// ProductImageStoreGCS stores product images on Google Cloud Storage under
// a "products/<productID>/" prefix. Objects are served through the public
// storage.googleapis.com endpoint.
type ProductImageStoreGCS struct {
	Client *storage.Client
	Bucket string
}

func NewProductImageStoreGCS(client *storage.Client, bucket string) *ProductImageStoreGCS {
	return &ProductImageStoreGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

func (s *ProductImageStoreGCS) effectiveBucket() (string, error) {
	b := strings.TrimSpace(s.Bucket)
	if b == "" {
		return "", errors.New("ProductImageStoreGCS: bucket is empty")
	}
	return b, nil
}

func objectName(productID, fileName string) (string, error) {
	pid := strings.TrimSpace(productID)
	fn := strings.TrimLeft(strings.TrimSpace(fileName), "/")
	if pid == "" || fn == "" {
		return "", errors.New("ProductImageStoreGCS: productID and fileName are required")
	}
	return fmt.Sprintf("products/%s/%s", pid, fn), nil
}

// Upload writes the image body and returns its public URL.
func (s *ProductImageStoreGCS) Upload(ctx context.Context, productID, fileName, contentType string, body io.Reader) (string, error) {
	if s == nil || s.Client == nil {
		return "", errors.New("ProductImageStoreGCS: nil storage client")
	}
	bucketName, err := s.effectiveBucket()
	if err != nil {
		return "", err
	}
	obj, err := objectName(productID, fileName)
	if err != nil {
		return "", err
	}

	w := s.Client.Bucket(bucketName).Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return PublicURL(bucketName, obj), nil
}

// Delete removes a single image object. A missing object is not an error;
// the product may have been saved without an image.
func (s *ProductImageStoreGCS) Delete(ctx context.Context, productID, fileName string) error {
	if s == nil || s.Client == nil {
		return errors.New("ProductImageStoreGCS: nil storage client")
	}
	bucketName, err := s.effectiveBucket()
	if err != nil {
		return err
	}
	obj, err := objectName(productID, fileName)
	if err != nil {
		return err
	}

	if err := s.Client.Bucket(bucketName).Object(obj).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// PublicURL builds a public GCS URL for an object.
func PublicURL(bucket, objectPath string) string {
	b := strings.TrimSpace(bucket)
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b, obj)
}
