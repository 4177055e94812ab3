package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// Images are downscaled before upload; originals larger than this on
	// either axis are resized to fit.
	maxUploadDimension = 1600
	uploadJPEGQuality  = 80
)

// ObjectStore is the blob-store collaborator contract. Paths are
// namespaced by purpose and identifier, e.g. "images/{itemId}.jpg" or
// "receipts/sales/{itemId}.pdf".
type ObjectStore interface {
	Put(ctx context.Context, data []byte, path, contentType string) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
	ResolveURL(ctx context.Context, path string) (string, error)
}

// DriveObjectStore stores blobs as files in one Google Drive folder, named
// by their store path.
type DriveObjectStore struct {
	client   *drive.Service
	folderID string
}

// NewDriveObjectStore creates a Drive-backed object store.
// credentialsPath is the Service Account JSON file.
func NewDriveObjectStore(ctx context.Context, credentialsPath, folderID string) (*DriveObjectStore, error) {
	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveObjectStore{client: client, folderID: folderID}, nil
}

// Ensure DriveObjectStore implements ObjectStore
var _ ObjectStore = (*DriveObjectStore)(nil)

// Put uploads a blob, replacing any existing file at the same path.
// Image payloads are optimized (downscaled and re-encoded as JPEG) first.
// Returns the public URL of the stored file.
func (s *DriveObjectStore) Put(ctx context.Context, data []byte, path, contentType string) (string, error) {
	if strings.HasPrefix(strings.ToLower(contentType), "image/") {
		optimized, err := optimizeImage(data)
		if err != nil {
			log.Printf("⚠️  Image optimization failed for %s, uploading original: %v", path, err)
		} else {
			data = optimized
			contentType = "image/jpeg"
		}
	}

	existing, err := s.findByPath(ctx, path)
	if err != nil {
		return "", err
	}

	var file *drive.File
	if existing != nil {
		file, err = s.client.Files.Update(existing.Id, &drive.File{}).
			Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
			Fields("id").
			Context(ctx).
			Do()
	} else {
		file, err = s.client.Files.Create(&drive.File{Name: path, Parents: []string{s.folderID}}).
			Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
			Fields("id").
			Context(ctx).
			Do()
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}

	log.Printf("✓ Uploaded %s (%d bytes)", path, len(data))
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id), nil
}

// Get downloads the blob stored at path.
func (s *DriveObjectStore) Get(ctx context.Context, path string) ([]byte, error) {
	file, err := s.findByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("object %q not found", path)
	}

	resp, err := s.client.Files.Get(file.Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ResolveURL returns the public URL for the blob stored at path.
func (s *DriveObjectStore) ResolveURL(ctx context.Context, path string) (string, error) {
	file, err := s.findByPath(ctx, path)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("object %q not found", path)
	}
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id), nil
}

func (s *DriveObjectStore) findByPath(ctx context.Context, path string) (*drive.File, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed=false",
		strings.ReplaceAll(path, "'", `\'`), s.folderID)

	r, err := s.client.Files.List().
		Q(query).
		Fields("files(id, name, mimeType)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files for %s: %w", path, err)
	}
	if len(r.Files) == 0 {
		return nil, nil
	}
	return r.Files[0], nil
}

// optimizeImage downscales an image to the upload limit, keeping aspect
// ratio, and re-encodes it as JPEG.
func optimizeImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	resized := img
	if width > maxUploadDimension || height > maxUploadDimension {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxUploadDimension
			newHeight = int(float64(height) * float64(maxUploadDimension) / float64(width))
		} else {
			newHeight = maxUploadDimension
			newWidth = int(float64(width) * float64(maxUploadDimension) / float64(height))
		}
		log.Printf("🔄 Resizing image: %dx%d -> %dx%d (%s)", width, height, newWidth, newHeight, format)
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: uploadJPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
